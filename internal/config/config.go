package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/hostelworks/hostel-service/internal/utils"
)

type Config struct {
	AppName         string
	AppPort         string
	DBUrl           string
	JWTSecret       []byte
	CORSOrigin      string
	AuditCronSpec   string
	SeedDevData     bool
	ShutdownTimeout time.Duration
}

const AppName = "hostel-service"

func LoadConfig() *Config {
	// .env is optional; real deployments inject env vars directly.
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file found; relying on process environment")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRET env var is missing")
	}
	if len(jwtSecret) < 32 {
		utils.Logger.Fatal("JWT_SECRET must be at least 32 bytes")
	}

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "*"
		utils.Logger.Warn("CORS_ORIGIN not set; allowing all origins")
	}

	auditCronSpec := os.Getenv("AUDIT_CRON_SPEC")
	if auditCronSpec == "" {
		auditCronSpec = "0 3 * * *" // nightly, 03:00
	}

	seedDevData := os.Getenv("SEED_DEV_DATA") == "true"
	if seedDevData {
		utils.Logger.Info("SEED_DEV_DATA enabled; dev fixtures will be seeded at startup")
	}

	return &Config{
		AppName:         AppName,
		AppPort:         appPort,
		DBUrl:           dbURL,
		JWTSecret:       []byte(jwtSecret),
		CORSOrigin:      corsOrigin,
		AuditCronSpec:   auditCronSpec,
		SeedDevData:     seedDevData,
		ShutdownTimeout: 10 * time.Second,
	}
}
