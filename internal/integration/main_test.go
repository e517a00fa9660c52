//go:build dev_test && integration

package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	_ "time/tzdata"

	"github.com/hostelworks/hostel-service/internal/config"
	"github.com/hostelworks/hostel-service/internal/repositories"
	"github.com/hostelworks/hostel-service/internal/utils"
)

// Integration tests run against a live service plus direct DB access for
// setup and verification. Required env:
//
//	APP_URL  - base URL of a running hostel-service (e.g. http://localhost:8080)
//	DB_URL   - same database the service is pointed at
var (
	baseURL    string
	db         *pgxpool.Pool
	roomRepo   repositories.RoomRepository
	tenantRepo repositories.TenantRepository
	ownerRepo  repositories.OwnerRepository
)

func TestMain(m *testing.M) {
	utils.InitLogger(config.AppName + "-integration")

	baseURL = os.Getenv("APP_URL")
	if baseURL == "" {
		log.Fatal("APP_URL env var is missing")
	}
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		log.Fatal("DB_URL env var is missing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	db, err = pgxpool.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer db.Close()

	roomRepo = repositories.NewRoomRepository(db)
	tenantRepo = repositories.NewTenantRepository(db)
	ownerRepo = repositories.NewOwnerRepository(db)

	log.Printf("hostel-service integration tests: DB connected, baseURL=%s", baseURL)

	os.Exit(m.Run())
}
