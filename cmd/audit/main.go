package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/hostelworks/hostel-service/internal/app"
	"github.com/hostelworks/hostel-service/internal/config"
	"github.com/hostelworks/hostel-service/internal/repositories"
	"github.com/hostelworks/hostel-service/internal/services"
	"github.com/hostelworks/hostel-service/internal/utils"
)

const auditTimeout = 10 * time.Minute

// One-shot occupancy audit. Connects, sweeps every room, repairs drift, and
// prints the report as JSON so it can be piped or archived.
func main() {
	utils.InitLogger(config.AppName + "-audit")
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize auditor:", err)
	}
	defer application.Close()

	roomRepo := repositories.NewRoomRepository(application.DB)
	tenantRepo := repositories.NewTenantRepository(application.DB)
	auditSvc := services.NewAuditService(roomRepo, tenantRepo)

	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	report, err := auditSvc.RunAudit(ctx)
	if err != nil {
		utils.Logger.Fatal("Occupancy audit failed:", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		utils.Logger.Fatal("Failed to encode audit report:", err)
	}

	if len(report.Failures) > 0 {
		utils.Logger.Warnf("Audit finished with %d per-room failures", len(report.Failures))
		os.Exit(1)
	}
}
