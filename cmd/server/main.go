package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/hostelworks/hostel-service/internal/app"
	"github.com/hostelworks/hostel-service/internal/config"
	"github.com/hostelworks/hostel-service/internal/controllers"
	"github.com/hostelworks/hostel-service/internal/middleware"
	"github.com/hostelworks/hostel-service/internal/repositories"
	"github.com/hostelworks/hostel-service/internal/routes"
	"github.com/hostelworks/hostel-service/internal/services"
	"github.com/hostelworks/hostel-service/internal/utils"
)

const auditJobTimeout = 5 * time.Minute

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize hostel-service:", err)
	}
	defer application.Close()

	// Repositories
	roomRepo := repositories.NewRoomRepository(application.DB)
	tenantRepo := repositories.NewTenantRepository(application.DB)
	ownerRepo := repositories.NewOwnerRepository(application.DB)
	paymentRepo := repositories.NewPaymentRepository(application.DB)
	complaintRepo := repositories.NewComplaintRepository(application.DB)
	leaveRepo := repositories.NewLeaveRequestRepository(application.DB)
	announcementRepo := repositories.NewAnnouncementRepository(application.DB)
	menuRepo := repositories.NewMenuRepository(application.DB)

	if cfg.SeedDevData {
		if err := app.SeedDevData(context.Background(), ownerRepo, roomRepo); err != nil {
			utils.Logger.Fatal("Failed to seed dev data:", err)
		}
	}

	// Services
	occupancySvc := services.NewOccupancyService(roomRepo, tenantRepo)
	auditSvc := services.NewAuditService(roomRepo, tenantRepo)
	authSvc := services.NewAuthService(tenantRepo, ownerRepo, cfg.JWTSecret)
	leaveSvc := services.NewLeaveService(leaveRepo, tenantRepo, occupancySvc)
	complaintSvc := services.NewComplaintService(complaintRepo, tenantRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, tenantRepo)
	boardSvc := services.NewBoardService(announcementRepo, menuRepo)

	// Controllers
	healthController := controllers.NewHealthController()
	authController := controllers.NewAuthController(authSvc)
	roomController := controllers.NewRoomController(occupancySvc)
	tenantController := controllers.NewTenantController(occupancySvc)
	leaveController := controllers.NewLeaveController(leaveSvc)
	complaintController := controllers.NewComplaintController(complaintSvc)
	paymentController := controllers.NewPaymentController(paymentSvc)
	boardController := controllers.NewBoardController(boardSvc)

	// Router setup
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.AuthTenantLogin, authController.TenantLoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthOwnerLogin, authController.OwnerLoginHandler).Methods(http.MethodPost)

	// Authenticated routes shared by both roles
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	secured.HandleFunc(routes.AnnouncementsBase, boardController.ListAnnouncementsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MenuBase, boardController.WeeklyMenuHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ComplaintsBase, complaintController.ListComplaintsHandler).Methods(http.MethodGet)

	// Tenant-only routes
	tenantOnly := router.NewRoute().Subrouter()
	tenantOnly.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireRole(services.RoleTenant))
	tenantOnly.HandleFunc(routes.ComplaintsBase, complaintController.FileComplaintHandler).Methods(http.MethodPost)
	tenantOnly.HandleFunc(routes.LeaveBase, leaveController.FileLeaveRequestHandler).Methods(http.MethodPost)
	tenantOnly.HandleFunc(routes.LeaveBase, leaveController.ListMyLeaveRequestsHandler).Methods(http.MethodGet)

	// Owner-only routes
	ownerOnly := router.NewRoute().Subrouter()
	ownerOnly.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireRole(services.RoleOwner))
	ownerOnly.HandleFunc(routes.RoomsBase, roomController.CreateRoomHandler).Methods(http.MethodPost)
	ownerOnly.HandleFunc(routes.RoomsBase, roomController.ListRoomsHandler).Methods(http.MethodGet)
	ownerOnly.HandleFunc(routes.RoomsLookup, roomController.LookupRoomHandler).Methods(http.MethodGet)
	ownerOnly.HandleFunc(routes.RoomsByID, roomController.UpdateRoomHandler).Methods(http.MethodPut)
	ownerOnly.HandleFunc(routes.RoomsByID, roomController.DeleteRoomHandler).Methods(http.MethodDelete)
	ownerOnly.HandleFunc(routes.TenantsBase, tenantController.CreateTenantHandler).Methods(http.MethodPost)
	ownerOnly.HandleFunc(routes.TenantsBase, tenantController.ListTenantsHandler).Methods(http.MethodGet)
	ownerOnly.HandleFunc(routes.TenantsByID, tenantController.GetTenantHandler).Methods(http.MethodGet)
	ownerOnly.HandleFunc(routes.TenantsByID, tenantController.DeleteTenantHandler).Methods(http.MethodDelete)
	ownerOnly.HandleFunc(routes.LeavePending, leaveController.ListPendingHandler).Methods(http.MethodGet)
	ownerOnly.HandleFunc(routes.LeaveApprove, leaveController.ApproveHandler).Methods(http.MethodPost)
	ownerOnly.HandleFunc(routes.LeaveReject, leaveController.RejectHandler).Methods(http.MethodPost)
	ownerOnly.HandleFunc(routes.ComplaintsResolve, complaintController.ResolveComplaintHandler).Methods(http.MethodPost)
	ownerOnly.HandleFunc(routes.PaymentsBase, paymentController.RecordPaymentHandler).Methods(http.MethodPost)
	ownerOnly.HandleFunc(routes.PaymentsByTenant, paymentController.ListTenantPaymentsHandler).Methods(http.MethodGet)
	ownerOnly.HandleFunc(routes.AnnouncementsBase, boardController.PostAnnouncementHandler).Methods(http.MethodPost)
	ownerOnly.HandleFunc(routes.AnnouncementsByID, boardController.DeleteAnnouncementHandler).Methods(http.MethodDelete)
	ownerOnly.HandleFunc(routes.MenuBase, boardController.UpsertMenuHandler).Methods(http.MethodPut)

	// Cron job setup
	c := cron.New(cron.WithLocation(time.UTC))

	_, err = c.AddFunc(cfg.AuditCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditJobTimeout)
		defer cancel()
		utils.Logger.Info("Starting occupancy audit cron job...")
		report, err := auditSvc.RunAudit(ctx)
		if err != nil {
			utils.Logger.WithError(err).Error("Occupancy audit failed")
			return
		}
		utils.Logger.Infof(
			"Occupancy audit done: %d rooms checked, %d inconsistencies, %d fixed, %d failures",
			report.RoomsChecked, report.InconsistenciesFound, report.RoomsFixed, len(report.Failures),
		)
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule occupancy audit cron")
	}

	c.Start()
	utils.Logger.Infof("Scheduled occupancy audit cron (%s)", cfg.AuditCronSpec)

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("hostel-service failed to start:", err)
	}
}
