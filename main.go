package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"WorkforceBackend/config"
	"WorkforceBackend/core"
	"WorkforceBackend/handlers"
	"WorkforceBackend/logging"
	"WorkforceBackend/middleware"
	"WorkforceBackend/models"
	"WorkforceBackend/notify"
	"WorkforceBackend/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	cfg := config.Load()
	logging.Setup(cfg.DevMode)

	// Initialize JWT
	middleware.InitJWT(cfg.JWTSecret)

	// In-memory state with the demo dataset
	st := store.New()
	if err := st.Seed(time.Now()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed store")
	}

	composer := notify.NewLogComposer(log.Logger)
	svc := core.New(st, core.SystemClock(), composer, core.Options{
		NewUserSecurityView: cfg.NewUserSecurityView,
		NoticeRecipient:     cfg.NoticeRecipient,
	})
	api := handlers.NewAPI(svc)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)

	// Create router
	router := mux.NewRouter()

	// Public routes
	router.HandleFunc("/api/health", healthCheck).Methods("GET")
	router.HandleFunc("/api/auth/manager/login", api.ManagerLogin).Methods("POST")
	router.HandleFunc("/api/auth/login", api.EmployeeLogin).Methods("POST")

	// Protected routes
	protected := router.PathPrefix("/api").Subrouter()
	protected.Use(middleware.AuthMiddleware)

	// Reachable even while a password change is still pending
	protected.HandleFunc("/auth/logout", api.Logout).Methods("POST")
	protected.HandleFunc("/auth/change-password", api.ChangePassword).Methods("POST")
	protected.HandleFunc("/me", api.GetMe).Methods("GET")
	protected.HandleFunc("/onboarding/complete", api.CompleteOnboarding).Methods("POST")

	// Everything else requires a settled password
	gated := protected.NewRoute().Subrouter()
	gated.Use(middleware.PasswordGate(st))

	taskRoutes := gated.PathPrefix("/tasks").Subrouter()
	taskRoutes.Use(middleware.RequireCapability(st, models.ViewTasks))
	taskRoutes.HandleFunc("", api.GetTasks).Methods("GET")
	taskRoutes.HandleFunc("", api.CreateTask).Methods("POST")
	taskRoutes.HandleFunc("/{id}/submit", api.SubmitTask).Methods("POST")
	taskRoutes.HandleFunc("/{id}/approve", api.ApproveTask).Methods("POST")
	taskRoutes.HandleFunc("/{id}/reject", api.RejectTask).Methods("POST")
	taskRoutes.HandleFunc("/{id}/approve-creation", api.ApproveCreation).Methods("POST")

	attendanceRoutes := gated.PathPrefix("/attendance").Subrouter()
	attendanceRoutes.Use(middleware.RequireCapability(st, models.ViewAttendance))
	attendanceRoutes.HandleFunc("/clock-in", api.ClockIn).Methods("POST")
	attendanceRoutes.HandleFunc("/clock-out", api.ClockOut).Methods("POST")
	attendanceRoutes.HandleFunc("/me", api.GetMyEntries).Methods("GET")
	attendanceRoutes.HandleFunc("/log", api.GetAttendanceLog).Methods("GET")
	attendanceRoutes.HandleFunc("/events", api.GetClockEvents).Methods("GET")
	attendanceRoutes.HandleFunc("/report", api.EmailAttendanceReport).Methods("POST")

	// Dashboard clock actions on a selected worker
	stationRoutes := attendanceRoutes.PathPrefix("/station").Subrouter()
	stationRoutes.Use(middleware.ManagerOnly)
	stationRoutes.HandleFunc("/clock-in", api.StationClockIn).Methods("POST")
	stationRoutes.HandleFunc("/clock-out", api.StationClockOut).Methods("POST")

	scheduleRoutes := gated.PathPrefix("/shifts").Subrouter()
	scheduleRoutes.Use(middleware.RequireCapability(st, models.ViewSchedule))
	scheduleRoutes.HandleFunc("", api.GetShifts).Methods("GET")
	scheduleRoutes.HandleFunc("", api.AssignShift).Methods("POST")

	reportRoutes := gated.PathPrefix("/reports").Subrouter()
	reportRoutes.Use(middleware.RequireCapability(st, models.ViewReporting))
	reportRoutes.HandleFunc("", api.GetReports).Methods("GET")
	reportRoutes.HandleFunc("", api.CreateReport).Methods("POST")
	reportRoutes.HandleFunc("/critical", api.GetCriticalReports).Methods("GET")

	inventoryRoutes := gated.PathPrefix("/inventory").Subrouter()
	inventoryRoutes.Use(middleware.RequireCapability(st, models.ViewInventory))
	inventoryRoutes.HandleFunc("", api.GetInventory).Methods("GET")
	inventoryRoutes.HandleFunc("/{id}/status", api.ReportInventoryStatus).Methods("PUT")

	orderRoutes := gated.PathPrefix("/orders").Subrouter()
	orderRoutes.Use(middleware.RequireCapability(st, models.ViewOrders))
	orderRoutes.HandleFunc("", api.GetOrders).Methods("GET")
	orderRoutes.HandleFunc("", api.CreateOrder).Methods("POST")
	orderRoutes.HandleFunc("/{id}/status", api.AdvanceOrder).Methods("PUT")

	absenceRoutes := gated.PathPrefix("/absences").Subrouter()
	absenceRoutes.Use(middleware.RequireCapability(st, models.ViewAbsences))
	absenceRoutes.HandleFunc("", api.GetAbsences).Methods("GET")
	absenceRoutes.HandleFunc("", api.RequestAbsence).Methods("POST")
	absenceRoutes.HandleFunc("/on-leave", api.GetOnLeave).Methods("GET")
	absenceRoutes.HandleFunc("/{id}/decision", api.DecideAbsence).Methods("PUT")

	userRoutes := gated.PathPrefix("/users").Subrouter()
	userRoutes.Use(middleware.RequireCapability(st, models.ViewUsers))
	userRoutes.HandleFunc("", api.GetUsers).Methods("GET")
	userRoutes.HandleFunc("", api.CreateUser).Methods("POST")
	userRoutes.HandleFunc("/{id}", api.GetUser).Methods("GET")
	userRoutes.HandleFunc("/{id}/permissions", api.GetPermissions).Methods("GET")
	userRoutes.HandleFunc("/{id}/permissions", api.SetPermission).Methods("PUT")
	userRoutes.HandleFunc("/{id}/assign-grant", api.SetAssignGrant).Methods("PUT")

	securityRoutes := gated.PathPrefix("/security").Subrouter()
	securityRoutes.Use(middleware.RequireCapability(st, models.ViewSecurity))
	securityRoutes.HandleFunc("/change-code", api.ChangeAccessCode).Methods("POST")
	securityRoutes.HandleFunc("/sessions", api.GetSessionEvents).Methods("GET")

	dashboardRoutes := gated.PathPrefix("/dashboard").Subrouter()
	dashboardRoutes.Use(middleware.RequireCapability(st, models.ViewDashboard))
	dashboardRoutes.HandleFunc("/stats", api.GetDashboardStats).Methods("GET")

	// Apply logging and rate limiting
	router.Use(middleware.LoggingMiddleware)
	router.Use(rateLimiter.Middleware)

	// Configure CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		ExposedHeaders: []string{
			"Link",
		},
		AllowCredentials: true,
		MaxAge:           300,
	})

	handler := corsHandler.Handler(router)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"Workforce Backend"}`))
}
