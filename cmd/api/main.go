package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"campusevents/config"
	"campusevents/internal/adapters/auth"
	"campusevents/internal/adapters/email"
	delivery "campusevents/internal/delivery/http"
	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/repository/postgres"
	"campusevents/internal/services"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx := context.Background()
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("failed to apply schema", "err", err)
		os.Exit(1)
	}

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	studentRepo := postgres.NewStudentRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Adapters
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFrom,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKey,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := auth.NewJWTManager(cfg.JWTSecret)

	// Services
	eventService := services.NewEventService(eventRepo)
	studentService := services.NewStudentService(studentRepo)
	registrationService := services.NewRegistrationService(registrationRepo, logger)
	attendanceService := services.NewAttendanceService(eventRepo, registrationRepo, attendanceRepo)
	reportService := services.NewReportService(eventRepo, registrationRepo, attendanceRepo)
	notificationService := services.NewNotificationService(mailer, cfg.NotifyWorkers, logger)
	authService := services.NewAuthService(userRepo, hasher, tokens)

	// Controllers
	ctrls := delivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		Event:        controllers.NewEventController(logger, eventService),
		Student:      controllers.NewStudentController(logger, studentService),
		Registration: controllers.NewRegistrationController(logger, registrationService),
		Attendance:   controllers.NewAttendanceController(logger, attendanceService),
		Report:       controllers.NewReportController(logger, reportService),
		Notification: controllers.NewNotificationController(logger, eventService, registrationService, notificationService),
	}

	mux := delivery.NewRouter(ctrls, tokens)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(corsOrigins(), mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}

func corsOrigins() []string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:3000"}
}
