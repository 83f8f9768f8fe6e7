package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	assistantapp "github.com/crm/backend/internal/application/assistant"
	backupapp "github.com/crm/backend/internal/application/backup"
	clientapp "github.com/crm/backend/internal/application/client"
	dashboardapp "github.com/crm/backend/internal/application/dashboard"
	financeapp "github.com/crm/backend/internal/application/finance"
	identityapp "github.com/crm/backend/internal/application/identity"
	notificationapp "github.com/crm/backend/internal/application/notification"
	projectapp "github.com/crm/backend/internal/application/project"
	reportapp "github.com/crm/backend/internal/application/report"
	"github.com/crm/backend/internal/domain/identity"
	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/assistant"
	"github.com/crm/backend/internal/infrastructure/auth"
	"github.com/crm/backend/internal/infrastructure/backup"
	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/crm/backend/internal/infrastructure/logger"
	"github.com/crm/backend/internal/infrastructure/persistence"
	"github.com/crm/backend/internal/infrastructure/printing"
	"github.com/crm/backend/internal/interfaces/http/handler"
	"github.com/crm/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting CRM backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Postgres deployments migrate via cmd/migrate
	if cfg.Database.Driver == config.DriverSQLite {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate database schema", zap.Error(err))
		}
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	noteRepo := persistence.NewGormClientNoteRepository(db.DB)
	historyRepo := persistence.NewGormClientHistoryRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.JWT)

	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		NoSandbox: os.Geteuid() == 0,
		Logger:    log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()

	var assistantProvider assistant.Provider
	if cfg.Assistant.Provider == "http" {
		assistantProvider = assistant.NewHTTPProvider(assistant.HTTPProviderConfig{
			BaseURL: cfg.Assistant.BaseURL,
			APIKey:  cfg.Assistant.APIKey,
			Model:   cfg.Assistant.Model,
			Timeout: cfg.Assistant.Timeout,
			Logger:  log,
		})
	} else {
		assistantProvider = assistant.NewStaticProvider()
	}

	backupEngine := backup.NewService(cfg.Database.Path, cfg.Backup.Dir, log)

	// Application services
	authService := identityapp.NewAuthService(userRepo, jwtService, identityapp.AuthServiceConfig{
		MaxLoginAttempts: cfg.Auth.MaxLoginAttempts,
		LockDuration:     cfg.Auth.LockoutDuration,
	}, log)
	userService := identityapp.NewUserService(userRepo)
	clientService := clientapp.NewClientService(clientRepo, historyRepo, userRepo, projectRepo, log)
	noteService := clientapp.NewNoteService(noteRepo, clientRepo, historyRepo, log)
	historyService := clientapp.NewHistoryService(historyRepo, clientRepo)
	projectService := projectapp.NewProjectService(projectRepo, clientRepo, userRepo, paymentRepo, expenseRepo)
	paymentService := financeapp.NewPaymentService(paymentRepo, projectRepo, clientRepo, invoiceRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo, projectRepo, userRepo)
	invoiceService := financeapp.NewInvoiceService(invoiceRepo, clientRepo, projectRepo, paymentRepo)
	notificationService := notificationapp.NewNotificationService(notificationRepo, userRepo)
	dashboardService := dashboardapp.NewDashboardService(clientRepo, projectRepo, paymentRepo, expenseRepo)
	reportService := reportapp.NewReportService(clientRepo, projectRepo, paymentRepo, expenseRepo, invoiceRepo, renderer)
	assistantService := assistantapp.NewAssistantService(assistantProvider)
	backupService := backupapp.NewBackupService(cfg.Database.Driver, backupEngine)

	if err := seedAdminUser(context.Background(), userRepo, cfg.Seed, log); err != nil {
		log.Fatal("Failed to seed admin user", zap.Error(err))
	}

	// HTTP layer
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	router.Setup(engine, router.Config{
		JWTService:     jwtService,
		Logger:         log,
		CORSOrigins:    cfg.HTTP.CORSAllowOrigins,
		BodyLimitBytes: cfg.HTTP.MaxBodySize,
	}, router.Handlers{
		Health:        handler.NewHealthHandler(db.DB),
		Users:         handler.NewUserHandler(authService, userService),
		Clients:       handler.NewClientHandler(clientService, noteService, historyService),
		Projects:      handler.NewProjectHandler(projectService),
		Payments:      handler.NewPaymentHandler(paymentService),
		Expenses:      handler.NewExpenseHandler(expenseService),
		Invoices:      handler.NewInvoiceHandler(invoiceService),
		Notifications: handler.NewNotificationHandler(notificationService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
		Reports:       handler.NewReportHandler(reportService),
		Assistant:     handler.NewAssistantHandler(assistantService),
		Backup:        handler.NewBackupHandler(backupService),
	})

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// seedAdminUser creates the initial admin account when the users table is
// empty. Disabled unless a seed password is configured.
func seedAdminUser(ctx context.Context, userRepo identity.UserRepository, seed config.SeedConfig, log *zap.Logger) error {
	if seed.AdminPassword == "" {
		return nil
	}

	count, err := userRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin, err := identity.NewUser(seed.AdminFullName, seed.AdminEmail, seed.AdminPassword, identity.RoleAdmin)
	if err != nil {
		return err
	}
	if err := userRepo.Save(ctx, admin); err != nil {
		return err
	}

	log.Info("Seeded initial admin user", zap.String("email", admin.Email))
	return nil
}
