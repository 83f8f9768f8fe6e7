package router

import (
	"github.com/crm/backend/internal/infrastructure/auth"
	"github.com/crm/backend/internal/infrastructure/logger"
	"github.com/crm/backend/internal/interfaces/http/handler"
	"github.com/crm/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteRegistrar registers a handler's routes on a group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Config holds router-level settings
type Config struct {
	JWTService     *auth.JWTService
	Logger         *zap.Logger
	CORSOrigins    []string
	BodyLimitBytes int64
}

// Handlers collects every handler the router mounts
type Handlers struct {
	Health        *handler.HealthHandler
	Users         *handler.UserHandler
	Clients       *handler.ClientHandler
	Projects      *handler.ProjectHandler
	Payments      *handler.PaymentHandler
	Expenses      *handler.ExpenseHandler
	Invoices      *handler.InvoiceHandler
	Notifications *handler.NotificationHandler
	Dashboard     *handler.DashboardHandler
	Reports       *handler.ReportHandler
	Assistant     *handler.AssistantHandler
	Backup        *handler.BackupHandler
}

// Setup wires the middleware stack and the full route table.
// Everything under /api requires a valid access token except the JWT
// skip paths (health, login, refresh).
func Setup(engine *gin.Engine, cfg Config, h Handlers) {
	engine.Use(middleware.RequestID())
	if cfg.Logger != nil {
		engine.Use(logger.GinMiddleware(cfg.Logger))
		engine.Use(logger.Recovery(cfg.Logger))
	}
	engine.Use(middleware.Secure())

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.CORSOrigins
	engine.Use(middleware.CORSWithConfig(corsCfg))

	if cfg.BodyLimitBytes > 0 {
		engine.Use(middleware.BodyLimit(cfg.BodyLimitBytes))
	}

	jwtCfg := middleware.DefaultJWTConfig(cfg.JWTService)
	jwtCfg.Logger = cfg.Logger
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtCfg))

	engine.GET("/health", h.Health.Check)

	api := engine.Group("/api")

	admin := api.Group("", middleware.RequireRoles("admin"))
	h.Backup.RegisterRoutes(admin)

	v1 := api.Group("/v1", middleware.ViewerReadOnly())
	registrars := []RouteRegistrar{
		h.Users,
		h.Clients,
		h.Projects,
		h.Payments,
		h.Expenses,
		h.Invoices,
		h.Notifications,
		h.Dashboard,
		h.Reports,
		h.Assistant,
	}
	for _, registrar := range registrars {
		registrar.RegisterRoutes(v1)
	}
}
