package routes

import (
	"github.com/osa911/portfolio/internal/api/middleware"
	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/logging"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// ServiceName identifies the API in traces
const ServiceName = "portfolio-api"

// APIRateLimit is the process-wide budget shared by all /api routes.
// Health checks and static assets are not counted.
var APIRateLimit = middleware.RateLimitConfig{
	RPS:   10,
	Burst: 20,
}

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware, cfg *config.Config) {
	logger := logging.GetGlobalLogger()

	SetupHealthRoutes(router, h.Health)

	api := router.Group("/api", middleware.RateLimitMiddleware(APIRateLimit))
	SetupContactRoutes(api, h.Contact, m)
	SetupProjectRoutes(api, h.Project, m)

	SetupStaticRoutes(router, cfg)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware(ServiceName))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.IsProduction(), cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
}
