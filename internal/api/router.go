package api

import (
	"github.com/gin-gonic/gin"

	"github.com/amiyamandal-dev/podgrid/internal/api/handlers"
	"github.com/amiyamandal-dev/podgrid/internal/api/middleware"
	"github.com/amiyamandal-dev/podgrid/internal/config"
	"github.com/amiyamandal-dev/podgrid/internal/web"
	"github.com/amiyamandal-dev/podgrid/pkg/logger"
)

// Router sets up the HTTP router with all routes and middleware
type Router struct {
	engine        *gin.Engine
	healthHandler *handlers.HealthHandler
	webHandler    *web.WebHandler
	cfg           *config.Config
	logger        *logger.Logger
}

// NewRouter creates a new router
func NewRouter(
	healthHandler *handlers.HealthHandler,
	webHandler *web.WebHandler,
	cfg *config.Config,
	logger *logger.Logger,
) *Router {
	return &Router{
		healthHandler: healthHandler,
		webHandler:    webHandler,
		cfg:           cfg,
		logger:        logger,
	}
}

// Setup configures all routes and middleware
func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.cfg.Server.Mode)

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.LoggerMiddleware(r.logger))

	// Health check endpoints
	r.engine.GET("/health", r.healthHandler.Health)
	r.engine.GET("/health/ready", r.healthHandler.Readiness)
	r.engine.GET("/health/live", r.healthHandler.Liveness)

	r.engine.GET("/static/service-worker.js", r.webHandler.ServiceWorker)

	// Everything that reaches the directory API or the database is rate limited
	webRoutes := r.engine.Group("")
	webRoutes.Use(middleware.RateLimitMiddleware(
		r.cfg.RateLimit.RequestsPerMinute,
		r.cfg.RateLimit.Burst,
	))
	{
		// Pages
		webRoutes.GET("/", r.webHandler.HomePage)
		webRoutes.GET("/search", r.webHandler.SearchPage)
		webRoutes.GET("/trending", r.webHandler.TrendingPage)
		webRoutes.GET("/recent", r.webHandler.RecentPage)
		webRoutes.GET("/favorites", r.webHandler.FavoritesPage)

		// Fragments and actions called from the page script
		webRoutes.GET("/podcast/:id/episodes", r.webHandler.EpisodesModal)
		webRoutes.POST("/favorites/:id/toggle", r.webHandler.ToggleFavorite)
	}

	return r.engine
}
