package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vidboard/vidboard/internal/api/handlers"
	"github.com/vidboard/vidboard/internal/api/middleware"
	"github.com/vidboard/vidboard/internal/config"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
}

func NewRouter(cfg *config.Config, boardHandler *handlers.BoardHandler, healthHandler *handlers.HealthHandler) *Router {
	// Set Gin mode
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Add middleware
	engine.Use(gin.Recovery())
	engine.Use(middleware.CorrelationIDMiddleware())
	if cfg.CORS.Enabled {
		engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	}

	// Health endpoints (no auth required)
	health := engine.Group("/")
	{
		health.GET("/health", healthHandler.Health)
		health.GET("/ready", healthHandler.Readiness)
		health.GET("/live", healthHandler.Liveness)
	}

	// Swagger documentation (no auth required)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Board endpoints require a resolved caller identity
	boards := engine.Group("/boards")
	boards.Use(middleware.IdentityMiddleware(&cfg.API))
	boards.Use(middleware.RateLimitMiddleware(&cfg.API))
	{
		boards.GET("", boardHandler.ListBoards)           // GET /boards
		boards.POST("", boardHandler.CreateBoard)         // POST /boards
		boards.DELETE("", boardHandler.DeleteBoard)       // DELETE /boards
		boards.POST("/:id/videos", boardHandler.AddVideo) // POST /boards/{id}/videos
	}

	return &Router{
		engine: engine,
		config: cfg,
	}
}

func (r *Router) Start() error {
	addr := r.config.Server.Host + ":" + r.config.Server.Port
	return r.engine.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
