package server

import (
	"github.com/gin-gonic/gin"

	"github.com/livesitter/livesitter-backend/internal/http/handlers"
	"github.com/livesitter/livesitter-backend/internal/http/middleware"
	"github.com/livesitter/livesitter-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	OverlayHandler *handlers.OverlayHandler
	MetaHandler    *handlers.MetaHandler
	CORSOrigins    []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/", cfg.MetaHandler.Index)

	api := router.Group("/api")
	api.GET("/health", cfg.MetaHandler.HealthCheck)
	mountOverlayRoutes(api.Group("/overlays"), cfg.OverlayHandler)

	// Legacy mount without the /api prefix, kept for older clients.
	mountOverlayRoutes(router.Group("/overlays"), cfg.OverlayHandler)

	return router
}

func mountOverlayRoutes(g *gin.RouterGroup, h *handlers.OverlayHandler) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.POST("/batch", h.BatchReplace)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
