package api

import (
	"github.com/gin-gonic/gin"

	"github.com/campuskit/claritycore/internal/api/admin"
	"github.com/campuskit/claritycore/internal/api/ask"
	"github.com/campuskit/claritycore/internal/api/middleware"
	"github.com/campuskit/claritycore/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	APIKey       string
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	askService *service.AskService,
	adminService *service.AdminService,
	insightService *service.InsightService,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Student query API (public)
	askHandler := ask.NewHandler(askService)
	askGroup := r.Group("/api/ask")
	askHandler.RegisterRoutes(askGroup)

	// Admin API (requires API key)
	adminHandler := admin.NewHandler(adminService, insightService)
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.Auth(cfg.APIKey))
	adminHandler.RegisterRoutes(adminGroup)

	return r
}
