package http

import (
	"github.com/aromax/storefront/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger zerolog.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if cfg.RateLimit.PerIP > 0 {
		v1.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))
	}
	{
		v1.GET("/products", handler.ListProducts)
		v1.GET("/products/:id", handler.GetProduct)

		search := v1.Group("/search")
		{
			search.GET("", handler.Search)
			search.GET("/parse", handler.ParseQuery)
			search.GET("/suggestions", handler.Suggestions)
			search.GET("/recommendations", handler.Recommendations)
		}

		assistant := v1.Group("/assistant")
		{
			assistant.POST("/messages", handler.AssistantMessage)
			assistant.GET("/greeting", handler.AssistantGreeting)
		}

		deliveries := v1.Group("/deliveries")
		{
			deliveries.GET("", handler.ListDeliveries)
			deliveries.GET("/:orderNumber", handler.TrackDelivery)
		}

		v1.POST("/catalog/reload", handler.ReloadCatalog)
	}

	return router
}
