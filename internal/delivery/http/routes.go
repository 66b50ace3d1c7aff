package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nutrilog/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		lookup := v1.Group("/lookup")
		{
			lookup.GET("/barcode/:code", handler.LookupBarcode)
		}

		foods := v1.Group("/foods")
		{
			foods.GET("/search", handler.SearchFoods)
			foods.GET("/:fdcId", handler.GetFood)
		}

		profile := v1.Group("/profile")
		{
			profile.GET("", handler.GetProfile)
			profile.PUT("", handler.PutProfile)
			profile.GET("/targets", handler.GetTargets)
		}

		diary := v1.Group("/diary")
		{
			diary.POST("/entries", handler.AddEntry)
			diary.GET("/entries", handler.ListEntries)
			diary.DELETE("/entries/:id", handler.DeleteEntry)
			diary.GET("/summary", handler.DaySummary)
		}
	}

	return router
}
