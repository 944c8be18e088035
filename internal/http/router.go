package http

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/strongfield/adk-sampler/internal/observability"
	"github.com/strongfield/adk-sampler/internal/usecase"
)

// SetupRouter creates and configures the Gin router for the sampler.
// rootSeed seeds the per-request RNG handler.GenerateBatch derives.
func SetupRouter(sampler *usecase.Sampler, rootSeed int64, collector *observability.Collector) *gin.Engine {
	router := gin.Default()

	// Setup CORS middleware.
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable.
	// Default to allow all origins if not specified.
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}

	router.Use(cors.New(corsConfig))

	handler := NewHandler(sampler, rootSeed)

	// API v1 routes.
	v1 := router.Group("/v1")
	batches := v1.Group("/batches")
	batches.GET("/count", handler.BatchCount)
	batches.POST("/:index", handler.GenerateBatch)

	// Health check.
	router.GET("/healthz", handler.HealthCheck)

	// Prometheus metrics.
	if collector != nil {
		router.GET("/metrics", gin.WrapH(collector.Handler()))
	}

	return router
}
