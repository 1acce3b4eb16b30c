package v1

import (
	"contesthub/handlers/auth"
	"contesthub/handlers/competitions"
	"contesthub/handlers/profiles"
	"contesthub/handlers/saved"
	"contesthub/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	RegisterSupportRoutes(v1)
	auth.RegisterRoutes(v1)
	profiles.RegisterRoutes(v1)
	competitions.RegisterRoutes(v1)
	saved.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
