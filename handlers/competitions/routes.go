package competitions

import (
	"contesthub/middleware"
	"contesthub/utils/roles"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to competitions
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public browse routes
	public := r.Group("/competitions")
	{
		public.GET("/", GetAllCompetitions)
		public.GET("/:id", GetCompetition)
		public.GET("/:id/requirements", GetCompetitionRequirements)
		public.GET("/:id/eligibility", GetCompetitionEligibility)
		public.GET("/:id/ws", CompetitionWebSocket)
	}

	// Admin dashboard: full competition management
	admin := r.Group("/admin/competitions")
	admin.Use(middleware.AuthMiddleware(roles.Admin), middleware.RequireRole(roles.Admin))
	{
		admin.GET("/", GetAllCompetitions)
		admin.GET("/export", ExportCompetitionsExcel)
		admin.POST("/", CreateCompetition)
		admin.PUT("/:id", UpdateCompetition)
		admin.PUT("/:id/archive", ArchiveCompetition)
		admin.PUT("/:id/requirements", ReplaceCompetitionRequirements)
		admin.PUT("/:id/eligibility", ReplaceCompetitionEligibility)
		admin.POST("/:id/duplicate", DuplicateCompetition)
		admin.DELETE("/:id", DeleteCompetition)
	}

	// Client dashboard: management scoped to competitions the client created
	client := r.Group("/client/competitions")
	client.Use(middleware.AuthMiddleware(roles.Client), middleware.RequireRole(roles.Client))
	{
		client.GET("/", GetMyCompetitions)
		client.GET("/stats", GetMyCompetitionStats)
		client.POST("/", CreateCompetition)
		client.PUT("/:id", UpdateCompetition)
		client.PUT("/:id/archive", ArchiveCompetition)
		client.PUT("/:id/requirements", ReplaceCompetitionRequirements)
		client.PUT("/:id/eligibility", ReplaceCompetitionEligibility)
		client.POST("/:id/duplicate", DuplicateCompetition)
		client.DELETE("/:id", DeleteCompetition)
	}
}
