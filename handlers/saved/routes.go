package saved

import (
	"contesthub/middleware"
	"contesthub/utils/roles"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to saved competitions
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	member := r.Group("/member/saved")
	member.Use(middleware.AuthMiddleware(roles.Member), middleware.RequireRole(roles.Member))
	{
		member.GET("", GetSavedCompetitions)
		member.POST("/:id", SaveCompetition)
		member.DELETE("/:id", UnsaveCompetition)
	}
}
