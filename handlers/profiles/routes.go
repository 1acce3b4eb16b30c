package profiles

import (
	"contesthub/middleware"
	"contesthub/utils/roles"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to profiles
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware(roles.Member))
	{
		profile.GET("", GetMyProfile)
		profile.PUT("", UpdateMyProfile)
		profile.PUT("/password", ChangeMyPassword)
	}

	admin := r.Group("/admin/profiles")
	admin.Use(middleware.AuthMiddleware(roles.Admin), middleware.RequireRole(roles.Admin))
	{
		admin.GET("", GetAllProfiles)
		admin.PUT("/:id/role", UpdateProfileRole)
		admin.DELETE("/:id", DeleteProfile)
	}
}
