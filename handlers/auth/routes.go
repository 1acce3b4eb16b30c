package auth

import (
	"contesthub/middleware"
	"contesthub/utils/roles"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to authentication
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	auth := r.Group("/auth")
	{
		auth.POST("/login", loginHandler)
		auth.POST("/register", registerHandler)
		auth.GET("/check", middleware.AuthMiddleware(roles.Member), checkAuthHandler)
		auth.POST("/logout", middleware.AuthMiddleware(roles.Member), logoutHandler)
		auth.POST("/admin/request-passcode", requestPasscodeHandler)
		auth.POST("/admin/verify-passcode", verifyPasscodeHandler)
		auth.POST("/request-reset", requestPasswordResetHandler)
		auth.POST("/reset-password", resetPasswordHandler)
	}
}
