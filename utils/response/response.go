package response

import (
	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Success sends a standardized success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// Redirect sends the login route a gated dashboard should send the caller to.
// Auth and role failures are redirects on the client, never error pages.
func Redirect(c *gin.Context, status int, message, loginRoute string) {
	c.JSON(status, gin.H{"error": message, "redirect": loginRoute})
}
