package profiles

import "github.com/gin-gonic/gin"

// Constants for error messages
const (
	ErrProfileNotFound    = "Profile not found"
	ErrInvalidRequest     = "Invalid request payload"
	ErrUpdateFailed       = "Failed to update profile"
	ErrDeleteFailed       = "Failed to delete profile"
	ErrListFailed         = "Failed to list profiles"
	ErrInvalidRole        = "Unknown role"
	ErrWrongPassword      = "Current password is incorrect"
	ErrPasswordHashFailed = "Failed to hash password"
	ErrCannotDeleteSelf   = "Cannot delete your own profile"
	ErrEmailAlreadyInUse  = "Email already in use"
	ErrProfileFetchFailed = "Failed to fetch profile"
)

// UpdateProfileRequest model for updating the authenticated profile
type UpdateProfileRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name" binding:"required"`
}

// ChangePasswordRequest model for changing the authenticated profile's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// UpdateRoleRequest model for an admin changing a profile's role
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// respondWithError sends a JSON error response with the given status code
func respondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
