package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"contesthub/database"
	"contesthub/models"
	"contesthub/services"
	"contesthub/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// requestPasswordResetHandler initiates the password reset process
// @Summary Request Password Reset
// @Description Send a password reset link to the profile's email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RequestPasswordResetRequest true "Email Request"
// @Success 200 {object} map[string]string
// @Failure 400,500 {object} map[string]string
// @Router /auth/request-reset [post]
func requestPasswordResetHandler(c *gin.Context) {
	var req RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var profile models.Profile
	if err := database.DB.Where("email = ?", req.Email).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// Return success anyway to prevent email enumeration
			c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset link will be sent"})
			return
		}
		respondWithError(c, http.StatusInternalServerError, "Failed to process request")
		return
	}

	// Generate random token
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to generate reset token")
		return
	}
	token := hex.EncodeToString(b)

	// Delete any existing reset tokens for this profile
	if err := database.DB.Where("profile_id = ?", profile.ID).Delete(&models.PasswordReset{}).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to process request")
		return
	}

	resetEntry := models.PasswordReset{
		ProfileID: profile.ID,
		Token:     token,
	}

	if err := database.DB.Create(&resetEntry).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to create reset token")
		return
	}

	emailService := services.NewEmailService()
	if err := emailService.SendPasswordResetEmail(profile.Email, token); err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to send reset email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the email exists, a reset link will be sent"})
}

// resetPasswordHandler handles the password reset
// @Summary Reset Password
// @Description Reset the profile password using the reset token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset Request"
// @Success 200 {object} map[string]string
// @Failure 400,500 {object} map[string]string
// @Router /auth/reset-password [post]
func resetPasswordHandler(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var resetEntry models.PasswordReset
	if err := database.DB.Where("token = ?", req.Token).First(&resetEntry).Error; err != nil {
		respondWithError(c, http.StatusBadRequest, "Invalid or expired reset token")
		return
	}

	// Tokens older than 1 hour are expired
	if time.Since(resetEntry.CreatedAt) > time.Hour {
		database.DB.Delete(&resetEntry)
		respondWithError(c, http.StatusBadRequest, "Reset token has expired")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to process new password")
		return
	}

	if err := database.DB.Model(&models.Profile{}).Where("id = ?", resetEntry.ProfileID).
		Update("password", hashedPassword).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, "Failed to update password")
		return
	}

	// Delete used reset token
	database.DB.Delete(&resetEntry)

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully"})
}
