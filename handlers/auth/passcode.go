package auth

import (
	"errors"
	"net/http"

	"contesthub/database"
	"contesthub/middleware"
	"contesthub/models"
	"contesthub/services"
	"contesthub/utils"

	"github.com/gin-gonic/gin"
)

// requestPasscodeHandler verifies admin credentials and emails a one-time passcode
// @Summary Request admin passcode
// @Description Verifies admin credentials and sends a one-time verification code by email
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RequestPasscodeRequest true "Admin credentials"
// @Success 200 {object} map[string]string
// @Failure 400,401 {object} map[string]string
// @Router /auth/admin/request-passcode [post]
func requestPasscodeHandler(c *gin.Context) {
	var req RequestPasscodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var profile models.Profile
	if err := database.DB.Where("email = ? AND role = ?", req.Email, models.RoleAdmin).First(&profile).Error; err != nil {
		respondWithError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if !utils.CheckPasswordHash(req.Password, profile.Password) {
		respondWithError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	passcode, err := services.GeneratePasscode(c, profile.Email)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrPasscodeSendFailed)
		return
	}

	emailService := services.NewEmailService()
	if err := emailService.SendPasscodeEmail(profile.Email, passcode); err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrPasscodeSendFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent"})
}

// verifyPasscodeHandler completes the admin login with the emailed passcode
// @Summary Verify admin passcode
// @Description Exchanges a valid passcode for an admin session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body VerifyPasscodeRequest true "Passcode verification"
// @Success 200 {object} AuthResponse
// @Failure 400,401,429 {object} map[string]string
// @Router /auth/admin/verify-passcode [post]
func verifyPasscodeHandler(c *gin.Context) {
	var req VerifyPasscodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var profile models.Profile
	if err := database.DB.Where("email = ? AND role = ?", req.Email, models.RoleAdmin).First(&profile).Error; err != nil {
		respondWithError(c, http.StatusUnauthorized, ErrInvalidCredentials)
		return
	}

	if err := services.VerifyPasscode(c, req.Email, req.Passcode); err != nil {
		switch {
		case errors.Is(err, services.ErrPasscodeCooldown):
			respondWithError(c, http.StatusTooManyRequests, err.Error())
		case errors.Is(err, services.ErrPasscodeExpired), errors.Is(err, services.ErrPasscodeMismatch):
			respondWithError(c, http.StatusUnauthorized, err.Error())
		default:
			respondWithError(c, http.StatusInternalServerError, "Failed to verify code")
		}
		return
	}

	token, err := middleware.GenerateToken(profile, false)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
		return
	}

	setCookieToken(c, token, false)

	c.JSON(http.StatusOK, AuthResponse{
		Token:    token,
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Role:     profile.Role,
	})
}
