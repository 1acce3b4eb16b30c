package profiles

import (
	"net/http"

	"contesthub/database"
	"contesthub/middleware"
	"contesthub/models"
	"contesthub/utils"

	"github.com/gin-gonic/gin"
)

// GetMyProfile retrieves the authenticated profile
// @Summary Get Profile
// @Description Get the profile information of the authenticated user
// @Tags Profiles
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 401 {object} map[string]string
// @Router /profile [get]
// @Security Bearer
func GetMyProfile(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile updates the authenticated profile
// @Summary Update Profile
// @Description Update the email and full name of the authenticated user
// @Tags Profiles
// @Accept json
// @Produce json
// @Param profile body UpdateProfileRequest true "Profile data"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /profile [put]
// @Security Bearer
func UpdateMyProfile(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if req.Email != profile.Email {
		var count int64
		database.DB.Model(&models.Profile{}).Where("email = ? AND id <> ?", req.Email, profile.ID).Count(&count)
		if count > 0 {
			respondWithError(c, http.StatusConflict, ErrEmailAlreadyInUse)
			return
		}
	}

	updatedFields := map[string]interface{}{
		"email":     req.Email,
		"full_name": req.FullName,
	}
	if err := database.DB.Model(&profile).Updates(updatedFields).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrUpdateFailed)
		return
	}

	middleware.InvalidateProfileCache(c, profile.ID)

	var updated models.Profile
	if err := database.DB.First(&updated, "id = ?", profile.ID).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrProfileFetchFailed)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ChangeMyPassword changes the authenticated profile's password
// @Summary Change Password
// @Description Change the password of the authenticated user
// @Tags Profiles
// @Accept json
// @Produce json
// @Param passwords body ChangePasswordRequest true "Password change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /profile/password [put]
// @Security Bearer
func ChangeMyPassword(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, profile.Password) {
		respondWithError(c, http.StatusUnauthorized, ErrWrongPassword)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrPasswordHashFailed)
		return
	}

	if err := database.DB.Model(&profile).Update("password", hashed).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrUpdateFailed)
		return
	}

	middleware.InvalidateProfileCache(c, profile.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
