package profiles

import (
	"log"
	"net/http"

	"contesthub/database"
	"contesthub/middleware"
	"contesthub/models"
	"contesthub/utils/roles"

	"github.com/gin-gonic/gin"
)

// GetAllProfiles retrieves every profile, admin only
// @Summary List Profiles
// @Description Get all profiles on the platform
// @Tags Profiles
// @Produce json
// @Success 200 {array} models.Profile
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/profiles [get]
// @Security Bearer
func GetAllProfiles(c *gin.Context) {
	var profiles []models.Profile
	if err := database.DB.Order("created_at DESC").Find(&profiles).Error; err != nil {
		log.Printf("Failed to list profiles: %v", err)
		respondWithError(c, http.StatusInternalServerError, ErrListFailed)
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// UpdateProfileRole changes the role of a profile, admin only
// @Summary Update Profile Role
// @Description Change the role of a profile to member, client or admin
// @Tags Profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param role body UpdateRoleRequest true "New role"
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/profiles/{id}/role [put]
// @Security Bearer
func UpdateProfileRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	role, ok := roles.ParseRole(req.Role)
	if !ok {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRole)
		return
	}

	profileID := c.Param("id")
	var profile models.Profile
	if err := database.DB.First(&profile, "id = ?", profileID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrProfileNotFound)
		return
	}

	if err := database.DB.Model(&profile).Update("role", string(role)).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrUpdateFailed)
		return
	}
	profile.Role = string(role)

	middleware.InvalidateProfileCache(c, profile.ID)

	c.JSON(http.StatusOK, profile)
}

// DeleteProfile removes a profile, admin only
// @Summary Delete Profile
// @Description Delete a profile and its saved competitions
// @Tags Profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/profiles/{id} [delete]
// @Security Bearer
func DeleteProfile(c *gin.Context) {
	admin, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	profileID := c.Param("id")
	if profileID == admin.ID {
		respondWithError(c, http.StatusBadRequest, ErrCannotDeleteSelf)
		return
	}

	var profile models.Profile
	if err := database.DB.First(&profile, "id = ?", profileID).Error; err != nil {
		respondWithError(c, http.StatusNotFound, ErrProfileNotFound)
		return
	}

	// Remove bookmarks belonging to the profile before the profile itself
	if err := database.DB.Where("user_id = ?", profile.ID).Delete(&models.SavedCompetition{}).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrDeleteFailed)
		return
	}

	if err := database.DB.Delete(&profile).Error; err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrDeleteFailed)
		return
	}

	middleware.InvalidateProfileCache(c, profile.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}
