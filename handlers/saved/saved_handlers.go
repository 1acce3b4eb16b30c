package saved

import (
	"errors"
	"log"
	"net/http"

	"contesthub/middleware"
	"contesthub/models"
	"contesthub/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Constants for error messages
const (
	ErrCompetitionNotFound = "Competition not found"
	ErrAlreadySaved        = "Competition already saved"
	ErrNotSaved            = "Competition is not saved"
	ErrSaveFailed          = "Failed to save competition"
	ErrUnsaveFailed        = "Failed to unsave competition"
)

// SaveRequest model for bookmarking a competition
type SaveRequest struct {
	Notes string `json:"notes" binding:"omitempty,max=500"`
}

func respondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// GetSavedCompetitions lists the authenticated member's bookmarks
// @Summary List saved competitions
// @Description Get the competitions the authenticated member has saved, most recent first
// @Tags Saved
// @Produce json
// @Success 200 {array} models.SavedCompetition
// @Failure 401 {object} map[string]string
// @Router /member/saved [get]
// @Security Bearer
func GetSavedCompetitions(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	list, err := services.ListSavedCompetitions(profile.ID)
	if err != nil {
		// Listing never hard-fails the page, serve an empty list
		log.Printf("Failed to list saved competitions for %s: %v", profile.ID, err)
		c.JSON(http.StatusOK, []models.SavedCompetition{})
		return
	}

	c.JSON(http.StatusOK, list)
}

// SaveCompetition bookmarks a competition for the authenticated member
// @Summary Save a competition
// @Description Bookmark a competition with optional notes
// @Tags Saved
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param request body SaveRequest false "Optional notes"
// @Success 201 {object} models.SavedCompetition
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /member/saved/{id} [post]
// @Security Bearer
func SaveCompetition(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	competitionID := c.Param("id")
	if !services.CompetitionExists(competitionID) {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	var req SaveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	entry, err := services.SaveCompetition(profile.ID, competitionID, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrAlreadySaved) {
			respondWithError(c, http.StatusConflict, ErrAlreadySaved)
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrSaveFailed)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// UnsaveCompetition removes a bookmark for the authenticated member
// @Summary Unsave a competition
// @Description Remove a competition from the member's bookmarks
// @Tags Saved
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /member/saved/{id} [delete]
// @Security Bearer
func UnsaveCompetition(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	competitionID := c.Param("id")
	if err := services.UnsaveCompetition(profile.ID, competitionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, ErrNotSaved)
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrUnsaveFailed)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Competition unsaved"})
}
