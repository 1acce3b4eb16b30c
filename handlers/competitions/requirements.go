package competitions

import (
	"log"
	"net/http"

	"contesthub/middleware"
	"contesthub/realtime"
	"contesthub/services"
	"contesthub/utils/response"
	"contesthub/utils/roles"

	"github.com/gin-gonic/gin"
)

// GetCompetitionRequirements lists a competition's requirements in display order
// @Summary Get competition requirements
// @Description Get the ordered requirement rows of a competition
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {array} models.Requirement
// @Failure 404 {object} map[string]string
// @Router /competitions/{id}/requirements [get]
func GetCompetitionRequirements(c *gin.Context) {
	competitionID := c.Param("id")
	if !services.CompetitionExists(competitionID) {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	requirements, err := services.GetRequirements(competitionID)
	if err != nil {
		log.Printf("Error fetching requirements for competition %s: %v", competitionID, err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchRequirements)
		return
	}

	c.JSON(http.StatusOK, requirements)
}

// ReplaceCompetitionRequirements swaps the full requirement list of a competition
// @Summary Replace competition requirements
// @Description Delete the existing requirement rows and insert the given list in order, all mandatory
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param request body ReplaceRequirementsRequest true "Ordered requirement texts"
// @Success 200 {array} models.Requirement
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/competitions/{id}/requirements [put]
// @Security Bearer
func ReplaceCompetitionRequirements(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return
	}

	var req ReplaceRequirementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	competition, err := services.GetCompetition(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	if !canManageCompetition(profile, competition) {
		response.Redirect(c, http.StatusForbidden, ErrNoPermissionManage, roles.ClientLoginRoute)
		return
	}

	// An empty list is a valid replace: the delete phase still runs
	if err := services.ReplaceRequirements(competition.ID, req.Requirements); err != nil {
		log.Printf("Error replacing requirements for competition %s: %v", competition.ID, err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedReplaceRequirements)
		return
	}

	requirements, err := services.GetRequirements(competition.ID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchRequirements)
		return
	}

	realtime.Broadcast(realtime.Event{Type: "updated", CompetitionID: competition.ID})
	c.JSON(http.StatusOK, requirements)
}
