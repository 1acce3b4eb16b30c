package competitions

import (
	"log"
	"net/http"

	"contesthub/middleware"
	"contesthub/models"
	"contesthub/services"
	"contesthub/utils/response"
	"contesthub/utils/roles"

	"github.com/gin-gonic/gin"
)

// GetCompetitionEligibility lists a competition's eligibility rules
// @Summary Get competition eligibility rules
// @Description Get the eligibility rules restricting who may enter a competition
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {array} models.EligibilityRule
// @Failure 404 {object} map[string]string
// @Router /competitions/{id}/eligibility [get]
func GetCompetitionEligibility(c *gin.Context) {
	competitionID := c.Param("id")
	if !services.CompetitionExists(competitionID) {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	rules, err := services.GetEligibility(competitionID)
	if err != nil {
		log.Printf("Error fetching eligibility for competition %s: %v", competitionID, err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchEligibility)
		return
	}

	c.JSON(http.StatusOK, rules)
}

// ReplaceCompetitionEligibility swaps a competition's eligibility rules
// @Summary Replace competition eligibility rules
// @Description Delete the existing eligibility rows and insert the given rules
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param request body ReplaceEligibilityRequest true "Eligibility rules"
// @Success 200 {array} models.EligibilityRule
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/competitions/{id}/eligibility [put]
// @Security Bearer
func ReplaceCompetitionEligibility(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return
	}

	var req ReplaceEligibilityRequest
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

	rules := make([]models.EligibilityRule, len(req.Rules))
	for i, r := range req.Rules {
		rules[i] = models.EligibilityRule{
			EligibilityText:       r.EligibilityText,
			EligibilityType:       r.EligibilityType,
			MinAge:                r.MinAge,
			MaxAge:                r.MaxAge,
			LocationRestriction:   r.LocationRestriction,
			ProfessionRestriction: r.ProfessionRestriction,
		}
	}

	if err := services.ReplaceEligibility(competition.ID, rules); err != nil {
		log.Printf("Error replacing eligibility for competition %s: %v", competition.ID, err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedReplaceEligibility)
		return
	}

	updated, err := services.GetEligibility(competition.ID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchEligibility)
		return
	}

	c.JSON(http.StatusOK, updated)
}
