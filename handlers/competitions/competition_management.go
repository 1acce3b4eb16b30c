package competitions

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"contesthub/middleware"
	"contesthub/models"
	"contesthub/realtime"
	"contesthub/services"
	"contesthub/utils"
	"contesthub/utils/response"
	"contesthub/utils/roles"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// canManageCompetition checks write access: admins manage everything, clients only what they created
func canManageCompetition(profile models.Profile, competition models.Competition) bool {
	if profile.Role == models.RoleAdmin {
		return true
	}
	return competition.CreatedBy == profile.ID
}

// parseFilter builds a CompetitionFilter from list query parameters
func parseFilter(c *gin.Context) utils.CompetitionFilter {
	filter := utils.CompetitionFilter{
		Term:       c.Query("term"),
		Status:     c.Query("status"),
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	}
	if min, err := strconv.Atoi(c.Query("min_prize")); err == nil {
		filter.MinPrize = min
	}
	if max, err := strconv.Atoi(c.Query("max_prize")); err == nil {
		filter.MaxPrize = max
	}
	if cutoff, err := time.Parse(time.RFC3339, c.Query("end_date")); err == nil {
		filter.EndDate = &cutoff
	}
	return filter
}

// competitionView decorates a competition with its derived display status
type competitionView struct {
	models.Competition
	DisplayStatus string `json:"display_status"`
}

func toViews(competitions []models.Competition, now time.Time) []competitionView {
	views := make([]competitionView, len(competitions))
	for i, comp := range competitions {
		views[i] = competitionView{Competition: comp, DisplayStatus: utils.DisplayStatus(comp, now)}
	}
	return views
}

// GetAllCompetitions lists competitions, newest first, with in-memory filters
// @Summary List competitions
// @Description List all competitions newest-first, filtered by term, status, category, difficulty, prize range and end date
// @Tags Competitions
// @Produce json
// @Param term query string false "Case-insensitive title search"
// @Param status query string false "Derived display status or all"
// @Param category query string false "Category or all"
// @Param difficulty query string false "Difficulty, any or all"
// @Param min_prize query int false "Minimum prize value"
// @Param max_prize query int false "Maximum prize value"
// @Param end_date query string false "Keep competitions ending on or before this RFC3339 time"
// @Success 200 {array} competitionView
// @Router /competitions [get]
func GetAllCompetitions(c *gin.Context) {
	competitions, err := services.ListCompetitions()
	if err != nil {
		// Background fetch failures degrade to an empty list, not an error page
		log.Printf("Error fetching competitions: %v", err)
		c.JSON(http.StatusOK, []competitionView{})
		return
	}

	now := time.Now()
	filtered := parseFilter(c).Apply(competitions, now)
	c.JSON(http.StatusOK, toViews(filtered, now))
}

// GetCompetition returns a single competition with its requirements and eligibility rules
// @Summary Get a competition
// @Description Get a competition by id with requirements and eligibility rules
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} competitionView
// @Failure 404 {object} map[string]string
// @Router /competitions/{id} [get]
func GetCompetition(c *gin.Context) {
	competition, err := services.GetCompetition(c.Param("id"))
	if err != nil {
		respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	if requirements, err := services.GetRequirements(competition.ID); err == nil {
		competition.Requirements = make([]*models.Requirement, len(requirements))
		for i := range requirements {
			competition.Requirements[i] = &requirements[i]
		}
	} else {
		log.Printf("Error fetching requirements for competition %s: %v", competition.ID, err)
	}

	if rules, err := services.GetEligibility(competition.ID); err == nil {
		competition.Eligibility = make([]*models.EligibilityRule, len(rules))
		for i := range rules {
			competition.Eligibility[i] = &rules[i]
		}
	} else {
		log.Printf("Error fetching eligibility for competition %s: %v", competition.ID, err)
	}

	c.JSON(http.StatusOK, competitionView{Competition: competition, DisplayStatus: utils.DisplayStatus(competition, time.Now())})
}

// GetMyCompetitions lists the competitions the calling client created
// @Summary List own competitions
// @Description List the competitions created by the authenticated client, newest first
// @Tags Competitions
// @Produce json
// @Success 200 {array} competitionView
// @Failure 401 {object} map[string]string
// @Router /client/competitions [get]
// @Security Bearer
func GetMyCompetitions(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	competitions, err := services.ListCompetitionsByCreator(profile.ID)
	if err != nil {
		log.Printf("Error fetching competitions for creator %s: %v", profile.ID, err)
		c.JSON(http.StatusOK, []competitionView{})
		return
	}

	now := time.Now()
	filtered := parseFilter(c).Apply(competitions, now)
	c.JSON(http.StatusOK, toViews(filtered, now))
}

// GetMyCompetitionStats summarizes the calling client's competitions by display status
// @Summary Client competition stats
// @Description Count the client's competitions per derived display status
// @Tags Competitions
// @Produce json
// @Success 200 {object} services.CreatorStats
// @Failure 401 {object} map[string]string
// @Router /client/competitions/stats [get]
// @Security Bearer
func GetMyCompetitionStats(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return
	}

	stats, err := services.GetCreatorStats(profile.ID, time.Now())
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchCompetitions)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CreateCompetition creates a competition and writes its requirement rows
// @Summary Create a competition
// @Description Create a competition; the requirement replace runs after the row insert
// @Tags Competitions
// @Accept json
// @Produce json
// @Param request body CreateCompetitionRequest true "Competition fields"
// @Success 201 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/competitions [post]
// @Security Bearer
func CreateCompetition(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return
	}

	// Required-field gate: a binding failure aborts before any store call
	var req CreateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	currency := req.PrizeCurrency
	if currency == "" {
		currency = "USD"
	}

	competition := models.Competition{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Difficulty:    req.Difficulty,
		Deadline:      req.Deadline,
		PrizeValue:    req.PrizeValue,
		PrizeCurrency: currency,
		EntryFee:      req.EntryFee,
		MaxEntries:    req.MaxEntries,
		ImageURL:      req.ImageURL,
		ThumbnailURL:  req.ThumbnailURL,
		Status:        status,
		CreatedBy:     profile.ID,
	}

	if err := services.CreateCompetition(&competition); err != nil {
		log.Printf("Error creating competition: %v", err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedCreateCompetition)
		return
	}

	// Requirements depend on the id produced above, so this runs second
	if len(req.Requirements) > 0 {
		if err := services.ReplaceRequirements(competition.ID, req.Requirements); err != nil {
			log.Printf("Error writing requirements for competition %s: %v", competition.ID, err)
			respondWithError(c, http.StatusInternalServerError, ErrFailedReplaceRequirements)
			return
		}
	}

	realtime.Broadcast(realtime.Event{Type: "created", CompetitionID: competition.ID})
	c.JSON(http.StatusCreated, competition)
}

// UpdateCompetition updates a competition and optionally replaces its requirements
// @Summary Update a competition
// @Description Update competition fields; when requirements are present they are fully replaced
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param request body UpdateCompetitionRequest true "Fields to update"
// @Success 200 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/competitions/{id} [put]
// @Security Bearer
func UpdateCompetition(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return
	}

	var req UpdateCompetitionRequest
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

	fields := map[string]interface{}{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != "" {
		fields["category"] = req.Category
	}
	if req.Difficulty != "" {
		fields["difficulty"] = req.Difficulty
	}
	if req.Deadline != nil {
		fields["deadline"] = *req.Deadline
	}
	if req.PrizeValue != nil {
		fields["prize_value"] = *req.PrizeValue
	}
	if req.PrizeCurrency != nil {
		fields["prize_currency"] = *req.PrizeCurrency
	}
	if req.EntryFee != nil {
		fields["entry_fee"] = *req.EntryFee
	}
	if req.MaxEntries != nil {
		fields["max_entries"] = *req.MaxEntries
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.ThumbnailURL != nil {
		fields["thumbnail_url"] = *req.ThumbnailURL
	}
	if req.Status != "" {
		fields["status"] = req.Status
	}

	if len(fields) > 0 {
		if err := services.UpdateCompetition(competition.ID, fields); err != nil {
			log.Printf("Error updating competition %s: %v", competition.ID, err)
			respondWithError(c, http.StatusInternalServerError, ErrFailedUpdateCompetition)
			return
		}
	}

	if req.Requirements != nil {
		if err := services.ReplaceRequirements(competition.ID, req.Requirements); err != nil {
			log.Printf("Error replacing requirements for competition %s: %v", competition.ID, err)
			respondWithError(c, http.StatusInternalServerError, ErrFailedReplaceRequirements)
			return
		}
	}

	updated, err := services.GetCompetition(competition.ID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchCompetitions)
		return
	}

	realtime.Broadcast(realtime.Event{Type: "updated", CompetitionID: competition.ID})
	c.JSON(http.StatusOK, updated)
}

// ArchiveCompetition flips a competition's stored status to archived
// @Summary Archive a competition
// @Description Set the stored status to archived without touching the deadline
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/competitions/{id}/archive [put]
// @Security Bearer
func ArchiveCompetition(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
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

	if err := services.ArchiveCompetition(competition.ID); err != nil {
		log.Printf("Error archiving competition %s: %v", competition.ID, err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedArchiveCompetition)
		return
	}

	realtime.Broadcast(realtime.Event{Type: "archived", CompetitionID: competition.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Competition archived"})
}

// DeleteCompetition permanently removes a competition and its child rows
// @Summary Delete a competition
// @Description Permanently delete a competition; requirements and eligibility rows cascade
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/competitions/{id} [delete]
// @Security Bearer
func DeleteCompetition(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
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

	if err := services.DeleteCompetition(competition.ID); err != nil {
		log.Printf("Error deleting competition %s: %v", competition.ID, err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedDeleteCompetition)
		return
	}

	realtime.Broadcast(realtime.Event{Type: "deleted", CompetitionID: competition.ID})
	c.JSON(http.StatusOK, gin.H{"message": "Competition deleted"})
}

// DuplicateCompetition copies a competition into a new row titled "... (Copy)"
// @Summary Duplicate a competition
// @Description Copy every field except id and timestamps into a new competition titled with a " (Copy)" suffix
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 201 {object} models.Competition
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/competitions/{id}/duplicate [post]
// @Security Bearer
func DuplicateCompetition(c *gin.Context) {
	profile, err := middleware.GetProfileFromRequest(c)
	if err != nil {
		return
	}

	competition, err := services.GetCompetition(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(c, http.StatusNotFound, ErrCompetitionNotFound)
			return
		}
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchCompetitions)
		return
	}

	if !canManageCompetition(profile, competition) {
		response.Redirect(c, http.StatusForbidden, ErrNoPermissionManage, roles.ClientLoginRoute)
		return
	}

	duplicate, err := services.DuplicateCompetition(competition.ID)
	if err != nil {
		log.Printf("Error duplicating competition %s: %v", competition.ID, err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedDuplicate)
		return
	}

	realtime.Broadcast(realtime.Event{Type: "created", CompetitionID: duplicate.ID})
	c.JSON(http.StatusCreated, duplicate)
}
