package competitions

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrCompetitionNotFound       = "Competition not found"
	ErrNoPermissionManage        = "You do not have permission to manage this competition"
	ErrFailedFetchCompetitions   = "Failed to fetch competitions"
	ErrFailedCreateCompetition   = "Failed to create competition"
	ErrFailedUpdateCompetition   = "Failed to update competition"
	ErrFailedArchiveCompetition  = "Failed to archive competition"
	ErrFailedDeleteCompetition   = "Failed to delete competition"
	ErrFailedDuplicate           = "Failed to duplicate competition"
	ErrFailedReplaceRequirements = "Failed to replace requirements"
	ErrFailedReplaceEligibility  = "Failed to replace eligibility rules"
	ErrFailedFetchRequirements   = "Failed to fetch requirements"
	ErrFailedFetchEligibility    = "Failed to fetch eligibility rules"
	ErrFailedExport              = "Failed to export competitions"
	ErrInvalidRequest            = "Invalid request data"
)

// CreateCompetitionRequest model for creating a competition. The binding tags
// are the required-field gate: a missing title, category, difficulty or
// deadline rejects the submission before any write happens.
type CreateCompetitionRequest struct {
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	Category      string    `json:"category" binding:"required,oneof=Photography Design Writing Technology Music Art Food Architecture Animation Other"`
	Difficulty    string    `json:"difficulty" binding:"required,oneof=Beginner Intermediate Advanced Expert"`
	Deadline      time.Time `json:"deadline" binding:"required"`
	PrizeValue    string    `json:"prize_value"`
	PrizeCurrency string    `json:"prize_currency"`
	EntryFee      float64   `json:"entry_fee" binding:"gte=0"`
	MaxEntries    *int      `json:"max_entries" binding:"omitempty,gt=0"`
	ImageURL      string    `json:"image_url"`
	ThumbnailURL  string    `json:"thumbnail_url"`
	Status        string    `json:"status" binding:"omitempty,oneof=active upcoming archived"`
	Requirements  []string  `json:"requirements"`
}

// UpdateCompetitionRequest model for updating a competition
type UpdateCompetitionRequest struct {
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Category      string     `json:"category" binding:"omitempty,oneof=Photography Design Writing Technology Music Art Food Architecture Animation Other"`
	Difficulty    string     `json:"difficulty" binding:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Deadline      *time.Time `json:"deadline"`
	PrizeValue    *string    `json:"prize_value"`
	PrizeCurrency *string    `json:"prize_currency"`
	EntryFee      *float64   `json:"entry_fee" binding:"omitempty,gte=0"`
	MaxEntries    *int       `json:"max_entries" binding:"omitempty,gt=0"`
	ImageURL      *string    `json:"image_url"`
	ThumbnailURL  *string    `json:"thumbnail_url"`
	Status        string     `json:"status" binding:"omitempty,oneof=active upcoming archived"`
	Requirements  []string   `json:"requirements"`
}

// ReplaceRequirementsRequest model for the full-replace requirement write
type ReplaceRequirementsRequest struct {
	Requirements []string `json:"requirements"`
}

// EligibilityRuleRequest model for one eligibility rule
type EligibilityRuleRequest struct {
	EligibilityText       string `json:"eligibility_text" binding:"required"`
	EligibilityType       string `json:"eligibility_type"`
	MinAge                *int   `json:"min_age" binding:"omitempty,gte=0"`
	MaxAge                *int   `json:"max_age" binding:"omitempty,gte=0"`
	LocationRestriction   string `json:"location_restriction"`
	ProfessionRestriction string `json:"profession_restriction"`
}

// ReplaceEligibilityRequest model for the full-replace eligibility write
type ReplaceEligibilityRequest struct {
	Rules []EligibilityRuleRequest `json:"rules"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
