package services

import (
	"fmt"
	"time"

	"contesthub/database"
	"contesthub/metrics"
	"contesthub/models"
	"contesthub/utils"

	"gorm.io/gorm"
)

// ListCompetitions returns every competition, newest-created first. Callers
// narrow the result in memory; there is no pagination.
func ListCompetitions() ([]models.Competition, error) {
	start := time.Now()
	defer metrics.RecordDBOperation("list", "competitions", start)

	var competitions []models.Competition
	if err := database.DB.Order("created_at DESC").Find(&competitions).Error; err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}

// ListCompetitionsByCreator returns the competitions a client or admin created, newest first
func ListCompetitionsByCreator(creatorID string) ([]models.Competition, error) {
	start := time.Now()
	defer metrics.RecordDBOperation("list_by_creator", "competitions", start)

	var competitions []models.Competition
	if err := database.DB.Where("created_by = ?", creatorID).
		Order("created_at DESC").Find(&competitions).Error; err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}

// GetCompetition fetches a single competition by id
func GetCompetition(id string) (models.Competition, error) {
	var competition models.Competition
	if err := database.DB.First(&competition, "id = ?", id).Error; err != nil {
		return models.Competition{}, err
	}
	return competition, nil
}

// CompetitionExists reports whether the competition id is known
func CompetitionExists(id string) bool {
	var count int64
	database.DB.Model(&models.Competition{}).Where("id = ?", id).Count(&count)
	return count > 0
}

// CreateCompetition inserts a new competition row. Required-field validation
// happens in the handler before this is called.
func CreateCompetition(competition *models.Competition) error {
	start := time.Now()
	defer metrics.RecordDBOperation("create", "competitions", start)

	if err := database.DB.Create(competition).Error; err != nil {
		return fmt.Errorf("failed to create competition: %w", err)
	}
	return nil
}

// UpdateCompetition applies the given column updates to a competition row
func UpdateCompetition(id string, fields map[string]interface{}) error {
	start := time.Now()
	defer metrics.RecordDBOperation("update", "competitions", start)

	result := database.DB.Model(&models.Competition{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update competition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("competition not found")
	}
	return nil
}

// ArchiveCompetition soft-retires a competition. The deadline is untouched, so
// the archived status keeps winning over any derived one.
func ArchiveCompetition(id string) error {
	return UpdateCompetition(id, map[string]interface{}{"status": models.StatusArchived})
}

// DeleteCompetition permanently removes a competition. Requirement and
// eligibility rows cascade at the store level.
func DeleteCompetition(id string) error {
	start := time.Now()
	defer metrics.RecordDBOperation("delete", "competitions", start)

	result := database.DB.Delete(&models.Competition{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete competition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("competition not found")
	}
	return nil
}

// DuplicateCompetition copies a competition into a fresh row. Every field
// except id and timestamps carries over as-is, status included; the title gets
// a " (Copy)" suffix.
func DuplicateCompetition(id string) (models.Competition, error) {
	original, err := GetCompetition(id)
	if err != nil {
		return models.Competition{}, err
	}

	copy := original
	copy.ID = ""
	copy.CreatedAt = time.Time{}
	copy.UpdatedAt = time.Time{}
	copy.Title = original.Title + " (Copy)"
	copy.Requirements = nil
	copy.Eligibility = nil

	if err := CreateCompetition(&copy); err != nil {
		return models.Competition{}, err
	}
	return copy, nil
}

// GetRequirements returns the requirement rows for a competition in display order
func GetRequirements(competitionID string) ([]models.Requirement, error) {
	var requirements []models.Requirement
	if err := database.DB.Where("competition_id = ?", competitionID).
		Order("order_index").Find(&requirements).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch requirements: %w", err)
	}
	return requirements, nil
}

// ReplaceRequirements swaps the full requirement list of a competition inside
// one transaction, so a failure can never strand the competition with the old
// rows deleted and no new ones inserted. The delete phase runs even when the
// incoming list is empty.
func ReplaceRequirements(competitionID string, texts []string) error {
	start := time.Now()
	defer metrics.RecordDBOperation("replace", "competition_requirements", start)

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("competition_id = ?", competitionID).
			Delete(&models.Requirement{}).Error; err != nil {
			return fmt.Errorf("failed to delete existing requirements: %w", err)
		}

		for i, text := range texts {
			requirement := models.Requirement{
				CompetitionID:   competitionID,
				RequirementText: text,
				OrderIndex:      i,
				IsMandatory:     true,
			}
			if err := tx.Create(&requirement).Error; err != nil {
				return fmt.Errorf("failed to insert requirement: %w", err)
			}
		}
		return nil
	})
}

// GetEligibility returns the eligibility rules attached to a competition
func GetEligibility(competitionID string) ([]models.EligibilityRule, error) {
	var rules []models.EligibilityRule
	if err := database.DB.Where("competition_id = ?", competitionID).
		Order("created_at").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch eligibility rules: %w", err)
	}
	return rules, nil
}

// ReplaceEligibility swaps the eligibility rules of a competition with the same
// transactional replace discipline as the requirements
func ReplaceEligibility(competitionID string, rules []models.EligibilityRule) error {
	start := time.Now()
	defer metrics.RecordDBOperation("replace", "competition_eligibility", start)

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("competition_id = ?", competitionID).
			Delete(&models.EligibilityRule{}).Error; err != nil {
			return fmt.Errorf("failed to delete existing eligibility rules: %w", err)
		}

		for i := range rules {
			rules[i].ID = ""
			rules[i].CompetitionID = competitionID
			if err := tx.Create(&rules[i]).Error; err != nil {
				return fmt.Errorf("failed to insert eligibility rule: %w", err)
			}
		}
		return nil
	})
}

// CreatorStats summarizes a client's competitions by derived display status
type CreatorStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Ended    int `json:"ended"`
	Archived int `json:"archived"`
}

// GetCreatorStats counts a creator's competitions per display status at the given time
func GetCreatorStats(creatorID string, now time.Time) (CreatorStats, error) {
	competitions, err := ListCompetitionsByCreator(creatorID)
	if err != nil {
		return CreatorStats{}, err
	}

	stats := CreatorStats{Total: len(competitions)}
	for _, c := range competitions {
		switch utils.DisplayStatus(c, now) {
		case utils.DisplayActive:
			stats.Active++
		case utils.DisplayEnded:
			stats.Ended++
		case utils.DisplayArchived:
			stats.Archived++
		}
	}
	return stats, nil
}
