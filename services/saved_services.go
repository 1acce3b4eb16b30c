package services

import (
	"errors"
	"fmt"
	"time"

	"contesthub/database"
	"contesthub/metrics"
	"contesthub/models"

	"gorm.io/gorm"
)

var ErrAlreadySaved = errors.New("competition already saved")

// SaveCompetition bookmarks a competition for a member, one bookmark per pair
func SaveCompetition(userID, competitionID, notes string) (models.SavedCompetition, error) {
	start := time.Now()
	defer metrics.RecordDBOperation("create", "saved_competitions", start)

	var existing models.SavedCompetition
	err := database.DB.Where("user_id = ? AND competition_id = ?", userID, competitionID).
		First(&existing).Error
	if err == nil {
		return models.SavedCompetition{}, ErrAlreadySaved
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SavedCompetition{}, fmt.Errorf("failed to check saved competition: %w", err)
	}

	saved := models.SavedCompetition{
		UserID:        userID,
		CompetitionID: competitionID,
		Notes:         notes,
	}
	if err := database.DB.Create(&saved).Error; err != nil {
		return models.SavedCompetition{}, fmt.Errorf("failed to save competition: %w", err)
	}
	return saved, nil
}

// UnsaveCompetition removes a member's bookmark
func UnsaveCompetition(userID, competitionID string) error {
	start := time.Now()
	defer metrics.RecordDBOperation("delete", "saved_competitions", start)

	result := database.DB.Where("user_id = ? AND competition_id = ?", userID, competitionID).
		Delete(&models.SavedCompetition{})
	if result.Error != nil {
		return fmt.Errorf("failed to unsave competition: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListSavedCompetitions returns a member's bookmarks with their competitions, newest first
func ListSavedCompetitions(userID string) ([]models.SavedCompetition, error) {
	start := time.Now()
	defer metrics.RecordDBOperation("list", "saved_competitions", start)

	var saved []models.SavedCompetition
	if err := database.DB.Where("user_id = ?", userID).
		Preload("Competition").Order("saved_at DESC").Find(&saved).Error; err != nil {
		return nil, fmt.Errorf("failed to list saved competitions: %w", err)
	}
	return saved, nil
}
