package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SavedCompetition is a member's bookmark of a competition, unique per user/competition pair
type SavedCompetition struct {
	ID            string       `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	UserID        string       `gorm:"type:uuid;not null;column:user_id;uniqueIndex:idx_saved_user_competition" json:"user_id"`
	CompetitionID string       `gorm:"type:uuid;not null;column:competition_id;uniqueIndex:idx_saved_user_competition" json:"competition_id"`
	Notes         string       `gorm:"type:varchar(500)" json:"notes"`
	SavedAt       time.Time    `gorm:"column:saved_at;autoCreateTime" json:"saved_at"`
	Competition   *Competition `gorm:"foreignKey:CompetitionID;constraint:OnDelete:CASCADE" json:"competition,omitempty"`
}

func (s *SavedCompetition) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
