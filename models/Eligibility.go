package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EligibilityRule restricts who may enter a competition by age, location or profession
type EligibilityRule struct {
	ID                    string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	CompetitionID         string    `gorm:"type:uuid;not null;column:competition_id" json:"competition_id"`
	EligibilityText       string    `gorm:"type:varchar(500);not null;column:eligibility_text" json:"eligibility_text"`
	EligibilityType       string    `gorm:"type:varchar(50);column:eligibility_type" json:"eligibility_type"`
	MinAge                *int      `gorm:"column:min_age" json:"min_age"`
	MaxAge                *int      `gorm:"column:max_age" json:"max_age"`
	LocationRestriction   string    `gorm:"type:varchar(100);column:location_restriction" json:"location_restriction"`
	ProfessionRestriction string    `gorm:"type:varchar(100);column:profession_restriction" json:"profession_restriction"`
	CreatedAt             time.Time `json:"created_at"`
}

func (e *EligibilityRule) TableName() string {
	return "competition_eligibility"
}

func (e *EligibilityRule) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
