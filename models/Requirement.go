package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Requirement is an ordered instruction attached to a competition, replaced
// wholesale whenever its parent competition is edited
type Requirement struct {
	ID              string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	CompetitionID   string    `gorm:"type:uuid;not null;column:competition_id" json:"competition_id"`
	RequirementText string    `gorm:"type:varchar(500);not null;column:requirement_text" json:"requirement_text"`
	RequirementType string    `gorm:"type:varchar(50);column:requirement_type" json:"requirement_type"`
	OrderIndex      int       `gorm:"not null;column:order_index" json:"order_index"`
	IsMandatory     bool      `gorm:"not null;default:true;column:is_mandatory" json:"is_mandatory"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r *Requirement) TableName() string {
	return "competition_requirements"
}

func (r *Requirement) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
