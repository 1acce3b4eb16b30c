package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PasswordReset struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	ProfileID string    `gorm:"type:uuid;not null;column:profile_id" json:"profile_id"`
	Profile   Profile   `gorm:"foreignkey:ProfileID" json:"profile"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

func (p *PasswordReset) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
