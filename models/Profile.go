package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile roles. An unrecognized role is treated as unauthorized, never as a default.
const (
	RoleMember = "member"
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// Profile represents an identity known to the platform with the role gating its dashboards
type Profile struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	FullName  string    `gorm:"type:varchar(100);column:full_name" json:"full_name"`
	Role      string    `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns an id when the database default is unavailable (e.g. sqlite in tests)
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
