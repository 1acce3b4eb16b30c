package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stored competition statuses. "ended" is derived from the deadline at read
// time and never written to this column.
const (
	StatusActive   = "active"
	StatusUpcoming = "upcoming"
	StatusArchived = "archived"
)

// Competition represents a time-boxed contest with a deadline, prize, category and difficulty
type Competition struct {
	ID            string             `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Title         string             `gorm:"type:varchar(100);not null" json:"title"`
	Description   string             `gorm:"type:varchar(1000)" json:"description"`
	Category      string             `gorm:"type:varchar(50);not null" json:"category"`
	Difficulty    string             `gorm:"type:varchar(20);not null" json:"difficulty"`
	Deadline      time.Time          `gorm:"not null" json:"deadline"`
	PrizeValue    string             `gorm:"type:varchar(100);column:prize_value" json:"prize_value"`
	PrizeCurrency string             `gorm:"type:varchar(10);column:prize_currency;default:'USD'" json:"prize_currency"`
	EntryFee      float64            `gorm:"type:numeric(10,2);column:entry_fee;not null;default:0" json:"entry_fee"`
	MaxEntries    *int               `gorm:"column:max_entries" json:"max_entries"`
	ImageURL      string             `gorm:"type:varchar(500);column:image_url" json:"image_url"`
	ThumbnailURL  string             `gorm:"type:varchar(500);column:thumbnail_url" json:"thumbnail_url"`
	Status        string             `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedBy     string             `gorm:"type:uuid;column:created_by" json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	Requirements  []*Requirement     `gorm:"foreignKey:CompetitionID;constraint:OnDelete:CASCADE" json:"requirements,omitempty"`
	Eligibility   []*EligibilityRule `gorm:"foreignKey:CompetitionID;constraint:OnDelete:CASCADE" json:"eligibility,omitempty"`
}

func (c *Competition) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
