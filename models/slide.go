package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HomepageSlide struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	ImageURL     string    `gorm:"not null" json:"image_url"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	LinkURL      string    `json:"link_url"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CategoryType string    `gorm:"type:VARCHAR(20)" json:"category_type"` // empty = shown everywhere
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *HomepageSlide) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
