package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Promotion is a percentage discount valid inside an inclusive date window.
// StartDate/EndDate are stored as DATE columns and carried around as
// "YYYY-MM-DD" strings so date comparisons stay lexicographic.
type Promotion struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	Title              string    `gorm:"not null" json:"title"`
	Description        string    `json:"description"`
	DiscountPercentage int       `gorm:"not null" json:"discount_percentage"`
	StartDate          string    `gorm:"type:DATE;not null" json:"start_date"`
	EndDate            string    `gorm:"type:DATE;not null" json:"end_date"`
	IsActive           bool      `gorm:"default:true" json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

// PromotionProduct links a promotion to one product (many-to-many).
type PromotionProduct struct {
	ID          string `gorm:"primaryKey" json:"id"`
	PromotionID string `gorm:"index;not null" json:"promotion_id"`
	ProductID   string `gorm:"index;not null" json:"product_id"`
}

func (p *Promotion) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (pp *PromotionProduct) BeforeCreate(tx *gorm.DB) error {
	if pp.ID == "" {
		pp.ID = uuid.NewString()
	}
	return nil
}
