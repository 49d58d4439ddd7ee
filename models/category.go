package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryTypeEquipment  = "equipment"
	CategoryTypeConsumable = "consumable"
)

type Category struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"unique;not null" json:"name"`
	Slug         string `gorm:"unique;not null" json:"slug"`
	CategoryType string `gorm:"type:VARCHAR(20);not null" json:"category_type"` // equipment | consumable
	IconURL      string `json:"icon_url"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
