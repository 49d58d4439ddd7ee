package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"not null" json:"title"`
	Description   string         `json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	Category      string         `gorm:"index" json:"category"` // category slug
	ImageURL      string         `json:"image_url"`
	StockQuantity int            `gorm:"default:0" json:"stock_quantity"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	Images        []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// ProductImage is one entry of a product's gallery, ordered by DisplayOrder.
type ProductImage struct {
	ID           string `gorm:"primaryKey" json:"id"`
	ProductID    string `gorm:"index;not null" json:"product_id"`
	ImageURL     string `gorm:"not null" json:"image_url"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
