package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by the team
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

type Order struct {
	ID            string      `gorm:"primaryKey" json:"id"`
	OrderRef      string      `gorm:"uniqueIndex" json:"order_ref"`
	CustomerName  string      `gorm:"not null" json:"customer_name"`
	CustomerEmail string      `gorm:"not null" json:"customer_email"`
	CustomerPhone string      `json:"customer_phone"`
	Address       string      `json:"address"`
	City          string      `json:"city"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderItem snapshots a cart line at checkout time; it never tracks later
// product edits.
type OrderItem struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	OrderID      string  `gorm:"index" json:"order_id"`
	ProductID    string  `json:"product_id"`
	ProductTitle string  `json:"product_title"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
