package models

import "time"

// GuestSession identifies an anonymous storefront visitor; its ID keys the
// session's cart.
type GuestSession struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
