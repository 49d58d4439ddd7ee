package models

import "time"

// CartRecord is the durable copy of one session's cart. Payload is the JSON
// snapshot {"items": [...]} written by the cart store on every mutation.
type CartRecord struct {
	SessionID string    `gorm:"primaryKey" json:"session_id"`
	Payload   []byte    `gorm:"type:bytea" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}
