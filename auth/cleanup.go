package auth

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/cart"
	"github.com/lahsenimdlass-alt/dentalstore-api/models"
)

// StartSessionSweeper periodically removes expired guest sessions together
// with their persisted carts, and drops the in-memory stores so a reused id
// would rehydrate from scratch. Runs until the process exits.
func StartSessionSweeper(db *gorm.DB, manager *cart.Manager, interval time.Duration) {
	for {
		time.Sleep(interval)

		var expired []models.GuestSession
		if err := db.Where("expires_at < ?", time.Now()).Find(&expired).Error; err != nil {
			log.Printf("❌ Session sweep: failed to list expired sessions: %v", err)
			continue
		}
		if len(expired) == 0 {
			continue
		}

		for _, guest := range expired {
			if err := db.Where("session_id = ?", guest.ID).Delete(&models.CartRecord{}).Error; err != nil {
				log.Printf("❌ Session sweep: failed to delete cart for %s: %v", guest.ID, err)
				continue
			}
			if err := db.Delete(&models.GuestSession{}, "id = ?", guest.ID).Error; err != nil {
				log.Printf("❌ Session sweep: failed to delete session %s: %v", guest.ID, err)
				continue
			}
			manager.Drop(guest.ID)
		}
		log.Printf("🗑️ Session sweep: removed %d expired guest sessions", len(expired))
	}
}
