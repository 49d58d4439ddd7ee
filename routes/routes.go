package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/cart"
	"github.com/lahsenimdlass-alt/dentalstore-api/promotions"
)

// SetupRoutes is the single entry-point that wires up the public storefront,
// the session-guarded cart and the API-key-guarded admin panel.
func SetupRoutes(r *gin.Engine, db *gorm.DB, manager *cart.Manager, resolver *promotions.Resolver) {
	// Public storefront (no middleware)
	SetupPublicRoutes(r, db, resolver)

	// Cart routes (guest JWT)
	SetupCartRoutes(r, db, manager, resolver)

	// Admin routes (API key)
	SetupAdminRoutes(r, db)
}
