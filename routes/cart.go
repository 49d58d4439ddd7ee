package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/cart"
	cartControllers "github.com/lahsenimdlass-alt/dentalstore-api/controllers/cart"
	"github.com/lahsenimdlass-alt/dentalstore-api/middleware"
	"github.com/lahsenimdlass-alt/dentalstore-api/promotions"
)

// SetupCartRoutes registers the "/cart" endpoints. Requires a guest JWT.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, manager *cart.Manager, resolver *promotions.Resolver) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(manager))
		cartGroup.POST("/items", cartControllers.AddItem(db, manager, resolver))
		cartGroup.PUT("/items/:product_id", cartControllers.UpdateItemQuantity(manager))
		cartGroup.DELETE("/items/:product_id", cartControllers.RemoveItem(manager))
		cartGroup.DELETE("", cartControllers.ClearCart(manager))
	}
}
