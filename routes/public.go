package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/auth"
	categoryController "github.com/lahsenimdlass-alt/dentalstore-api/controllers/category"
	orderControllers "github.com/lahsenimdlass-alt/dentalstore-api/controllers/order"
	productController "github.com/lahsenimdlass-alt/dentalstore-api/controllers/product"
	promotionController "github.com/lahsenimdlass-alt/dentalstore-api/controllers/promotion"
	slideController "github.com/lahsenimdlass-alt/dentalstore-api/controllers/slide"
	"github.com/lahsenimdlass-alt/dentalstore-api/promotions"
)

// SetupPublicRoutes registers everything a visitor can reach without a
// session: catalogue browsing, promotion resolution and checkout.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, resolver *promotions.Resolver) {
	r.POST("/auth/guest", auth.CreateGuestSession(db))

	r.GET("/products", productController.GetProducts(db))
	r.GET("/products/:id", productController.GetProductByID(db))

	r.GET("/categories", categoryController.GetCategories(db))

	r.GET("/slides", slideController.GetSlides(db))

	promoGroup := r.Group("/promotions")
	{
		promoGroup.GET("", promotionController.GetEffectivePromotions(db))
		promoGroup.GET("/resolve", promotionController.ResolvePromotions(resolver))
	}

	// Checkout hands over the cart snapshot; the caller clears its cart on
	// success, the API never does it implicitly.
	r.POST("/orders", orderControllers.PlaceOrderHandler(db))
}
