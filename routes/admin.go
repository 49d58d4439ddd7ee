package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/lahsenimdlass-alt/dentalstore-api/controllers/admin"
	categoryController "github.com/lahsenimdlass-alt/dentalstore-api/controllers/category"
	orderControllers "github.com/lahsenimdlass-alt/dentalstore-api/controllers/order"
	productController "github.com/lahsenimdlass-alt/dentalstore-api/controllers/product"
	promotionController "github.com/lahsenimdlass-alt/dentalstore-api/controllers/promotion"
	slideController "github.com/lahsenimdlass-alt/dentalstore-api/controllers/slide"
	"github.com/lahsenimdlass-alt/dentalstore-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productController.GetProducts(db))
			productAdmin.POST("", productController.CreateProduct(db))
			productAdmin.PUT("/:id", productController.UpdateProduct(db))
			productAdmin.DELETE("/:id", productController.DeleteProduct(db))
			productAdmin.POST("/:id/images", productController.UploadProductImage(db))
			productAdmin.DELETE("/:id/images/:image_id", productController.DeleteProductImage(db))
			productAdmin.GET("/export-excel", productController.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", categoryController.GetAllCategories(db))
			categoryAdmin.POST("", categoryController.CreateCategory(db))
			categoryAdmin.PUT("/:id", categoryController.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", categoryController.DeleteCategory(db))
		}

		// ─────────── Promotion Management ───────────
		promotionAdmin := adminGroup.Group("/promotions")
		{
			promotionAdmin.GET("", promotionController.GetPromotions(db))
			promotionAdmin.POST("", promotionController.CreatePromotion(db))
			promotionAdmin.PUT("/:id", promotionController.UpdatePromotion(db))
			promotionAdmin.DELETE("/:id", promotionController.DeletePromotion(db))
			promotionAdmin.PUT("/:id/products", promotionController.AssignProducts(db))
			promotionAdmin.GET("/:id/products", promotionController.GetAssignedProducts(db))
		}

		// ─────────── Homepage Slides ───────────
		slideAdmin := adminGroup.Group("/slides")
		{
			slideAdmin.GET("", slideController.GetAllSlides(db))
			slideAdmin.POST("", slideController.CreateSlide(db))
			slideAdmin.PUT("/reorder", slideController.ReorderSlides(db))
			slideAdmin.PUT("/:id", slideController.UpdateSlide(db))
			slideAdmin.DELETE("/:id", slideController.DeleteSlide(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.GET("/:orderID/items", orderControllers.GetOrderItemsHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── Dashboard ───────────
		adminGroup.GET("/stats", adminController.GetStats(db))
	}
}
