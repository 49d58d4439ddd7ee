package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/models"
	"github.com/lahsenimdlass-alt/dentalstore-api/promotions"
)

// GetStats answers the dashboard overview: catalogue size, order volume,
// revenue and how many promotions are effective today.
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalProducts int64
		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var totalOrders int64
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}

		var totalRevenue float64
		if err := db.Model(&models.Order{}).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&totalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sum revenue"})
			return
		}

		// Same effectiveness predicate as the promotion resolver.
		today := promotions.Today()
		var activePromotions int64
		if err := db.Model(&models.Promotion{}).
			Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, today, today).
			Count(&activePromotions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count promotions"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_products":    totalProducts,
			"total_orders":      totalOrders,
			"total_revenue":     totalRevenue,
			"active_promotions": activePromotions,
		})
	}
}
