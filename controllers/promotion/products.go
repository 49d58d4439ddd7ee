package promotionController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/models"
)

type AssignProductsInput struct {
	ProductIDs []string `json:"product_ids"`
}

// AssignProducts replaces the full product set of a promotion: existing
// associations are dropped and the submitted list is inserted.
func AssignProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var promo models.Promotion
		if err := db.First(&promo, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			}
			return
		}

		var input AssignProductsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("promotion_id = ?", id).Delete(&models.PromotionProduct{}).Error; err != nil {
				return err
			}
			for _, productID := range input.ProductIDs {
				link := models.PromotionProduct{PromotionID: id, ProductID: productID}
				if err := tx.Create(&link).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Products assigned",
			"product_count": len(input.ProductIDs),
		})
	}
}

// GetAssignedProducts lists the product ids currently covered by a promotion.
func GetAssignedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var links []models.PromotionProduct
		if err := db.Where("promotion_id = ?", id).Find(&links).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotion products"})
			return
		}

		productIDs := make([]string, 0, len(links))
		for _, link := range links {
			productIDs = append(productIDs, link.ProductID)
		}

		c.JSON(http.StatusOK, gin.H{"product_ids": productIDs})
	}
}
