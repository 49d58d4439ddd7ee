package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/models"
)

// DeleteProduct removes a product, its gallery images and its promotion
// associations in one transaction.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("product_id = ?", id).Delete(&models.PromotionProduct{}).Error; err != nil {
				return err
			}
			result := tx.Where("id = ?", id).Delete(&models.Product{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
