package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/models"
)

// UpdateProduct replaces the editable fields of an existing product.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Category != product.Category {
			var category models.Category
			if err := db.First(&category, "slug = ?", input.Category).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
				return
			}
		}

		product.Title = input.Title
		product.Description = input.Description
		product.Price = input.Price
		product.Category = input.Category
		product.StockQuantity = input.StockQuantity
		if input.ImageURL != "" {
			product.ImageURL = input.ImageURL
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
