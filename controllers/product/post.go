package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/models"
)

type ProductInput struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Category      string  `json:"category" binding:"required"`
	ImageURL      string  `json:"image_url"`
	StockQuantity int     `json:"stock_quantity"`
	IsActive      *bool   `json:"is_active"`
}

// CreateProduct creates a product from a JSON payload. Gallery images are
// attached separately via the image upload endpoint.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "slug = ?", input.Category).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			return
		}

		active := true
		if input.IsActive != nil {
			active = *input.IsActive
		}

		product := models.Product{
			Title:         input.Title,
			Description:   input.Description,
			Price:         input.Price,
			Category:      input.Category,
			ImageURL:      input.ImageURL,
			StockQuantity: input.StockQuantity,
			IsActive:      active,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
