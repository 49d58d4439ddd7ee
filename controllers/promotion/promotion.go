package promotionController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/models"
)

type PromotionInput struct {
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description"`
	DiscountPercentage int    `json:"discount_percentage" binding:"required,min=1,max=100"`
	StartDate          string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate            string `json:"end_date" binding:"required,datetime=2006-01-02"`
	IsActive           *bool  `json:"is_active"`
}

// GetPromotions is the admin listing, newest first, each with the number of
// assigned products.
func GetPromotions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var promos []models.Promotion
		if err := db.Order("created_at DESC").Find(&promos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotions"})
			return
		}

		type promoWithCount struct {
			models.Promotion
			ProductCount int64 `json:"product_count"`
		}

		out := make([]promoWithCount, 0, len(promos))
		for _, p := range promos {
			var count int64
			if err := db.Model(&models.PromotionProduct{}).
				Where("promotion_id = ?", p.ID).
				Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count promotion products"})
				return
			}
			out = append(out, promoWithCount{Promotion: p, ProductCount: count})
		}

		c.JSON(http.StatusOK, out)
	}
}

// CreatePromotion validates the date window and stores the promotion.
func CreatePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PromotionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.EndDate < input.StartDate {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
			return
		}

		active := true
		if input.IsActive != nil {
			active = *input.IsActive
		}

		promo := models.Promotion{
			Title:              input.Title,
			Description:        input.Description,
			DiscountPercentage: input.DiscountPercentage,
			StartDate:          input.StartDate,
			EndDate:            input.EndDate,
			IsActive:           active,
		}

		if err := db.Create(&promo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promotion"})
			return
		}

		c.JSON(http.StatusCreated, promo)
	}
}

// UpdatePromotion replaces the editable fields.
func UpdatePromotion(db *gorm.DB) gin.HandlerFunc {
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

		var input PromotionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.EndDate < input.StartDate {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
			return
		}

		promo.Title = input.Title
		promo.Description = input.Description
		promo.DiscountPercentage = input.DiscountPercentage
		promo.StartDate = input.StartDate
		promo.EndDate = input.EndDate
		if input.IsActive != nil {
			promo.IsActive = *input.IsActive
		}

		if err := db.Save(&promo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update promotion"})
			return
		}

		c.JSON(http.StatusOK, promo)
	}
}

// DeletePromotion removes the promotion and its product associations.
func DeletePromotion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("promotion_id = ?", id).Delete(&models.PromotionProduct{}).Error; err != nil {
				return err
			}
			result := tx.Where("id = ?", id).Delete(&models.Promotion{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promotion"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted"})
	}
}
