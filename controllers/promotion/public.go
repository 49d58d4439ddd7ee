package promotionController

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/models"
	"github.com/lahsenimdlass-alt/dentalstore-api/promotions"
)

// GetEffectivePromotions lists promotions that are active today, each with
// the ids of the products it covers. Used by the storefront promotions page.
func GetEffectivePromotions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		today := promotions.Today()

		var promos []models.Promotion
		if err := db.
			Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, today, today).
			Order("discount_percentage DESC").
			Find(&promos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotions"})
			return
		}

		type effectivePromo struct {
			models.Promotion
			ProductIDs []string `json:"product_ids"`
		}

		out := make([]effectivePromo, 0, len(promos))
		for _, p := range promos {
			var links []models.PromotionProduct
			if err := db.Where("promotion_id = ?", p.ID).Find(&links).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotion products"})
				return
			}
			ids := make([]string, 0, len(links))
			for _, link := range links {
				ids = append(ids, link.ProductID)
			}
			out = append(out, effectivePromo{Promotion: p, ProductIDs: ids})
		}

		c.JSON(http.StatusOK, out)
	}
}

// ResolvePromotions answers the storefront's batch query: which of these
// products carry a discount today, and which one. Products without an
// effective promotion are absent from the map.
func ResolvePromotions(resolver *promotions.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		idsParam := c.Query("product_ids")
		if idsParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_ids is required"})
			return
		}

		var productIDs []string
		for _, id := range strings.Split(idsParam, ",") {
			if id = strings.TrimSpace(id); id != "" {
				productIDs = append(productIDs, id)
			}
		}

		result := resolver.ResolveForProducts(c.Request.Context(), productIDs, promotions.Today())
		c.JSON(http.StatusOK, result)
	}
}
