package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/cart"
	"github.com/lahsenimdlass-alt/dentalstore-api/models"
	"github.com/lahsenimdlass-alt/dentalstore-api/promotions"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

func sessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

func cartResponse(s *cart.Store) gin.H {
	return gin.H{
		"items":       s.Items(),
		"total_items": s.TotalItems(),
		"total_price": s.TotalPrice(),
	}
}

// GET /cart
func GetCart(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartResponse(m.Get(sid)))
	}
}

// POST /cart/items
// Looks up the product, asks the resolver for today's effective price and
// snapshots that price into the cart line.
func AddItem(db *gorm.DB, m *cart.Manager, resolver *promotions.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ? AND is_active = ?", input.ProductID, true).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		price := product.Price
		if resolved := resolver.ResolveForProduct(c.Request.Context(), product.ID, product.Price, promotions.Today()); resolved != nil {
			price = resolved.DiscountedPrice
		}

		store := m.Get(sid)
		store.AddItem(cart.ItemInput{
			ID:       product.ID,
			Title:    product.Title,
			Price:    price,
			ImageURL: product.ImageURL,
		})

		c.JSON(http.StatusCreated, cartResponse(store))
	}
}

// PUT /cart/items/:product_id
func UpdateItemQuantity(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store := m.Get(sid)
		store.UpdateQuantity(c.Param("product_id"), input.Quantity)
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// DELETE /cart/items/:product_id
func RemoveItem(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		store := m.Get(sid)
		store.RemoveItem(c.Param("product_id"))
		c.JSON(http.StatusOK, cartResponse(store))
	}
}

// DELETE /cart
func ClearCart(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		store := m.Get(sid)
		store.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
