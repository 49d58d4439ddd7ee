package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/models"
)

type OrderItemInput struct {
	ProductID    string  `json:"product_id" binding:"required"`
	ProductTitle string  `json:"product_title" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
	UnitPrice    float64 `json:"unit_price" binding:"required,gt=0"`
}

// PlaceOrderRequest is the checkout snapshot the storefront submits. The
// client's total_amount is accepted for shape compatibility but the stored
// total is recomputed from the line items.
type PlaceOrderRequest struct {
	CustomerName  string           `json:"customer_name" binding:"required"`
	CustomerEmail string           `json:"customer_email" binding:"required,email"`
	CustomerPhone string           `json:"customer_phone"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	TotalAmount   float64          `json:"total_amount"`
	Items         []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder stores the checkout snapshot. It never touches the session's
// cart: clearing the cart after a successful order is the caller's move.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (*models.Order, error) {
	var total float64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		total += item.UnitPrice * float64(item.Quantity)
		items = append(items, models.OrderItem{
			ProductID:    item.ProductID,
			ProductTitle: item.ProductTitle,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	order := models.Order{
		OrderRef:      generateOrderRef(),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		City:          req.City,
		TotalAmount:   total,
		Status:        models.OrderStatusPending,
		Items:         items,
		CreatedAt:     time.Now(),
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		broadcastNewOrder(*order)

		c.JSON(http.StatusCreated, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:orderID/items
func GetOrderItemsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, order.Items)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", orderID).Delete(&models.Order{}).Error; err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
	}
}
