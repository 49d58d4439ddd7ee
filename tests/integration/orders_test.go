package integration

import (
	"math"
	"testing"

	orderControllers "github.com/lahsenimdlass-alt/dentalstore-api/controllers/order"
	"github.com/lahsenimdlass-alt/dentalstore-api/models"
)

func TestPlaceOrderRecomputesTotal(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	req := orderControllers.PlaceOrderRequest{
		CustomerName:  "Dr. Amina Alaoui",
		CustomerEmail: "amina@example.com",
		CustomerPhone: "0600000000",
		Address:       "12 Rue des Orangers",
		City:          "Casablanca",
		TotalAmount:   1, // client figure is ignored
		Items: []orderControllers.OrderItemInput{
			{ProductID: "p1", ProductTitle: "Scaler", Quantity: 2, UnitPrice: 120},
			{ProductID: "p2", ProductTitle: "Curing Light", Quantity: 1, UnitPrice: 450},
		},
	}

	order, err := orderControllers.PlaceOrder(db, req)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if math.Abs(order.TotalAmount-690) > 1e-9 {
		t.Errorf("TotalAmount = %v, want 690", order.TotalAmount)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("Status = %q, want pending", order.Status)
	}
	if order.OrderRef == "" {
		t.Error("expected a generated order ref")
	}

	var stored models.Order
	if err := db.Preload("Items").First(&stored, "id = ?", order.ID).Error; err != nil {
		t.Fatalf("load stored order: %v", err)
	}
	if len(stored.Items) != 2 {
		t.Fatalf("len(stored.Items) = %d, want 2", len(stored.Items))
	}
	byProduct := make(map[string]models.OrderItem)
	for _, item := range stored.Items {
		byProduct[item.ProductID] = item
	}
	if item := byProduct["p1"]; item.ProductTitle != "Scaler" || item.Quantity != 2 {
		t.Errorf("stored p1 = %+v, want Scaler x2", item)
	}
}
