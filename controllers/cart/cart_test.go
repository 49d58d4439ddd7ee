package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lahsenimdlass-alt/dentalstore-api/cart"
)

func newTestRouter(m *cart.Manager, session string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if session != "" {
			c.Set("user_id", session)
		}
		c.Next()
	})
	r.GET("/cart", GetCart(m))
	r.PUT("/cart/items/:product_id", UpdateItemQuantity(m))
	r.DELETE("/cart/items/:product_id", RemoveItem(m))
	r.DELETE("/cart", ClearCart(m))
	return r
}

type cartBody struct {
	Items      []cart.Item `json:"items"`
	TotalItems int         `json:"total_items"`
	TotalPrice float64     `json:"total_price"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, cartBody) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed cartBody
	_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	return w, parsed
}

func TestGetCartEmpty(t *testing.T) {
	m := cart.NewManager(cart.NewMemoryPersister())
	r := newTestRouter(m, "guest_test")

	w, body := doJSON(t, r, http.MethodGet, "/cart", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body.TotalItems != 0 || len(body.Items) != 0 {
		t.Errorf("expected empty cart, got %+v", body)
	}
}

func TestUpdateQuantityThroughHandlerClamps(t *testing.T) {
	m := cart.NewManager(cart.NewMemoryPersister())
	m.Get("guest_test").AddItem(cart.ItemInput{ID: "p1", Title: "Scaler", Price: 120})
	r := newTestRouter(m, "guest_test")

	w, body := doJSON(t, r, http.MethodPut, "/cart/items/p1", gin.H{"quantity": -3})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if len(body.Items) != 1 || body.Items[0].Quantity != 1 {
		t.Errorf("expected quantity clamped to 1, got %+v", body.Items)
	}
}

func TestRemoveAndClearThroughHandlers(t *testing.T) {
	m := cart.NewManager(cart.NewMemoryPersister())
	store := m.Get("guest_test")
	store.AddItem(cart.ItemInput{ID: "p1", Title: "Scaler", Price: 120})
	store.AddItem(cart.ItemInput{ID: "p2", Title: "Curing Light", Price: 450})
	r := newTestRouter(m, "guest_test")

	w, body := doJSON(t, r, http.MethodDelete, "/cart/items/p1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("remove status = %d, want 200", w.Code)
	}
	if len(body.Items) != 1 || body.Items[0].ID != "p2" {
		t.Errorf("expected only p2 left, got %+v", body.Items)
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/cart", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("clear status = %d, want 200", w.Code)
	}
	if got := store.TotalItems(); got != 0 {
		t.Errorf("TotalItems after clear = %d, want 0", got)
	}
}

func TestMissingSessionIsUnauthorized(t *testing.T) {
	m := cart.NewManager(cart.NewMemoryPersister())
	r := newTestRouter(m, "")

	w, _ := doJSON(t, r, http.MethodGet, "/cart", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
