package integration

import (
	"context"
	"math"
	"testing"

	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/models"
	"github.com/lahsenimdlass-alt/dentalstore-api/promotions"
)

func createPromotion(t *testing.T, db *gorm.DB, title string, pct int, start, end string, active bool, productIDs ...string) {
	t.Helper()

	promo := models.Promotion{
		Title:              title,
		DiscountPercentage: pct,
		StartDate:          start,
		EndDate:            end,
		IsActive:           active,
	}
	if err := db.Create(&promo).Error; err != nil {
		t.Fatalf("Create promotion: %v", err)
	}
	for _, productID := range productIDs {
		link := models.PromotionProduct{PromotionID: promo.ID, ProductID: productID}
		if err := db.Create(&link).Error; err != nil {
			t.Fatalf("Create promotion link: %v", err)
		}
	}
}

func TestResolverAgainstPostgres(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	createPromotion(t, db, "Soldes janvier", 10, "2024-01-01", "2024-01-31", true, "p1")
	createPromotion(t, db, "Flash", 25, "2024-01-10", "2024-01-20", true, "p1")
	createPromotion(t, db, "Inactive", 50, "2024-01-01", "2024-01-31", false, "p1", "p2")

	resolver := promotions.NewResolver(promotions.NewGormSource(db))

	resolved := resolver.ResolveForProduct(ctx, "p1", 100, "2024-01-15")
	if resolved == nil {
		t.Fatal("expected a resolved promotion for p1")
	}
	if resolved.DiscountPercentage != 25 {
		t.Errorf("DiscountPercentage = %d, want 25", resolved.DiscountPercentage)
	}
	if math.Abs(resolved.DiscountedPrice-75) > 1e-9 {
		t.Errorf("DiscountedPrice = %v, want 75", resolved.DiscountedPrice)
	}

	batch := resolver.ResolveForProducts(ctx, []string{"p1", "p2"}, "2024-01-15")
	if len(batch) != 1 {
		t.Fatalf("len(batch) = %d, want 1", len(batch))
	}
	if batch["p1"].DiscountPercentage != 25 {
		t.Errorf("batch p1 discount = %d, want 25", batch["p1"].DiscountPercentage)
	}
	if _, ok := batch["p2"]; ok {
		t.Error("p2 only carries an inactive promotion and must be absent")
	}
}

func TestResolverHandlesDanglingAssociation(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	link := models.PromotionProduct{PromotionID: "gone", ProductID: "p1"}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("Create dangling link: %v", err)
	}

	resolver := promotions.NewResolver(promotions.NewGormSource(db))
	if got := resolver.ResolveForProduct(context.Background(), "p1", 100, "2024-01-15"); got != nil {
		t.Errorf("got %+v, want nil for dangling association", got)
	}
}
