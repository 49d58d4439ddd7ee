package promotions

import (
	"context"
	"errors"
	"math"
	"testing"
)

type fakeSource struct {
	rows []ProductPromotion
	err  error
}

func (f *fakeSource) PromotionsForProducts(ctx context.Context, productIDs []string) ([]ProductPromotion, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []ProductPromotion
	for _, row := range f.rows {
		for _, id := range productIDs {
			if row.ProductID == id {
				out = append(out, row)
			}
		}
	}
	return out, nil
}

func promo(id, title string, pct int, start, end string, active bool) *Promotion {
	return &Promotion{
		ID:                 id,
		Title:              title,
		DiscountPercentage: pct,
		StartDate:          start,
		EndDate:            end,
		IsActive:           active,
	}
}

func TestResolveForProductPicksHighestDiscount(t *testing.T) {
	src := &fakeSource{rows: []ProductPromotion{
		{ProductID: "p1", Promotion: promo("a", "Soldes janvier", 10, "2024-01-01", "2024-01-31", true)},
		{ProductID: "p1", Promotion: promo("b", "Flash", 25, "2024-01-10", "2024-01-20", true)},
	}}
	r := NewResolver(src)

	got := r.ResolveForProduct(context.Background(), "p1", 100, "2024-01-15")
	if got == nil {
		t.Fatal("expected a resolved promotion")
	}
	if got.DiscountPercentage != 25 {
		t.Errorf("DiscountPercentage = %d, want 25", got.DiscountPercentage)
	}
	if math.Abs(got.DiscountedPrice-75) > 1e-9 {
		t.Errorf("DiscountedPrice = %v, want 75", got.DiscountedPrice)
	}
	if got.OriginalPrice != 100 {
		t.Errorf("OriginalPrice = %v, want 100", got.OriginalPrice)
	}
	if got.PromotionTitle != "Flash" {
		t.Errorf("PromotionTitle = %q, want Flash", got.PromotionTitle)
	}
}

func TestResolveForProductTieKeepsFirstSeen(t *testing.T) {
	src := &fakeSource{rows: []ProductPromotion{
		{ProductID: "p1", Promotion: promo("a", "First", 20, "2024-01-01", "2024-01-31", true)},
		{ProductID: "p1", Promotion: promo("b", "Second", 20, "2024-01-01", "2024-01-31", true)},
	}}
	r := NewResolver(src)

	got := r.ResolveForProduct(context.Background(), "p1", 50, "2024-01-15")
	if got == nil || got.PromotionTitle != "First" {
		t.Errorf("got %+v, want the first-seen promotion on a tie", got)
	}
}

func TestInactivePromotionNeverSelected(t *testing.T) {
	src := &fakeSource{rows: []ProductPromotion{
		{ProductID: "p1", Promotion: promo("a", "Off", 50, "2024-01-01", "2024-01-31", false)},
	}}
	r := NewResolver(src)

	if got := r.ResolveForProduct(context.Background(), "p1", 100, "2024-01-15"); got != nil {
		t.Errorf("got %+v, want nil for inactive promotion", got)
	}
}

func TestDateWindowIsInclusive(t *testing.T) {
	src := &fakeSource{rows: []ProductPromotion{
		{ProductID: "p1", Promotion: promo("a", "Window", 10, "2024-01-10", "2024-01-20", true)},
	}}
	r := NewResolver(src)
	ctx := context.Background()

	for _, today := range []string{"2024-01-10", "2024-01-20"} {
		if got := r.ResolveForProduct(ctx, "p1", 100, today); got == nil {
			t.Errorf("today=%s: expected promotion on inclusive bound", today)
		}
	}
	for _, today := range []string{"2024-01-09", "2024-01-21"} {
		if got := r.ResolveForProduct(ctx, "p1", 100, today); got != nil {
			t.Errorf("today=%s: got %+v, want nil outside window", today, got)
		}
	}
}

func TestDanglingAssociationResolvesToNothing(t *testing.T) {
	src := &fakeSource{rows: []ProductPromotion{
		{ProductID: "p1", Promotion: nil},
	}}
	r := NewResolver(src)

	if got := r.ResolveForProduct(context.Background(), "p1", 100, "2024-01-15"); got != nil {
		t.Errorf("got %+v, want nil for dangling association", got)
	}
}

func TestFetchErrorResolvesToNothing(t *testing.T) {
	r := NewResolver(&fakeSource{err: errors.New("connection refused")})

	if got := r.ResolveForProduct(context.Background(), "p1", 100, "2024-01-15"); got != nil {
		t.Errorf("got %+v, want nil on fetch error", got)
	}
	if got := r.ResolveForProducts(context.Background(), []string{"p1"}, "2024-01-15"); len(got) != 0 {
		t.Errorf("got %v, want empty map on fetch error", got)
	}
}

func TestResolveForProductsOmitsUnpromotedProducts(t *testing.T) {
	src := &fakeSource{rows: []ProductPromotion{
		{ProductID: "p1", Promotion: promo("a", "Soldes", 15, "2024-01-01", "2024-01-31", true)},
		{ProductID: "p2", Promotion: promo("b", "Expired", 30, "2023-01-01", "2023-01-31", true)},
	}}
	r := NewResolver(src)

	got := r.ResolveForProducts(context.Background(), []string{"p1", "p2"}, "2024-01-15")
	if len(got) != 1 {
		t.Fatalf("len(result) = %d, want 1", len(got))
	}
	applied, ok := got["p1"]
	if !ok {
		t.Fatal("p1 missing from result map")
	}
	if applied.DiscountPercentage != 15 || applied.PromotionTitle != "Soldes" {
		t.Errorf("p1 = %+v, want 15%% Soldes", applied)
	}
	if _, ok := got["p2"]; ok {
		t.Error("p2 should be absent, not mapped to a zero value")
	}
}

func TestResolveForProductsPicksBestPerProduct(t *testing.T) {
	src := &fakeSource{rows: []ProductPromotion{
		{ProductID: "p1", Promotion: promo("a", "Small", 5, "2024-01-01", "2024-01-31", true)},
		{ProductID: "p1", Promotion: promo("b", "Big", 40, "2024-01-01", "2024-01-31", true)},
		{ProductID: "p2", Promotion: promo("c", "Mid", 20, "2024-01-01", "2024-01-31", true)},
	}}
	r := NewResolver(src)

	got := r.ResolveForProducts(context.Background(), []string{"p1", "p2"}, "2024-01-15")
	if got["p1"].DiscountPercentage != 40 {
		t.Errorf("p1 discount = %d, want 40", got["p1"].DiscountPercentage)
	}
	if got["p2"].DiscountPercentage != 20 {
		t.Errorf("p2 discount = %d, want 20", got["p2"].DiscountPercentage)
	}
}

func TestResolveForProductsEmptyInput(t *testing.T) {
	r := NewResolver(&fakeSource{})

	got := r.ResolveForProducts(context.Background(), nil, "2024-01-15")
	if len(got) != 0 {
		t.Errorf("got %v, want empty map", got)
	}
}
