package promotions

import (
	"context"
	"log"
	"time"
)

// Promotion is the read-model view of a discount campaign. Dates are ISO
// "YYYY-MM-DD" strings so the inclusive window check stays a plain string
// comparison.
type Promotion struct {
	ID                 string
	Title              string
	DiscountPercentage int
	StartDate          string
	EndDate            string
	IsActive           bool
}

// ProductPromotion is one association row. Promotion is nil for dangling
// associations, which resolve the same as no promotion at all.
type ProductPromotion struct {
	ProductID string
	Promotion *Promotion
}

// Source fetches the promotion associations for a set of product ids.
type Source interface {
	PromotionsForProducts(ctx context.Context, productIDs []string) ([]ProductPromotion, error)
}

// Resolved is the outcome of applying the best effective promotion to one
// product's price. DiscountedPrice is not rounded here; two-decimal display
// is the caller's concern.
type Resolved struct {
	DiscountPercentage int     `json:"discount_percentage"`
	DiscountedPrice    float64 `json:"discounted_price"`
	OriginalPrice      float64 `json:"original_price"`
	PromotionTitle     string  `json:"promotion_title"`
}

// Applied is the batch-variant result; the caller owns the price math since
// original prices differ per call site.
type Applied struct {
	DiscountPercentage int    `json:"discount_percentage"`
	PromotionTitle     string `json:"promotion_title"`
}

// Resolver picks the currently-effective discount for products. It never
// mutates anything and degrades to "no promotion" on fetch errors.
type Resolver struct {
	source Source
}

func NewResolver(source Source) *Resolver {
	return &Resolver{source: source}
}

// Today is the UTC calendar date used for promotion evaluation.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// effective reports whether the promotion is active and today falls inside
// its inclusive date window.
func effective(p *Promotion, today string) bool {
	return p != nil && p.IsActive && p.StartDate <= today && today <= p.EndDate
}

// ResolveForProduct returns the best effective promotion for one product
// applied to originalPrice, or nil when none applies. The strictly highest
// discount wins; ties keep the first association seen.
func (r *Resolver) ResolveForProduct(ctx context.Context, productID string, originalPrice float64, today string) *Resolved {
	if productID == "" {
		return nil
	}

	rows, err := r.source.PromotionsForProducts(ctx, []string{productID})
	if err != nil {
		log.Printf("⚠️ Promotion lookup failed for product %s: %v", productID, err)
		return nil
	}

	var best *Promotion
	for _, row := range rows {
		if row.ProductID != productID || !effective(row.Promotion, today) {
			continue
		}
		if best == nil || row.Promotion.DiscountPercentage > best.DiscountPercentage {
			best = row.Promotion
		}
	}
	if best == nil {
		return nil
	}

	return &Resolved{
		DiscountPercentage: best.DiscountPercentage,
		DiscountedPrice:    originalPrice * (1 - float64(best.DiscountPercentage)/100),
		OriginalPrice:      originalPrice,
		PromotionTitle:     best.Title,
	}
}

// ResolveForProducts applies the same filter-and-max-pick rule to each
// product independently. Products with no effective promotion are absent
// from the result map.
func (r *Resolver) ResolveForProducts(ctx context.Context, productIDs []string, today string) map[string]Applied {
	result := make(map[string]Applied)
	if len(productIDs) == 0 {
		return result
	}

	rows, err := r.source.PromotionsForProducts(ctx, productIDs)
	if err != nil {
		log.Printf("⚠️ Promotion lookup failed for %d products: %v", len(productIDs), err)
		return result
	}

	for _, row := range rows {
		if !effective(row.Promotion, today) {
			continue
		}
		current, ok := result[row.ProductID]
		if !ok || row.Promotion.DiscountPercentage > current.DiscountPercentage {
			result[row.ProductID] = Applied{
				DiscountPercentage: row.Promotion.DiscountPercentage,
				PromotionTitle:     row.Promotion.Title,
			}
		}
	}
	return result
}
