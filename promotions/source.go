package promotions

import (
	"context"

	"gorm.io/gorm"

	"github.com/lahsenimdlass-alt/dentalstore-api/models"
)

// GormSource reads the promotion_products association joined with its
// promotions. A missing promotion row leaves the association dangling, which
// the resolver treats as no promotion.
type GormSource struct {
	db *gorm.DB
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

func (s *GormSource) PromotionsForProducts(ctx context.Context, productIDs []string) ([]ProductPromotion, error) {
	var links []models.PromotionProduct
	if err := s.db.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}

	promoIDs := make([]string, 0, len(links))
	for _, link := range links {
		promoIDs = append(promoIDs, link.PromotionID)
	}

	var promos []models.Promotion
	if err := s.db.WithContext(ctx).
		Where("id IN ?", promoIDs).
		Find(&promos).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]*Promotion, len(promos))
	for i := range promos {
		p := promos[i]
		byID[p.ID] = &Promotion{
			ID:                 p.ID,
			Title:              p.Title,
			DiscountPercentage: p.DiscountPercentage,
			StartDate:          normalizeDate(p.StartDate),
			EndDate:            normalizeDate(p.EndDate),
			IsActive:           p.IsActive,
		}
	}

	rows := make([]ProductPromotion, 0, len(links))
	for _, link := range links {
		rows = append(rows, ProductPromotion{
			ProductID: link.ProductID,
			Promotion: byID[link.PromotionID], // nil when the promotion row is gone
		})
	}
	return rows, nil
}

// normalizeDate trims DATE columns that scan back as full timestamps
// ("2024-01-15T00:00:00Z") down to the YYYY-MM-DD prefix.
func normalizeDate(d string) string {
	if len(d) > 10 {
		return d[:10]
	}
	return d
}
