package products

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes product persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a products repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new product and returns the persisted model.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// FindByID loads a product by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListActiveByShop returns the active products of a shop, newest first.
func (r *Repository) ListActiveByShop(ctx context.Context, shopID uuid.UUID) ([]models.Product, error) {
	var items []models.Product
	if err := r.db.WithContext(ctx).
		Where("shop_id = ? AND is_active = ?", shopID, true).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SearchActive returns active products restricted to the given shops and
// optionally filtered by category and a case-insensitive name/description
// match. A positive limit caps the result set.
func (r *Repository) SearchActive(ctx context.Context, shopIDs []uuid.UUID, category, query string, limit int) ([]models.Product, error) {
	if len(shopIDs) == 0 {
		return []models.Product{}, nil
	}

	q := r.db.WithContext(ctx).
		Where("shop_id IN ? AND is_active = ?", shopIDs, true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if trimmed := strings.TrimSpace(query); trimmed != "" {
		pattern := "%" + strings.ToLower(trimmed) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var items []models.Product
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountByShops returns the number of products across the given shops.
func (r *Repository) CountByShops(ctx context.Context, shopIDs []uuid.UUID) (int64, error) {
	if len(shopIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("shop_id IN ?", shopIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
