package cart

import (
	"context"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository exposes cart persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the cart line or, when the customer already has the product,
// atomically adds to the stored quantity. Concurrent adds for the same pair
// serialize on the unique index instead of producing duplicate rows.
func (r *Repository) Upsert(ctx context.Context, item *models.CartItem) (bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
		}),
	}).Create(item)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListByCustomer returns the customer's cart lines, oldest first.
func (r *Repository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountByCustomer returns the number of cart lines for the customer.
func (r *Repository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteByIDAndCustomer removes the cart line only when it belongs to the
// customer. Returns the number of rows removed.
func (r *Repository) DeleteByIDAndCustomer(ctx context.Context, itemID, customerID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", itemID, customerID).
		Delete(&models.CartItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// DeleteByCustomerAndProducts clears the given products from the customer's cart.
func (r *Repository) DeleteByCustomerAndProducts(ctx context.Context, customerID uuid.UUID, productIDs []uuid.UUID) error {
	if len(productIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("customer_id = ? AND product_id IN ?", customerID, productIDs).
		Delete(&models.CartItem{}).Error
}
