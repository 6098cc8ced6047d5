package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository exposes order persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an orders repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts the order together with its snapshot lines.
func (r *Repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// FindByID loads an order with its snapshot lines.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByCustomer returns the customer's orders, newest first.
func (r *Repository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByShops returns orders placed against any of the given shops, newest first.
func (r *Repository) ListByShops(ctx context.Context, shopIDs []uuid.UUID) ([]models.Order, error) {
	if len(shopIDs) == 0 {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("shop_id IN ?", shopIDs).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByDeliveryPerson returns orders assigned to the delivery person, newest first.
func (r *Repository) ListByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("delivery_person_id = ?", deliveryPersonID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus writes the new status and, for delivered orders, the delivery timestamp.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus, deliveredAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if deliveredAt != nil {
		updates["delivered_at"] = *deliveredAt
	}
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// CountByCustomer returns the number of orders placed by the customer.
func (r *Repository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	return r.count(ctx, r.db.Where("customer_id = ?", customerID))
}

// CountByShops returns the number of orders across the given shops.
func (r *Repository) CountByShops(ctx context.Context, shopIDs []uuid.UUID) (int64, error) {
	if len(shopIDs) == 0 {
		return 0, nil
	}
	return r.count(ctx, r.db.Where("shop_id IN ?", shopIDs))
}

// CountByDeliveryPerson returns the number of orders assigned to the delivery person,
// optionally restricted to the given statuses.
func (r *Repository) CountByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID, statuses ...enums.OrderStatus) (int64, error) {
	query := r.db.Where("delivery_person_id = ?", deliveryPersonID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	return r.count(ctx, query)
}

// SumTotalsByShops returns every order total across the given shops.
func (r *Repository) SumTotalsByShops(ctx context.Context, shopIDs []uuid.UUID) ([]float64, error) {
	if len(shopIDs) == 0 {
		return nil, nil
	}
	var totals []float64
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("shop_id IN ?", shopIDs).
		Pluck("total_amount", &totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *Repository) count(ctx context.Context, query *gorm.DB) (int64, error) {
	var count int64
	if err := query.WithContext(ctx).Model(&models.Order{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
