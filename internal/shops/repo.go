package shops

import (
	"context"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes shop persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a shops repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new shop and returns the persisted model.
func (r *Repository) Create(ctx context.Context, shop *models.Shop) (*models.Shop, error) {
	if err := r.db.WithContext(ctx).Create(shop).Error; err != nil {
		return nil, err
	}
	return shop, nil
}

// FindByID loads a shop by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// FindByIDAndOwner loads a shop only when it belongs to the given owner.
func (r *Repository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Shop, error) {
	var shop models.Shop
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// List returns shops matching the optional location filter, newest first.
func (r *Repository) List(ctx context.Context, filter ListShopsFilter) ([]models.Shop, error) {
	query := r.db.WithContext(ctx).Model(&models.Shop{})
	if filter.District != "" {
		query = query.Where("district = ?", filter.District)
	}
	if filter.Taluk != "" {
		query = query.Where("taluk = ?", filter.Taluk)
	}
	if filter.VillageCity != "" {
		query = query.Where("village_city = ?", filter.VillageCity)
	}

	var shops []models.Shop
	if err := query.Order("created_at DESC").Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// ListByOwner returns every shop owned by the user, newest first.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Shop, error) {
	var shops []models.Shop
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// ListIDsByOwner returns the IDs of every shop owned by the user.
func (r *Repository) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.Shop{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
