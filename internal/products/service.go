package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/internal/shops"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes catalog management and discovery operations.
type Service interface {
	CreateProduct(ctx context.Context, ownerID, shopID uuid.UUID, input CreateProductInput) (*ProductDTO, error)
	ListShopProducts(ctx context.Context, shopID uuid.UUID) ([]ProductDTO, error)
	SearchProducts(ctx context.Context, input SearchProductsInput) ([]ProductDTO, error)
}

type productRepository interface {
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	ListActiveByShop(ctx context.Context, shopID uuid.UUID) ([]models.Product, error)
	SearchActive(ctx context.Context, shopIDs []uuid.UUID, category, query string, limit int) ([]models.Product, error)
}

type shopReader interface {
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Shop, error)
	List(ctx context.Context, filter shops.ListShopsFilter) ([]models.Shop, error)
}

type service struct {
	repo  productRepository
	shops shopReader
}

// NewService constructs a product service instance.
func NewService(repo productRepository, shopRepo shopReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if shopRepo == nil {
		return nil, fmt.Errorf("shop repository required")
	}
	return &service{repo: repo, shops: shopRepo}, nil
}

// CreateProduct adds a product to a shop the caller owns. A shop that does not
// exist and a shop owned by someone else are indistinguishable to the caller.
func (s *service) CreateProduct(ctx context.Context, ownerID, shopID uuid.UUID, input CreateProductInput) (*ProductDTO, error) {
	if _, err := s.shops.FindByIDAndOwner(ctx, shopID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shop not found or not owned by user")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load shop")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if input.Price < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if input.StockQuantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock_quantity cannot be negative")
	}

	product, err := s.repo.Create(ctx, &models.Product{
		Name:          name,
		Description:   strings.TrimSpace(input.Description),
		Price:         input.Price,
		ShopID:        shopID,
		Category:      input.Category,
		StockQuantity: input.StockQuantity,
		ImageURL:      input.ImageURL,
		IsActive:      true,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
	}
	return FromModel(product), nil
}

// ListShopProducts returns the active products of a shop. Public.
func (s *service) ListShopProducts(ctx context.Context, shopID uuid.UUID) ([]ProductDTO, error) {
	items, err := s.repo.ListActiveByShop(ctx, shopID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list shop products")
	}
	return fromModels(items), nil
}

// SearchProducts finds active products in shops within the requested area.
// The shop set is resolved first, then products are matched within it.
func (s *service) SearchProducts(ctx context.Context, input SearchProductsInput) ([]ProductDTO, error) {
	areaShops, err := s.shops.List(ctx, shops.ListShopsFilter{
		District: input.District,
		Taluk:    input.Taluk,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list area shops")
	}

	shopIDs := make([]uuid.UUID, 0, len(areaShops))
	for i := range areaShops {
		shopIDs = append(shopIDs, areaShops[i].ID)
	}

	items, err := s.repo.SearchActive(ctx, shopIDs, input.Category, input.Query, input.Limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: search products")
	}
	return fromModels(items), nil
}
