package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service exposes the customer cart operations.
type Service interface {
	AddItem(ctx context.Context, customerID uuid.UUID, role enums.UserRole, input AddItemInput) (*MutationResult, error)
	GetCart(ctx context.Context, customerID uuid.UUID, role enums.UserRole) ([]ItemDTO, error)
	RemoveItem(ctx context.Context, customerID uuid.UUID, itemID uuid.UUID) (*MutationResult, error)
}

type cartRepository interface {
	Upsert(ctx context.Context, item *models.CartItem) (bool, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.CartItem, error)
	DeleteByIDAndCustomer(ctx context.Context, itemID, customerID uuid.UUID) (int64, error)
}

type productReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type service struct {
	repo     cartRepository
	products productReader
}

// NewService constructs a cart service instance.
func NewService(repo cartRepository, productRepo productReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo, products: productRepo}, nil
}

// AddItem adds the product to the customer's cart, merging quantities when the
// product is already present.
func (s *service) AddItem(ctx context.Context, customerID uuid.UUID, role enums.UserRole, input AddItemInput) (*MutationResult, error) {
	if role != enums.UserRoleCustomer {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only customers can add to cart")
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	if _, err := s.products.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	if _, err := s.repo.Upsert(ctx, &models.CartItem{
		CustomerID: customerID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: upsert cart item")
	}

	return &MutationResult{Message: "Item added to cart successfully"}, nil
}

// GetCart returns the customer's cart lines enriched with product details.
// Lines whose product has since been removed are dropped from the response.
func (s *service) GetCart(ctx context.Context, customerID uuid.UUID, role enums.UserRole) ([]ItemDTO, error) {
	if role != enums.UserRoleCustomer {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only customers can access cart")
	}

	items, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list cart items")
	}

	enriched := make([]ItemDTO, 0, len(items))
	for i := range items {
		product, err := s.products.FindByID(ctx, items[i].ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart product")
		}
		enriched = append(enriched, itemFromModel(&items[i], product))
	}
	return enriched, nil
}

// RemoveItem deletes the cart line when it belongs to the customer.
func (s *service) RemoveItem(ctx context.Context, customerID uuid.UUID, itemID uuid.UUID) (*MutationResult, error) {
	deleted, err := s.repo.DeleteByIDAndCustomer(ctx, itemID, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete cart item")
	}
	if deleted == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return &MutationResult{Message: "Item removed from cart"}, nil
}
