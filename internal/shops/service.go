package shops

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
)

const (
	defaultOpeningTime = "09:00"
	defaultClosingTime = "21:00"
)

// Service exposes shop management operations.
type Service interface {
	CreateShop(ctx context.Context, ownerID uuid.UUID, role enums.UserRole, input CreateShopInput) (*ShopDTO, error)
	ListShops(ctx context.Context, filter ListShopsFilter) ([]ShopDTO, error)
	ListMyShops(ctx context.Context, ownerID uuid.UUID, role enums.UserRole) ([]ShopDTO, error)
}

type shopRepository interface {
	Create(ctx context.Context, shop *models.Shop) (*models.Shop, error)
	List(ctx context.Context, filter ListShopsFilter) ([]models.Shop, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Shop, error)
}

type service struct {
	repo shopRepository
}

// NewService constructs a shop service instance.
func NewService(repo shopRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shop repository required")
	}
	return &service{repo: repo}, nil
}

// CreateShop creates a shop owned by the caller. Only shop owners may create shops.
func (s *service) CreateShop(ctx context.Context, ownerID uuid.UUID, role enums.UserRole, input CreateShopInput) (*ShopDTO, error) {
	if role != enums.UserRoleShopOwner {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only shop owners can create shops")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "shop name is required")
	}

	openingTime := input.OpeningTime
	if openingTime == "" {
		openingTime = defaultOpeningTime
	}
	closingTime := input.ClosingTime
	if closingTime == "" {
		closingTime = defaultClosingTime
	}

	shop, err := s.repo.Create(ctx, &models.Shop{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		OwnerID:     ownerID,
		District:    input.District,
		Taluk:       input.Taluk,
		VillageCity: input.VillageCity,
		IsOpen:      true,
		OpeningTime: openingTime,
		ClosingTime: closingTime,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert shop")
	}
	return FromModel(shop), nil
}

// ListShops returns shops matching the optional location filter. Public.
func (s *service) ListShops(ctx context.Context, filter ListShopsFilter) ([]ShopDTO, error) {
	shops, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list shops")
	}
	return fromModels(shops), nil
}

// ListMyShops returns the caller's shops. Only shop owners may call this.
func (s *service) ListMyShops(ctx context.Context, ownerID uuid.UUID, role enums.UserRole) ([]ShopDTO, error) {
	if role != enums.UserRoleShopOwner {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only shop owners can access this")
	}
	shops, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list owned shops")
	}
	return fromModels(shops), nil
}
