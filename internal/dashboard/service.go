package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Stats is the role-dependent dashboard payload.
type Stats struct {
	UserType          enums.UserRole `json:"user_type"`
	TotalShops        *int64         `json:"total_shops,omitempty"`
	TotalProducts     *int64         `json:"total_products,omitempty"`
	TotalOrders       *int64         `json:"total_orders,omitempty"`
	TotalRevenue      *string        `json:"total_revenue,omitempty"`
	CartItems         *int64         `json:"cart_items,omitempty"`
	TotalDeliveries   *int64         `json:"total_deliveries,omitempty"`
	PendingDeliveries *int64         `json:"pending_deliveries,omitempty"`
}

// Service aggregates per-role usage statistics.
type Service interface {
	GetStats(ctx context.Context, userID uuid.UUID, role enums.UserRole) (*Stats, error)
}

type shopCounter interface {
	ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
}

type productCounter interface {
	CountByShops(ctx context.Context, shopIDs []uuid.UUID) (int64, error)
}

type orderCounter interface {
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
	CountByShops(ctx context.Context, shopIDs []uuid.UUID) (int64, error)
	CountByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID, statuses ...enums.OrderStatus) (int64, error)
	SumTotalsByShops(ctx context.Context, shopIDs []uuid.UUID) ([]float64, error)
}

type cartCounter interface {
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)
}

type service struct {
	shops    shopCounter
	products productCounter
	orders   orderCounter
	cart     cartCounter
}

// NewService constructs a dashboard service instance.
func NewService(shops shopCounter, products productCounter, orders orderCounter, cart cartCounter) (Service, error) {
	if shops == nil {
		return nil, fmt.Errorf("shop repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if cart == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	return &service{shops: shops, products: products, orders: orders, cart: cart}, nil
}

// GetStats returns the dashboard numbers for the caller's role.
func (s *service) GetStats(ctx context.Context, userID uuid.UUID, role enums.UserRole) (*Stats, error) {
	switch role {
	case enums.UserRoleShopOwner:
		return s.shopOwnerStats(ctx, userID)
	case enums.UserRoleCustomer:
		return s.customerStats(ctx, userID)
	case enums.UserRoleDeliveryPerson:
		return s.deliveryStats(ctx, userID)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "unknown user role")
	}
}

func (s *service) shopOwnerStats(ctx context.Context, ownerID uuid.UUID) (*Stats, error) {
	shopIDs, err := s.shops.ListIDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list owned shops")
	}

	totalShops := int64(len(shopIDs))
	totalProducts, err := s.products.CountByShops(ctx, shopIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count products")
	}
	totalOrders, err := s.orders.CountByShops(ctx, shopIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count orders")
	}

	// Order totals are summed with decimal arithmetic so fractional rupee
	// amounts do not drift across thousands of orders.
	totals, err := s.orders.SumTotalsByShops(ctx, shopIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: sum order totals")
	}
	revenue := decimal.Zero
	for _, total := range totals {
		revenue = revenue.Add(decimal.NewFromFloat(total))
	}
	revenueStr := revenue.StringFixed(2)

	return &Stats{
		UserType:      enums.UserRoleShopOwner,
		TotalShops:    &totalShops,
		TotalProducts: &totalProducts,
		TotalOrders:   &totalOrders,
		TotalRevenue:  &revenueStr,
	}, nil
}

func (s *service) customerStats(ctx context.Context, customerID uuid.UUID) (*Stats, error) {
	totalOrders, err := s.orders.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count orders")
	}
	cartItems, err := s.cart.CountByCustomer(ctx, customerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count cart items")
	}
	return &Stats{
		UserType:    enums.UserRoleCustomer,
		TotalOrders: &totalOrders,
		CartItems:   &cartItems,
	}, nil
}

func (s *service) deliveryStats(ctx context.Context, deliveryPersonID uuid.UUID) (*Stats, error) {
	totalDeliveries, err := s.orders.CountByDeliveryPerson(ctx, deliveryPersonID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count deliveries")
	}
	pendingDeliveries, err := s.orders.CountByDeliveryPerson(ctx, deliveryPersonID,
		enums.OrderStatusPacked, enums.OrderStatusOnTheWay)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count pending deliveries")
	}
	return &Stats{
		UserType:          enums.UserRoleDeliveryPerson,
		TotalDeliveries:   &totalDeliveries,
		PendingDeliveries: &pendingDeliveries,
	}, nil
}
