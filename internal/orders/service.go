package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
	"gorm.io/gorm"
)

// Demo checkout flows use a fixed OTP instead of a delivery-time challenge.
const demoOTP = "1234"

// Service exposes order placement and fulfillment operations.
type Service interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID, role enums.UserRole, input CreateOrderInput) (*MutationResult, error)
	ListOrders(ctx context.Context, userID uuid.UUID, role enums.UserRole) ([]OrderDTO, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, role enums.UserRole, orderID uuid.UUID, input UpdateStatusInput) (*MutationResult, error)
}

type orderRepository interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error)
	ListByShops(ctx context.Context, shopIDs []uuid.UUID) ([]models.Order, error)
	ListByDeliveryPerson(ctx context.Context, deliveryPersonID uuid.UUID) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus, deliveredAt *time.Time) error
}

type cartCleaner interface {
	DeleteByCustomerAndProducts(ctx context.Context, customerID uuid.UUID, productIDs []uuid.UUID) error
}

type shopReader interface {
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Shop, error)
	ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
}

type service struct {
	repo  orderRepository
	cart  cartCleaner
	shops shopReader
}

// NewService constructs an order service instance.
func NewService(repo orderRepository, cartRepo cartCleaner, shopRepo shopReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if cartRepo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if shopRepo == nil {
		return nil, fmt.Errorf("shop repository required")
	}
	return &service{repo: repo, cart: cartRepo, shops: shopRepo}, nil
}

// CreateOrder places an order with immutable snapshot lines and clears the
// ordered products from the customer's cart.
func (s *service) CreateOrder(ctx context.Context, customerID uuid.UUID, role enums.UserRole, input CreateOrderInput) (*MutationResult, error) {
	if role != enums.UserRoleCustomer {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only customers can place orders")
	}
	if len(input.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}
	if strings.TrimSpace(input.DeliveryAddress) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery_address is required")
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	productIDs := make([]uuid.UUID, 0, len(input.Items))
	for _, line := range input.Items {
		if line.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be positive")
		}
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
			Name:      line.Name,
		})
		productIDs = append(productIDs, line.ProductID)
	}

	order, err := s.repo.Create(ctx, &models.Order{
		CustomerID:      customerID,
		ShopID:          input.ShopID,
		Items:           items,
		TotalAmount:     input.TotalAmount,
		Status:          enums.OrderStatusPending,
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		OTP:             demoOTP,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order")
	}

	if err := s.cart.DeleteByCustomerAndProducts(ctx, customerID, productIDs); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: clear ordered cart items")
	}

	return &MutationResult{
		Message: "Order placed successfully",
		Order:   FromModel(order),
	}, nil
}

// ListOrders returns the orders visible to the caller based on their role:
// customers see their own orders, shop owners see orders against their shops,
// delivery persons see their assigned orders.
func (s *service) ListOrders(ctx context.Context, userID uuid.UUID, role enums.UserRole) ([]OrderDTO, error) {
	var (
		found []models.Order
		err   error
	)
	switch role {
	case enums.UserRoleCustomer:
		found, err = s.repo.ListByCustomer(ctx, userID)
	case enums.UserRoleShopOwner:
		var shopIDs []uuid.UUID
		shopIDs, err = s.shops.ListIDsByOwner(ctx, userID)
		if err == nil {
			found, err = s.repo.ListByShops(ctx, shopIDs)
		}
	case enums.UserRoleDeliveryPerson:
		found, err = s.repo.ListByDeliveryPerson(ctx, userID)
	default:
		return []OrderDTO{}, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list orders")
	}
	return fromModels(found), nil
}

// UpdateStatus applies a status transition. Only the owner of the order's shop
// or the assigned delivery person may update it. Delivered orders record the
// delivery timestamp.
func (s *service) UpdateStatus(ctx context.Context, userID uuid.UUID, role enums.UserRole, orderID uuid.UUID, input UpdateStatusInput) (*MutationResult, error) {
	status, err := enums.ParseOrderStatus(input.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load order")
	}

	canUpdate := false
	switch role {
	case enums.UserRoleShopOwner:
		if _, err := s.shops.FindByIDAndOwner(ctx, order.ShopID, userID); err == nil {
			canUpdate = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load order shop")
		}
	case enums.UserRoleDeliveryPerson:
		if order.DeliveryPersonID != nil && *order.DeliveryPersonID == userID {
			canUpdate = true
		}
	}
	if !canUpdate {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to update this order")
	}

	var deliveredAt *time.Time
	if status == enums.OrderStatusDelivered {
		now := time.Now().UTC()
		deliveredAt = &now
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status, deliveredAt); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update order status")
	}

	return &MutationResult{Message: "Order status updated successfully"}, nil
}
