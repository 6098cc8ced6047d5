package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
)

// OrderItemInput is one snapshot line of a new order.
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	Price     float64   `json:"price" validate:"gte=0"`
	Name      string    `json:"name" validate:"required"`
}

// CreateOrderInput is the payload to place an order.
type CreateOrderInput struct {
	ShopID          uuid.UUID        `json:"shop_id" validate:"required"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	TotalAmount     float64          `json:"total_amount" validate:"gte=0"`
	DeliveryAddress string           `json:"delivery_address" validate:"required"`
}

// UpdateStatusInput carries the requested status transition.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemDTO is a snapshot line returned to clients.
type OrderItemDTO struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Name      string    `json:"name"`
}

// OrderDTO is the order payload returned to clients.
type OrderDTO struct {
	ID               uuid.UUID         `json:"id"`
	CustomerID       uuid.UUID         `json:"customer_id"`
	ShopID           uuid.UUID         `json:"shop_id"`
	DeliveryPersonID *uuid.UUID        `json:"delivery_person_id,omitempty"`
	Items            []OrderItemDTO    `json:"items"`
	TotalAmount      float64           `json:"total_amount"`
	Status           enums.OrderStatus `json:"status"`
	DeliveryAddress  string            `json:"delivery_address"`
	OTP              string            `json:"otp"`
	CreatedAt        time.Time         `json:"created_at"`
	DeliveredAt      *time.Time        `json:"delivered_at,omitempty"`
}

// MutationResult reports the outcome of an order write.
type MutationResult struct {
	Message string    `json:"message"`
	Order   *OrderDTO `json:"order,omitempty"`
}

func FromModel(order *models.Order) *OrderDTO {
	if order == nil {
		return nil
	}
	items := make([]OrderItemDTO, 0, len(order.Items))
	for i := range order.Items {
		item := order.Items[i]
		items = append(items, OrderItemDTO{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.UnitPrice,
			Name:      item.Name,
		})
	}
	return &OrderDTO{
		ID:               order.ID,
		CustomerID:       order.CustomerID,
		ShopID:           order.ShopID,
		DeliveryPersonID: order.DeliveryPersonID,
		Items:            items,
		TotalAmount:      order.TotalAmount,
		Status:           order.Status,
		DeliveryAddress:  order.DeliveryAddress,
		OTP:              order.OTP,
		CreatedAt:        order.CreatedAt,
		DeliveredAt:      order.DeliveredAt,
	}
}

func fromModels(orders []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, *FromModel(&orders[i]))
	}
	return out
}
