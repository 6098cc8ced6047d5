package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	"gorm.io/gorm"
)

// Order is an immutable snapshot of a purchase. Line items capture the price
// and name at creation time, so later product edits never change an order.
type Order struct {
	ID               uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	CustomerID       uuid.UUID         `gorm:"column:customer_id;type:uuid;not null;index"`
	ShopID           uuid.UUID         `gorm:"column:shop_id;type:uuid;not null;index"`
	DeliveryPersonID *uuid.UUID        `gorm:"column:delivery_person_id;type:uuid;index"`
	Items            []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalAmount      float64           `gorm:"column:total_amount;not null"`
	Status           enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	DeliveryAddress  string            `gorm:"column:delivery_address;not null"`
	OTP              string            `gorm:"column:otp;not null"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime"`
	DeliveredAt      *time.Time        `gorm:"column:delivered_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem is a single snapshotted line of an order.
type OrderItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Quantity  int       `gorm:"column:quantity;not null"`
	UnitPrice float64   `gorm:"column:unit_price;not null"`
	Name      string    `gorm:"column:name;not null"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
