package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a shop listing. ShopID is immutable after creation.
type Product struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	Description   string    `gorm:"column:description;not null"`
	Price         float64   `gorm:"column:price;not null"`
	ShopID        uuid.UUID `gorm:"column:shop_id;type:uuid;not null;index"`
	Category      string    `gorm:"column:category;not null"`
	StockQuantity int       `gorm:"column:stock_quantity;not null;default:0"`
	ImageURL      string    `gorm:"column:image_url;not null;default:''"`
	IsActive      bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
