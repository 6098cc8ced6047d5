package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
)

// ProductDTO is the catalog payload returned to clients.
type ProductDTO struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	ShopID        uuid.UUID `json:"shop_id"`
	Category      string    `json:"category"`
	StockQuantity int       `json:"stock_quantity"`
	ImageURL      string    `json:"image_url"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"gte=0"`
	Category      string  `json:"category" validate:"required"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	ImageURL      string  `json:"image_url"`
}

// SearchProductsInput narrows the catalog search. Limit caps the result set,
// zero means no cap.
type SearchProductsInput struct {
	Query    string
	District string
	Taluk    string
	Category string
	Limit    int
}

func FromModel(product *models.Product) *ProductDTO {
	if product == nil {
		return nil
	}
	return &ProductDTO{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		ShopID:        product.ShopID,
		Category:      product.Category,
		StockQuantity: product.StockQuantity,
		ImageURL:      product.ImageURL,
		IsActive:      product.IsActive,
		CreatedAt:     product.CreatedAt,
	}
}

func fromModels(items []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(items))
	for i := range items {
		out = append(out, *FromModel(&items[i]))
	}
	return out
}
