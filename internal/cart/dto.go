package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/internal/products"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
)

// AddItemInput is the payload to add a product to the cart.
type AddItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// ItemDTO is a cart line enriched with its product.
type ItemDTO struct {
	ID         uuid.UUID            `json:"id"`
	CustomerID uuid.UUID            `json:"customer_id"`
	ProductID  uuid.UUID            `json:"product_id"`
	Quantity   int                  `json:"quantity"`
	CreatedAt  time.Time            `json:"created_at"`
	Product    *products.ProductDTO `json:"product"`
}

// MutationResult reports the outcome of a cart write.
type MutationResult struct {
	Message string `json:"message"`
}

func itemFromModel(item *models.CartItem, product *models.Product) ItemDTO {
	return ItemDTO{
		ID:         item.ID,
		CustomerID: item.CustomerID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
		CreatedAt:  item.CreatedAt,
		Product:    products.FromModel(product),
	}
}
