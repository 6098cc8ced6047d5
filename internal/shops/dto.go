package shops

import (
	"time"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
)

// ShopDTO is the shop payload returned to clients.
type ShopDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	OwnerID      uuid.UUID `json:"owner_id"`
	District     string    `json:"district"`
	Taluk        string    `json:"taluk"`
	VillageCity  string    `json:"village_city"`
	IsOpen       bool      `json:"is_open"`
	OpeningTime  string    `json:"opening_time"`
	ClosingTime  string    `json:"closing_time"`
	Rating       float64   `json:"rating"`
	TotalRatings int       `json:"total_ratings"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateShopInput holds the validated payload to create a shop.
type CreateShopInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	District    string `json:"district" validate:"required"`
	Taluk       string `json:"taluk" validate:"required"`
	VillageCity string `json:"village_city" validate:"required"`
	OpeningTime string `json:"opening_time"`
	ClosingTime string `json:"closing_time"`
}

// ListShopsFilter narrows the public shop listing by location.
type ListShopsFilter struct {
	District    string
	Taluk       string
	VillageCity string
}

func FromModel(shop *models.Shop) *ShopDTO {
	if shop == nil {
		return nil
	}
	return &ShopDTO{
		ID:           shop.ID,
		Name:         shop.Name,
		Description:  shop.Description,
		OwnerID:      shop.OwnerID,
		District:     shop.District,
		Taluk:        shop.Taluk,
		VillageCity:  shop.VillageCity,
		IsOpen:       shop.IsOpen,
		OpeningTime:  shop.OpeningTime,
		ClosingTime:  shop.ClosingTime,
		Rating:       shop.Rating,
		TotalRatings: shop.TotalRatings,
		CreatedAt:    shop.CreatedAt,
	}
}

func fromModels(shops []models.Shop) []ShopDTO {
	out := make([]ShopDTO, 0, len(shops))
	for i := range shops {
		out = append(out, *FromModel(&shops[i]))
	}
	return out
}
