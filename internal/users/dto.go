package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/orderbuddy/orderbuddy-backend/pkg/db/models"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID          uuid.UUID      `json:"id"`
	Email       string         `json:"email"`
	Name        string         `json:"name"`
	Phone       string         `json:"phone"`
	Role        enums.UserRole `json:"user_type"`
	District    string         `json:"district"`
	Taluk       string         `json:"taluk"`
	VillageCity string         `json:"village_city"`
	IsActive    bool           `json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email        string
	PasswordHash string
	Name         string
	Phone        string
	Role         enums.UserRole
	District     string
	Taluk        string
	VillageCity  string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Phone:       u.Phone,
		Role:        u.Role,
		District:    u.District,
		Taluk:       u.Taluk,
		VillageCity: u.VillageCity,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Name:         c.Name,
		Phone:        c.Phone,
		Role:         c.Role,
		District:     c.District,
		Taluk:        c.Taluk,
		VillageCity:  c.VillageCity,
		IsActive:     true,
	}
}
