package auth

import "github.com/orderbuddy/orderbuddy-backend/internal/users"

// LoginRequest carries the credential payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest contains the payload required to onboard a new user.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	UserType    string `json:"user_type" validate:"required"`
	District    string `json:"district" validate:"required"`
	Taluk       string `json:"taluk" validate:"required"`
	VillageCity string `json:"village_city" validate:"required"`
}

// AuthResponse is returned by both register and login with a fresh token.
type AuthResponse struct {
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    *users.UserDTO `json:"user"`
}
