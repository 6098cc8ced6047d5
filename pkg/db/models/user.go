package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	"gorm.io/gorm"
)

// User represents the canonical identity entity. The role is fixed at
// registration and never changes afterwards.
type User struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	Email        string         `gorm:"type:text;not null;uniqueIndex:users_email_key"`
	PasswordHash string         `gorm:"column:password_hash;not null"`
	Name         string         `gorm:"column:name;not null"`
	Phone        string         `gorm:"column:phone;not null"`
	Role         enums.UserRole `gorm:"column:role;type:text;not null"`
	District     string         `gorm:"column:district;not null"`
	Taluk        string         `gorm:"column:taluk;not null"`
	VillageCity  string         `gorm:"column:village_city;not null"`
	IsActive     bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
