package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shop represents a storefront registered by a shop owner. Its location is
// independent of the owner's own location.
type Shop struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Description  string    `gorm:"column:description;not null"`
	OwnerID      uuid.UUID `gorm:"column:owner_id;type:uuid;not null;index"`
	District     string    `gorm:"column:district;not null"`
	Taluk        string    `gorm:"column:taluk;not null"`
	VillageCity  string    `gorm:"column:village_city;not null"`
	IsOpen       bool      `gorm:"column:is_open;not null;default:true"`
	OpeningTime  string    `gorm:"column:opening_time;not null;default:'09:00'"`
	ClosingTime  string    `gorm:"column:closing_time;not null;default:'21:00'"`
	Rating       float64   `gorm:"column:rating;not null;default:0"`
	TotalRatings int       `gorm:"column:total_ratings;not null;default:0"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (s *Shop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
