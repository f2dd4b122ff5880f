package domain

import (
	"time"
)

type BikeStatus string

const (
	BikeStatusActive   BikeStatus = "active"
	BikeStatusInactive BikeStatus = "inactive"
)

// Bike is a registered vehicle tied to a resident user.
type Bike struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	PlateNumber string     `json:"plate_number" gorm:"uniqueIndex"`
	UserID      string     `json:"user_id" gorm:"index"`
	Status      BikeStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
