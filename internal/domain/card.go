package domain

import (
	"time"
)

type CardStatus string

const (
	CardStatusActive  CardStatus = "active"
	CardStatusRevoked CardStatus = "revoked"
)

// Card is a physical RFID card. Resident cards are assigned to a bike;
// unassigned cards circulate at the gate for guest visits.
type Card struct {
	ID            string     `json:"id" gorm:"primaryKey"` // printed card identifier
	BikeID        string     `json:"bike_id,omitempty" gorm:"index"`
	ParkingTypeID string     `json:"parking_type_id,omitempty"`
	Status        CardStatus `json:"status"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	ExpiredDate   *time.Time `json:"expired_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Bike *Bike `json:"bike,omitempty" gorm:"foreignKey:BikeID"`
}
