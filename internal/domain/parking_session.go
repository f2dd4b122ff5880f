package domain

import (
	"time"
)

// ParkingSession records one physical visit: created open at check-in,
// closed exactly once at check-out, never deleted. A session is open while
// CheckoutTime is nil; "current" lookups take the latest check-in.
type ParkingSession struct {
	ID string `json:"id" gorm:"primaryKey"`

	CheckinCardID     string    `json:"checkin_card_id" gorm:"index"`
	CheckinTime       time.Time `json:"checkin_time" gorm:"index"`
	CheckinFaceImage  string    `json:"checkin_face_image,omitempty"`
	CheckinPlateImage string    `json:"checkin_plate_image,omitempty"`

	CheckoutCardID     string     `json:"checkout_card_id,omitempty"`
	CheckoutTime       *time.Time `json:"checkout_time,omitempty"`
	CheckoutFaceImage  string     `json:"checkout_face_image,omitempty"`
	CheckoutPlateImage string     `json:"checkout_plate_image,omitempty"`

	PlateNumber   string  `json:"plate_number" gorm:"index"`
	ParkingFee    float64 `json:"parking_fee"`
	ApprovedBy    string  `json:"approved_by"`
	ParkingTypeID string  `json:"parking_type_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ParkingType *ParkingType `json:"parking_type,omitempty" gorm:"foreignKey:ParkingTypeID"`
}

// IsOpen reports whether the visit has not been checked out yet.
func (s *ParkingSession) IsOpen() bool {
	return s.CheckoutTime == nil
}

// RiderGuest and RiderUnknown are the labels returned by the checkout
// evaluation flows when the rider cannot be resolved to a registered owner.
const (
	RiderGuest   = "Guest"
	RiderUnknown = "Unknown"
)

// CheckoutEvaluation is the non-persisted result handed to the staff
// terminal before a check-out is confirmed.
type CheckoutEvaluation struct {
	Session           *ParkingSession `json:"session"`
	ParkingFee        float64         `json:"parking_fee"`
	DetectedRiderName string          `json:"detected_rider_name"`
}
