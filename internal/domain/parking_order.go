package domain

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusActive   OrderStatus = "active"
	OrderStatusCanceled OrderStatus = "canceled"
	OrderStatusExpired  OrderStatus = "expired"
)

type OrderOrigin string

const (
	OrderOriginUser        OrderOrigin = "user_created"
	OrderOriginAutoRenewal OrderOrigin = "auto_renewal"
)

// ParkingOrder is a subscription-style charge granting parking rights for an
// interval. At most one order in {pending, active} may exist per bike.
type ParkingOrder struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	BikeID        string      `json:"bike_id" gorm:"index"`
	ParkingTypeID string      `json:"parking_type_id" gorm:"index"`
	Status        OrderStatus `json:"status" gorm:"index"`
	Origin        OrderOrigin `json:"origin"`
	ExpiredDate   time.Time   `json:"expired_date"`
	Amount        float64     `json:"amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations (for JSON responses)
	Bike        *Bike        `json:"bike,omitempty" gorm:"foreignKey:BikeID"`
	ParkingType *ParkingType `json:"parking_type,omitempty" gorm:"foreignKey:ParkingTypeID"`
}

// IsOpen reports whether the order still blocks new orders for its bike.
func (o *ParkingOrder) IsOpen() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusActive
}

// CanBeCanceled returns true while the order has not been paid or canceled.
func (o *ParkingOrder) CanBeCanceled() bool {
	return o.Status == OrderStatusPending
}

// OrderQuote is a non-persisted preview of the order a user is about to
// place for a bike and parking type.
type OrderQuote struct {
	BikeID          string    `json:"bike_id"`
	ParkingTypeID   string    `json:"parking_type_id"`
	PlateNumber     string    `json:"plate_number"`
	ParkingTypeName string    `json:"parking_type_name"`
	ExpiredDate     time.Time `json:"expired_date"`
	Amount          float64   `json:"amount"`
}

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	Status    OrderStatus
	DateStart time.Time
	DateEnd   time.Time
}
