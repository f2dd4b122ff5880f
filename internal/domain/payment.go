package domain

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment records a settled charge against a parking order. Settlement
// happens on the external terminal; this row and the order's pending→active
// flip are written as one transaction.
type Payment struct {
	ID             string        `json:"id" gorm:"primaryKey"`
	ParkingOrderID string        `json:"parking_order_id" gorm:"index"`
	Amount         float64       `json:"amount"`
	Method         string        `json:"method"`
	Status         PaymentStatus `json:"status"`
	TransactionRef string        `json:"transaction_ref,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
