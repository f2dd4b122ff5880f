package domain

import (
	"time"

	"gorm.io/gorm"
)

// Well-known fee names the session flows depend on.
const (
	FeeNameGuestDay   = "guest_day"
	FeeNameGuestNight = "guest_night"
	FeeNameResident   = "resident"
)

// Fee is a named rate record. Fees are soft-deleted so closed sessions keep
// their historical references; deleted rows stay retrievable through the
// include-deleted listing.
type Fee struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"index"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// FeeHistory is the append-only audit trail of changes against a fee.
type FeeHistory struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	FeeID      string    `json:"fee_id" gorm:"index"`
	EventType  string    `json:"event_type"`
	ApprovedBy string    `json:"approved_by"`
	CreatedAt  time.Time `json:"created_at"`
}
