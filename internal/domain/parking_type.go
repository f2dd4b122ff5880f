package domain

import (
	"time"
)

// BillingInterval is the closed set of subscription tiers a parking type can
// bill on. Interval selection is explicit per tier rather than derived from
// the type name.
type BillingInterval string

const (
	IntervalMonthly   BillingInterval = "monthly"
	IntervalQuarterly BillingInterval = "quarterly"
	IntervalAnnually  BillingInterval = "annually"
	IntervalAdHoc     BillingInterval = "adhoc"
)

// Valid reports whether i is one of the known billing tiers.
func (i BillingInterval) Valid() bool {
	switch i {
	case IntervalMonthly, IntervalQuarterly, IntervalAnnually, IntervalAdHoc:
		return true
	}
	return false
}

// NextExpiry returns the expiry date one billing period after from. It never
// mutates its input; ad-hoc types carry no subscription period and return
// from unchanged. Month arithmetic follows time.AddDate normalization
// (Jan 31 + 1 month rolls into March).
func (i BillingInterval) NextExpiry(from time.Time) time.Time {
	switch i {
	case IntervalMonthly:
		return from.AddDate(0, 1, 0)
	case IntervalQuarterly:
		return from.AddDate(0, 3, 0)
	case IntervalAnnually:
		return from.AddDate(1, 0, 0)
	default:
		return from
	}
}

// ParkingType is reference data describing a named parking tier and the
// amount charged per order against it.
type ParkingType struct {
	ID       string          `json:"id" gorm:"primaryKey"`
	Name     string          `json:"name" gorm:"uniqueIndex"`
	Fee      float64         `json:"fee"`
	Interval BillingInterval `json:"interval"`
	Active   bool            `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
