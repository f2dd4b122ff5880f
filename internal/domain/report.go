package domain

// DailyIncome is one row of the guest-income-by-date report.
type DailyIncome struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Amount float64 `json:"amount"`
}

// ParkingReport aggregates gate activity over a date range.
type ParkingReport struct {
	TotalCheckins  int64         `json:"total_checkins"`
	TotalCheckouts int64         `json:"total_checkouts"`
	GuestIncome    float64       `json:"guest_income"`
	IncomeByDate   []DailyIncome `json:"income_by_date,omitempty"`
}
