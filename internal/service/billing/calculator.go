package billing

import "time"

// CalculateParkingFee computes the fee for a guest visit from the check-in
// and check-out instants and the configured day/night rates.
//
// The day window is 06:00-21:00 local time of the check-in date, the night
// window is the rest. A stay accrues the night rate when it runs past 21:00
// of the check-in day or started before 06:00, and the day rate when it
// touches the day window. A stay touching both windows accrues both, minus
// one day-rate unit when it does not cross a calendar day. Stays spanning
// more than one elapsed calendar day are billed per day.
//
// Pure function; persisting the result is the caller's job.
func CalculateParkingFee(checkin, checkout time.Time, dayRate, nightRate float64) float64 {
	nightStart := time.Date(checkin.Year(), checkin.Month(), checkin.Day(), 21, 0, 0, 0, checkin.Location())
	dayStart := time.Date(checkin.Year(), checkin.Month(), checkin.Day(), 6, 0, 0, 0, checkin.Location())

	var total float64
	if !checkout.Before(nightStart) || checkin.Before(dayStart) {
		total += nightRate
	}
	if checkin.Before(nightStart) || !checkout.Before(dayStart) {
		total += dayRate
	}

	// Elapsed whole calendar days between the two instants. The prior
	// behavior subtracted raw day-of-month values, which broke around
	// month boundaries.
	dayDiff := elapsedDays(checkin, checkout)

	if dayDiff < 1 && total > dayRate {
		total -= dayRate
	}
	if dayDiff > 1 {
		total *= float64(dayDiff)
	}

	if total < 0 {
		return 0
	}
	return total
}

// elapsedDays counts midnight boundaries crossed between from and to, in
// from's location.
func elapsedDays(from, to time.Time) int {
	fromMidnight := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toMidnight := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, from.Location())
	return int(toMidnight.Sub(fromMidnight).Hours() / 24)
}
