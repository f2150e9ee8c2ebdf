package compliance

import "time"

// StatutoryMinBusinessDays is the minimum publication-to-auction gap
// required by the procedural rules (5 business days).
const StatutoryMinBusinessDays = 5

// BusinessDaysBetween counts weekdays in the half-open interval (from, to].
// A Friday publication with the auction on the next Friday is exactly 5.
// Returns 0 when to is not after from. Court holidays vary by state and are
// not modeled; weekends only.
func BusinessDaysBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	days := 0
	for d := from.AddDate(0, 0, 1); !d.After(to); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}
