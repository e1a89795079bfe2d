package booking

import "rentride/models"

// ComputeDurationHours returns the rental length in fractional hours for a
// booking window, composing full date-times so a 23:00 → 01:00 overnight
// rental is 2 hours rather than a negative day. ok is false while any of
// the four fields is missing or unparsable.
func ComputeDurationHours(w models.BookingWindow) (float64, bool) {
	if !w.Complete() {
		return 0, false
	}
	start, err := ComposeDateTime(w.StartDate, w.StartTime)
	if err != nil {
		return 0, false
	}
	end, err := ComposeDateTime(w.EndDate, w.EndTime)
	if err != nil {
		return 0, false
	}
	return end.Sub(start).Hours(), true
}

// IsMinimumWindowSatisfied reports whether a computed duration meets the
// fixed minimum rental window. The boundary is inclusive: exactly 12 hours
// passes.
func IsMinimumWindowSatisfied(duration float64, ok bool) bool {
	return ok && duration >= MinimumRentalHours
}
