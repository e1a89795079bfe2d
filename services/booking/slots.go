package booking

import (
	"math"
	"time"
)

// MinimumRentalHours is the fixed minimum rental window, applied uniformly
// regardless of car type.
const MinimumRentalHours = 12

// IsEndSlotInvalid reports whether an end-time slot must be disabled for the
// given start selection. Only same-day bookings can conflict by hour; with
// any of the other fields still unset there is nothing to check yet.
func IsEndSlotInvalid(endTime, startTime, startDate, endDate string) bool {
	if startTime == "" || startDate == "" || endDate == "" {
		return false
	}
	if startDate != endDate {
		return false
	}
	return HourOf(endTime) <= HourOf(startTime)
}

// IsStartSlotInvalid reports whether a start-time slot must be disabled for a
// same-day booking. A same-day rental starting at 15:00 has only 9 hours
// left before midnight and can never meet the minimum window, so the slot is
// rejected up front instead of letting the renter discover the violation
// after picking an end time.
func IsStartSlotInvalid(startTime, startDate, endDate string) bool {
	if startDate == "" || endDate == "" || startDate != endDate {
		return false
	}
	h := HourOf(startTime)
	if h < 0 {
		return false
	}
	return 24-h < MinimumRentalHours
}

// MinimumLegalEndDate returns the earliest end date a renter may pick for
// the given start date, or nil when no start date has been chosen. When the
// start date is today and fewer than the minimum hours remain before
// midnight (partial hours rounded up), same-day return is impossible and
// tomorrow is the floor.
func MinimumLegalEndDate(startDate string, now time.Time) *time.Time {
	if startDate == "" {
		return nil
	}
	start, err := ParseCanonicalDate(startDate)
	if err != nil {
		return nil
	}
	if startDate == ToCanonicalDate(now) {
		midnight := start.AddDate(0, 0, 1)
		hoursLeft := math.Ceil(midnight.Sub(now).Hours())
		if hoursLeft < MinimumRentalHours {
			tomorrow := start.AddDate(0, 0, 1)
			return &tomorrow
		}
	}
	return &start
}
