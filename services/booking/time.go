package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CanonicalDateLayout is the wire format for booking dates.
const CanonicalDateLayout = "2006-01-02"

// ToCanonicalDate formats a time as "YYYY-MM-DD" using its local calendar
// fields. Formatting must never route through UTC: near midnight that would
// shift the calendar day.
func ToCanonicalDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseCanonicalDate parses a "YYYY-MM-DD" string into local midnight of
// that calendar day.
func ParseCanonicalDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(CanonicalDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// HourOf extracts the hour component from an "HH:00" slot label.
// Malformed input yields -1.
func HourOf(slot string) int {
	h, _, ok := strings.Cut(slot, ":")
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(h)
	if err != nil || n < 0 || n > 23 {
		return -1
	}
	return n
}

// ComposeDateTime combines a canonical date and an "HH:00" slot into a full
// local timestamp. Minutes are always zero; the slot grid is hourly.
func ComposeDateTime(date, slot string) (time.Time, error) {
	day, err := ParseCanonicalDate(date)
	if err != nil {
		return time.Time{}, err
	}
	h := HourOf(slot)
	if h < 0 {
		return time.Time{}, fmt.Errorf("invalid time slot %q", slot)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, time.Local), nil
}

// IsHourInPast reports whether the given hour slot on the given date is
// already behind the clock. Dates other than today's are never in the past
// here; date-level checks are the calendar picker's concern.
func IsHourInPast(slot, date string, now time.Time) bool {
	if date != ToCanonicalDate(now) {
		return false
	}
	h := HourOf(slot)
	if h < 0 {
		return false
	}
	slotTime := time.Date(now.Year(), now.Month(), now.Day(), h, 0, 0, 0, now.Location())
	return slotTime.Before(now)
}
