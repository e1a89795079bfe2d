package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEndSlotInvalid(t *testing.T) {
	// End before start on the same day.
	assert.True(t, IsEndSlotInvalid("09:00", "10:00", "2024-01-01", "2024-01-01"))
	// Equal hours never work on the same day.
	assert.True(t, IsEndSlotInvalid("10:00", "10:00", "2024-01-01", "2024-01-01"))
	// Different days never conflict by hour.
	assert.False(t, IsEndSlotInvalid("09:00", "10:00", "2024-01-01", "2024-01-02"))
	// Later hour on the same day is fine.
	assert.False(t, IsEndSlotInvalid("11:00", "10:00", "2024-01-01", "2024-01-01"))
	// Missing inputs mean nothing to check yet.
	assert.False(t, IsEndSlotInvalid("09:00", "", "2024-01-01", "2024-01-01"))
	assert.False(t, IsEndSlotInvalid("09:00", "10:00", "", "2024-01-01"))
	assert.False(t, IsEndSlotInvalid("09:00", "10:00", "2024-01-01", ""))
}

func TestIsStartSlotInvalid(t *testing.T) {
	// 13:00 leaves only 11 hours before midnight.
	assert.True(t, IsStartSlotInvalid("13:00", "2024-01-01", "2024-01-01"))
	// 10:00 leaves 14 hours.
	assert.False(t, IsStartSlotInvalid("10:00", "2024-01-01", "2024-01-01"))
	// 12:00 leaves exactly 12 hours: allowed.
	assert.False(t, IsStartSlotInvalid("12:00", "2024-01-01", "2024-01-01"))
	// Multi-day bookings are unconstrained here.
	assert.False(t, IsStartSlotInvalid("23:00", "2024-01-01", "2024-01-02"))
	// Without an end date there is nothing to check.
	assert.False(t, IsStartSlotInvalid("13:00", "2024-01-01", ""))
}

func TestMinimumLegalEndDate(t *testing.T) {
	assert.Nil(t, MinimumLegalEndDate("", time.Now()))

	// Start date in the future: same-day return stays permissible.
	now := time.Date(2024, 5, 10, 20, 0, 0, 0, time.Local)
	got := MinimumLegalEndDate("2024-06-01", now)
	require.NotNil(t, got)
	assert.Equal(t, "2024-06-01", ToCanonicalDate(*got))
}

func TestMinimumLegalEndDateToday(t *testing.T) {
	// 08:00 today: 16 hours remain, same day is fine.
	morning := time.Date(2024, 5, 10, 8, 0, 0, 0, time.Local)
	got := MinimumLegalEndDate("2024-05-10", morning)
	require.NotNil(t, got)
	assert.Equal(t, "2024-05-10", ToCanonicalDate(*got))

	// 15:30 today: only 8.5 hours remain, floor moves to tomorrow.
	afternoon := time.Date(2024, 5, 10, 15, 30, 0, 0, time.Local)
	got = MinimumLegalEndDate("2024-05-10", afternoon)
	require.NotNil(t, got)
	assert.Equal(t, "2024-05-11", ToCanonicalDate(*got))

	// 12:00 sharp: exactly 12 hours remain, same day still legal.
	noon := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)
	got = MinimumLegalEndDate("2024-05-10", noon)
	require.NotNil(t, got)
	assert.Equal(t, "2024-05-10", ToCanonicalDate(*got))
}
