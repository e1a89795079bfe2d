package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCanonicalDateRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.Local),
		time.Date(2024, 12, 31, 12, 0, 0, 0, time.Local),
		time.Date(1999, 6, 15, 1, 30, 0, 0, time.Local),
	}
	for _, d := range dates {
		s := ToCanonicalDate(d)
		parsed, err := ParseCanonicalDate(s)
		require.NoError(t, err)
		assert.Equal(t, d.Year(), parsed.Year())
		assert.Equal(t, d.Month(), parsed.Month())
		assert.Equal(t, d.Day(), parsed.Day())
	}
}

func TestToCanonicalDateFormat(t *testing.T) {
	d := time.Date(2024, 3, 7, 23, 30, 0, 0, time.Local)
	assert.Equal(t, "2024-03-07", ToCanonicalDate(d))
}

func TestHourOf(t *testing.T) {
	assert.Equal(t, 0, HourOf("00:00"))
	assert.Equal(t, 9, HourOf("09:00"))
	assert.Equal(t, 23, HourOf("23:00"))
	assert.Equal(t, -1, HourOf("24:00"))
	assert.Equal(t, -1, HourOf(""))
	assert.Equal(t, -1, HourOf("nine"))
}

func TestComposeDateTime(t *testing.T) {
	ts, err := ComposeDateTime("2024-01-01", "23:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 23, 0, 0, 0, time.Local), ts)

	_, err = ComposeDateTime("2024-13-01", "10:00")
	assert.Error(t, err)

	_, err = ComposeDateTime("2024-01-01", "25:00")
	assert.Error(t, err)
}

func TestIsHourInPast(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.Local)
	today := ToCanonicalDate(now)

	assert.True(t, IsHourInPast("13:00", today, now))
	assert.True(t, IsHourInPast("14:00", today, now), "current hour has already started")
	assert.False(t, IsHourInPast("15:00", today, now))

	// Other days are never in the past at hour granularity.
	assert.False(t, IsHourInPast("13:00", "2024-05-09", now))
	assert.False(t, IsHourInPast("13:00", "2024-05-11", now))
}

func TestIsHourInPastOnExactBoundary(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 0, 0, 0, time.Local)
	assert.False(t, IsHourInPast("14:00", ToCanonicalDate(now), now))
}
