package booking

import (
	"testing"

	"rentride/models"

	"github.com/stretchr/testify/assert"
)

func window(startDate, startTime, endDate, endTime string) models.BookingWindow {
	return models.BookingWindow{
		StartDate: startDate,
		StartTime: startTime,
		EndDate:   endDate,
		EndTime:   endTime,
	}
}

func TestComputeDurationHours(t *testing.T) {
	dur, ok := ComputeDurationHours(window("2024-01-01", "10:00", "2024-01-02", "10:00"))
	assert.True(t, ok)
	assert.Equal(t, 24.0, dur)

	dur, ok = ComputeDurationHours(window("2024-01-01", "08:00", "2024-01-01", "20:00"))
	assert.True(t, ok)
	assert.Equal(t, 12.0, dur)
}

func TestComputeDurationHoursOvernight(t *testing.T) {
	// 23:00 to 01:00 the next day is 2 hours, not "-1 day".
	dur, ok := ComputeDurationHours(window("2024-01-01", "23:00", "2024-01-02", "01:00"))
	assert.True(t, ok)
	assert.Equal(t, 2.0, dur)
}

func TestComputeDurationHoursMissingFields(t *testing.T) {
	cases := []models.BookingWindow{
		{},
		window("", "10:00", "2024-01-02", "10:00"),
		window("2024-01-01", "", "2024-01-02", "10:00"),
		window("2024-01-01", "10:00", "", "10:00"),
		window("2024-01-01", "10:00", "2024-01-02", ""),
	}
	for _, w := range cases {
		_, ok := ComputeDurationHours(w)
		assert.False(t, ok)
	}
}

func TestComputeDurationHoursBadInput(t *testing.T) {
	_, ok := ComputeDurationHours(window("not-a-date", "10:00", "2024-01-02", "10:00"))
	assert.False(t, ok)

	_, ok = ComputeDurationHours(window("2024-01-01", "99:00", "2024-01-02", "10:00"))
	assert.False(t, ok)
}

func TestIsMinimumWindowSatisfied(t *testing.T) {
	assert.True(t, IsMinimumWindowSatisfied(12.0, true), "boundary is inclusive")
	assert.True(t, IsMinimumWindowSatisfied(36.0, true))
	assert.False(t, IsMinimumWindowSatisfied(11.999, true))
	assert.False(t, IsMinimumWindowSatisfied(0, true))
	assert.False(t, IsMinimumWindowSatisfied(24.0, false), "missing window never satisfies")
}
