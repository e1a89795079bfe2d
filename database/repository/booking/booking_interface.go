package bookingRepo

import (
	"time"

	"rentride/models"
)

// BookingRepository defines data access for confirmed bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	ListByRenter(renterID string) ([]models.Booking, error)
	// FindOverlapping returns confirmed bookings for the car whose
	// [StartsAt, EndsAt) interval intersects the given one.
	FindOverlapping(carID string, start, end time.Time) ([]models.Booking, error)
}
