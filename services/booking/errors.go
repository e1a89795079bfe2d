package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrCarAlreadyHeld is returned when another renter holds the car.
	ErrCarAlreadyHeld = errors.New("car is already held for another booking")
	// ErrCarUnavailable is returned when the car is not open for rental.
	ErrCarUnavailable = errors.New("car is not available")
	// ErrWindowConflict is returned when the window collides with a
	// confirmed booking.
	ErrWindowConflict = errors.New("requested window overlaps an existing booking")
)

// WindowError reports an illegal booking window with a renter-facing reason.
type WindowError struct {
	Field   string
	Message string
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("invalid booking window (%s): %s", e.Field, e.Message)
}

func NewWindowError(field, msg string) error {
	return &WindowError{Field: field, Message: msg}
}
