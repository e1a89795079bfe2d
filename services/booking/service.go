package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "rentride/database/repository/booking"
	carRepo "rentride/database/repository/car"
	"rentride/models"
	"rentride/services/notification"
	"rentride/services/routing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuoteRequest is what a renter asks a price for.
type QuoteRequest struct {
	CarID        string               `json:"carId"`
	Window       models.BookingWindow `json:"window"`
	PickupMode   models.PickupMode    `json:"pickupMode"`
	WithDriver   bool                 `json:"withDriver"`
	DropoffPoint *models.GeoPoint     `json:"dropoffPoint,omitempty"`
}

// ConfirmRequest finalizes a quoted booking.
type ConfirmRequest struct {
	QuoteRequest
	PaymentMethod string `json:"paymentMethod"` // "card" or "cash"
	Currency      string `json:"currency"`
}

// BookingService is the orchestration surface the handlers call.
type BookingService interface {
	Quote(ctx context.Context, req QuoteRequest) (*models.PricingBreakdown, error)
	Confirm(ctx context.Context, renterID string, req ConfirmRequest) (*models.Booking, error)
}

// DefaultBookingService wires the pure window/pricing logic to the catalog,
// the hold guard, the payment gateway and the alert feed.
type DefaultBookingService struct {
	Cars     carRepo.CarRepository
	Bookings bookingRepo.BookingRepository
	Holds    HoldService
	Payments PaymentHandler
	Routing  routing.DeliveryEstimator
	Alerts   notification.AlertService
	Logger   *zap.Logger
	Now      func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// validateWindow runs the full slot-legality and minimum-window gauntlet.
// Pricing is never attempted on a window that fails here.
func (s *DefaultBookingService) validateWindow(w models.BookingWindow) (float64, error) {
	if !w.Complete() {
		return 0, NewWindowError("window", "all four date/time fields are required")
	}
	if IsHourInPast(w.StartTime, w.StartDate, s.now()) {
		return 0, NewWindowError("startTime", "start time is already in the past")
	}
	if IsStartSlotInvalid(w.StartTime, w.StartDate, w.EndDate) {
		return 0, NewWindowError("startTime", "not enough hours remain in the day for the minimum rental")
	}
	if IsEndSlotInvalid(w.EndTime, w.StartTime, w.StartDate, w.EndDate) {
		return 0, NewWindowError("endTime", "end time must be after the start time")
	}
	dur, ok := ComputeDurationHours(w)
	if !ok {
		return 0, NewWindowError("window", "dates or times could not be parsed")
	}
	if !IsMinimumWindowSatisfied(dur, ok) {
		return 0, NewWindowError("window",
			fmt.Sprintf("rentals run for at least %d hours", MinimumRentalHours))
	}
	return dur, nil
}

// Quote validates the window and prices it against the car's rate card.
// For home delivery the routing collaborator refines the flat delivery fee
// when a drop-off point is known; without one the rate card figure stands.
func (s *DefaultBookingService) Quote(ctx context.Context, req QuoteRequest) (*models.PricingBreakdown, error) {
	dur, err := s.validateWindow(req.Window)
	if err != nil {
		return nil, err
	}

	car, err := s.Cars.GetByID(req.CarID)
	if err != nil {
		return nil, fmt.Errorf("failed to load car: %w", err)
	}
	if car == nil || !car.Available {
		return nil, ErrCarUnavailable
	}

	rc := car.RateCard()
	if req.PickupMode == models.PickupModeDelivery && req.DropoffPoint != nil && s.Routing != nil {
		estimate, err := s.Routing.EstimateDeliveryFee(ctx, car.GarageLocation, *req.DropoffPoint)
		if err != nil {
			// Fall back to the rate card's flat fee; the quote must not block
			// on the routing service.
			s.Logger.Warn("delivery estimate unavailable, using flat fee",
				zap.String("carId", car.ID), zap.Error(err))
		} else {
			rc.DeliveryFee = estimate.Fee
		}
	}

	breakdown := BuildPricingBreakdown(PricingInput{
		RateCard:      rc,
		DurationHours: dur,
		PickupMode:    req.PickupMode,
	})
	return &breakdown, nil
}

// Confirm re-validates, checks the hold and overlap guards, charges the
// deposit and persists the booking. The hold is released on success; a
// failed payment leaves it in place so the renter can retry inside the TTL.
func (s *DefaultBookingService) Confirm(ctx context.Context, renterID string, req ConfirmRequest) (*models.Booking, error) {
	pricing, err := s.Quote(ctx, req.QuoteRequest)
	if err != nil {
		return nil, err
	}

	startsAt, err := ComposeDateTime(req.Window.StartDate, req.Window.StartTime)
	if err != nil {
		return nil, NewWindowError("startDate", err.Error())
	}
	endsAt, err := ComposeDateTime(req.Window.EndDate, req.Window.EndTime)
	if err != nil {
		return nil, NewWindowError("endDate", err.Error())
	}

	// The hold placed while the renter filled the form must still be theirs.
	hold, err := s.Holds.GetHold(ctx, req.CarID)
	if err != nil {
		return nil, err
	}
	if hold != nil && hold.RenterID != renterID {
		return nil, ErrCarAlreadyHeld
	}

	overlapping, err := s.Bookings.FindOverlapping(req.CarID, startsAt, endsAt)
	if err != nil {
		return nil, fmt.Errorf("failed to check booking conflicts: %w", err)
	}
	if len(overlapping) > 0 {
		return nil, ErrWindowConflict
	}

	bookingID := uuid.New().String()
	invoice, err := s.Payments.ProcessDeposit(ctx, models.PaymentRequest{
		RenterID:    renterID,
		BookingID:   bookingID,
		Amount:      pricing.DownPaymentRequired,
		Currency:    req.Currency,
		Method:      req.PaymentMethod,
		Idempotency: bookingID,
		Description: fmt.Sprintf("Rental deposit for car %s", req.CarID),
	})
	if err != nil {
		return nil, fmt.Errorf("deposit failed: %w", err)
	}

	record := &models.Booking{
		ID:           bookingID,
		CarID:        req.CarID,
		RenterID:     renterID,
		Window:       req.Window,
		PickupMode:   req.PickupMode,
		WithDriver:   req.WithDriver,
		DropoffPoint: req.DropoffPoint,
		Pricing:      *pricing,
		Invoice:      *invoice,
		Status:       "confirmed",
		StartsAt:     startsAt,
		EndsAt:       endsAt,
	}
	if err := s.Bookings.Create(record); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	if err := s.Holds.ReleaseCar(ctx, req.CarID); err != nil {
		s.Logger.Warn("failed to release hold after confirmation",
			zap.String("carId", req.CarID), zap.Error(err))
	}

	alert := models.Alert{
		Type:     models.AlertSuccess,
		Title:    "Booking confirmed",
		Message:  fmt.Sprintf("Your booking from %s %s to %s %s is confirmed.", req.Window.StartDate, req.Window.StartTime, req.Window.EndDate, req.Window.EndTime),
		Duration: 5000,
	}
	if err := s.Alerts.Push(ctx, renterID, alert); err != nil {
		s.Logger.Warn("failed to push confirmation alert", zap.Error(err))
	}

	s.Logger.Info("booking confirmed",
		zap.String("bookingId", record.ID),
		zap.String("carId", record.CarID),
		zap.Float64("total", pricing.TotalAmount))
	return record, nil
}
