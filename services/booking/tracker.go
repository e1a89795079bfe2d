package booking

import (
	"context"
	"errors"
	"sync"

	"rentride/models"
	"rentride/services/notification"

	"go.uber.org/zap"
)

// HoldCaller is the external collaborator the tracker fires at; satisfied by
// DefaultHoldService.
type HoldCaller interface {
	HoldCar(ctx context.Context, carID, renterID string, window models.BookingWindow) (*models.CarHold, error)
}

// WindowTracker watches a renter's booking window as it is edited and holds
// the car once the window becomes complete and legal. Two states: idle and
// hold-in-flight.
//
// The first snapshot it sees is recorded as a baseline only: a pre-filled
// window restored from a draft must not place a spurious hold. Every later
// change to the tuple that leaves it complete and above the minimum window
// fires exactly one hold call. A qualifying change while a hold is still in
// flight cancels the superseded call's context; last write wins on the
// client side.
type WindowTracker struct {
	CarID    string
	RenterID string
	Hold     HoldCaller
	Alerts   notification.AlertService
	Logger   *zap.Logger

	mu        sync.Mutex
	baselined bool
	last      models.BookingWindow
	gen       uint64
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// Observe feeds the tracker a new snapshot of the booking window.
func (t *WindowTracker) Observe(w models.BookingWindow) {
	t.mu.Lock()

	if !t.baselined {
		t.baselined = true
		t.last = w
		t.mu.Unlock()
		return
	}
	if w == t.last {
		t.mu.Unlock()
		return
	}
	t.last = w

	dur, ok := ComputeDurationHours(w)
	if !IsMinimumWindowSatisfied(dur, ok) {
		t.mu.Unlock()
		return
	}

	// Supersede any in-flight hold before issuing the new one.
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.gen++
	gen := t.gen

	t.wg.Add(1)
	t.mu.Unlock()

	go t.placeHold(ctx, gen, w)
}

func (t *WindowTracker) placeHold(ctx context.Context, gen uint64, w models.BookingWindow) {
	defer t.wg.Done()
	defer t.settle(gen)

	_, err := t.Hold.HoldCar(ctx, t.CarID, t.RenterID, w)
	if err == nil {
		t.Logger.Debug("car held for window",
			zap.String("carId", t.CarID),
			zap.String("startDate", w.StartDate),
			zap.String("endDate", w.EndDate))
		return
	}
	if errors.Is(err, context.Canceled) {
		// Superseded by a newer window; the replacement call reports instead.
		return
	}

	t.Logger.Warn("hold request failed",
		zap.String("carId", t.CarID), zap.Error(err))
	alert := models.Alert{
		Type:     models.AlertError,
		Title:    "Hold failed",
		Message:  "Unable to hold the car at this moment. Please try again.",
		Duration: 0,
	}
	if pushErr := t.Alerts.Push(context.Background(), t.RenterID, alert); pushErr != nil {
		t.Logger.Error("failed to raise hold failure alert", zap.Error(pushErr))
	}
}

// settle returns the tracker to idle unless a newer hold already replaced
// this flight.
func (t *WindowTracker) settle(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.gen == gen && t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// InFlight reports whether a hold call is outstanding.
func (t *WindowTracker) InFlight() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancel != nil
}

// Wait blocks until every issued hold call has settled.
func (t *WindowTracker) Wait() {
	t.wg.Wait()
}
