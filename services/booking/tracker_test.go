package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"rentride/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeHoldCaller struct {
	mu    sync.Mutex
	calls []models.BookingWindow
	err   error
	// waitCtx makes HoldCar block until its context is canceled, to
	// exercise superseded in-flight holds.
	waitCtx bool
}

func (f *fakeHoldCaller) HoldCar(ctx context.Context, carID, renterID string, w models.BookingWindow) (*models.CarHold, error) {
	f.mu.Lock()
	f.calls = append(f.calls, w)
	blocking := f.waitCtx
	f.mu.Unlock()

	if blocking {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.CarHold{CarID: carID, RenterID: renterID, Window: w}, nil
}

func (f *fakeHoldCaller) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeAlerts struct {
	mu     sync.Mutex
	pushed []models.Alert
}

func (f *fakeAlerts) Push(ctx context.Context, renterID string, alert models.Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushed = append(f.pushed, alert)
	return nil
}

func (f *fakeAlerts) Feed(ctx context.Context, renterID string) ([]models.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pushed, nil
}

func newTestTracker(hold *fakeHoldCaller, alerts *fakeAlerts) *WindowTracker {
	return &WindowTracker{
		CarID:    "car-1",
		RenterID: "renter-1",
		Hold:     hold,
		Alerts:   alerts,
		Logger:   zap.NewNop(),
	}
}

func validWindow() models.BookingWindow {
	return window("2024-01-01", "08:00", "2024-01-02", "08:00")
}

func TestTrackerBaselineDoesNotFire(t *testing.T) {
	hold := &fakeHoldCaller{}
	tr := newTestTracker(hold, &fakeAlerts{})

	// A pre-filled, complete and valid window on mount is baseline only.
	tr.Observe(validWindow())
	tr.Wait()
	assert.Equal(t, 0, hold.callCount())
}

func TestTrackerFiresOncePerDistinctChange(t *testing.T) {
	hold := &fakeHoldCaller{}
	tr := newTestTracker(hold, &fakeAlerts{})

	tr.Observe(models.BookingWindow{}) // baseline
	w := validWindow()
	tr.Observe(w)
	tr.Wait()
	require.Equal(t, 1, hold.callCount())

	// Re-observing the identical tuple must not fire again.
	tr.Observe(w)
	tr.Wait()
	assert.Equal(t, 1, hold.callCount())

	// A changed tuple fires exactly once more.
	w.EndTime = "10:00"
	tr.Observe(w)
	tr.Wait()
	assert.Equal(t, 2, hold.callCount())
}

func TestTrackerIgnoresIncompleteAndShortWindows(t *testing.T) {
	hold := &fakeHoldCaller{}
	tr := newTestTracker(hold, &fakeAlerts{})

	tr.Observe(models.BookingWindow{}) // baseline
	tr.Observe(window("2024-01-01", "08:00", "", ""))
	tr.Observe(window("2024-01-01", "08:00", "2024-01-01", ""))
	// Complete but below the 12-hour minimum.
	tr.Observe(window("2024-01-01", "08:00", "2024-01-01", "10:00"))
	tr.Wait()
	assert.Equal(t, 0, hold.callCount())
}

func TestTrackerRaisesAlertOnFailure(t *testing.T) {
	hold := &fakeHoldCaller{err: errors.New("boom")}
	alerts := &fakeAlerts{}
	tr := newTestTracker(hold, alerts)

	tr.Observe(models.BookingWindow{})
	tr.Observe(validWindow())
	tr.Wait()

	require.Len(t, alerts.pushed, 1)
	assert.Equal(t, models.AlertError, alerts.pushed[0].Type)
	assert.Equal(t, "Unable to hold the car at this moment. Please try again.", alerts.pushed[0].Message)
	assert.Equal(t, 0, alerts.pushed[0].Duration, "hold failures stay on screen")
	assert.False(t, tr.InFlight(), "tracker returns to idle without retrying")
}

func TestTrackerCancelsSupersededHold(t *testing.T) {
	hold := &fakeHoldCaller{waitCtx: true}
	alerts := &fakeAlerts{}
	tr := newTestTracker(hold, alerts)

	tr.Observe(models.BookingWindow{})
	first := validWindow()
	tr.Observe(first)

	second := first
	second.EndDate = "2024-01-03"
	// The second qualifying change cancels the blocked first call.
	tr.Observe(second)

	hold.mu.Lock()
	hold.waitCtx = false
	hold.mu.Unlock()
	tr.settleAll()
	tr.Wait()

	assert.Equal(t, 2, hold.callCount())
	assert.Empty(t, alerts.pushed, "a superseded hold is not an error")
}

// settleAll cancels whatever flight is still open so Wait can return; only
// used by tests that leave a hold blocked on its context.
func (t *WindowTracker) settleAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
	}
}
