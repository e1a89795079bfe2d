package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentride/models"
	"rentride/services/routing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- in-memory collaborators ---

type fakeCarRepo struct {
	cars map[string]*models.Car
}

func (f *fakeCarRepo) GetByID(id string) (*models.Car, error)    { return f.cars[id], nil }
func (f *fakeCarRepo) List(only bool) ([]models.Car, error)      { return nil, nil }
func (f *fakeCarRepo) Create(car *models.Car) error              { return nil }
func (f *fakeCarRepo) Update(car *models.Car) error              { return nil }
func (f *fakeCarRepo) SetHeldUntil(id string, u time.Time) error { return nil }
func (f *fakeCarRepo) ClearHeldUntil(id string) error            { return nil }

type fakeBookingRepo struct {
	created     []*models.Booking
	overlapping []models.Booking
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error)       { return nil, nil }
func (f *fakeBookingRepo) ListByRenter(id string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) FindOverlapping(carID string, start, end time.Time) ([]models.Booking, error) {
	return f.overlapping, nil
}

type fakeHoldService struct {
	hold     *models.CarHold
	released []string
}

func (f *fakeHoldService) HoldCar(ctx context.Context, carID, renterID string, w models.BookingWindow) (*models.CarHold, error) {
	return &models.CarHold{CarID: carID, RenterID: renterID, Window: w}, nil
}
func (f *fakeHoldService) ReleaseCar(ctx context.Context, carID string) error {
	f.released = append(f.released, carID)
	return nil
}
func (f *fakeHoldService) GetHold(ctx context.Context, carID string) (*models.CarHold, error) {
	return f.hold, nil
}

type fakePayments struct {
	fail     bool
	requests []models.PaymentRequest
}

func (f *fakePayments) ProcessDeposit(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	f.requests = append(f.requests, req)
	if f.fail {
		return nil, errors.New("gateway declined")
	}
	return &models.Invoice{InvoiceID: "inv-1", Amount: req.Amount, Status: "paid"}, nil
}

type fakeRouting struct {
	estimate *routing.DeliveryEstimate
	err      error
}

func (f *fakeRouting) EstimateDeliveryFee(ctx context.Context, from, to models.GeoPoint) (*routing.DeliveryEstimate, error) {
	return f.estimate, f.err
}

func testCar() *models.Car {
	return &models.Car{
		ID:              "car-1",
		Name:            "Vios",
		Available:       true,
		PricePerHour:    100,
		PricePer12Hours: 1000,
		PricePer24Hours: 1800,
		PricePerDay:     1800,
		DeliveryFee:     300,
		SelfDrive:       true,
	}
}

func newTestService(car *models.Car) (*DefaultBookingService, *fakeBookingRepo, *fakeHoldService, *fakePayments, *fakeAlerts) {
	cars := &fakeCarRepo{cars: map[string]*models.Car{}}
	if car != nil {
		cars.cars[car.ID] = car
	}
	bookings := &fakeBookingRepo{}
	holds := &fakeHoldService{}
	payments := &fakePayments{}
	alerts := &fakeAlerts{}
	svc := &DefaultBookingService{
		Cars:     cars,
		Bookings: bookings,
		Holds:    holds,
		Payments: payments,
		Alerts:   alerts,
		Logger:   zap.NewNop(),
		// Fixed clock well before the test windows.
		Now: func() time.Time { return time.Date(2023, 12, 1, 9, 0, 0, 0, time.Local) },
	}
	return svc, bookings, holds, payments, alerts
}

func quoteReq() QuoteRequest {
	return QuoteRequest{
		CarID:      "car-1",
		Window:     window("2024-01-01", "08:00", "2024-01-02", "08:00"),
		PickupMode: models.PickupModePickup,
	}
}

func TestQuoteHappyPath(t *testing.T) {
	svc, _, _, _, _ := newTestService(testCar())

	breakdown, err := svc.Quote(context.Background(), quoteReq())
	require.NoError(t, err)
	assert.Equal(t, models.Pricing24Hours, breakdown.PricingType)
	assert.Equal(t, 1800.0, breakdown.RentalCost)
	assert.Equal(t, 360.0, breakdown.DownPaymentRequired)
	assert.Equal(t, 1440.0, breakdown.RemainingBalance)
}

func TestQuoteRejectsIllegalWindows(t *testing.T) {
	svc, _, _, _, _ := newTestService(testCar())

	var winErr *WindowError

	req := quoteReq()
	req.Window.EndTime = ""
	_, err := svc.Quote(context.Background(), req)
	require.ErrorAs(t, err, &winErr)

	// Same-day end before start.
	req = quoteReq()
	req.Window = window("2024-01-01", "10:00", "2024-01-01", "09:00")
	_, err = svc.Quote(context.Background(), req)
	require.ErrorAs(t, err, &winErr)

	// Below the minimum window.
	req = quoteReq()
	req.Window = window("2024-01-01", "02:00", "2024-01-01", "08:00")
	_, err = svc.Quote(context.Background(), req)
	require.ErrorAs(t, err, &winErr)

	// Start slot too late for a same-day rental.
	req = quoteReq()
	req.Window = window("2024-01-01", "13:00", "2024-01-01", "23:00")
	_, err = svc.Quote(context.Background(), req)
	require.ErrorAs(t, err, &winErr)
}

func TestQuoteUnknownCar(t *testing.T) {
	svc, _, _, _, _ := newTestService(nil)

	_, err := svc.Quote(context.Background(), quoteReq())
	assert.ErrorIs(t, err, ErrCarUnavailable)
}

func TestQuoteUsesDeliveryEstimateWhenAvailable(t *testing.T) {
	svc, _, _, _, _ := newTestService(testCar())
	svc.Routing = &fakeRouting{estimate: &routing.DeliveryEstimate{DistanceKm: 12, Fee: 670}}

	req := quoteReq()
	req.PickupMode = models.PickupModeDelivery
	req.DropoffPoint = &models.GeoPoint{Latitude: 14.6, Longitude: 121.0}

	breakdown, err := svc.Quote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 670.0, breakdown.DeliveryFee)
}

func TestQuoteFallsBackToFlatDeliveryFee(t *testing.T) {
	svc, _, _, _, _ := newTestService(testCar())
	svc.Routing = &fakeRouting{err: errors.New("mapbox down")}

	req := quoteReq()
	req.PickupMode = models.PickupModeDelivery
	req.DropoffPoint = &models.GeoPoint{Latitude: 14.6, Longitude: 121.0}

	breakdown, err := svc.Quote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 300.0, breakdown.DeliveryFee, "routing outage must not block the quote")
}

func TestQuoteDriverFeeFollowsRateCard(t *testing.T) {
	car := testCar()
	car.SelfDrive = false
	car.DriverCharge = 500
	svc, _, _, _, _ := newTestService(car)

	// The request does not ask for a driver; the rate card decides.
	req := quoteReq()
	req.WithDriver = false

	breakdown, err := svc.Quote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 500.0, breakdown.DriverFee, "chauffeured cars always carry the driver fee")
}

func TestConfirmHappyPath(t *testing.T) {
	svc, bookings, holds, payments, alerts := newTestService(testCar())

	record, err := svc.Confirm(context.Background(), "renter-1", ConfirmRequest{
		QuoteRequest:  quoteReq(),
		PaymentMethod: "card",
		Currency:      "php",
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", record.Status)
	assert.Equal(t, "renter-1", record.RenterID)
	require.Len(t, payments.requests, 1)
	assert.Equal(t, 360.0, payments.requests[0].Amount, "deposit is 20% of the total")
	require.Len(t, bookings.created, 1)
	assert.Equal(t, []string{"car-1"}, holds.released)
	require.Len(t, alerts.pushed, 1)
	assert.Equal(t, models.AlertSuccess, alerts.pushed[0].Type)
}

func TestConfirmRejectsForeignHold(t *testing.T) {
	svc, _, holds, _, _ := newTestService(testCar())
	holds.hold = &models.CarHold{CarID: "car-1", RenterID: "someone-else"}

	_, err := svc.Confirm(context.Background(), "renter-1", ConfirmRequest{
		QuoteRequest:  quoteReq(),
		PaymentMethod: "card",
		Currency:      "php",
	})
	assert.ErrorIs(t, err, ErrCarAlreadyHeld)
}

func TestConfirmRejectsOverlap(t *testing.T) {
	svc, bookings, _, _, _ := newTestService(testCar())
	bookings.overlapping = []models.Booking{{ID: "existing"}}

	_, err := svc.Confirm(context.Background(), "renter-1", ConfirmRequest{
		QuoteRequest:  quoteReq(),
		PaymentMethod: "card",
		Currency:      "php",
	})
	assert.ErrorIs(t, err, ErrWindowConflict)
}

func TestConfirmKeepsHoldOnPaymentFailure(t *testing.T) {
	svc, bookings, holds, payments, _ := newTestService(testCar())
	payments.fail = true

	_, err := svc.Confirm(context.Background(), "renter-1", ConfirmRequest{
		QuoteRequest:  quoteReq(),
		PaymentMethod: "card",
		Currency:      "php",
	})
	require.Error(t, err)
	assert.Empty(t, bookings.created)
	assert.Empty(t, holds.released, "hold survives so the renter can retry inside the TTL")
}
