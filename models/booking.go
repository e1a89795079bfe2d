package models

import "time"

// PickupMode selects how the renter receives the car.
type PickupMode string

const (
	PickupModePickup   PickupMode = "pickup"
	PickupModeDelivery PickupMode = "delivery"
)

// BookingWindow is the (startDate, endDate, startTime, endTime) tuple a renter
// fills in field by field. Dates are "YYYY-MM-DD", times are "HH:00" on whole
// hour boundaries; empty string means the field has not been chosen yet.
type BookingWindow struct {
	StartDate string `bson:"start_date" json:"startDate"`
	EndDate   string `bson:"end_date" json:"endDate"`
	StartTime string `bson:"start_time" json:"startTime"`
	EndTime   string `bson:"end_time" json:"endTime"`
}

// Complete reports whether all four fields have been chosen.
func (w BookingWindow) Complete() bool {
	return w.StartDate != "" && w.EndDate != "" && w.StartTime != "" && w.EndTime != ""
}

// Booking is a confirmed rental record.
type Booking struct {
	ID           string           `bson:"id" json:"id"`
	CarID        string           `bson:"car_id" json:"carId"`
	RenterID     string           `bson:"renter_id" json:"renterId"`
	Window       BookingWindow    `bson:"window" json:"window"`
	PickupMode   PickupMode       `bson:"pickup_mode" json:"pickupMode"`
	WithDriver   bool             `bson:"with_driver" json:"withDriver"`
	DropoffPoint *GeoPoint        `bson:"dropoff_point,omitempty" json:"dropoffPoint,omitempty"`
	Pricing      PricingBreakdown `bson:"pricing" json:"pricing"`
	Invoice      Invoice          `bson:"invoice" json:"invoice"`
	Status       string           `bson:"status" json:"status"` // "confirmed", "pending"
	StartsAt     time.Time        `bson:"starts_at" json:"startsAt"`
	EndsAt       time.Time        `bson:"ends_at" json:"endsAt"`
	CreatedAt    time.Time        `bson:"created_at" json:"createdAt"`
}

// CarHold is the temporary server-side reservation placed while a renter
// finishes checkout. It lives in Redis under a TTL; ExpiresAt mirrors that
// TTL for clients.
type CarHold struct {
	CarID     string        `json:"carId"`
	RenterID  string        `json:"renterId"`
	Window    BookingWindow `json:"window"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// HoldReleasePayload is the asynq task payload that clears a car's
// denormalized hold marker once the hold TTL lapses.
type HoldReleasePayload struct {
	CarID    string `json:"carId"`
	RenterID string `json:"renterId"`
}
