package models

// PricingType is the tier bracket a rental duration fell into.
type PricingType string

const (
	PricingHourly  PricingType = "hourly"
	Pricing12Hours PricingType = "12-hours"
	Pricing24Hours PricingType = "24-hours"
	PricingDaily   PricingType = "daily"
)

// BreakdownLine is one explanatory row of a pricing breakdown.
type BreakdownLine struct {
	Label  string  `bson:"label" json:"label"`
	Amount float64 `bson:"amount" json:"amount"`
	Note   string  `bson:"note,omitempty" json:"note,omitempty"`
}

// PricingBreakdown is the derived price projection for a booking window.
// It is recomputed on every change to the window or rate card and never
// mutated in place.
type PricingBreakdown struct {
	RentalCost          float64         `bson:"rental_cost" json:"rentalCost"`
	DeliveryFee         float64         `bson:"delivery_fee" json:"deliveryFee"`
	DriverFee           float64         `bson:"driver_fee" json:"driverFee"`
	ExcessHours         float64         `bson:"excess_hours" json:"excessHours"`
	ExcessHoursPrice    float64         `bson:"excess_hours_price" json:"excessHoursPrice"`
	TotalAmount         float64         `bson:"total_amount" json:"totalAmount"`
	DownPaymentRequired float64         `bson:"down_payment_required" json:"downPaymentRequired"`
	RemainingBalance    float64         `bson:"remaining_balance" json:"remainingBalance"`
	PricingType         PricingType     `bson:"pricing_type" json:"pricingType"`
	DurationHours       float64         `bson:"duration_hours" json:"durationHours"`
	Lines               []BreakdownLine `bson:"lines" json:"pricingBreakdown"`
}
