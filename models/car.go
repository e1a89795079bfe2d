package models

import "time"

// Car represents a vehicle in the rental catalog. The price fields form the
// rate card the pricing engine reads; they are owned by the catalog and are
// read-only to the booking flow.
type Car struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Brand           string    `bson:"brand" json:"brand"`
	Model           string    `bson:"model" json:"model"`
	Year            int       `bson:"year" json:"year"`
	PlateNumber     string    `bson:"plate_number" json:"plateNumber"`
	Transmission    string    `bson:"transmission" json:"transmission"` // "automatic" or "manual"
	FuelType        string    `bson:"fuel_type" json:"fuelType"`
	Seats           int       `bson:"seats" json:"seats"`
	GarageLocation  GeoPoint  `bson:"garage_location" json:"garageLocation"`
	PricePerHour    float64   `bson:"price_per_hour" json:"pricePerHour"`
	PricePer12Hours float64   `bson:"price_per_12_hours" json:"pricePer12Hours"`
	PricePer24Hours float64   `bson:"price_per_24_hours" json:"pricePer24Hours"`
	PricePerDay     float64   `bson:"price_per_day" json:"pricePerDay"`
	DeliveryFee     float64   `bson:"delivery_fee" json:"deliveryFee"`
	DriverCharge    float64   `bson:"driver_charge" json:"driverCharge"`
	SelfDrive       bool      `bson:"self_drive" json:"selfDrive"`
	Available       bool      `bson:"available" json:"available"`
	HeldUntil       time.Time `bson:"held_until,omitempty" json:"heldUntil,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// RateCard is the pricing subset of a Car handed to the pricing engine.
type RateCard struct {
	PricePerHour    float64 `json:"pricePerHour"`
	PricePer12Hours float64 `json:"pricePer12Hours"`
	PricePer24Hours float64 `json:"pricePer24Hours"`
	PricePerDay     float64 `json:"pricePerDay"`
	DeliveryFee     float64 `json:"deliveryFee"`
	DriverCharge    float64 `json:"driverCharge"`
	SelfDrive       bool    `json:"selfDrive"`
}

// RateCard projects the pricing fields out of a catalog entry.
func (c Car) RateCard() RateCard {
	return RateCard{
		PricePerHour:    c.PricePerHour,
		PricePer12Hours: c.PricePer12Hours,
		PricePer24Hours: c.PricePer24Hours,
		PricePerDay:     c.PricePerDay,
		DeliveryFee:     c.DeliveryFee,
		DriverCharge:    c.DriverCharge,
		SelfDrive:       c.SelfDrive,
	}
}

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}
