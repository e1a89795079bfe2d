package models

import "time"

// Renter is a customer account. Only the fields the booking flow needs are
// kept here; profile management lives elsewhere.
type Renter struct {
	ID            string    `bson:"id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	PasswordHash  string    `bson:"password_hash" json:"-"`
	FirstName     string    `bson:"first_name" json:"firstName"`
	LastName      string    `bson:"last_name" json:"lastName"`
	Phone         string    `bson:"phone" json:"phone"`
	LicenseNumber string    `bson:"license_number" json:"licenseNumber"`
	LicenseExpiry string    `bson:"license_expiry" json:"licenseExpiry"` // "YYYY-MM-DD"
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}
