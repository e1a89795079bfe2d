package models

import "time"

// PaymentRequest describes a deposit charge handed to the payment gateway.
type PaymentRequest struct {
	RenterID    string
	BookingID   string
	Amount      float64
	Currency    string
	Method      string // "card" or "cash"
	Idempotency string
	Description string
	Metadata    map[string]string
}

// Invoice records the outcome of a gateway charge.
type Invoice struct {
	InvoiceID string    `bson:"invoice_id" json:"invoiceId"`
	RenterID  string    `bson:"renter_id" json:"renterId"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Status    string    `bson:"status" json:"status"` // "pending", "paid", "failed"
	Method    string    `bson:"method" json:"method"`
	PaymentID string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Error     string    `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
