package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"rentride/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler charges the booking deposit through the payment gateway.
type PaymentHandler interface {
	ProcessDeposit(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// UnifiedPaymentHandler routes card deposits through Stripe and records cash
// deposits as pending. The gateway owns the payment state machine; this
// handler only reflects its outcome onto the invoice.
type UnifiedPaymentHandler struct {
	logger *zap.Logger
}

// NewPaymentHandler constructs the deposit handler.
func NewPaymentHandler(logger *zap.Logger) *UnifiedPaymentHandler {
	return &UnifiedPaymentHandler{logger: logger}
}

// ProcessDeposit validates the request and dispatches on payment method.
func (h *UnifiedPaymentHandler) ProcessDeposit(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		RenterID:  req.RenterID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch req.Method {
	case "card":
		return h.processCardDeposit(ctx, req, inv)
	case "cash":
		return h.processCashDeposit(req, inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (h *UnifiedPaymentHandler) processCardDeposit(ctx context.Context, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(toMinorUnits(req.Amount)),
		Currency:           stripe.String(req.Currency),
		Description:        stripe.String(req.Description),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	if req.Idempotency != "" {
		params.IdempotencyKey = stripe.String(req.Idempotency)
	}
	params.AddMetadata("bookingId", req.BookingID)
	params.AddMetadata("renterId", req.RenterID)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		inv.Status = "failed"
		inv.Error = err.Error()
		h.logger.Error("card deposit failed", zap.String("invoice", inv.InvoiceID), zap.Error(err))
		return nil, fmt.Errorf("payment gateway error: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()

	h.logger.Info("card deposit succeeded",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID))
	return inv, nil
}

func (h *UnifiedPaymentHandler) processCashDeposit(req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	// Cash on pickup: the invoice stays pending until the garage settles it.
	inv.UpdatedAt = time.Now()

	h.logger.Info("cash deposit recorded", zap.String("invoice", inv.InvoiceID))
	return inv, nil
}

// toMinorUnits converts a major-unit amount to the gateway's integer minor
// units (centavos).
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.RenterID == "" {
		return errors.New("missing renter ID")
	}
	if req.Currency == "" {
		return errors.New("missing currency")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	return nil
}
