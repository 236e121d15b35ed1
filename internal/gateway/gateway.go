package gateway

import (
	"context"
	"errors"
)

// Error taxonomy for the payment boundary. Callers decide retry policy;
// the adapter itself never retries.
var (
	ErrInvalidAmount       = errors.New("amount must be a positive integer in paise")
	ErrUnsupportedCurrency = errors.New("only INR is supported")
	ErrGatewayAuth         = errors.New("gateway authentication failed")
	ErrGatewayCard         = errors.New("card declined")
	ErrGatewayRequest      = errors.New("invalid gateway request")
	ErrReferenceNotFound   = errors.New("payment reference not found")
	ErrGatewayTimeout      = errors.New("gateway call timed out")
)

// SupportedCurrency is the single currency this deployment accepts.
const SupportedCurrency = "inr"

// Metadata travels with an authorization so the processor dashboard can
// tie the intent back to a booking.
type Metadata struct {
	BookingID string
	UserID    string
	HotelName string
	CheckIn   string
	CheckOut  string
}

// Authorization is a reserved charge against the payer's instrument.
type Authorization struct {
	Reference    string // payment intent id, stored on the booking
	ClientSecret string // handed to the client to complete the charge
}

type RefundResult struct {
	RefundReference string
}

// PaymentGateway wraps the processor's authorization-intent and refund
// primitives. All amounts are in the smallest currency unit (paise).
type PaymentGateway interface {
	Authorize(ctx context.Context, amount int64, currency string, meta Metadata) (*Authorization, error)
	Refund(ctx context.Context, reference string, amount int64) (*RefundResult, error)
}
