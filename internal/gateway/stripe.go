package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"go.uber.org/zap"
)

const callTimeout = 10 * time.Second

// StripeGateway implements PaymentGateway against the Stripe API.
type StripeGateway struct {
	sc  *client.API
	log *zap.Logger
}

func NewStripeGateway(secretKey string, log *zap.Logger) *StripeGateway {
	sc := &client.API{}
	sc.Init(secretKey, nil)

	return &StripeGateway{
		sc:  sc,
		log: log.With(zap.String("gateway", "stripe")),
	}
}

// Ping lists one payment method to verify the API key at startup. An
// authentication failure here is a configuration error and fatal.
func (g *StripeGateway) Ping(ctx context.Context) error {
	params := &stripe.PaymentMethodListParams{}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := g.sc.PaymentMethods.List(params)
	if err := iter.Err(); err != nil {
		return translateError(err)
	}
	return nil
}

func (g *StripeGateway) Authorize(ctx context.Context, amount int64, currency string, meta Metadata) (*Authorization, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if strings.ToLower(currency) != SupportedCurrency {
		return nil, ErrUnsupportedCurrency
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(SupportedCurrency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("bookingId", meta.BookingID)
	params.AddMetadata("userId", meta.UserID)
	params.AddMetadata("hotelName", meta.HotelName)
	params.AddMetadata("checkIn", meta.CheckIn)
	params.AddMetadata("checkOut", meta.CheckOut)

	intent, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		g.log.Error("Failed to create payment intent",
			zap.Error(err),
			zap.Int64("amount", amount),
			zap.String("booking_id", meta.BookingID),
		)
		return nil, translateError(err)
	}

	g.log.Info("Payment intent created",
		zap.String("payment_intent_id", intent.ID),
		zap.Int64("amount", amount),
		zap.String("booking_id", meta.BookingID),
	)

	return &Authorization{
		Reference:    intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (g *StripeGateway) Refund(ctx context.Context, reference string, amount int64) (*RefundResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if reference == "" {
		return nil, fmt.Errorf("%w: empty reference", ErrGatewayRequest)
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(reference),
		Amount:        stripe.Int64(amount),
	}
	params.Context = ctx

	ref, err := g.sc.Refunds.New(params)
	if err != nil {
		g.log.Error("Failed to create refund",
			zap.Error(err),
			zap.String("payment_intent_id", reference),
			zap.Int64("amount", amount),
		)
		return nil, translateError(err)
	}

	g.log.Info("Refund created",
		zap.String("refund_id", ref.ID),
		zap.String("payment_intent_id", reference),
		zap.Int64("amount", amount),
	)

	return &RefundResult{RefundReference: ref.ID}, nil
}

// translateError maps Stripe errors onto the local taxonomy so callers
// never depend on processor types.
func translateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrGatewayTimeout
	}

	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return fmt.Errorf("stripe: %w", err)
	}

	switch stripeErr.Type {
	case stripe.ErrorTypeAuthentication:
		return fmt.Errorf("%w: %s", ErrGatewayAuth, stripeErr.Msg)
	case stripe.ErrorTypeCard:
		return fmt.Errorf("%w: %s", ErrGatewayCard, stripeErr.Msg)
	case stripe.ErrorTypeInvalidRequest:
		if stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return fmt.Errorf("%w: %s", ErrReferenceNotFound, stripeErr.Msg)
		}
		return fmt.Errorf("%w: %s", ErrGatewayRequest, stripeErr.Msg)
	default:
		return fmt.Errorf("stripe: %w", err)
	}
}
