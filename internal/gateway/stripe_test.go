package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v72"
	"go.uber.org/zap"
)

func TestAuthorizeRejectsBadInput(t *testing.T) {
	g := NewStripeGateway("sk_test_dummy", zap.NewNop())

	tests := []struct {
		name     string
		amount   int64
		currency string
		wantErr  error
	}{
		{"zero amount", 0, "inr", ErrInvalidAmount},
		{"negative amount", -500, "inr", ErrInvalidAmount},
		{"unsupported currency", 100000, "usd", ErrUnsupportedCurrency},
		{"uppercase INR accepted, validated before network", 0, "INR", ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Authorize(context.Background(), tt.amount, tt.currency, Metadata{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRefundRejectsBadInput(t *testing.T) {
	g := NewStripeGateway("sk_test_dummy", zap.NewNop())

	_, err := g.Refund(context.Background(), "pi_123", 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = g.Refund(context.Background(), "", 1000)
	assert.ErrorIs(t, err, ErrGatewayRequest)
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "authentication failure is a config error",
			in:   &stripe.Error{Type: stripe.ErrorTypeAuthentication, Msg: "bad key"},
			want: ErrGatewayAuth,
		},
		{
			name: "card decline is user facing",
			in:   &stripe.Error{Type: stripe.ErrorTypeCard, Msg: "insufficient funds"},
			want: ErrGatewayCard,
		},
		{
			name: "invalid request",
			in:   &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, Msg: "bad param"},
			want: ErrGatewayRequest,
		},
		{
			name: "missing resource maps to reference not found",
			in: &stripe.Error{
				Type: stripe.ErrorTypeInvalidRequest,
				Code: stripe.ErrorCodeResourceMissing,
				Msg:  "no such payment_intent",
			},
			want: ErrReferenceNotFound,
		},
		{
			name: "deadline maps to timeout",
			in:   context.DeadlineExceeded,
			want: ErrGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.in), tt.want)
		})
	}
}

func TestTranslateErrorUnknown(t *testing.T) {
	err := translateError(errors.New("connection reset"))
	assert.NotErrorIs(t, err, ErrGatewayAuth)
	assert.NotErrorIs(t, err, ErrGatewayCard)
	assert.Contains(t, err.Error(), "stripe:")
}
