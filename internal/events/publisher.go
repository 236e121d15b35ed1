package events

import (
	"context"
	"time"

	"travel-booking/internal/data/entity"
)

// StatusChanged is emitted after every successful booking transition.
type StatusChanged struct {
	BookingID string               `json:"booking_id"`
	UserID    string               `json:"user_id"`
	From      entity.BookingStatus `json:"from"`
	To        entity.BookingStatus `json:"to"`
	Actor     entity.Actor         `json:"actor"`
	At        time.Time            `json:"at"`
}

type Publisher interface {
	PublishStatusChanged(ctx context.Context, event StatusChanged) error
	Close() error
}

// NopPublisher is used when no broker is configured. Transitions must
// not fail because eventing is absent.
type NopPublisher struct{}

func (NopPublisher) PublishStatusChanged(context.Context, StatusChanged) error { return nil }
func (NopPublisher) Close() error                                             { return nil }
