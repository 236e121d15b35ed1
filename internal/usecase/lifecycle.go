package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/response"
	"travel-booking/internal/events"

	"go.uber.org/zap"
)

// applyTransition validates and executes one edge of the booking
// lifecycle. The record is only written when the edge exists for the
// actor, and for refund approval only after the gateway has confirmed
// the refund. Writes are compare-and-swap on the record version, so a
// concurrent transition surfaces as ErrVersionConflict instead of a
// silent lost update.
func (s *bookingService) applyTransition(ctx context.Context, booking *entity.Booking, to entity.BookingStatus, actor entity.Actor) (*response.BookingResponse, error) {
	from := booking.BookingStatus

	if !entity.CanTransition(from, to, actor) {
		s.log.Warn("Rejected booking transition",
			zap.String("booking_id", booking.BookingID),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
			zap.String("actor", string(actor)),
		)
		return nil, fmt.Errorf("%w: %s -> %s by %s", ErrInvalidTransition, from, to, actor)
	}

	now := time.Now()
	var extra repository.StatusExtra

	switch to {
	case entity.BookingStatusCheckedIn:
		extra.CheckInTimestamp = &now
	case entity.BookingStatusCheckedOut:
		extra.CheckOutTimestamp = &now
	case entity.BookingStatusCancelled:
		// Reverting a refund request keeps the original cancellation
		// timestamp; a fresh cancellation sets it.
		if from != entity.BookingStatusRefundRequested {
			extra.CancelledAt = &now
		}
	case entity.BookingStatusRefunded:
		// The gateway refund must succeed before the terminal write.
		// On failure the record stays in refund_requested and the
		// operator retries.
		refund, err := s.gw.Refund(ctx, booking.PaymentRef, booking.TotalPriceINR*100)
		if err != nil {
			s.log.Error("Gateway refund failed, booking stays in refund_requested",
				zap.Error(err),
				zap.String("booking_id", booking.BookingID),
				zap.String("payment_ref", booking.PaymentRef),
			)
			return nil, fmt.Errorf("refund booking %s: %w", booking.BookingID, err)
		}

		s.log.Info("Gateway refund confirmed",
			zap.String("booking_id", booking.BookingID),
			zap.String("refund_ref", refund.RefundReference),
		)

		extra.RefundedAt = &now
		extra.RefundProcessedAt = &now
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, to, booking.Version, extra); err != nil {
		return nil, fmt.Errorf("transition booking %s to %s: %w", booking.BookingID, to, err)
	}

	s.log.Info("Booking status changed",
		zap.String("booking_id", booking.BookingID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.String("actor", string(actor)),
	)

	s.publishStatusChanged(ctx, booking, from, to, actor, now)

	// Re-read so the response reflects the stored record (bumped
	// version, server-side timestamps).
	updated, err := s.repo.Booking.FindByID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("reload booking %s: %w", booking.BookingID, err)
	}

	resp := response.BookingToResponse(updated)
	return &resp, nil
}

// publishStatusChanged is best-effort: a broker outage must not undo a
// committed transition.
func (s *bookingService) publishStatusChanged(ctx context.Context, booking *entity.Booking, from, to entity.BookingStatus, actor entity.Actor, at time.Time) {
	if s.publisher == nil {
		return
	}

	event := events.StatusChanged{
		BookingID: booking.BookingID,
		UserID:    booking.UserID,
		From:      from,
		To:        to,
		Actor:     actor,
		At:        at,
	}

	if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
		s.log.Warn("Failed to publish status event",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
	}
}
