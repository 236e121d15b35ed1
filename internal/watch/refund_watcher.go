package watch

import (
	"context"
	"errors"
	"sync"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPollInterval matches the 2s cadence refund polling has always
// used.
const DefaultPollInterval = 2 * time.Second

// BookingReader is the narrow repository view the watcher needs.
type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
}

// Notifier receives exactly one call per watched booking that reaches
// the refunded state.
type Notifier func(booking *entity.Booking)

// RefundWatcher re-reads bookings in refund_requested on a fixed
// interval until the pending refund resolves. Reconciliation is a
// repeated read of authoritative state; there is no push channel from
// the operator side, so detection latency is bounded only by the
// interval.
type RefundWatcher struct {
	reader   BookingReader
	interval time.Duration
	notify   Notifier
	log      *zap.Logger

	mu      sync.Mutex
	watches map[uuid.UUID]context.CancelFunc
	wg      sync.WaitGroup
	closed  bool
}

func NewRefundWatcher(reader BookingReader, interval time.Duration, notify Notifier, log *zap.Logger) *RefundWatcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if notify == nil {
		notify = func(*entity.Booking) {}
	}

	return &RefundWatcher{
		reader:   reader,
		interval: interval,
		notify:   notify,
		log:      log.With(zap.String("component", "refund_watcher")),
		watches:  make(map[uuid.UUID]context.CancelFunc),
	}
}

// Watch starts polling a booking. Watching an id that is already
// watched is a no-op.
func (w *RefundWatcher) Watch(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if _, ok := w.watches[id]; ok {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.watches[id] = cancel

	w.wg.Add(1)
	go w.poll(ctx, id)

	w.log.Info("Watching booking for refund completion", zap.String("id", id.String()))
}

// Unwatch stops polling a booking without notification.
func (w *RefundWatcher) Unwatch(id uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.remove(id)
}

// Watching reports whether id is currently in the watch set.
func (w *RefundWatcher) Watching(id uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.watches[id]
	return ok
}

// Close cancels every poll loop and waits for them to exit.
func (w *RefundWatcher) Close() {
	w.mu.Lock()
	w.closed = true
	for id, cancel := range w.watches {
		cancel()
		delete(w.watches, id)
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// remove must be called with the mutex held.
func (w *RefundWatcher) remove(id uuid.UUID) {
	if cancel, ok := w.watches[id]; ok {
		cancel()
		delete(w.watches, id)
	}
}

func (w *RefundWatcher) poll(ctx context.Context, id uuid.UUID) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if done := w.check(ctx, id); done {
				w.mu.Lock()
				w.remove(id)
				w.mu.Unlock()
				return
			}
		}
	}
}

// check reads the booking once and returns true when polling should
// stop.
func (w *RefundWatcher) check(ctx context.Context, id uuid.UUID) bool {
	booking, err := w.reader.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Record gone: stop watching, no notification.
			w.log.Warn("Watched booking disappeared", zap.String("id", id.String()))
			return true
		}
		if ctx.Err() != nil {
			return true
		}
		// Transient read failure, keep polling.
		w.log.Warn("Refund poll read failed", zap.Error(err), zap.String("id", id.String()))
		return false
	}

	if booking.BookingStatus == entity.BookingStatusRefundRequested {
		return false
	}

	if booking.BookingStatus == entity.BookingStatusRefunded {
		w.log.Info("Refund completed",
			zap.String("id", id.String()),
			zap.String("booking_id", booking.BookingID),
		)
		w.notify(booking)
	}

	// Any other status resolves the watch silently.
	return true
}
