package watch

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubReader serves a mutable booking and counts reads.
type stubReader struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
	reads    atomic.Int64
}

func newStubReader() *stubReader {
	return &stubReader{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (s *stubReader) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	s.reads.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *b
	return &copy, nil
}

func (s *stubReader) set(id uuid.UUID, status entity.BookingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[id] = &entity.Booking{BookingID: "BK-TEST", BookingStatus: status}
}

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestWatcherNotifiesOnceOnRefund(t *testing.T) {
	reader := newStubReader()
	id := uuid.New()
	reader.set(id, entity.BookingStatusRefundRequested)

	var notifications atomic.Int64
	w := NewRefundWatcher(reader, 10*time.Millisecond, func(b *entity.Booking) {
		notifications.Add(1)
		assert.Equal(t, entity.BookingStatusRefunded, b.BookingStatus)
	}, zap.NewNop())
	defer w.Close()

	w.Watch(id)
	waitUntil(t, time.Second, func() bool { return reader.reads.Load() >= 2 })

	// External transition between two poll ticks.
	reader.set(id, entity.BookingStatusRefunded)

	waitUntil(t, time.Second, func() bool { return !w.Watching(id) })
	assert.Equal(t, int64(1), notifications.Load())

	// No further polling after removal.
	readsAfter := reader.reads.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, readsAfter, reader.reads.Load())
}

func TestWatcherSilentOnOtherTerminalStatus(t *testing.T) {
	reader := newStubReader()
	id := uuid.New()
	reader.set(id, entity.BookingStatusRefundRequested)

	var notifications atomic.Int64
	w := NewRefundWatcher(reader, 10*time.Millisecond, func(*entity.Booking) {
		notifications.Add(1)
	}, zap.NewNop())
	defer w.Close()

	w.Watch(id)
	reader.set(id, entity.BookingStatusCancelled)

	waitUntil(t, time.Second, func() bool { return !w.Watching(id) })
	assert.Equal(t, int64(0), notifications.Load())
}

func TestWatcherStopsOnMissingBooking(t *testing.T) {
	reader := newStubReader()
	id := uuid.New() // never stored

	var notifications atomic.Int64
	w := NewRefundWatcher(reader, 10*time.Millisecond, func(*entity.Booking) {
		notifications.Add(1)
	}, zap.NewNop())
	defer w.Close()

	w.Watch(id)
	waitUntil(t, time.Second, func() bool { return !w.Watching(id) })
	assert.Equal(t, int64(0), notifications.Load())
}

func TestWatcherDoubleWatchIsNoop(t *testing.T) {
	reader := newStubReader()
	id := uuid.New()
	reader.set(id, entity.BookingStatusRefundRequested)

	w := NewRefundWatcher(reader, 10*time.Millisecond, nil, zap.NewNop())
	defer w.Close()

	w.Watch(id)
	w.Watch(id)
	require.True(t, w.Watching(id))

	w.Unwatch(id)
	assert.False(t, w.Watching(id))
}

func TestWatcherCloseCancelsPolling(t *testing.T) {
	reader := newStubReader()
	id := uuid.New()
	reader.set(id, entity.BookingStatusRefundRequested)

	w := NewRefundWatcher(reader, 10*time.Millisecond, nil, zap.NewNop())
	w.Watch(id)

	waitUntil(t, time.Second, func() bool { return reader.reads.Load() >= 1 })
	w.Close()

	readsAfter := reader.reads.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, readsAfter, reader.reads.Load())

	// Watch after close is ignored.
	w.Watch(uuid.New())
	assert.False(t, w.Watching(id))
}
