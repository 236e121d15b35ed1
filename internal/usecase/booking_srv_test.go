package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/events"
	"travel-booking/internal/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ==================== FAKES ====================

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy := *b
	f.bookings[b.ID] = &copy
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *b
	return &copy, nil
}

func (f *fakeBookingRepo) FindByBookingID(_ context.Context, bookingID string) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.BookingID == bookingID {
			copy := *b
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID string) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			copy := *b
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		copy := *b
		out = append(out, &copy)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus, version int64, extra repository.StatusExtra) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	if b.Version != version {
		return repository.ErrVersionConflict
	}

	b.BookingStatus = status
	b.Version++
	b.UpdatedAt = time.Now()
	if extra.CheckInTimestamp != nil {
		b.CheckInTimestamp = extra.CheckInTimestamp
	}
	if extra.CheckOutTimestamp != nil {
		b.CheckOutTimestamp = extra.CheckOutTimestamp
	}
	if extra.CancelledAt != nil {
		b.CancelledAt = extra.CancelledAt
	}
	if extra.RefundedAt != nil {
		b.RefundedAt = extra.RefundedAt
	}
	if extra.RefundProcessedAt != nil {
		b.RefundProcessedAt = extra.RefundProcessedAt
	}
	return nil
}

type fakeGateway struct {
	mu          sync.Mutex
	refundCalls int
	refundErr   error
	lastRef     string
	lastAmount  int64
}

func (f *fakeGateway) Authorize(_ context.Context, amount int64, currency string, _ gateway.Metadata) (*gateway.Authorization, error) {
	if amount <= 0 {
		return nil, gateway.ErrInvalidAmount
	}
	if currency != gateway.SupportedCurrency {
		return nil, gateway.ErrUnsupportedCurrency
	}
	return &gateway.Authorization{Reference: "pi_test", ClientSecret: "secret_test"}, nil
}

func (f *fakeGateway) Refund(_ context.Context, reference string, amount int64) (*gateway.RefundResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refundCalls++
	f.lastRef = reference
	f.lastAmount = amount
	if f.refundErr != nil {
		return nil, f.refundErr
	}
	return &gateway.RefundResult{RefundReference: "re_test"}, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.StatusChanged
}

func (f *fakePublisher) PublishStatusChanged(_ context.Context, e events.StatusChanged) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

type fakeWatchlist struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func (f *fakeWatchlist) Watch(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append(f.ids, id)
}

// ==================== HELPERS ====================

type fixture struct {
	svc       BookingService
	repo      *fakeBookingRepo
	gw        *fakeGateway
	publisher *fakePublisher
	watchlist *fakeWatchlist
}

func newFixture() *fixture {
	repo := newFakeBookingRepo()
	gw := &fakeGateway{}
	publisher := &fakePublisher{}
	watchlist := &fakeWatchlist{}

	repos := &repository.Repository{Booking: repo}
	svc := NewBookingService(repos, gw, publisher, watchlist, zap.NewNop())

	return &fixture{svc: svc, repo: repo, gw: gw, publisher: publisher, watchlist: watchlist}
}

func (fx *fixture) seedBooking(t *testing.T, status entity.BookingStatus) *entity.Booking {
	t.Helper()
	now := time.Now()
	b := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:     "BK-20250312-101500-0042",
		InvoiceID:     "INVBK-20250312-101500-0042",
		UserID:        "guest@example.com",
		HotelName:     "Seaside Palace",
		RoomType:      "deluxe",
		Guests:        2,
		CheckInDate:   now.AddDate(0, 1, 0),
		CheckOutDate:  now.AddDate(0, 1, 2),
		Duration:      2,
		BasePrice:     6000,
		Taxes:         2160,
		TotalPriceINR: 14160,
		PaymentStatus: entity.PaymentStatusCompleted,
		BookingStatus: status,
		PaymentRef:    "pi_seed",
		Version:       1,
	}
	require.NoError(t, fx.repo.Create(context.Background(), b))
	return b
}

// ==================== CREATE ====================

func TestCreateBookingComputesPriceOnce(t *testing.T) {
	fx := newFixture()

	req := &request.CreateBookingRequest{
		UserID:          "guest@example.com",
		UserName:        "Guest",
		UserMobile:      "9876543210",
		HotelName:       "Seaside Palace",
		HotelAddress:    "12 Marine Drive",
		RoomType:        "standard", // 3500/night
		Guests:          1,
		CheckInDate:     "2025-03-11", // Tuesday, off-season
		CheckOutDate:    "2025-03-13",
		PaymentIntentID: "pi_abc",
	}

	resp, err := fx.svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(3500), resp.BasePrice)
	assert.Equal(t, int64(1260), resp.Taxes)
	assert.Equal(t, int64(8260), resp.TotalPriceINR)
	assert.Equal(t, 2, resp.Duration)
	assert.Equal(t, entity.BookingStatusPending, resp.BookingStatus)
	assert.Equal(t, entity.PaymentStatusCompleted, resp.PaymentStatus)
	assert.Equal(t, "pi_abc", resp.PaymentRef)
	assert.Equal(t, "INV"+resp.BookingID, resp.InvoiceID)
}

func TestCreateBookingRejectsBadDates(t *testing.T) {
	fx := newFixture()

	req := &request.CreateBookingRequest{
		UserID:          "guest@example.com",
		UserName:        "Guest",
		UserMobile:      "9876543210",
		HotelName:       "Seaside Palace",
		HotelAddress:    "12 Marine Drive",
		RoomType:        "standard",
		Guests:          1,
		CheckInDate:     "2025-03-13",
		CheckOutDate:    "2025-03-11", // before check-in
		PaymentIntentID: "pi_abc",
	}

	_, err := fx.svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

// ==================== TRANSITIONS ====================

func TestOperatorTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.BookingStatus
		to      entity.BookingStatus
		wantErr bool
	}{
		{"confirm pending", entity.BookingStatusPending, entity.BookingStatusConfirmed, false},
		{"reject pending", entity.BookingStatusPending, entity.BookingStatusCancelled, false},
		{"check in confirmed", entity.BookingStatusConfirmed, entity.BookingStatusCheckedIn, false},
		{"check out after check in", entity.BookingStatusCheckedIn, entity.BookingStatusCheckedOut, false},
		{"approve cancellation", entity.BookingStatusCancellationRequested, entity.BookingStatusCancelled, false},
		{"reject cancellation reverts to pending", entity.BookingStatusCancellationRequested, entity.BookingStatusPending, false},
		{"approve refund", entity.BookingStatusRefundRequested, entity.BookingStatusRefunded, false},
		{"reject refund reverts to cancelled", entity.BookingStatusRefundRequested, entity.BookingStatusCancelled, false},

		{"cannot confirm a confirmed booking again", entity.BookingStatusConfirmed, entity.BookingStatusConfirmed, true},
		{"cannot skip to checked_out", entity.BookingStatusConfirmed, entity.BookingStatusCheckedOut, true},
		{"cannot check in a pending booking", entity.BookingStatusPending, entity.BookingStatusCheckedIn, true},
		{"cannot cancel after check-out", entity.BookingStatusCheckedOut, entity.BookingStatusCancelled, true},
		{"cannot refund without a request", entity.BookingStatusCancelled, entity.BookingStatusRefunded, true},
		{"cannot resurrect a refunded booking", entity.BookingStatusRefunded, entity.BookingStatusPending, true},
		{"operator cannot request cancellation", entity.BookingStatusPending, entity.BookingStatusCancellationRequested, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture()
			b := fx.seedBooking(t, tt.from)

			resp, err := fx.svc.OperatorTransition(context.Background(), b.BookingID, tt.to)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)

				// Record must be untouched.
				stored, findErr := fx.repo.FindByID(context.Background(), b.ID)
				require.NoError(t, findErr)
				assert.Equal(t, tt.from, stored.BookingStatus)
				assert.Equal(t, int64(1), stored.Version)
				assert.Empty(t, fx.publisher.events)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.BookingStatus)

			stored, findErr := fx.repo.FindByID(context.Background(), b.ID)
			require.NoError(t, findErr)
			assert.Equal(t, tt.to, stored.BookingStatus)
			assert.Equal(t, int64(2), stored.Version)

			require.Len(t, fx.publisher.events, 1)
			assert.Equal(t, tt.from, fx.publisher.events[0].From)
			assert.Equal(t, tt.to, fx.publisher.events[0].To)
			assert.Equal(t, entity.ActorOperator, fx.publisher.events[0].Actor)
		})
	}
}

func TestTransitionSideEffectTimestamps(t *testing.T) {
	ctx := context.Background()

	t.Run("reject sets cancelledAt and nothing else", func(t *testing.T) {
		fx := newFixture()
		b := fx.seedBooking(t, entity.BookingStatusPending)

		resp, err := fx.svc.OperatorTransition(ctx, b.BookingID, entity.BookingStatusCancelled)
		require.NoError(t, err)

		assert.NotNil(t, resp.CancelledAt)
		assert.Nil(t, resp.CheckInTimestamp)
		assert.Nil(t, resp.CheckOutTimestamp)
		assert.Nil(t, resp.RefundedAt)
	})

	t.Run("check-in and check-out set their timestamps", func(t *testing.T) {
		fx := newFixture()
		b := fx.seedBooking(t, entity.BookingStatusConfirmed)

		resp, err := fx.svc.OperatorTransition(ctx, b.BookingID, entity.BookingStatusCheckedIn)
		require.NoError(t, err)
		assert.NotNil(t, resp.CheckInTimestamp)

		resp, err = fx.svc.OperatorTransition(ctx, b.BookingID, entity.BookingStatusCheckedOut)
		require.NoError(t, err)
		assert.NotNil(t, resp.CheckOutTimestamp)
		assert.NotNil(t, resp.CheckInTimestamp)
	})
}

func TestRepeatedTransitionIsRejected(t *testing.T) {
	fx := newFixture()
	b := fx.seedBooking(t, entity.BookingStatusCancellationRequested)
	ctx := context.Background()

	_, err := fx.svc.OperatorTransition(ctx, b.BookingID, entity.BookingStatusCancelled)
	require.NoError(t, err)

	// Approving again from cancelled must fail loudly, not no-op.
	_, err = fx.svc.OperatorTransition(ctx, b.BookingID, entity.BookingStatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// ==================== REFUND APPROVAL ====================

func TestRefundApprovalCallsGatewayFirst(t *testing.T) {
	fx := newFixture()
	b := fx.seedBooking(t, entity.BookingStatusRefundRequested)

	resp, err := fx.svc.OperatorTransition(context.Background(), b.BookingID, entity.BookingStatusRefunded)
	require.NoError(t, err)

	assert.Equal(t, 1, fx.gw.refundCalls)
	assert.Equal(t, "pi_seed", fx.gw.lastRef)
	// Full amount, converted to paise at the boundary.
	assert.Equal(t, b.TotalPriceINR*100, fx.gw.lastAmount)

	assert.Equal(t, entity.BookingStatusRefunded, resp.BookingStatus)
	assert.NotNil(t, resp.RefundedAt)
	assert.NotNil(t, resp.RefundProcessedAt)
}

func TestRefundApprovalGatewayFailureLeavesRecord(t *testing.T) {
	fx := newFixture()
	fx.gw.refundErr = gateway.ErrGatewayRequest
	b := fx.seedBooking(t, entity.BookingStatusRefundRequested)

	_, err := fx.svc.OperatorTransition(context.Background(), b.BookingID, entity.BookingStatusRefunded)
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrGatewayRequest)

	stored, findErr := fx.repo.FindByID(context.Background(), b.ID)
	require.NoError(t, findErr)
	assert.Equal(t, entity.BookingStatusRefundRequested, stored.BookingStatus)
	assert.Nil(t, stored.RefundedAt)
	assert.Equal(t, int64(1), stored.Version)
	assert.Empty(t, fx.publisher.events)

	// Operator retry succeeds once the gateway recovers.
	fx.gw.refundErr = nil
	resp, err := fx.svc.OperatorTransition(context.Background(), b.BookingID, entity.BookingStatusRefunded)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusRefunded, resp.BookingStatus)
}

// ==================== CUSTOMER TRANSITIONS ====================

func TestCustomerCancellationAndRefundRequest(t *testing.T) {
	fx := newFixture()
	b := fx.seedBooking(t, entity.BookingStatusPending)
	ctx := context.Background()

	resp, err := fx.svc.RequestCancellation(ctx, b.BookingID, b.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancellationRequested, resp.BookingStatus)

	_, err = fx.svc.OperatorTransition(ctx, b.BookingID, entity.BookingStatusCancelled)
	require.NoError(t, err)

	resp, err = fx.svc.RequestRefund(ctx, b.BookingID, b.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusRefundRequested, resp.BookingStatus)

	// Refund request registers the booking for reconciliation polling.
	require.Len(t, fx.watchlist.ids, 1)
	assert.Equal(t, b.ID, fx.watchlist.ids[0])
	// No gateway call yet; that happens on operator approval.
	assert.Equal(t, 0, fx.gw.refundCalls)
}

func TestCustomerCannotTouchForeignBooking(t *testing.T) {
	fx := newFixture()
	b := fx.seedBooking(t, entity.BookingStatusPending)

	_, err := fx.svc.RequestCancellation(context.Background(), b.BookingID, "stranger@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	stored, findErr := fx.repo.FindByID(context.Background(), b.ID)
	require.NoError(t, findErr)
	assert.Equal(t, entity.BookingStatusPending, stored.BookingStatus)
}

func TestCustomerCannotRefundActiveBooking(t *testing.T) {
	fx := newFixture()
	b := fx.seedBooking(t, entity.BookingStatusConfirmed)

	_, err := fx.svc.RequestRefund(context.Background(), b.BookingID, b.UserID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, fx.watchlist.ids)
}

// ==================== CONCURRENCY ====================

func TestConcurrentTransitionLosesWithConflict(t *testing.T) {
	fx := newFixture()
	b := fx.seedBooking(t, entity.BookingStatusPending)
	ctx := context.Background()

	// Simulate a racing operator bumping the version underneath us.
	stale, err := fx.repo.FindByID(ctx, b.ID)
	require.NoError(t, err)

	require.NoError(t, fx.repo.UpdateStatus(ctx, b.ID, entity.BookingStatusConfirmed, stale.Version, repository.StatusExtra{}))

	// The stale write must fail with a conflict, not overwrite.
	err = fx.repo.UpdateStatus(ctx, b.ID, entity.BookingStatusCancelled, stale.Version, repository.StatusExtra{})
	assert.ErrorIs(t, err, repository.ErrVersionConflict)

	stored, findErr := fx.repo.FindByID(ctx, b.ID)
	require.NoError(t, findErr)
	assert.Equal(t, entity.BookingStatusConfirmed, stored.BookingStatus)
}

// ==================== QUERIES ====================

func TestListAllBookingsGroupsByUser(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	first := fx.seedBooking(t, entity.BookingStatusPending)

	second := *first
	second.ID = uuid.New()
	second.BookingID = "BK-20250312-101500-0043"
	second.UserID = "other@example.com"
	require.NoError(t, fx.repo.Create(ctx, &second))

	third := *first
	third.ID = uuid.New()
	third.BookingID = "BK-20250312-101500-0044"
	require.NoError(t, fx.repo.Create(ctx, &third))

	grouped, err := fx.svc.ListAllBookings(ctx)
	require.NoError(t, err)
	require.Len(t, grouped, 2)

	total := 0
	for _, g := range grouped {
		total += len(g.Bookings)
		for _, bk := range g.Bookings {
			assert.Equal(t, g.UserID, bk.UserID)
		}
	}
	assert.Equal(t, 3, total)
}

func TestGetBookingNotFound(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.GetBooking(context.Background(), "BK-MISSING")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUnknownStatusRejected(t *testing.T) {
	fx := newFixture()
	b := fx.seedBooking(t, entity.BookingStatusPending)

	_, err := fx.svc.OperatorTransition(context.Background(), b.BookingID, entity.BookingStatus("exploded"))
	assert.ErrorIs(t, err, ErrValidation)

	stored, findErr := fx.repo.FindByID(context.Background(), b.ID)
	require.NoError(t, findErr)
	assert.Equal(t, entity.BookingStatusPending, stored.BookingStatus)
}
