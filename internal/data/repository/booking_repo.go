package repository

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// StatusExtra carries the side-effect timestamps a transition may set.
// Nil fields leave the stored value untouched.
type StatusExtra struct {
	CheckInTimestamp  *time.Time
	CheckOutTimestamp *time.Time
	CancelledAt       *time.Time
	RefundedAt        *time.Time
	RefundProcessedAt *time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID string) ([]*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)

	// UpdateStatus is a compare-and-swap on the version column. Returns
	// ErrNotFound for an absent row and ErrVersionConflict for a stale
	// write. No other booking fields are ever updated post-creation.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, version int64, extra StatusExtra) error
}

const bookingColumns = `
	id, booking_id, invoice_id, user_id, user_name, user_mobile,
	hotel_name, hotel_address, room_type, guests,
	check_in_date, check_out_date, duration, special_requests,
	base_price, taxes, total_price_inr,
	payment_status, booking_status, payment_ref, version,
	check_in_timestamp, check_out_timestamp, cancelled_at,
	refunded_at, refund_processed_at,
	created_at, updated_at`

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		        $21, $22, $23, $24, $25, $26, $27, $28)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingID,
		booking.InvoiceID,
		booking.UserID,
		booking.UserName,
		booking.UserMobile,
		booking.HotelName,
		booking.HotelAddress,
		booking.RoomType,
		booking.Guests,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.Duration,
		booking.SpecialRequests,
		booking.BasePrice,
		booking.Taxes,
		booking.TotalPriceINR,
		booking.PaymentStatus,
		booking.BookingStatus,
		booking.PaymentRef,
		booking.Version,
		booking.CheckInTimestamp,
		booking.CheckOutTimestamp,
		booking.CancelledAt,
		booking.RefundedAt,
		booking.RefundProcessedAt,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
			zap.String("user_id", booking.UserID),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingID, err)
	}

	return nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.BookingID,
		&b.InvoiceID,
		&b.UserID,
		&b.UserName,
		&b.UserMobile,
		&b.HotelName,
		&b.HotelAddress,
		&b.RoomType,
		&b.Guests,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.Duration,
		&b.SpecialRequests,
		&b.BasePrice,
		&b.Taxes,
		&b.TotalPriceINR,
		&b.PaymentStatus,
		&b.BookingStatus,
		&b.PaymentRef,
		&b.Version,
		&b.CheckInTimestamp,
		&b.CheckOutTimestamp,
		&b.CancelledAt,
		&b.RefundedAt,
		&b.RefundProcessedAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find booking by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking by booking ID %s: %w", bookingID, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID, err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY user_id, created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list all bookings", zap.Error(err))
		return nil, fmt.Errorf("list all bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, version int64, extra StatusExtra) error {
	query := `
		UPDATE bookings
		SET booking_status = $2,
		    version = version + 1,
		    updated_at = NOW(),
		    check_in_timestamp = COALESCE($3, check_in_timestamp),
		    check_out_timestamp = COALESCE($4, check_out_timestamp),
		    cancelled_at = COALESCE($5, cancelled_at),
		    refunded_at = COALESCE($6, refunded_at),
		    refund_processed_at = COALESCE($7, refund_processed_at)
		WHERE id = $1 AND version = $8
	`

	result, err := r.db.Exec(ctx, query,
		id,
		status,
		extra.CheckInTimestamp,
		extra.CheckOutTimestamp,
		extra.CancelledAt,
		extra.RefundedAt,
		extra.RefundProcessedAt,
		version,
	)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		// Either the row is gone or someone else won the race.
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return ErrVersionConflict
	}

	return nil
}
