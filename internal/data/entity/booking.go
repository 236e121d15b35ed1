package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending               BookingStatus = "pending"
	BookingStatusConfirmed             BookingStatus = "confirmed"
	BookingStatusCheckedIn             BookingStatus = "checked_in"
	BookingStatusCheckedOut            BookingStatus = "checked_out"
	BookingStatusCancellationRequested BookingStatus = "cancellation_requested"
	BookingStatusCancelled             BookingStatus = "cancelled"
	BookingStatusRefundRequested       BookingStatus = "refund_requested"
	BookingStatusRefunded              BookingStatus = "refunded"
)

type PaymentStatus string

const (
	// Payment is authorized before a booking record is ever written,
	// so a stored booking always carries a completed payment.
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Actor identifies who is requesting a status transition. Customers may
// only request cancellation/refund; operators approve and drive the
// check-in/check-out flow.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorOperator Actor = "operator"
)

type Booking struct {
	Base
	BookingID       string        `db:"booking_id"`
	InvoiceID       string        `db:"invoice_id"`
	UserID          string        `db:"user_id"` // customer email
	UserName        string        `db:"user_name"`
	UserMobile      string        `db:"user_mobile"`
	HotelName       string        `db:"hotel_name"`
	HotelAddress    string        `db:"hotel_address"`
	RoomType        string        `db:"room_type"`
	Guests          int           `db:"guests"`
	CheckInDate     time.Time     `db:"check_in_date"`
	CheckOutDate    time.Time     `db:"check_out_date"`
	Duration        int           `db:"duration"` // nights
	SpecialRequests string        `db:"special_requests"`
	BasePrice       int64         `db:"base_price"`      // adjusted nightly rate, whole rupees
	Taxes           int64         `db:"taxes"`           // 18% GST, whole rupees
	TotalPriceINR   int64         `db:"total_price_inr"` // final amount including tax
	PaymentStatus   PaymentStatus `db:"payment_status"`
	BookingStatus   BookingStatus `db:"booking_status"`
	PaymentRef      string        `db:"payment_ref"` // gateway payment intent id
	Version         int64         `db:"version"`     // bumped on every status write

	CheckInTimestamp  *time.Time `db:"check_in_timestamp"`
	CheckOutTimestamp *time.Time `db:"check_out_timestamp"`
	CancelledAt       *time.Time `db:"cancelled_at"`
	RefundedAt        *time.Time `db:"refunded_at"`
	RefundProcessedAt *time.Time `db:"refund_processed_at"`
}

// transition is one edge of the booking lifecycle graph.
type transition struct {
	from  BookingStatus
	to    BookingStatus
	actor Actor
}

// transitions is the complete lifecycle graph. Anything not listed here
// is rejected without touching the record.
var transitions = []transition{
	{BookingStatusPending, BookingStatusConfirmed, ActorOperator},
	{BookingStatusPending, BookingStatusCancelled, ActorOperator},
	{BookingStatusConfirmed, BookingStatusCheckedIn, ActorOperator},
	{BookingStatusCheckedIn, BookingStatusCheckedOut, ActorOperator},
	{BookingStatusPending, BookingStatusCancellationRequested, ActorCustomer},
	{BookingStatusConfirmed, BookingStatusCancellationRequested, ActorCustomer},
	{BookingStatusCancellationRequested, BookingStatusCancelled, ActorOperator},
	{BookingStatusCancellationRequested, BookingStatusPending, ActorOperator},
	{BookingStatusCancelled, BookingStatusRefundRequested, ActorCustomer},
	{BookingStatusRefundRequested, BookingStatusRefunded, ActorOperator},
	{BookingStatusRefundRequested, BookingStatusCancelled, ActorOperator},
}

// CanTransition reports whether actor may move a booking from one status
// to another.
func CanTransition(from, to BookingStatus, actor Actor) bool {
	for _, t := range transitions {
		if t.from == from && t.to == to && t.actor == actor {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn,
		BookingStatusCheckedOut, BookingStatusCancellationRequested,
		BookingStatusCancelled, BookingStatusRefundRequested, BookingStatusRefunded:
		return true
	}
	return false
}
