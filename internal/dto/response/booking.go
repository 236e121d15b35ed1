package response

import (
	"time"

	"travel-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	BookingID       string               `json:"booking_id"`
	InvoiceID       string               `json:"invoice_id"`
	UserID          string               `json:"user_id"`
	UserName        string               `json:"user_name"`
	HotelName       string               `json:"hotel_name"`
	HotelAddress    string               `json:"hotel_address"`
	RoomType        string               `json:"room_type"`
	Guests          int                  `json:"guests"`
	CheckInDate     string               `json:"check_in_date"`
	CheckOutDate    string               `json:"check_out_date"`
	Duration        int                  `json:"duration"`
	SpecialRequests string               `json:"special_requests,omitempty"`
	BasePrice       int64                `json:"base_price"`
	Taxes           int64                `json:"taxes"`
	TotalPriceINR   int64                `json:"total_price_inr"`
	PaymentStatus   entity.PaymentStatus `json:"payment_status"`
	BookingStatus   entity.BookingStatus `json:"booking_status"`
	PaymentRef      string               `json:"payment_ref"`

	CheckInTimestamp  *time.Time `json:"check_in_timestamp,omitempty"`
	CheckOutTimestamp *time.Time `json:"check_out_timestamp,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	RefundedAt        *time.Time `json:"refunded_at,omitempty"`
	RefundProcessedAt *time.Time `json:"refund_processed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:                b.ID.String(),
		BookingID:         b.BookingID,
		InvoiceID:         b.InvoiceID,
		UserID:            b.UserID,
		UserName:          b.UserName,
		HotelName:         b.HotelName,
		HotelAddress:      b.HotelAddress,
		RoomType:          b.RoomType,
		Guests:            b.Guests,
		CheckInDate:       b.CheckInDate.Format("2006-01-02"),
		CheckOutDate:      b.CheckOutDate.Format("2006-01-02"),
		Duration:          b.Duration,
		SpecialRequests:   b.SpecialRequests,
		BasePrice:         b.BasePrice,
		Taxes:             b.Taxes,
		TotalPriceINR:     b.TotalPriceINR,
		PaymentStatus:     b.PaymentStatus,
		BookingStatus:     b.BookingStatus,
		PaymentRef:        b.PaymentRef,
		CheckInTimestamp:  b.CheckInTimestamp,
		CheckOutTimestamp: b.CheckOutTimestamp,
		CancelledAt:       b.CancelledAt,
		RefundedAt:        b.RefundedAt,
		RefundProcessedAt: b.RefundProcessedAt,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

// UserBookings groups one customer's bookings for the admin view.
type UserBookings struct {
	UserID   string            `json:"user_id"`
	Bookings []BookingResponse `json:"bookings"`
}
