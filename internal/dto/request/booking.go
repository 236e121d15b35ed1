package request

type CreateBookingRequest struct {
	UserID          string `json:"user_id" validate:"required,email"`
	UserName        string `json:"user_name" validate:"required"`
	UserMobile      string `json:"user_mobile" validate:"required,min=10"`
	HotelName       string `json:"hotel_name" validate:"required"`
	HotelAddress    string `json:"hotel_address" validate:"required"`
	RoomType        string `json:"room_type" validate:"required"`
	Guests          int    `json:"guests" validate:"required,gt=0"`
	CheckInDate     string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate    string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	SpecialRequests string `json:"special_requests"`

	// Set by the client after the payment intent succeeds. A booking
	// record only exists for an authorized payment.
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

// TransitionRequest is an operator-driven status change.
type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}
