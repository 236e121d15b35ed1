package request

type RoomPricingRequest struct {
	ProductID string `json:"productId" validate:"required"`
	CheckIn   string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut  string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests    int    `json:"guests" validate:"required,gt=0"`
	Duration  int    `json:"duration" validate:"required,gt=0"`
}

type BookingDetails struct {
	UserID    string `json:"userId" validate:"required"`
	HotelName string `json:"hotelName" validate:"required"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
}

type CreatePaymentIntentRequest struct {
	// Amount in paise; must be a positive integer.
	Amount         int64          `json:"amount" validate:"required,gt=0"`
	Currency       string         `json:"currency" validate:"required"`
	BookingDetails BookingDetails `json:"bookingDetails" validate:"required"`
}

type ProcessRefundRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
	Amount          int64  `json:"amount" validate:"required,gt=0"`
}
