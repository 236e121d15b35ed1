package request

// InvoiceRequest is the booking projection the invoice endpoint renders.
// Dates arrive as ISO strings, never opaque timestamp objects.
type InvoiceRequest struct {
	BookingID     string `json:"bookingId" validate:"required"`
	InvoiceID     string `json:"invoiceId" validate:"required"`
	CreatedAt     string `json:"createdAt"`
	UserName      string `json:"userName"`
	UserEmail     string `json:"userEmail"`
	UserMobile    string `json:"userMobile"`
	HotelName     string `json:"hotelName"`
	RoomType      string `json:"roomType"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	Guests        int    `json:"guests"`
	Duration      int    `json:"duration"`
	BasePrice     int64  `json:"basePrice"`
	Taxes         int64  `json:"taxes"`
	TotalPriceINR int64  `json:"totalPriceINR"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentRef    string `json:"stripeTransactionId"`
}
