package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== CUSTOMER ROUTES ====================
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - Create booking after successful payment
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings?user=<email> - Booking history for one customer
		r.Get("/", bookingHandler.GetUserBookings)

		// GET /api/bookings/{id} - Read one booking
		r.Get("/{id}", bookingHandler.GetBooking)

		// POST /api/bookings/{id}/cancel-request - Customer asks to cancel
		r.Post("/{id}/cancel-request", bookingHandler.RequestCancellation)

		// POST /api/bookings/{id}/refund-request - Customer asks for a refund
		r.Post("/{id}/refund-request", bookingHandler.RequestRefund)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.OperatorSession(repo.Session, log))

		// GET /api/admin/bookings - All bookings grouped by customer
		r.Get("/", bookingHandler.ListAllBookings)

		// PUT /api/admin/bookings/{id}/status - Operator state transition
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
