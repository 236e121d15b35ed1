package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	invoiceHandler *adaptor.InvoiceHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms - Room category catalog
	r.Get("/api/rooms", paymentHandler.GetRooms)

	// POST /api/get-room-pricing - Quote for a stay
	r.Post("/api/get-room-pricing", paymentHandler.GetRoomPricing)

	// POST /api/create-payment-intent - Authorize a payment
	r.Post("/api/create-payment-intent", paymentHandler.CreatePaymentIntent)

	// POST /api/download-invoice - Render booking invoice as PDF
	r.Post("/api/download-invoice", invoiceHandler.DownloadInvoice)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.OperatorSession(repo.Session, log))

		// POST /api/process-refund - Direct gateway refund (operator only)
		r.Post("/api/process-refund", paymentHandler.ProcessRefund)
	})
}
