package adaptor

import (
	"context"
	"encoding/json"
	"net/http"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetUserBookings handles GET /api/bookings?user=<email>
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		utils.ResponseBadRequest(w, "user query parameter is required", nil)
		return
	}

	bookings, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// RequestCancellation handles POST /api/bookings/{id}/cancel-request
func (h *BookingHandler) RequestCancellation(w http.ResponseWriter, r *http.Request) {
	h.customerTransition(w, r, h.service.RequestCancellation, "request cancellation")
}

// RequestRefund handles POST /api/bookings/{id}/refund-request
func (h *BookingHandler) RequestRefund(w http.ResponseWriter, r *http.Request) {
	h.customerTransition(w, r, h.service.RequestRefund, "request refund")
}

func (h *BookingHandler) customerTransition(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, bookingID, userID string) (*response.BookingResponse, error),
	operation string,
) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var body struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.UserID == "" {
		utils.ResponseBadRequest(w, "user_id is required", nil)
		return
	}

	booking, err := apply(r.Context(), bookingID, body.UserID)
	if err != nil {
		handleServiceError(h.log, w, err, operation)
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ==================== ADMIN METHODS ====================

// ListAllBookings handles GET /api/admin/bookings
func (h *BookingHandler) ListAllBookings(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.service.ListAllBookings(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list all bookings")
		return
	}

	utils.ResponseSuccess(w, "success", grouped)
}

// UpdateBookingStatus handles PUT /api/admin/bookings/{id}/status
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.OperatorTransition(r.Context(), bookingID, entity.BookingStatus(req.Status))
	if err != nil {
		handleServiceError(h.log, w, err, "update booking status")
		return
	}

	if operatorID, ok := utils.GetOperatorIDFromContext(r.Context()); ok {
		h.log.Info("Operator changed booking status",
			zap.String("operator_id", operatorID.String()),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
	}

	utils.ResponseSuccess(w, "success", booking)
}
