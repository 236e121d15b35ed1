package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/pricing"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// GetRoomPricing handles POST /api/get-room-pricing
func (h *PaymentHandler) GetRoomPricing(w http.ResponseWriter, r *http.Request) {
	var req request.RoomPricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	quote, err := h.service.GetRoomPricing(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "get room pricing")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// GetRooms handles GET /api/rooms
func (h *PaymentHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", pricing.Catalog)
}

// CreatePaymentIntent handles POST /api/create-payment-intent
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	intent, err := h.service.CreatePaymentIntent(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create payment intent")
		return
	}

	utils.ResponseSuccess(w, "success", intent)
}

// ProcessRefund handles POST /api/process-refund (operator only)
func (h *PaymentHandler) ProcessRefund(w http.ResponseWriter, r *http.Request) {
	var req request.ProcessRefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	refund, err := h.service.ProcessRefund(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "process refund")
		return
	}

	utils.ResponseSuccess(w, "success", refund)
}
