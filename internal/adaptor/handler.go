package adaptor

import (
	"errors"
	"net/http"

	"travel-booking/internal/data/repository"
	"travel-booking/internal/gateway"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	Invoice *InvoiceHandler
	Trip    *TripHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Booking: NewBookingHandler(service.Booking, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Invoice: NewInvoiceHandler(service.Invoice, log),
		Trip:    NewTripHandler(service.Trip, log),
	}
}

// handleServiceError maps service errors onto HTTP responses. Sentinel
// errors carry the classification; the default branch hides internals.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, gateway.ErrInvalidAmount),
		errors.Is(err, gateway.ErrUnsupportedCurrency),
		errors.Is(err, gateway.ErrGatewayRequest):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, gateway.ErrGatewayAuth):
		log.Error(operation+" failed - gateway credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, gateway.ErrGatewayCard):
		log.Warn(operation+" failed - card declined", zap.Error(err))
		utils.ResponsePaymentRequired(w, err.Error())

	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, gateway.ErrReferenceNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidTransition),
		errors.Is(err, repository.ErrVersionConflict):
		log.Warn(operation+" failed - conflicting state", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, gateway.ErrGatewayTimeout):
		log.Error(operation+" failed - gateway timeout", zap.Error(err))
		utils.ResponseGatewayTimeout(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
