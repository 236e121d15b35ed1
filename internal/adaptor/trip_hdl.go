package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TripHandler struct {
	service usecase.TripService
	log     *zap.Logger
}

func NewTripHandler(service usecase.TripService, log *zap.Logger) *TripHandler {
	return &TripHandler{
		service: service,
		log:     log.With(zap.String("handler", "trip")),
	}
}

// CreateTrip handles POST /api/trips
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	trip, err := h.service.CreateTrip(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create trip")
		return
	}

	utils.ResponseCreated(w, "success", trip)
}

// GetTrip handles GET /api/trips/{id}
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "id")
	if tripID == "" {
		utils.ResponseBadRequest(w, "Trip ID is required", nil)
		return
	}

	trip, err := h.service.GetTrip(r.Context(), tripID)
	if err != nil {
		handleServiceError(h.log, w, err, "get trip")
		return
	}

	utils.ResponseSuccess(w, "success", trip)
}

// SearchDestination handles GET /api/destinations?q=<query>
func (h *TripHandler) SearchDestination(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		utils.ResponseBadRequest(w, "q query parameter is required", nil)
		return
	}

	info, err := h.service.DestinationInfo(r.Context(), query)
	if err != nil {
		handleServiceError(h.log, w, err, "search destination")
		return
	}

	utils.ResponseSuccess(w, "success", info)
}

// ListUserTrips handles GET /api/trips?user=<email>
func (h *TripHandler) ListUserTrips(w http.ResponseWriter, r *http.Request) {
	userEmail := r.URL.Query().Get("user")
	if userEmail == "" {
		utils.ResponseBadRequest(w, "user query parameter is required", nil)
		return
	}

	trips, err := h.service.ListUserTrips(r.Context(), userEmail)
	if err != nil {
		handleServiceError(h.log, w, err, "list user trips")
		return
	}

	utils.ResponseSuccess(w, "success", trips)
}
