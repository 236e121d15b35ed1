package usecase

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/internal/provider"
	"travel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TripService interface {
	CreateTrip(ctx context.Context, req *request.CreateTripRequest) (*response.TripResponse, error)
	GetTrip(ctx context.Context, id string) (*response.TripResponse, error)
	ListUserTrips(ctx context.Context, userEmail string) ([]response.TripResponse, error)
	DestinationInfo(ctx context.Context, query string) (*response.DestinationResponse, error)
}

type tripService struct {
	repo      repository.ItineraryRepository
	generator provider.ItineraryGenerator
	places    provider.PlaceLookup
	weather   provider.WeatherLookup
	log       *zap.Logger
}

func NewTripService(
	repo repository.ItineraryRepository,
	generator provider.ItineraryGenerator,
	places provider.PlaceLookup,
	weather provider.WeatherLookup,
	log *zap.Logger,
) TripService {
	return &tripService{
		repo:      repo,
		generator: generator,
		places:    places,
		weather:   weather,
		log:       log.With(zap.String("service", "trip")),
	}
}

func (s *tripService) CreateTrip(ctx context.Context, req *request.CreateTripRequest) (*response.TripResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create trip validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	prompt := fmt.Sprintf(
		"Generate a travel plan for location %s for %d days for %s with a %s budget. "+
			"Include hotel options and a day-by-day itinerary in JSON format.",
		req.Destination, req.Days, req.Travellers, req.Budget,
	)

	tripData, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.Error("Itinerary generation failed",
			zap.Error(err),
			zap.String("destination", req.Destination),
			zap.String("user_email", req.UserEmail),
		)
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	now := time.Now()
	itinerary := &entity.Itinerary{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserEmail:     req.UserEmail,
		UserSelection: req.UserSelection,
		TripData:      tripData,
	}

	if err := s.repo.Create(ctx, itinerary); err != nil {
		return nil, fmt.Errorf("save itinerary: %w", err)
	}

	s.log.Info("Trip created",
		zap.String("id", itinerary.ID.String()),
		zap.String("user_email", req.UserEmail),
		zap.String("destination", req.Destination),
	)

	resp := response.TripToResponse(itinerary)
	return &resp, nil
}

func (s *tripService) GetTrip(ctx context.Context, id string) (*response.TripResponse, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid trip id %s", ErrValidation, id)
	}

	itinerary, err := s.repo.FindByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("get trip %s: %w", id, err)
	}

	resp := response.TripToResponse(itinerary)
	return &resp, nil
}

func (s *tripService) ListUserTrips(ctx context.Context, userEmail string) ([]response.TripResponse, error) {
	itineraries, err := s.repo.FindByUserEmail(ctx, userEmail)
	if err != nil {
		s.log.Error("Failed to list user trips",
			zap.Error(err),
			zap.String("user_email", userEmail),
		)
		return nil, fmt.Errorf("list user trips: %w", err)
	}

	responses := make([]response.TripResponse, len(itineraries))
	for i, it := range itineraries {
		responses[i] = response.TripToResponse(it)
	}

	return responses, nil
}

// DestinationInfo resolves a destination query to place details plus a
// current-weather snapshot. Weather is best-effort; a failed lookup
// degrades to place data only.
func (s *tripService) DestinationInfo(ctx context.Context, query string) (*response.DestinationResponse, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: destination query is required", ErrValidation)
	}

	place, err := s.places.LookupPlace(ctx, query)
	if err != nil {
		s.log.Error("Place lookup failed",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("lookup place %s: %w", query, err)
	}

	info := &response.DestinationResponse{Place: *place}

	if weather, err := s.weather.LookupWeather(ctx, place.Name); err != nil {
		s.log.Warn("Weather lookup failed",
			zap.Error(err),
			zap.String("location", place.Name),
		)
	} else {
		info.Weather = weather
	}

	return info, nil
}
