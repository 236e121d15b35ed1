package usecase

import (
	"travel-booking/internal/data/repository"
	"travel-booking/internal/events"
	"travel-booking/internal/gateway"
	"travel-booking/internal/provider"
	"travel-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Booking BookingService
	Payment PaymentService
	Invoice InvoiceService
	Trip    TripService
}

// Deps bundles the external collaborators the services are built from.
type Deps struct {
	Gateway   gateway.PaymentGateway
	Publisher events.Publisher
	Watchlist RefundWatchlist
	Cache     *redis.Client
	Generator provider.ItineraryGenerator
	Places    provider.PlaceLookup
	Weather   provider.WeatherLookup
}

func NewService(repo *repository.Repository, deps Deps, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.Operator, repo.Session, config.Session.ExpiryHours, log),
		Booking: NewBookingService(repo, deps.Gateway, deps.Publisher, deps.Watchlist, log),
		Payment: NewPaymentService(deps.Gateway, deps.Cache, log),
		Invoice: NewInvoiceService(log),
		Trip:    NewTripService(repo.Itinerary, deps.Generator, deps.Places, deps.Weather, log),
	}
}
