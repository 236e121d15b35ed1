package repository

import (
	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking   BookingRepository
	Itinerary ItineraryRepository
	Operator  OperatorRepository
	Session   SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking:   NewBookingRepository(db, log),
		Itinerary: NewItineraryRepository(db, log),
		Operator:  NewOperatorRepository(db, log),
		Session:   NewSessionRepository(db, log),
	}
}
