package wire

import (
	"travel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTrip(r chi.Router, tripHandler *adaptor.TripHandler) {
	// GET /api/destinations?q=<query> - Place details plus weather
	r.Get("/api/destinations", tripHandler.SearchDestination)

	r.Route("/api/trips", func(r chi.Router) {
		// POST /api/trips - Generate and save an itinerary
		r.Post("/", tripHandler.CreateTrip)

		// GET /api/trips?user=<email> - Itineraries for one customer
		r.Get("/", tripHandler.ListUserTrips)

		// GET /api/trips/{id} - Read one itinerary
		r.Get("/{id}", tripHandler.GetTrip)
	})
}
