package response

import (
	"encoding/json"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/provider"
)

type TripResponse struct {
	ID            string          `json:"id"`
	UserEmail     string          `json:"user_email"`
	UserSelection json.RawMessage `json:"user_selection,omitempty"`
	TripData      json.RawMessage `json:"trip_data"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DestinationResponse bundles place details with an optional weather
// snapshot. Weather is nil when the lookup fails.
type DestinationResponse struct {
	Place   provider.Place    `json:"place"`
	Weather *provider.Weather `json:"weather,omitempty"`
}

func TripToResponse(it *entity.Itinerary) TripResponse {
	return TripResponse{
		ID:            it.ID.String(),
		UserEmail:     it.UserEmail,
		UserSelection: it.UserSelection,
		TripData:      it.TripData,
		CreatedAt:     it.CreatedAt,
	}
}
