package entity

import "encoding/json"

// Itinerary is a generated trip plan. TripData is the raw JSON returned
// by the generation provider and is stored opaque.
type Itinerary struct {
	Base
	UserEmail     string          `db:"user_email"`
	UserSelection json.RawMessage `db:"user_selection"`
	TripData      json.RawMessage `db:"trip_data"`
}
