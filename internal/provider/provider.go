// Package provider holds the capability interfaces for the opaque
// external services the planner depends on: itinerary text generation,
// place lookup and weather lookup. Implementations carry no business
// logic; they are thin HTTP clients.
package provider

import (
	"context"
	"encoding/json"
)

// ItineraryGenerator produces a structured trip plan for a prompt.
type ItineraryGenerator interface {
	Generate(ctx context.Context, prompt string) (json.RawMessage, error)
}

// Place is the projection of a place-lookup result the booking view
// needs (photos and an id for follow-up queries).
type Place struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Photos  []string `json:"photos"`
}

type PlaceLookup interface {
	LookupPlace(ctx context.Context, query string) (*Place, error)
}

// Weather is a current-conditions snapshot for a location.
type Weather struct {
	Location    string  `json:"location"`
	TempCelsius float64 `json:"temp_celsius"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
}

type WeatherLookup interface {
	LookupWeather(ctx context.Context, location string) (*Weather, error)
}
