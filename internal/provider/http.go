package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

// HTTPGenerator calls a text-generation endpoint that returns the trip
// plan as a JSON document.
type HTTPGenerator struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *zap.Logger
}

func NewHTTPGenerator(baseURL, apiKey string, log *zap.Logger) *HTTPGenerator {
	return &HTTPGenerator{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
		log:     log.With(zap.String("provider", "generator")),
	}
}

func (g *HTTPGenerator) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return nil, fmt.Errorf("marshal generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call generation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.log.Warn("Generation service returned non-200", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("generation service status %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode generation response: %w", err)
	}

	return raw, nil
}

// HTTPPlaceLookup resolves free-text queries against a places endpoint.
type HTTPPlaceLookup struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPPlaceLookup(baseURL, apiKey string) *HTTPPlaceLookup {
	return &HTTPPlaceLookup{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (p *HTTPPlaceLookup) LookupPlace(ctx context.Context, query string) (*Place, error) {
	u := fmt.Sprintf("%s?query=%s&key=%s", p.baseURL, url.QueryEscape(query), url.QueryEscape(p.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build place request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call place service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("place service status %d", resp.StatusCode)
	}

	var place Place
	if err := json.NewDecoder(resp.Body).Decode(&place); err != nil {
		return nil, fmt.Errorf("decode place response: %w", err)
	}

	return &place, nil
}

// HTTPWeatherLookup fetches current conditions for a location.
type HTTPWeatherLookup struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPWeatherLookup(baseURL, apiKey string) *HTTPWeatherLookup {
	return &HTTPWeatherLookup{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (w *HTTPWeatherLookup) LookupWeather(ctx context.Context, location string) (*Weather, error) {
	u := fmt.Sprintf("%s?q=%s&key=%s", w.baseURL, url.QueryEscape(location), url.QueryEscape(w.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call weather service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather service status %d", resp.StatusCode)
	}

	var weather Weather
	if err := json.NewDecoder(resp.Body).Decode(&weather); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	return &weather, nil
}
