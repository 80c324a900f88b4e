package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/httpx"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

const DefaultORSBaseURL = "https://api.openrouteservice.org"

// Geocode results are stable; cache them for an hour.
const geocodeTTL = time.Hour

type orsGeocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// ORSGeocoder resolves free-text locations via the OpenRouteService
// /geocode/search endpoint. It is the primary geocoding provider and
// requires an API key.
type ORSGeocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
	cache   ports.ResponseCache
}

func NewORSGeocoder(apiKey, baseURL string, respCache ports.ResponseCache) (*ORSGeocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if baseURL == "" {
		baseURL = DefaultORSBaseURL
	}

	return &ORSGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
		cache:   respCache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (o *ORSGeocoder) Geocode(ctx context.Context, text string) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	norm := normalize(text)
	if norm == "" {
		return domain.Coordinate{}, errors.New("ors geocode: text must be non-empty")
	}

	key := "geocode:ors:" + norm
	if coord, ok := cache.Lookup[domain.Coordinate](ctx, o.cache, key); ok {
		return coord, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"/geocode/search", nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("ors geocode: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("api_key", o.apiKey)
	q.Set("text", norm)
	q.Set("boundary.country", "US")
	q.Set("size", "1")
	req.URL.RawQuery = q.Encode()

	resp, err := httpx.Do(o.session, req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("ors geocode %q: %w: %v", norm, ports.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded orsGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinate{}, fmt.Errorf("ors geocode %q: decode: %w: %v", norm, ports.ErrProviderUnavailable, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinate{}, fmt.Errorf("ors geocode %q: no results: %w", norm, ports.ErrProviderUnavailable)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) < 2 {
		return domain.Coordinate{}, fmt.Errorf("ors geocode %q: invalid coordinate format: %w", norm, ports.ErrProviderUnavailable)
	}

	// ORS returns GeoJSON (lon, lat) ordering.
	coord := domain.Coordinate{Lat: coords[1], Lon: coords[0]}
	cache.Store(ctx, o.cache, key, coord, geocodeTTL)

	return coord, nil
}
