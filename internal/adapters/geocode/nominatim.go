package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/httpx"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

const DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

// Nominatim requires an identifying User-Agent for API access.
const nominatimUserAgent = "fuel-route-service/1.0"

// Nominatim returns lat/lon as JSON strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NominatimGeocoder is the free-text fallback geocoder. It needs no
// credential and is tried when the primary provider fails or is not
// configured.
type NominatimGeocoder struct {
	session *http.Client
	baseURL string
	cache   ports.ResponseCache
}

func NewNominatimGeocoder(baseURL string, respCache ports.ResponseCache) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = DefaultNominatimBaseURL
	}
	return &NominatimGeocoder{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		cache:   respCache,
	}
}

func (n *NominatimGeocoder) Geocode(ctx context.Context, text string) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	norm := normalize(text)
	if norm == "" {
		return domain.Coordinate{}, errors.New("nominatim geocode: text must be non-empty")
	}

	key := "geocode:nominatim:" + norm
	if coord, ok := cache.Lookup[domain.Coordinate](ctx, n.cache, key); ok {
		return coord, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search", nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("nominatim geocode: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", nominatimUserAgent)

	q := req.URL.Query()
	q.Set("q", norm)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("countrycodes", "us")
	req.URL.RawQuery = q.Encode()

	resp, err := httpx.Do(n.session, req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("nominatim geocode %q: %w: %v", norm, ports.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinate{}, fmt.Errorf("nominatim geocode %q: decode: %w: %v", norm, ports.ErrProviderUnavailable, err)
	}

	if len(decoded) == 0 {
		return domain.Coordinate{}, fmt.Errorf("nominatim geocode %q: no results: %w", norm, ports.ErrProviderUnavailable)
	}

	lat, latErr := strconv.ParseFloat(decoded[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(decoded[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return domain.Coordinate{}, fmt.Errorf("nominatim geocode %q: non-numeric coordinates: %w", norm, ports.ErrProviderUnavailable)
	}

	coord := domain.Coordinate{Lat: lat, Lon: lon}
	cache.Store(ctx, n.cache, key, coord, geocodeTTL)

	return coord, nil
}
