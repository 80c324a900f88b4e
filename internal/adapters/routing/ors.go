package routing

import (
	"bytes"
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

// Routes change little but the public endpoints ask for politeness;
// cache briefly.
const routeTTL = 5 * time.Minute

type orsDirectionsRequest struct {
	Coordinates    [][]float64 `json:"coordinates"`
	GeometryFormat string      `json:"geometry_format"`
	Instructions   bool        `json:"instructions"`
	Elevation      bool        `json:"elevation"`
}

type orsDirectionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// ORSRouteProvider obtains driving paths from the OpenRouteService
// directions endpoint. It is the primary routing provider and requires
// an API key.
type ORSRouteProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
	cache   ports.ResponseCache
}

func NewORSRouteProvider(apiKey, baseURL string, respCache ports.ResponseCache) (*ORSRouteProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if baseURL == "" {
		baseURL = DefaultORSBaseURL
	}

	return &ORSRouteProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: baseURL,
		profile: "driving-car",
		cache:   respCache,
	}, nil
}

func routeCacheKey(provider string, a, b domain.Coordinate) string {
	return fmt.Sprintf("route:%s:%.5f,%.5f:%.5f,%.5f", provider, a.Lat, a.Lon, b.Lat, b.Lon)
}

func (o *ORSRouteProvider) ComputeRoute(ctx context.Context, origin, destination domain.Coordinate) (_ *domain.RoutePath, err error) {
	defer obs.Time(ctx, "ors.ComputeRoute")(&err)

	key := routeCacheKey("ors", origin, destination)
	if path, ok := cache.Lookup[domain.RoutePath](ctx, o.cache, key); ok {
		return &path, nil
	}

	payload, err := json.Marshal(orsDirectionsRequest{
		Coordinates:    [][]float64{origin.LonLat(), destination.LonLat()},
		GeometryFormat: "geojson",
		Instructions:   false,
		Elevation:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("ors directions: encode request: %w", err)
	}

	endpoint := o.baseURL + "/v2/directions/" + o.profile

	resp, err := httpx.DoWithRetry(ctx, o.session, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", o.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("ors directions: %w: %v", ports.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded orsDirectionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("ors directions: decode: %w: %v", ports.ErrProviderUnavailable, err)
	}

	if len(decoded.Routes) == 0 {
		return nil, fmt.Errorf("ors directions: no routes: %w", ports.ErrProviderUnavailable)
	}

	route := decoded.Routes[0]
	if route.Summary.Distance == 0 && route.Summary.Duration == 0 {
		return nil, fmt.Errorf("ors directions: missing summary: %w", ports.ErrProviderUnavailable)
	}

	polyline, err := polylineFromLonLat(route.Geometry.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("ors directions: %w: %v", ports.ErrProviderUnavailable, err)
	}

	path := domain.RoutePath{
		DistanceMi:  MetersToMiles(route.Summary.Distance),
		DurationMin: SecondsToMinutes(route.Summary.Duration),
		Polyline:    polyline,
		Waypoints:   domain.Waypoints{Origin: origin, Destination: destination},
	}
	cache.Store(ctx, o.cache, key, path, routeTTL)

	return &path, nil
}

// polylineFromLonLat converts a GeoJSON LineString coordinate sequence
// ((lon, lat) pairs) into ordered domain coordinates.
func polylineFromLonLat(coords [][]float64) ([]domain.Coordinate, error) {
	if len(coords) == 0 {
		return nil, errors.New("empty coordinate sequence")
	}

	polyline := make([]domain.Coordinate, 0, len(coords))
	for i, pair := range coords {
		if len(pair) < 2 {
			return nil, fmt.Errorf("invalid coordinate pair at index %d", i)
		}
		polyline = append(polyline, domain.Coordinate{Lat: pair[1], Lon: pair[0]})
	}

	return polyline, nil
}
