package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/httpx"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

const DefaultOSRMBaseURL = "https://router.project-osrm.org"

type osrmResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// OSRMRouteProvider obtains driving paths from the public OSRM demo
// router. It needs no credential and serves as the secondary routing
// provider behind OpenRouteService.
type OSRMRouteProvider struct {
	session *http.Client
	baseURL string
	cache   ports.ResponseCache
}

func NewOSRMRouteProvider(baseURL string, respCache ports.ResponseCache) *OSRMRouteProvider {
	if baseURL == "" {
		baseURL = DefaultOSRMBaseURL
	}
	return &OSRMRouteProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		cache:   respCache,
	}
}

func (o *OSRMRouteProvider) ComputeRoute(ctx context.Context, origin, destination domain.Coordinate) (_ *domain.RoutePath, err error) {
	defer obs.Time(ctx, "osrm.ComputeRoute")(&err)

	key := routeCacheKey("osrm", origin, destination)
	if path, ok := cache.Lookup[domain.RoutePath](ctx, o.cache, key); ok {
		return &path, nil
	}

	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f",
		o.baseURL, origin.Lon, origin.Lat, destination.Lon, destination.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("osrm route: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("overview", "full")
	q.Set("geometries", "geojson")
	req.URL.RawQuery = q.Encode()

	resp, err := httpx.Do(o.session, req)
	if err != nil {
		return nil, fmt.Errorf("osrm route: %w: %v", ports.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("osrm route: decode: %w: %v", ports.ErrProviderUnavailable, err)
	}

	if len(decoded.Routes) == 0 {
		return nil, fmt.Errorf("osrm route: no routes: %w", ports.ErrProviderUnavailable)
	}

	route := decoded.Routes[0]
	polyline, err := polylineFromLonLat(route.Geometry.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("osrm route: %w: %v", ports.ErrProviderUnavailable, err)
	}

	path := domain.RoutePath{
		DistanceMi:  MetersToMiles(route.Distance),
		DurationMin: SecondsToMinutes(route.Duration),
		Polyline:    polyline,
		Waypoints:   domain.Waypoints{Origin: origin, Destination: destination},
	}
	cache.Store(ctx, o.cache, key, path, routeTTL)

	return &path, nil
}
