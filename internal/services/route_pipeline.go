package services

import (
	"context"
	"errors"
	"sync"

	"fuel-route-service/internal/adapters/routing"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

// Origin/destination pair fed to the routing chain.
type RouteEndpoints struct {
	Origin      domain.Coordinate
	Destination domain.Coordinate
}

// RouteSourceFallback marks a response served from the static demo path
// because geocoding or every routing provider failed.
const RouteSourceFallback = "fallback"

// RouteResult is a computed path plus the name of the provider that
// produced it, so callers can tell a live route from the canned fallback
// without the request failing.
type RouteResult struct {
	Path   *domain.RoutePath
	Source string
}

// RoutePipeline answers route requests by resolving both endpoints
// through the geocoder chain, then trying the routing chain, substituting
// the static fallback path when everything is down.
type RoutePipeline struct {
	geocoders []Strategy[string, domain.Coordinate]
	routers   []Strategy[RouteEndpoints, *domain.RoutePath]
}

func NewRoutePipeline(
	geocoders []Strategy[string, domain.Coordinate],
	routers []Strategy[RouteEndpoints, *domain.RoutePath],
) *RoutePipeline {
	return &RoutePipeline{geocoders: geocoders, routers: routers}
}

// GeocoderStrategy adapts a Geocoder port into a chain member.
func GeocoderStrategy(name string, g ports.Geocoder) Strategy[string, domain.Coordinate] {
	return Strategy[string, domain.Coordinate]{
		Name: name,
		Run:  g.Geocode,
	}
}

// RouterStrategy adapts a RouteProvider port into a chain member.
func RouterStrategy(name string, r ports.RouteProvider) Strategy[RouteEndpoints, *domain.RoutePath] {
	return Strategy[RouteEndpoints, *domain.RoutePath]{
		Name: name,
		Run: func(ctx context.Context, in RouteEndpoints) (*domain.RoutePath, error) {
			return r.ComputeRoute(ctx, in.Origin, in.Destination)
		},
	}
}

// PlanRoute resolves origin and destination to a driving path.
//
// The two geocode lookups fan out concurrently and are awaited jointly; a
// failure of either member only marks that endpoint unresolved, it never
// aborts its sibling. Provider failures are absorbed: the only error this
// method returns is for empty input.
func (p *RoutePipeline) PlanRoute(ctx context.Context, origin, destination string) (_ *RouteResult, err error) {
	defer obs.Time(ctx, "pipeline.PlanRoute")(&err)

	if origin == "" || destination == "" {
		return nil, errors.New("plan route: origin and destination must be non-empty")
	}

	coords := make([]*domain.Coordinate, 2)

	var wg sync.WaitGroup
	for i, text := range []string{origin, destination} {
		i, text := i, text
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, _, err := First(ctx, "geocode", p.geocoders, text)
			if err != nil {
				// NotFound for this endpoint; the pipeline decides below.
				return
			}
			coords[i] = &c
		}()
	}
	wg.Wait()

	if coords[0] == nil || coords[1] == nil {
		return &RouteResult{Path: routing.StaticFallbackRoute(), Source: RouteSourceFallback}, nil
	}

	endpoints := RouteEndpoints{Origin: *coords[0], Destination: *coords[1]}
	path, source, err := First(ctx, "route", p.routers, endpoints)
	if err != nil {
		return &RouteResult{Path: routing.StaticFallbackRoute(), Source: RouteSourceFallback}, nil
	}

	return &RouteResult{Path: path, Source: source}, nil
}
