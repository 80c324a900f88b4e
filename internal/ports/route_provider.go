package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// Contract for obtaining a driving path between two coordinates.
type RouteProvider interface {
	// Return a driving path from origin to destination. The returned
	// polyline preserves provider order, distance is in miles and
	// duration in minutes.
	ComputeRoute(ctx context.Context, origin, destination domain.Coordinate) (*domain.RoutePath, error)
}
