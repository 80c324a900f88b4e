package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// Contract for finding the closest real-world fuel station to a point.
type POIProvider interface {
	// Return the nearest fuel POI within the provider's search radius.
	// A nil POI with a nil error means no station was found nearby;
	// the caller substitutes the queried point itself.
	NearestFuelPOI(ctx context.Context, p domain.Coordinate) (*domain.FuelPOI, error)
}
