package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// Contract for resolving a free-text location to a coordinate.
type Geocoder interface {
	// Resolve a location string to a coordinate. A failed lookup returns
	// an error wrapping ErrProviderUnavailable.
	Geocode(ctx context.Context, text string) (domain.Coordinate, error)
}
