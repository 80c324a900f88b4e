package ports

import (
	"context"

	"fuel-route-service/internal/domain"
)

// Append-only storage for finalized trips. No update or delete operations
// exist; a trip record is immutable after creation.
type TripRepository interface {
	// Persist a finalized trip with its purchased stops and return the
	// stored record including generated identifiers.
	CreateTrip(ctx context.Context, trip *domain.TripRecord) (*domain.TripRecord, error)
	// Return all stored trips, newest first.
	ListTrips(ctx context.Context) ([]*domain.TripRecord, error)
}
