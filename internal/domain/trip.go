package domain

import "time"

// A stop where fuel was actually purchased during a finalized trip.
type PurchasedStop struct {
	Name             string
	Location         Coordinate
	PricePerGal      float64
	DetourMinutes    float64
	GallonsPurchased float64
}

// TripRecord is a finalized trip persisted by the trip repository.
// Records are append-only: created once when the user finalizes a trip
// and never updated or deleted.
type TripRecord struct {
	TripID      int64
	Origin      string
	Destination string
	DistanceMi  float64
	DurationMin float64
	MpgUsed     float64
	FuelPrice   float64
	TollUsd     *float64
	CO2Kg       float64
	Stops       []PurchasedStop
	CreatedAt   time.Time
}
