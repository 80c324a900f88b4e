package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
)

// Postgres-backed implementation of the TripRepository port.
type PgTripRepository struct{ DB *sql.DB }

func NewPgTripRepository(db *sql.DB) *PgTripRepository {
	return &PgTripRepository{DB: db}
}

// Persist a finalized trip and its purchased stops in one transaction.
func (r *PgTripRepository) CreateTrip(ctx context.Context, trip *domain.TripRecord) (_ *domain.TripRecord, err error) {
	defer obs.Time(ctx, "trips.CreateTrip")(&err)

	if r.DB == nil {
		return nil, errors.New("trip repository: DB is nil")
	}
	if trip == nil {
		return nil, errors.New("trip repository: trip is nil")
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("create trip: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertTrip := `
	INSERT INTO trips (
		origin, destination, distance_mi, duration_min,
		mpg_used, fuel_price, toll_usd, co2_kg
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING trip_id, created_at;
	`

	stored := *trip
	err = tx.QueryRowContext(ctx, insertTrip,
		trip.Origin, trip.Destination, trip.DistanceMi, trip.DurationMin,
		trip.MpgUsed, trip.FuelPrice, trip.TollUsd, trip.CO2Kg,
	).Scan(&stored.TripID, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create trip: insert trip: %w", err)
	}

	if len(trip.Stops) > 0 {
		stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trip_stops (
			trip_id, position, name, lat, lon,
			price_per_gal, detour_minutes, gallons_purchased
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`)
		if err != nil {
			return nil, fmt.Errorf("create trip: prepare stop insert: %w", err)
		}
		defer stmt.Close()

		for i, s := range trip.Stops {
			_, err := stmt.ExecContext(ctx,
				stored.TripID, i, s.Name, s.Location.Lat, s.Location.Lon,
				s.PricePerGal, s.DetourMinutes, s.GallonsPurchased,
			)
			if err != nil {
				return nil, fmt.Errorf("create trip: insert stop #%d: %w", i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create trip: commit tx: %w", err)
	}

	return &stored, nil
}

// Return all stored trips with their stops, newest first.
func (r *PgTripRepository) ListTrips(ctx context.Context) (_ []*domain.TripRecord, err error) {
	defer obs.Time(ctx, "trips.ListTrips")(&err)

	if r.DB == nil {
		return nil, errors.New("trip repository: DB is nil")
	}

	listTrips := `
	SELECT
		trip_id, origin, destination, distance_mi, duration_min,
		mpg_used, fuel_price, toll_usd, co2_kg, created_at
	FROM trips
	ORDER BY created_at DESC, trip_id DESC;
	`

	rows, err := r.DB.QueryContext(ctx, listTrips)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.TripRecord, 0, 32)
	byID := make(map[int64]*domain.TripRecord)
	ids := make([]int64, 0, 32)

	for rows.Next() {
		var t domain.TripRecord
		err := rows.Scan(
			&t.TripID, &t.Origin, &t.Destination, &t.DistanceMi, &t.DurationMin,
			&t.MpgUsed, &t.FuelPrice, &t.TollUsd, &t.CO2Kg, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list trips: scan trip row: %w", err)
		}
		t.Stops = []domain.PurchasedStop{}
		trips = append(trips, &t)
		byID[t.TripID] = &t
		ids = append(ids, t.TripID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: trip row iteration: %w", err)
	}

	if len(ids) == 0 {
		return trips, nil
	}

	listStops := `
	SELECT
		trip_id, name, lat, lon,
		price_per_gal, detour_minutes, gallons_purchased
	FROM trip_stops
	WHERE trip_id = ANY($1::bigint[])
	ORDER BY trip_id, position;
	`

	stopRows, err := r.DB.QueryContext(ctx, listStops, ids)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trip_stops table: %w", err)
	}
	defer stopRows.Close()

	for stopRows.Next() {
		var tripID int64
		var s domain.PurchasedStop
		err := stopRows.Scan(
			&tripID, &s.Name, &s.Location.Lat, &s.Location.Lon,
			&s.PricePerGal, &s.DetourMinutes, &s.GallonsPurchased,
		)
		if err != nil {
			return nil, fmt.Errorf("list trips: scan stop row: %w", err)
		}
		if t, ok := byID[tripID]; ok {
			t.Stops = append(t.Stops, s)
		}
	}
	if err := stopRows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: stop row iteration: %w", err)
	}

	return trips, nil
}
