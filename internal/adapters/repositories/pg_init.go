package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the postgres schema for trip persistence. Trips are an
// append-only log; stops are children keyed by trip and position.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		trip_id BIGSERIAL PRIMARY KEY,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_mi DOUBLE PRECISION NOT NULL,
		duration_min DOUBLE PRECISION NOT NULL,
		mpg_used DOUBLE PRECISION NOT NULL,
		fuel_price DOUBLE PRECISION NOT NULL,
		toll_usd DOUBLE PRECISION,
		co2_kg DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createTripStopsQuery := `
	CREATE TABLE IF NOT EXISTS trip_stops (
		stop_id BIGSERIAL PRIMARY KEY,
		trip_id BIGINT NOT NULL REFERENCES trips(trip_id) ON DELETE CASCADE,
		position INT NOT NULL,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		price_per_gal DOUBLE PRECISION NOT NULL,
		detour_minutes DOUBLE PRECISION NOT NULL,
		gallons_purchased DOUBLE PRECISION NOT NULL,
		UNIQUE (trip_id, position)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_trip_stops_trip_id
	ON trip_stops(trip_id);
	`

	statements := []string{
		createTripsQuery,
		createTripStopsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
