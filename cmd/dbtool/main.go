package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool initializes the trips schema and optionally dumps the stored
// trip log, for local setup and quick inspection.
func main() {
	listTrips := flag.Bool("list", false, "print stored trips after schema init")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if !*listTrips {
		return
	}

	repo := repositories.NewPgTripRepository(conn)
	trips, err := repo.ListTrips(context.Background())
	if err != nil {
		log.Fatalf("list trips failed: %v", err)
	}

	log.Printf("%d trip(s) stored", len(trips))
	for _, t := range trips {
		log.Printf("trip_id=%d %s -> %s distance_mi=%.1f stops=%d created_at=%s",
			t.TripID, t.Origin, t.Destination, t.DistanceMi, len(t.Stops), t.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}
