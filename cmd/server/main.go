package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"fuel-route-service/internal/adapters/cache"
	"fuel-route-service/internal/adapters/fuelprice"
	"fuel-route-service/internal/adapters/geocode"
	"fuel-route-service/internal/adapters/poi"
	"fuel-route-service/internal/adapters/repositories"
	"fuel-route-service/internal/adapters/routing"
	"fuel-route-service/internal/api"
	"fuel-route-service/internal/config"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/db"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete provider adapters behind ports and starts the HTTP
// server. Every external provider is optional except the trip database:
// missing credentials shorten the fallback chains instead of failing boot.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Schema init on startup keeps local runs zero-step.
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatal(err)
	}

	// Advisory short-TTL response cache; the service runs fine without it.
	var respCache ports.ResponseCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		respCache = cache.NewRedisResponseCache(client)
		log.Printf("provider response cache enabled addr=%s", addr)
	}

	orsKey := os.Getenv("ORS_API_KEY")
	eiaKey := os.Getenv("EIA_API_KEY")

	// Geocoding: ORS when a key is configured, Nominatim always last.
	var geocoders []services.Strategy[string, domain.Coordinate]
	if orsKey != "" {
		orsGeocoder, err := geocode.NewORSGeocoder(orsKey, config.Get("ORS_BASE_URL", ""), respCache)
		if err != nil {
			log.Fatal(err)
		}
		geocoders = append(geocoders, services.GeocoderStrategy("ors", orsGeocoder))
	}
	geocoders = append(geocoders, services.GeocoderStrategy(
		"nominatim",
		geocode.NewNominatimGeocoder(config.Get("NOMINATIM_BASE_URL", ""), respCache),
	))

	// Routing: ORS when configured, the public OSRM router as secondary.
	// The static demo path lives in the pipeline, not in this chain.
	var routers []services.Strategy[services.RouteEndpoints, *domain.RoutePath]
	if orsKey != "" {
		orsRouter, err := routing.NewORSRouteProvider(orsKey, config.Get("ORS_BASE_URL", ""), respCache)
		if err != nil {
			log.Fatal(err)
		}
		routers = append(routers, services.RouterStrategy("ors", orsRouter))
	}
	routers = append(routers, services.RouterStrategy(
		"osrm",
		routing.NewOSRMRouteProvider(config.Get("OSRM_BASE_URL", ""), respCache),
	))

	// Pricing: EIA weekly diesel series when configured; the pipeline's
	// constant fallback covers everything else.
	var prices []services.Strategy[struct{}, float64]
	if eiaKey != "" {
		eiaProvider, err := fuelprice.NewEIAPriceProvider(eiaKey, config.Get("EIA_BASE_URL", ""), respCache)
		if err != nil {
			log.Fatal(err)
		}
		prices = append(prices, services.PriceStrategy("eia", eiaProvider))
	}

	poiProvider := poi.NewOverpassPOIProvider(config.Get("OVERPASS_BASE_URL", ""), respCache)

	routePipeline := services.NewRoutePipeline(geocoders, routers)
	fuelPipeline := services.NewFuelStopPipeline(prices, poiProvider)
	repo := repositories.NewPgTripRepository(conn)

	router := api.NewRouter(routePipeline, fuelPipeline, repo)

	// Write timeout covers the slowest cold-cache case: concurrent
	// Overpass lookups behind a route request.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
