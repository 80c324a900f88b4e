package api

import (
	"net/http"

	"fuel-route-service/internal/api/handlers"
	"fuel-route-service/internal/ports"
	"fuel-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	routePipeline *services.RoutePipeline,
	fuelPipeline *services.FuelStopPipeline,
	repo ports.TripRepository,
) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Pipeline: routePipeline}
	fuelHandler := &handlers.FuelHandler{Pipeline: fuelPipeline}
	costsHandler := &handlers.CostsHandler{}
	tripsHandler := &handlers.TripsHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/route", routeHandler.Route)
	mux.HandleFunc("/fuel", fuelHandler.Fuel)
	mux.HandleFunc("/fuel/rank", fuelHandler.Rank)
	mux.HandleFunc("/costs", costsHandler.Costs)
	mux.HandleFunc("/trips", tripsHandler.Trips)

	return requestIDMiddleware(loggingMiddleware(mux))
}
