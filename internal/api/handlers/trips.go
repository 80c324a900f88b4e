package handlers

import (
	"log"
	"net/http"
	"strings"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/ports"
)

// TripsHandler exposes the append-only trip log: finalize (create) and
// list, nothing else.
type TripsHandler struct {
	Repo ports.TripRepository
}

func (h *TripsHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *TripsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.TripCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}
	if req.DistanceMi < 0 || req.DurationMin < 0 || req.FuelPrice < 0 {
		writeError(w, r, http.StatusBadRequest, "distanceMi, durationMin and fuelPrice must be >= 0")
		return
	}
	if req.MpgUsed <= 0 {
		writeError(w, r, http.StatusBadRequest, "mpgUsed must be > 0")
		return
	}

	trip := &domain.TripRecord{
		Origin:      req.Origin,
		Destination: req.Destination,
		DistanceMi:  req.DistanceMi,
		DurationMin: req.DurationMin,
		MpgUsed:     req.MpgUsed,
		FuelPrice:   req.FuelPrice,
		TollUsd:     req.TollUsd,
		CO2Kg:       req.CO2Kg,
		Stops:       make([]domain.PurchasedStop, 0, len(req.Stops)),
	}
	for _, s := range req.Stops {
		trip.Stops = append(trip.Stops, domain.PurchasedStop{
			Name:             s.Name,
			Location:         domain.Coordinate{Lat: s.Lat, Lon: s.Lon},
			PricePerGal:      s.PricePerGal,
			DetourMinutes:    s.DetourMinutes,
			GallonsPurchased: s.GallonsPurchased,
		})
	}

	stored, err := h.Repo.CreateTrip(r.Context(), trip)
	if err != nil {
		log.Printf("create trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, tripResponse(stored))
}

func (h *TripsHandler) list(w http.ResponseWriter, r *http.Request) {
	trips, err := h.Repo.ListTrips(r.Context())
	if err != nil {
		log.Printf("list trips failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTripsResponse{Trips: make([]dto.TripResponse, 0, len(trips))}
	for _, t := range trips {
		res.Trips = append(res.Trips, tripResponse(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func tripResponse(t *domain.TripRecord) dto.TripResponse {
	stops := make([]dto.TripStopRequest, 0, len(t.Stops))
	for _, s := range t.Stops {
		stops = append(stops, dto.TripStopRequest{
			Name:             s.Name,
			Lat:              s.Location.Lat,
			Lon:              s.Location.Lon,
			PricePerGal:      s.PricePerGal,
			DetourMinutes:    s.DetourMinutes,
			GallonsPurchased: s.GallonsPurchased,
		})
	}

	return dto.TripResponse{
		TripID:      t.TripID,
		Origin:      t.Origin,
		Destination: t.Destination,
		DistanceMi:  t.DistanceMi,
		DurationMin: t.DurationMin,
		MpgUsed:     t.MpgUsed,
		FuelPrice:   t.FuelPrice,
		TollUsd:     t.TollUsd,
		CO2Kg:       t.CO2Kg,
		Stops:       stops,
		CreatedAt:   t.CreatedAt,
	}
}
