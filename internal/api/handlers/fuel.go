package handlers

import (
	"net/http"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/services"
)

type FuelHandler struct {
	Pipeline *services.FuelStopPipeline
}

// Fuel serves the reference diesel price with fuel-stop candidates.
// GET returns the default corridor stop list; POST generates candidates
// along a supplied route polyline.
func (h *FuelHandler) Fuel(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.defaults(w, r)
	case http.MethodPost:
		h.candidates(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *FuelHandler) defaults(w http.ResponseWriter, r *http.Request) {
	price := h.Pipeline.ReferencePrice(r.Context())
	stops := h.Pipeline.DefaultStops(price)

	writeJSON(w, r, http.StatusOK, fuelResponse(price, stops))
}

func (h *FuelHandler) candidates(w http.ResponseWriter, r *http.Request) {
	var req dto.FuelStopsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	polyline := make([]domain.Coordinate, 0, len(req.Polyline))
	for _, p := range req.Polyline {
		polyline = append(polyline, domain.Coordinate{Lat: p.Lat, Lon: p.Lon})
	}

	price, stops := h.Pipeline.CandidateStops(r.Context(), polyline)

	writeJSON(w, r, http.StatusOK, fuelResponse(price, stops))
}

// Rank orders caller-supplied stop candidates by net savings under the
// caller's tank state.
func (h *FuelHandler) Rank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RankStopsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	tank := domain.TankState{TankSizeGal: req.TankSizeGal, CurrentFuelPct: req.CurrentFuelPct}
	if err := tank.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.DieselUsdPerGal <= 0 {
		writeError(w, r, http.StatusBadRequest, "dieselUsdPerGal must be > 0")
		return
	}

	timeValue := services.DefaultTimeValuePerHour
	if req.TimeValuePerHour != nil {
		timeValue = *req.TimeValuePerHour
	}

	stops := make([]domain.FuelStopCandidate, 0, len(req.Stops))
	for _, s := range req.Stops {
		stops = append(stops, domain.FuelStopCandidate{
			Name:          s.Name,
			Location:      domain.Coordinate{Lat: s.Lat, Lon: s.Lon},
			PricePerGal:   s.PricePerGal,
			DetourMinutes: s.DetourMinutes,
		})
	}

	ranked := services.RankStops(stops, req.DieselUsdPerGal, tank, timeValue)

	res := dto.RankStopsResponse{Stops: make([]dto.RankedStopResponse, 0, len(ranked))}
	for _, s := range ranked {
		res.Stops = append(res.Stops, dto.RankedStopResponse{
			FuelStopResponse: stopResponse(s.FuelStopCandidate),
			NetSavings:       s.NetSavings,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func fuelResponse(price float64, stops []domain.FuelStopCandidate) dto.FuelPriceResponse {
	res := dto.FuelPriceResponse{
		DieselUsdPerGal: price,
		Stops:           make([]dto.FuelStopResponse, 0, len(stops)),
	}
	for _, s := range stops {
		res.Stops = append(res.Stops, stopResponse(s))
	}
	return res
}

func stopResponse(s domain.FuelStopCandidate) dto.FuelStopResponse {
	return dto.FuelStopResponse{
		Name:          s.Name,
		Lat:           s.Location.Lat,
		Lon:           s.Location.Lon,
		PricePerGal:   s.PricePerGal,
		DetourMinutes: s.DetourMinutes,
	}
}
