package handlers

import (
	"net/http"
	"strings"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/services"
)

type RouteHandler struct {
	Pipeline *services.RoutePipeline
}

// Route resolves an origin/destination pair to a driving path. Provider
// outages never surface here: the pipeline substitutes the static
// fallback path and marks the response source accordingly.
func (h *RouteHandler) Route(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	result, err := h.Pipeline.PlanRoute(r.Context(), origin, destination)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, routeResponse(result))
}

func routeResponse(result *services.RouteResult) dto.RouteResponse {
	path := result.Path

	polyline := make([]dto.LatLng, 0, len(path.Polyline))
	for _, c := range path.Polyline {
		polyline = append(polyline, latLng(c))
	}

	return dto.RouteResponse{
		DistanceMi:  path.DistanceMi,
		DurationMin: path.DurationMin,
		Polyline:    polyline,
		Waypoints: dto.WaypointsResponse{
			Origin:      latLng(path.Waypoints.Origin),
			Destination: latLng(path.Waypoints.Destination),
		},
		Source: result.Source,
	}
}

func latLng(c domain.Coordinate) dto.LatLng {
	return dto.LatLng{Lat: c.Lat, Lon: c.Lon}
}
