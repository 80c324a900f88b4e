package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/services"
)

func failingRoutePipeline() *services.RoutePipeline {
	geocoders := []services.Strategy[string, domain.Coordinate]{{
		Name: "stub",
		Run: func(ctx context.Context, _ string) (domain.Coordinate, error) {
			return domain.Coordinate{}, errors.New("stub: down")
		},
	}}
	return services.NewRoutePipeline(geocoders, nil)
}

func TestRouteServesFallbackOnProviderOutage(t *testing.T) {
	h := &RouteHandler{Pipeline: failingRoutePipeline()}

	body := `{"origin":"Chicago, IL","destination":"Dallas, TX"}`
	req := httptest.NewRequest(http.MethodPost, "/route", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Route(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Source != "fallback" {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
	if res.DistanceMi != 925 || res.DurationMin != 840 {
		t.Fatalf("summary = %v mi, %v min", res.DistanceMi, res.DurationMin)
	}
	if len(res.Polyline) != 4 {
		t.Fatalf("polyline has %d points, want 4", len(res.Polyline))
	}
	if res.Waypoints.Origin.Lat != 41.8781 || res.Waypoints.Destination.Lat != 32.7767 {
		t.Fatalf("waypoints = %+v", res.Waypoints)
	}
}

func TestRouteRejectsBlankEndpoints(t *testing.T) {
	h := &RouteHandler{Pipeline: failingRoutePipeline()}

	for _, body := range []string{
		`{"origin":"","destination":"Dallas, TX"}`,
		`{"origin":"   ","destination":"Dallas, TX"}`,
		`{"origin":"Chicago, IL","destination":""}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/route", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Route(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestRouteMethodNotAllowed(t *testing.T) {
	h := &RouteHandler{Pipeline: failingRoutePipeline()}

	req := httptest.NewRequest(http.MethodGet, "/route", nil)
	rec := httptest.NewRecorder()
	h.Route(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}
