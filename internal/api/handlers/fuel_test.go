package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/services"
)

func testFuelHandler(price float64) *FuelHandler {
	prices := []services.Strategy[struct{}, float64]{{
		Name: "stub",
		Run: func(ctx context.Context, _ struct{}) (float64, error) {
			return price, nil
		},
	}}
	return &FuelHandler{Pipeline: services.NewFuelStopPipeline(prices, nil)}
}

func TestFuelGetDefaults(t *testing.T) {
	h := testFuelHandler(4.00)
	req := httptest.NewRequest(http.MethodGet, "/fuel", nil)
	rec := httptest.NewRecorder()
	h.Fuel(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.FuelPriceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.DieselUsdPerGal != 4.00 {
		t.Fatalf("dieselUsdPerGal = %v", res.DieselUsdPerGal)
	}
	if len(res.Stops) != 3 {
		t.Fatalf("got %d stops, want 3", len(res.Stops))
	}
	if res.Stops[0].Name != "Love's Joliet, IL" || res.Stops[0].PricePerGal != 3.90 {
		t.Fatalf("stop 0 = %+v", res.Stops[0])
	}
}

func TestFuelPostCandidates(t *testing.T) {
	h := testFuelHandler(4.00)

	body := `{"polyline":[
		{"lat":41.0,"lon":-87.0},{"lat":40.0,"lon":-88.0},{"lat":39.0,"lon":-89.0},
		{"lat":38.0,"lon":-90.0},{"lat":37.0,"lon":-91.0},{"lat":36.0,"lon":-92.0},
		{"lat":35.0,"lon":-93.0},{"lat":34.0,"lon":-94.0},{"lat":33.0,"lon":-95.0},
		{"lat":32.0,"lon":-96.0}]}`
	req := httptest.NewRequest(http.MethodPost, "/fuel", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Fuel(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.FuelPriceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Stops) != 4 {
		t.Fatalf("got %d stops, want 4", len(res.Stops))
	}
	for i, s := range res.Stops {
		if s.Name == "" {
			t.Fatalf("stop %d has empty name", i)
		}
	}
}

func TestFuelPostShortPolyline(t *testing.T) {
	h := testFuelHandler(4.00)

	req := httptest.NewRequest(http.MethodPost, "/fuel", strings.NewReader(`{"polyline":[{"lat":41.0,"lon":-87.0}]}`))
	rec := httptest.NewRecorder()
	h.Fuel(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.FuelPriceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Stops) != 0 {
		t.Fatalf("got %d stops, want 0", len(res.Stops))
	}
	if res.DieselUsdPerGal != 4.00 {
		t.Fatalf("dieselUsdPerGal = %v", res.DieselUsdPerGal)
	}
}

func TestRankOrdersStops(t *testing.T) {
	h := testFuelHandler(4.00)

	body := `{"dieselUsdPerGal":4.00,"tankSizeGal":200,"currentFuelPct":50,"stops":[
		{"name":"pricey","lat":1,"lon":2,"pricePerGal":4.20,"detourMinutes":4},
		{"name":"best","lat":3,"lon":4,"pricePerGal":3.70,"detourMinutes":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/fuel/rank", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Rank(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.RankStopsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Stops) != 2 {
		t.Fatalf("got %d stops, want 2", len(res.Stops))
	}
	if res.Stops[0].Name != "best" {
		t.Fatalf("top stop = %q, want best", res.Stops[0].Name)
	}
	if res.Stops[0].NetSavings <= res.Stops[1].NetSavings {
		t.Fatal("ranking is not descending")
	}
}

func TestRankValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero tank", `{"dieselUsdPerGal":4.00,"tankSizeGal":0,"currentFuelPct":50,"stops":[]}`},
		{"pct over 100", `{"dieselUsdPerGal":4.00,"tankSizeGal":200,"currentFuelPct":120,"stops":[]}`},
		{"zero price", `{"dieselUsdPerGal":0,"tankSizeGal":200,"currentFuelPct":50,"stops":[]}`},
		{"not json", `nope`},
	}
	h := testFuelHandler(4.00)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/fuel/rank", strings.NewReader(c.body))
			rec := httptest.NewRecorder()
			h.Rank(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body = %s", rec.Code, rec.Body.String())
			}
		})
	}
}
