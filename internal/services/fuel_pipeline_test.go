package services

import (
	"context"
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"fuel-route-service/internal/domain"
)

type fakePOIProvider struct {
	calls atomic.Int64
	poi   *domain.FuelPOI
	err   error
}

func (f *fakePOIProvider) NearestFuelPOI(ctx context.Context, near domain.Coordinate) (*domain.FuelPOI, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.poi, nil
}

func fixedPrice(name string, price float64) Strategy[struct{}, float64] {
	return Strategy[struct{}, float64]{
		Name: name,
		Run: func(ctx context.Context, _ struct{}) (float64, error) {
			return price, nil
		},
	}
}

func failingPrice(name string) Strategy[struct{}, float64] {
	return Strategy[struct{}, float64]{
		Name: name,
		Run: func(ctx context.Context, _ struct{}) (float64, error) {
			return 0, errors.New(name + ": unavailable")
		},
	}
}

func TestReferencePriceUsesProvider(t *testing.T) {
	p := NewFuelStopPipeline([]Strategy[struct{}, float64]{fixedPrice("eia", 3.97)}, nil)

	if got := p.ReferencePrice(context.Background()); got != 3.97 {
		t.Fatalf("price = %v, want 3.97", got)
	}
}

func TestReferencePriceFallsBackToConstant(t *testing.T) {
	p := NewFuelStopPipeline([]Strategy[struct{}, float64]{failingPrice("eia")}, nil)

	if got := p.ReferencePrice(context.Background()); got != FallbackDieselPrice {
		t.Fatalf("price = %v, want %v", got, FallbackDieselPrice)
	}

	empty := NewFuelStopPipeline(nil, nil)
	if got := empty.ReferencePrice(context.Background()); got != FallbackDieselPrice {
		t.Fatalf("price with no providers = %v, want %v", got, FallbackDieselPrice)
	}
}

func TestDefaultStops(t *testing.T) {
	p := NewFuelStopPipeline(nil, nil)
	stops := p.DefaultStops(4.00)

	if len(stops) != 3 {
		t.Fatalf("got %d stops, want 3", len(stops))
	}
	if stops[0].Name != "Love's Joliet, IL" || stops[0].PricePerGal != 3.90 || stops[0].DetourMinutes != 6 {
		t.Fatalf("stop 0 = %+v", stops[0])
	}
	if stops[1].Name != "TA Oklahoma City, OK" || stops[1].PricePerGal != 3.80 || stops[1].DetourMinutes != 10 {
		t.Fatalf("stop 1 = %+v", stops[1])
	}
	if stops[2].Name != "Pilot Dallas, TX" || stops[2].PricePerGal != 4.05 || stops[2].DetourMinutes != 4 {
		t.Fatalf("stop 2 = %+v", stops[2])
	}
}

func TestCandidateStopsShortPolyline(t *testing.T) {
	poi := &fakePOIProvider{}
	p := NewFuelStopPipeline([]Strategy[struct{}, float64]{fixedPrice("eia", 4.00)}, poi)

	price, stops := p.CandidateStops(context.Background(), []domain.Coordinate{{Lat: 41, Lon: -87}})
	if price != 4.00 {
		t.Fatalf("price = %v, want 4.00", price)
	}
	if len(stops) != 0 {
		t.Fatalf("got %d stops for a single-point polyline, want 0", len(stops))
	}
	if poi.calls.Load() != 0 {
		t.Fatal("POI provider must not be called without samples")
	}
}

func TestCandidateStopsSynthesizesWhenPOIFails(t *testing.T) {
	poi := &fakePOIProvider{err: errors.New("overpass: unavailable")}
	p := NewFuelStopPipeline([]Strategy[struct{}, float64]{fixedPrice("eia", 4.00)}, poi)

	price, stops := p.CandidateStops(context.Background(), linePolyline(10))
	if price != 4.00 {
		t.Fatalf("price = %v, want 4.00", price)
	}
	if len(stops) != 4 {
		t.Fatalf("got %d stops, want 4", len(stops))
	}

	wantNames := []string{"Fuel Stop 1", "Fuel Stop 2", "Fuel Stop 3", "Fuel Stop 4"}
	wantPrices := []float64{3.88, 4.08, 3.88, 4.08}
	wantDetours := []float64{3, 5, 7, 9}
	for i, s := range stops {
		if s.Name != wantNames[i] {
			t.Fatalf("stop %d name = %q, want %q", i, s.Name, wantNames[i])
		}
		if math.Abs(s.PricePerGal-wantPrices[i]) > eps {
			t.Fatalf("stop %d price = %v, want %v", i, s.PricePerGal, wantPrices[i])
		}
		if s.DetourMinutes != wantDetours[i] {
			t.Fatalf("stop %d detour = %v, want %v", i, s.DetourMinutes, wantDetours[i])
		}
	}

	// Failed lookups keep the sampled point itself as the location.
	samples := SamplePoints(linePolyline(10), 4)
	for i, s := range stops {
		if s.Location != samples[i] {
			t.Fatalf("stop %d location = %+v, want sample %+v", i, s.Location, samples[i])
		}
	}
}

func TestCandidateStopsUsesResolvedPOI(t *testing.T) {
	station := &domain.FuelPOI{
		Name:     "Love's Travel Stop",
		Location: domain.Coordinate{Lat: 39.1, Lon: -94.6},
	}
	poi := &fakePOIProvider{poi: station}
	p := NewFuelStopPipeline([]Strategy[struct{}, float64]{fixedPrice("eia", 4.00)}, poi)

	_, stops := p.CandidateStops(context.Background(), linePolyline(10))
	if len(stops) != 4 {
		t.Fatalf("got %d stops, want 4", len(stops))
	}
	if got := poi.calls.Load(); got != 4 {
		t.Fatalf("POI lookups = %d, want 4", got)
	}
	for i, s := range stops {
		if s.Name != "Love's Travel Stop" {
			t.Fatalf("stop %d name = %q", i, s.Name)
		}
		if s.Location != station.Location {
			t.Fatalf("stop %d location = %+v", i, s.Location)
		}
	}
}

func TestCandidateStopsNilPOIProvider(t *testing.T) {
	p := NewFuelStopPipeline([]Strategy[struct{}, float64]{fixedPrice("eia", 4.00)}, nil)

	_, stops := p.CandidateStops(context.Background(), linePolyline(10))
	if len(stops) != 4 {
		t.Fatalf("got %d stops, want 4", len(stops))
	}
	for i, s := range stops {
		if s.Name == "" {
			t.Fatalf("stop %d has empty name", i)
		}
	}
}
