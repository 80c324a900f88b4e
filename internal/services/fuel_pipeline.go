package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"

	"fuel-route-service/internal/domain"
	"fuel-route-service/internal/platform/obs"
	"fuel-route-service/internal/ports"
)

// FallbackDieselPrice is the fixed reference price (USD/gal) used when no
// pricing provider is reachable.
const FallbackDieselPrice = 4.15

// Number of fuel-stop candidates sampled along a route polyline.
const candidateCount = 4

// FuelStopPipeline answers fuel-stop requests: it resolves a reference
// diesel price, samples candidate points along the route polyline, and
// enriches each with the nearest real fuel station plus heuristic
// per-stop pricing.
type FuelStopPipeline struct {
	prices []Strategy[struct{}, float64]
	poi    ports.POIProvider
}

func NewFuelStopPipeline(prices []Strategy[struct{}, float64], poi ports.POIProvider) *FuelStopPipeline {
	return &FuelStopPipeline{prices: prices, poi: poi}
}

// PriceStrategy adapts a FuelPriceProvider port into a chain member.
func PriceStrategy(name string, p ports.FuelPriceProvider) Strategy[struct{}, float64] {
	return Strategy[struct{}, float64]{
		Name: name,
		Run: func(ctx context.Context, _ struct{}) (float64, error) {
			return p.CurrentDieselPrice(ctx)
		},
	}
}

// ReferencePrice returns the current diesel reference price. It never
// fails outward: when every provider in the chain is unavailable it
// returns the fixed fallback constant.
func (p *FuelStopPipeline) ReferencePrice(ctx context.Context) float64 {
	price, _, err := First(ctx, "fuelprice", p.prices, struct{}{})
	if err != nil {
		return FallbackDieselPrice
	}
	return price
}

// DefaultStops is the GET-style default candidate list used when no
// polyline is supplied: three named corridor stops with hand-set price
// offsets and detour times.
func (p *FuelStopPipeline) DefaultStops(price float64) []domain.FuelStopCandidate {
	return []domain.FuelStopCandidate{
		{
			Name:          "Love's Joliet, IL",
			Location:      domain.Coordinate{Lat: 41.5, Lon: -88.08},
			PricePerGal:   round2(price - 0.10),
			DetourMinutes: 6,
		},
		{
			Name:          "TA Oklahoma City, OK",
			Location:      domain.Coordinate{Lat: 35.45, Lon: -97.53},
			PricePerGal:   round2(price - 0.20),
			DetourMinutes: 10,
		},
		{
			Name:          "Pilot Dallas, TX",
			Location:      domain.Coordinate{Lat: 32.9, Lon: -96.9},
			PricePerGal:   round2(price + 0.05),
			DetourMinutes: 4,
		},
	}
}

// CandidateStops samples the polyline and resolves each sampled point to
// the nearest fuel station, substituting the point itself with a
// synthesized label when POI resolution fails.
//
// POI lookups fan out concurrently and are awaited jointly; any single
// failure resolves to the fallback for that member only. Polylines shorter
// than two points yield no stops and skip sampling entirely.
//
// Per-station live pricing is not available from the POI source, so stop
// prices are synthesized from the reference price with a documented
// alternating offset, and detour minutes grow with sample position.
func (p *FuelStopPipeline) CandidateStops(ctx context.Context, polyline []domain.Coordinate) (float64, []domain.FuelStopCandidate) {
	price := p.ReferencePrice(ctx)

	if len(polyline) < 2 {
		return price, []domain.FuelStopCandidate{}
	}

	samples := SamplePoints(polyline, candidateCount)

	pois := make([]*domain.FuelPOI, len(samples))
	if p.poi != nil {
		var wg sync.WaitGroup
		for i, sample := range samples {
			i, sample := i, sample
			wg.Add(1)
			go func() {
				defer wg.Done()
				poi, err := p.poi.NearestFuelPOI(ctx, sample)
				if err != nil {
					// Fallback for this sample only; siblings continue.
					log.Printf("req_id=%s op=fuelstops sample=%d poi unavailable err=%v", obs.RequestID(ctx), i, err)
					return
				}
				pois[i] = poi
			}()
		}
		wg.Wait()
	}

	stops := make([]domain.FuelStopCandidate, 0, len(samples))
	for i, sample := range samples {
		name := fmt.Sprintf("Fuel Stop %d", i+1)
		location := sample
		if pois[i] != nil {
			name = pois[i].Name
			location = pois[i].Location
		}

		offset := 0.08
		if i%2 == 0 {
			offset = -0.12
		}

		stops = append(stops, domain.FuelStopCandidate{
			Name:          name,
			Location:      location,
			PricePerGal:   round2(price + offset),
			DetourMinutes: float64(3 + 2*i),
		})
	}

	return price, stops
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
