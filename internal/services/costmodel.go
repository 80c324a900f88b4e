package services

import (
	"fmt"
	"math"
	"sort"

	"fuel-route-service/internal/domain"
)

// Fixed emission factor for diesel, kg CO2 per gallon burned.
const CO2KgPerGallon = 10.21

// DefaultTimeValuePerHour monetizes detour time when ranking fuel stops,
// in USD per hour of driver time.
const DefaultTimeValuePerHour = 30.0

// GallonsNeeded returns the fuel required to cover distanceMi at mpg.
// mpg must be strictly positive; a zero or negative value is a caller
// error and is rejected rather than producing Inf/NaN.
func GallonsNeeded(distanceMi, mpg float64) (float64, error) {
	if mpg <= 0 {
		return 0, fmt.Errorf("gallons needed: mpg must be > 0, got %v", mpg)
	}
	if distanceMi < 0 {
		return 0, fmt.Errorf("gallons needed: distanceMi must be >= 0, got %v", distanceMi)
	}
	return distanceMi / mpg, nil
}

// CO2Kg returns the emissions for the given gallons of diesel.
func CO2Kg(gallons float64) float64 {
	return gallons * CO2KgPerGallon
}

// FuelCost returns the total fuel spend for the given gallons.
func FuelCost(gallons, pricePerGal float64) float64 {
	return gallons * pricePerGal
}

// CostPerMile returns fuel cost normalized by distance. distanceMi must be
// strictly positive.
func CostPerMile(fuelCost, distanceMi float64) (float64, error) {
	if distanceMi <= 0 {
		return 0, fmt.Errorf("cost per mile: distanceMi must be > 0, got %v", distanceMi)
	}
	return fuelCost / distanceMi, nil
}

// NetSavings scores a stop candidate against the reference price: the
// per-gallon saving times the gallons the tank can take, minus a monetized
// penalty for the detour time. A stop priced above the reference never
// contributes positive savings, so its score is at most zero minus the
// penalty.
func NetSavings(stop domain.FuelStopCandidate, referencePrice float64, tank domain.TankState, timeValuePerHour float64) float64 {
	savingsPerGal := math.Max(0, referencePrice-stop.PricePerGal)
	gallonsToBuy := math.Max(0, tank.TankSizeGal*(1-tank.CurrentFuelPct/100))
	detourPenalty := (stop.DetourMinutes / 60) * timeValuePerHour

	return savingsPerGal*gallonsToBuy - detourPenalty
}

// A stop candidate together with its computed net savings.
type RankedStop struct {
	domain.FuelStopCandidate
	NetSavings float64
}

// RankStops orders candidates by net savings, best first. The sort is
// stable: candidates with equal scores keep their input order, since no
// further tiebreak is defined upstream.
func RankStops(stops []domain.FuelStopCandidate, referencePrice float64, tank domain.TankState, timeValuePerHour float64) []RankedStop {
	ranked := make([]RankedStop, 0, len(stops))
	for _, s := range stops {
		ranked = append(ranked, RankedStop{
			FuelStopCandidate: s,
			NetSavings:        NetSavings(s, referencePrice, tank, timeValuePerHour),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NetSavings > ranked[j].NetSavings
	})

	return ranked
}
