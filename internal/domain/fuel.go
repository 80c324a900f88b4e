package domain

import "fmt"

// A real-world fuel point of interest returned by a POI provider.
type FuelPOI struct {
	Name     string
	Location Coordinate
}

// FuelStopCandidate is a ranked candidate refueling stop along a route.
// Net savings is a derived attribute computed against caller-supplied
// tank state, not an intrinsic property of the stop.
type FuelStopCandidate struct {
	Name          string     `json:"name"`
	Location      Coordinate `json:"location"`
	PricePerGal   float64    `json:"pricePerGal"`
	DetourMinutes float64    `json:"detourMinutes"`
}

// TankState describes the caller's tank at ranking time. It is supplied
// per request and never persisted.
type TankState struct {
	TankSizeGal    float64 `json:"tankSizeGal"`
	CurrentFuelPct float64 `json:"currentFuelPct"`
}

func (t TankState) Validate() error {
	if t.TankSizeGal <= 0 {
		return fmt.Errorf("tank state: tankSizeGal must be > 0, got %v", t.TankSizeGal)
	}
	if t.CurrentFuelPct < 0 || t.CurrentFuelPct > 100 {
		return fmt.Errorf("tank state: currentFuelPct %v out of range [0, 100]", t.CurrentFuelPct)
	}
	return nil
}
