package dto

// Candidate-stop generation along a route polyline.
type FuelStopsRequest struct {
	Polyline []LatLng `json:"polyline"`
}

// Stops are flat lat/lon on the wire, matching the dashboard contract.
type FuelStopResponse struct {
	Name          string  `json:"name"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	PricePerGal   float64 `json:"pricePerGal"`
	DetourMinutes float64 `json:"detourMinutes"`
}

type FuelPriceResponse struct {
	DieselUsdPerGal float64            `json:"dieselUsdPerGal"`
	Stops           []FuelStopResponse `json:"stops"`
}

// Net-savings ranking of caller-supplied stops under caller-supplied
// tank state.
type RankStopsRequest struct {
	DieselUsdPerGal  float64            `json:"dieselUsdPerGal"`
	TankSizeGal      float64            `json:"tankSizeGal"`
	CurrentFuelPct   float64            `json:"currentFuelPct"`
	TimeValuePerHour *float64           `json:"timeValuePerHour"`
	Stops            []FuelStopResponse `json:"stops"`
}

type RankedStopResponse struct {
	FuelStopResponse
	NetSavings float64 `json:"netSavings"`
}

type RankStopsResponse struct {
	Stops []RankedStopResponse `json:"stops"`
}
