package dto

type CostsRequest struct {
	DistanceMi      float64  `json:"distanceMi"`
	Mpg             float64  `json:"mpg"`
	DieselUsdPerGal float64  `json:"dieselUsdPerGal"`
	TollUsd         *float64 `json:"tollUsd"`
	// Cheapest candidate stop price, when known; enables the
	// potentialSavings figure.
	BestStopPricePerGal *float64 `json:"bestStopPricePerGal"`
}

type CostsResponse struct {
	GallonsUsed      float64  `json:"gallonsUsed"`
	FuelCost         float64  `json:"fuelCost"`
	TollUsd          float64  `json:"tollUsd"`
	TotalCost        float64  `json:"totalCost"`
	CostPerMile      float64  `json:"costPerMile"`
	CO2Kg            float64  `json:"co2Kg"`
	PotentialSavings *float64 `json:"potentialSavings,omitempty"`
}
