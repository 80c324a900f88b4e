package handlers

import (
	"net/http"

	"fuel-route-service/internal/api/dto"
	"fuel-route-service/internal/services"
)

// CostsHandler computes the trip cost card: pure arithmetic over
// caller-supplied distance, efficiency, and pricing.
type CostsHandler struct{}

func (h *CostsHandler) Costs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CostsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	gallons, err := services.GallonsNeeded(req.DistanceMi, req.Mpg)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.DieselUsdPerGal <= 0 {
		writeError(w, r, http.StatusBadRequest, "dieselUsdPerGal must be > 0")
		return
	}

	fuelCost := services.FuelCost(gallons, req.DieselUsdPerGal)
	costPerMile, err := services.CostPerMile(fuelCost, req.DistanceMi)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	toll := 0.0
	if req.TollUsd != nil {
		if *req.TollUsd < 0 {
			writeError(w, r, http.StatusBadRequest, "tollUsd must be >= 0")
			return
		}
		toll = *req.TollUsd
	}

	res := dto.CostsResponse{
		GallonsUsed: gallons,
		FuelCost:    fuelCost,
		TollUsd:     toll,
		TotalCost:   fuelCost + toll,
		CostPerMile: costPerMile,
		CO2Kg:       services.CO2Kg(gallons),
	}

	// Savings versus the cheapest candidate stop, when the caller knows one.
	if req.BestStopPricePerGal != nil && *req.BestStopPricePerGal > 0 && *req.BestStopPricePerGal < req.DieselUsdPerGal {
		savings := gallons * (req.DieselUsdPerGal - *req.BestStopPricePerGal)
		res.PotentialSavings = &savings
	}

	writeJSON(w, r, http.StatusOK, res)
}
