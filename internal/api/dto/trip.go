package dto

import "time"

type TripStopRequest struct {
	Name             string  `json:"name"`
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	PricePerGal      float64 `json:"pricePerGal"`
	DetourMinutes    float64 `json:"detourMinutes"`
	GallonsPurchased float64 `json:"gallonsPurchased"`
}

type TripCreateRequest struct {
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	DistanceMi  float64           `json:"distanceMi"`
	DurationMin float64           `json:"durationMin"`
	MpgUsed     float64           `json:"mpgUsed"`
	FuelPrice   float64           `json:"fuelPrice"`
	TollUsd     *float64          `json:"tollUsd"`
	CO2Kg       float64           `json:"co2Kg"`
	Stops       []TripStopRequest `json:"stops"`
}

type TripResponse struct {
	TripID      int64             `json:"tripId"`
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	DistanceMi  float64           `json:"distanceMi"`
	DurationMin float64           `json:"durationMin"`
	MpgUsed     float64           `json:"mpgUsed"`
	FuelPrice   float64           `json:"fuelPrice"`
	TollUsd     *float64          `json:"tollUsd"`
	CO2Kg       float64           `json:"co2Kg"`
	Stops       []TripStopRequest `json:"stops"`
	CreatedAt   time.Time         `json:"createdAt"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}
