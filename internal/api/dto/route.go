package dto

type RouteRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type WaypointsResponse struct {
	Origin      LatLng `json:"origin"`
	Destination LatLng `json:"destination"`
}

type RouteResponse struct {
	DistanceMi  float64           `json:"distanceMi"`
	DurationMin float64           `json:"durationMin"`
	Polyline    []LatLng          `json:"polyline"`
	Waypoints   WaypointsResponse `json:"waypoints"`
	// Source names the provider that produced the path, or "fallback"
	// when the static demo path was substituted.
	Source string `json:"source"`
}
