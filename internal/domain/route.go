package domain

// Origin and destination endpoints of a routed path.
type Waypoints struct {
	Origin      Coordinate `json:"origin"`
	Destination Coordinate `json:"destination"`
}

// RoutePath is a driving path between two coordinates.
// It is produced once per route request and never mutated afterwards;
// the polyline is consumed by stop sampling and the cost model.
type RoutePath struct {
	DistanceMi  float64      `json:"distanceMi"`
	DurationMin float64      `json:"durationMin"`
	Polyline    []Coordinate `json:"polyline"`
	Waypoints   Waypoints    `json:"waypoints"`
}
