package routing

import "fuel-route-service/internal/domain"

// The canned Chicago -> Kansas City -> Oklahoma City -> Dallas corridor
// used when every live provider is unreachable. Availability over
// correctness: the dashboard keeps working in degraded mode.
var fallbackPolyline = []domain.Coordinate{
	{Lat: 41.8781, Lon: -87.6298},
	{Lat: 39.0997, Lon: -94.5786},
	{Lat: 35.4676, Lon: -97.5164},
	{Lat: 32.7767, Lon: -96.797},
}

// StaticFallbackRoute returns a fresh copy of the demo fallback path.
// Waypoints come from the canned polyline itself, not from any geocoded
// input, so repeated calls are byte-identical.
func StaticFallbackRoute() *domain.RoutePath {
	polyline := make([]domain.Coordinate, len(fallbackPolyline))
	copy(polyline, fallbackPolyline)

	return &domain.RoutePath{
		DistanceMi:  925,
		DurationMin: 14 * 60,
		Polyline:    polyline,
		Waypoints: domain.Waypoints{
			Origin:      polyline[0],
			Destination: polyline[len(polyline)-1],
		},
	}
}
