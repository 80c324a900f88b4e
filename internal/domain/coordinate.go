package domain

import "fmt"

// Immutable geographic coordinate (latitude, longitude).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate checks the coordinate lies within valid geographic ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("coordinate: latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("coordinate: longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}

// Return the coordinate as [lon, lat] for external API compatibility
// (GeoJSON and routing providers use longitude-first ordering).
func (c Coordinate) LonLat() []float64 { return []float64{c.Lon, c.Lat} }
