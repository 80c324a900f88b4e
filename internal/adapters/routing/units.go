package routing

const metersPerMile = 1609.344

// MetersToMiles converts provider distances (meters) to miles.
func MetersToMiles(m float64) float64 { return m / metersPerMile }

// MilesToMeters is the inverse conversion, kept for round-trip symmetry.
func MilesToMeters(mi float64) float64 { return mi * metersPerMile }

// SecondsToMinutes converts provider durations (seconds) to minutes.
func SecondsToMinutes(s float64) float64 { return s / 60 }
