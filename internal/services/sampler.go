package services

import "fuel-route-service/internal/domain"

// SamplePoints deterministically selects up to count interior points from
// a route polyline, spread roughly evenly along the path.
//
// The step is floor(len/(count+1)) clamped to at least 1; selected indices
// are 1*step, 2*step, ..., count*step with out-of-bounds indices dropped.
// Index 0 (the origin) is never selected. The final index can be selected
// when count*step lands exactly on it; short polylines simply yield fewer
// samples. Both are accepted degraded behavior, not errors.
func SamplePoints(polyline []domain.Coordinate, count int) []domain.Coordinate {
	if count <= 0 || len(polyline) == 0 {
		return nil
	}

	step := len(polyline) / (count + 1)
	if step < 1 {
		step = 1
	}

	samples := make([]domain.Coordinate, 0, count)
	for i := 1; i <= count; i++ {
		idx := i * step
		if idx >= len(polyline) {
			break
		}
		samples = append(samples, polyline[idx])
	}

	return samples
}
