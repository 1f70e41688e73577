package compartmental

import "math"

// Grid builds the simulation time grid t_i = i·Δt for i = 0..⌊tmax/Δt⌋,
// endpoint included. Returns ErrNonPositiveStep / ErrNonPositiveHorizon on
// malformed bounds.
//
// Complexity: O(tmax/Δt) time and space.
func Grid(tmax, dt float64) ([]float64, error) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, ErrNonPositiveStep
	}
	if !(tmax > 0) || math.IsInf(tmax, 0) {
		return nil, ErrNonPositiveHorizon
	}

	// The epsilon guards against 0.1+0.1+... drift dropping the endpoint.
	n := int(math.Floor(tmax/dt+1e-9)) + 1
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = float64(i) * dt
	}
	return grid, nil
}
