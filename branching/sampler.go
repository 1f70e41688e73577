package branching

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// offspringTotal draws the total number of next-generation cases produced
// by current infectious individuals.
//
// Sampling variant: one aggregate draw. The sum of current i.i.d.
// NB(k, p) offspring counts is NB(current·k, p), realized here as a
// Gamma–Poisson mixture:
//
//	λ ~ Gamma(shape = current·k, rate = k/R0)   // E[λ] = current·R0
//	X | λ ~ Poisson(λ)                          // X ~ NB(current·k, p)
//
// This costs O(1) distribution calls per generation regardless of the
// case count, and consumes the random stream per-generation rather than
// per-individual — the reproducible sequence for a given seed is tied to
// this choice.
//
// current == 0 short-circuits to 0: the absorbing state must not touch
// the source, and Gamma with shape 0 has no support.
func (p *Process) offspringTotal(src rand.Source, current int64) (float64, error) {
	if current <= 0 {
		return 0, nil
	}

	shape := float64(current) * p.k
	if math.IsInf(shape, 0) || math.IsNaN(shape) {
		return 0, ErrNumericOverflow
	}

	lambda := distuv.Gamma{Alpha: shape, Beta: p.k / p.r0, Src: src}.Rand()
	if math.IsInf(lambda, 0) || math.IsNaN(lambda) {
		return 0, ErrNumericOverflow
	}
	if lambda == 0 {
		// Gamma underflow for tiny shapes; a zero-rate Poisson is surely 0.
		return 0, nil
	}

	return distuv.Poisson{Lambda: lambda, Src: src}.Rand(), nil
}
