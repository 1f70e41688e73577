package branching

import (
	"math"
	"math/rand/v2"
)

// runTrial simulates one realization from a single index case to a
// terminal Outcome.
//
// State machine, checked once per generation for up to GenerationCap
// generations:
//  1. zero current cases        → Extinct
//  2. draw next-generation total
//  3. total > MaxInfected       → Exploded (no further sampling)
//  4. otherwise the total becomes the current count
//
// A loop that ends with cases still present is Survived; ending on an
// exact zero (the final generation produced no offspring) is Extinct.
//
// The explosion bound may legitimately exceed the int64 range, so a
// within-bound total that an int64 cannot hold is surfaced as
// ErrNumericOverflow rather than converted (the conversion is
// implementation-defined out of range and would corrupt the count).
func (p *Process) runTrial(src rand.Source) (Outcome, error) {
	var current int64 = 1
	for g := 0; g < p.gMax; g++ {
		if current == 0 {
			return Extinct, nil
		}
		total, err := p.offspringTotal(src, current)
		if err != nil {
			return Exploded, err
		}
		if total > p.maxInfected {
			return Exploded, nil
		}
		if total >= float64(math.MaxInt64) {
			return Exploded, ErrNumericOverflow
		}
		current = int64(total)
	}
	if current == 0 {
		return Extinct, nil
	}
	return Survived, nil
}
