package branching

import "math"

// DefaultMaxInfected is the conventional explosion bound: once a
// generation exceeds it the realization is classified Exploded and no
// further sampling happens. Large enough to never bind for subcritical
// dynamics, small enough to keep supercritical trials cheap.
const DefaultMaxInfected = 1e7

// Process is an immutable-after-construction branching-process estimator.
//
// It owns its random streams exclusively: a Process must not be shared
// across goroutines during Estimate, but Estimate itself may fan trials
// out over WithWorkers streams. All parameters are validated by New;
// methods assume they hold.
type Process struct {
	r0          float64 // mean secondary infections per case
	k           float64 // dispersion; smaller ⇒ more overdispersed
	gMax        int     // generation cap
	maxInfected float64 // explosion bound

	p float64 // NB success probability, k / (k + R0)

	seed    uint64
	workers int
}

// New validates parameters and builds a Process.
//
// Requirements (spec'd eagerly, before any sampling):
//   - r0 > 0, finite          → ErrInvalidR0
//   - k > 0, finite           → ErrInvalidDispersion
//   - gMax ≥ 1                → ErrInvalidGenerationCap
//   - maxInfected > 0, finite → ErrInvalidExplosionBound
//
// Defaults: seed = DefaultSeed, workers = 1 (sequential, single stream).
func New(r0, k float64, gMax int, maxInfected float64, opts ...Option) (*Process, error) {
	if !(r0 > 0) || math.IsInf(r0, 0) {
		return nil, ErrInvalidR0
	}
	if !(k > 0) || math.IsInf(k, 0) {
		return nil, ErrInvalidDispersion
	}
	if gMax < 1 {
		return nil, ErrInvalidGenerationCap
	}
	if !(maxInfected > 0) || math.IsInf(maxInfected, 0) {
		return nil, ErrInvalidExplosionBound
	}

	proc := &Process{
		r0:          r0,
		k:           k,
		gMax:        gMax,
		maxInfected: maxInfected,
		p:           k / (k + r0),
		seed:        DefaultSeed,
		workers:     1,
	}
	for _, opt := range opts {
		opt(proc)
	}
	return proc, nil
}

// R0 returns the mean number of secondary infections per case.
func (p *Process) R0() float64 { return p.r0 }

// Dispersion returns the negative-binomial dispersion parameter k.
func (p *Process) Dispersion() float64 { return p.k }

// GenerationCap returns the maximum number of simulated generations.
func (p *Process) GenerationCap() int { return p.gMax }

// MaxInfected returns the explosion bound.
func (p *Process) MaxInfected() float64 { return p.maxInfected }

// SuccessProbability returns the derived NB success probability k/(k+R0).
func (p *Process) SuccessProbability() float64 { return p.p }
