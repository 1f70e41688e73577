// Package branching — functional options for Process construction.
//
// Contract (strict):
//   - Options are functional (type Option func(*Process)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the estimator itself never panics, it returns sentinel errors.
//   - Determinism is explicit: seeding goes through WithSeed.
//     No hidden globals, no time-based fallbacks.
package branching

// Option customizes a Process before any sampling begins.
// Applying N options costs O(N) time, O(1) space.
type Option func(*Process)

// DefaultSeed is the documented fixed seed used when WithSeed is omitted.
// The value is arbitrary but stable so default runs stay comparable
// across versions; it carries no statistical significance.
const DefaultSeed uint64 = 101

// WithSeed sets the master seed for the estimator's random streams.
// Any value is accepted, including zero. Two Process instances built with
// identical parameters, seed and worker count produce identical Results.
func WithSeed(seed uint64) Option {
	return func(p *Process) {
		p.seed = seed
	}
}

// WithWorkers sets the number of parallel trial workers.
// Worker i draws from an independent PCG stream keyed (seed, i), so the
// aggregate Result is reproducible for a fixed (seed, workers) pair —
// though a different worker count yields a different (equally valid)
// realization of the same estimator.
// Panics on n < 1 to surface programmer error early.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("branching: WithWorkers(n < 1)")
	}
	return func(p *Process) {
		p.workers = n
	}
}
