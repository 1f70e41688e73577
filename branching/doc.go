// Package branching models outbreak establishment as a discrete-generation
// branching process with negative-binomial offspring, and estimates the
// probability of extinction by Monte Carlo simulation.
//
// 🚀 What is the model?
//
//	A single index case starts generation zero. Every infectious individual
//	independently causes NB(k, p) secondary infections, where
//	  • R0 — mean secondary infections per case
//	  • k  — dispersion (smaller k ⇒ stronger superspreading)
//	  • p  — success probability, p = k / (k + R0)
//	A realization ends in one of three terminal outcomes:
//	  • Extinct  — a generation produced zero cases
//	  • Survived — GMax generations elapsed with cases still present
//	  • Exploded — the case count escaped past the MaxInfected safety bound
//
// ✨ Key features:
//   - one distribution draw per generation: the total offspring of c cases
//     is a single NB(c·k, p) sample, realized as a Gamma→Poisson mixture
//   - three-way Outcome preserved in Result; the headline probability
//     counts only Extinct
//   - explicit seeding (WithSeed), fixed documented default — never
//     time-based; Estimate is deterministic per (seed, workers)
//   - optional parallel trials (WithWorkers) on independently keyed
//     PCG streams, reproducible for a fixed worker count
//
// ⚙️ Usage:
//
//	proc, err := branching.New(3.0, 0.5, 20, branching.DefaultMaxInfected,
//		branching.WithSeed(42))
//	if err != nil { ... }
//	res, err := proc.Estimate(ctx, 100_000)
//	fmt.Println(res.Probability)
//
// Sweep builds the classic dispersion table: extinction probability as a
// function of k at fixed R0.
//
// Errors are sentinel values (ErrInvalidR0, ErrInvalidTrialCount, ...);
// all parameter validation happens before any sampling. The only
// mid-simulation error is ErrNumericOverflow, raised when a distribution
// parameter stops being finite — it is surfaced, never clamped.
package branching
