// Package branching — result and outcome types for the extinction estimator.
package branching

// Outcome is the terminal classification of a single branching-process
// realization. The estimator's headline probability counts only Extinct;
// Survived and Exploded both map to "not extinct" but stay distinguishable
// so callers (and tests) can tell a truncated run from an escaped one.
type Outcome int

const (
	// Extinct — some generation produced zero cases before the cap.
	Extinct Outcome = iota
	// Survived — GMax generations elapsed with a positive case count.
	Survived
	// Exploded — the next-generation count escaped past MaxInfected.
	Exploded
)

// String implements fmt.Stringer for logging and test diagnostics.
func (o Outcome) String() string {
	switch o {
	case Extinct:
		return "extinct"
	case Survived:
		return "survived"
	case Exploded:
		return "exploded"
	default:
		return "unknown"
	}
}

// Result aggregates one Monte Carlo estimation run.
//
// Invariant: Extinct + Survived + Exploded == Trials, and
// Probability == Extinct / Trials ∈ [0, 1].
// Result is recomputed per Estimate call and never persisted.
type Result struct {
	// Trials is the number of independent realizations simulated.
	Trials int
	// Extinct counts realizations that reached zero cases.
	Extinct int
	// Survived counts realizations truncated at the generation cap.
	Survived int
	// Exploded counts realizations that crossed the explosion bound.
	Exploded int
	// Probability is the empirical extinction probability Extinct/Trials.
	Probability float64
}

// merge folds a partial (per-worker) result into r. Probability is left to
// the caller once all partials are in.
func (r *Result) merge(part Result) {
	r.Trials += part.Trials
	r.Extinct += part.Extinct
	r.Survived += part.Survived
	r.Exploded += part.Exploded
}
