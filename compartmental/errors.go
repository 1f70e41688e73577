package compartmental

import "errors"

var (
	// ErrNonPositiveStep indicates a step size Δt ≤ 0 or non-finite.
	ErrNonPositiveStep = errors.New("compartmental: step size must be positive and finite")
	// ErrNonPositiveHorizon indicates a simulation horizon tmax ≤ 0 or non-finite.
	ErrNonPositiveHorizon = errors.New("compartmental: time horizon must be positive and finite")
	// ErrNegativeState indicates a negative initial compartment value.
	ErrNegativeState = errors.New("compartmental: initial compartment values must be non-negative")
	// ErrNegativeRate indicates a negative rate parameter (β, γ, ε, δ, c̄, p_i).
	ErrNegativeRate = errors.New("compartmental: rate parameters must be non-negative")
	// ErrEmptyPopulation indicates a total population of zero.
	ErrEmptyPopulation = errors.New("compartmental: total population must be positive")
	// ErrBadFraction indicates initial fractions that do not sum to one.
	ErrBadFraction = errors.New("compartmental: initial fractions must be non-negative and sum to 1")
	// ErrNoSeedInfection indicates a normalized model started with zero infected.
	ErrNoSeedInfection = errors.New("compartmental: initial infected fraction must be positive")
	// ErrEqualRates indicates β = γ (R₀ = 1), where the logistic closed form is undefined.
	ErrEqualRates = errors.New("compartmental: beta and gamma must differ")
	// ErrLengthMismatch indicates two series of different lengths were compared.
	ErrLengthMismatch = errors.New("compartmental: series lengths must match")
	// ErrNoStepSizes indicates an error sweep over an empty step list.
	ErrNoStepSizes = errors.New("compartmental: error sweep needs at least one step size")
)
