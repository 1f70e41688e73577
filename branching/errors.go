package branching

import "errors"

var (
	// ErrInvalidR0 indicates R0 is not a positive finite number.
	ErrInvalidR0 = errors.New("branching: R0 must be positive and finite")
	// ErrInvalidDispersion indicates the dispersion k is not a positive finite number.
	ErrInvalidDispersion = errors.New("branching: dispersion k must be positive and finite")
	// ErrInvalidGenerationCap indicates the generation cap is below 1.
	ErrInvalidGenerationCap = errors.New("branching: generation cap must be at least 1")
	// ErrInvalidExplosionBound indicates the explosion bound is not a positive finite number.
	ErrInvalidExplosionBound = errors.New("branching: explosion bound must be positive and finite")
	// ErrInvalidTrialCount indicates a non-positive Monte Carlo trial count.
	ErrInvalidTrialCount = errors.New("branching: trial count must be positive")
	// ErrNumericOverflow indicates a mid-trial quantity (a distribution
	// parameter, or the infection count itself) left the numerically safe range.
	ErrNumericOverflow = errors.New("branching: mid-trial quantity overflowed the representable range")
	// ErrNoDispersions indicates a sweep was requested with an empty dispersion list.
	ErrNoDispersions = errors.New("branching: sweep needs at least one dispersion value")
)
