package compartmental

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SIS is the normalized Susceptible-Infected-Susceptible model on
// population fractions (s + i = 1):
//
//	ds/dt = -β·s·i + γ·i
//	di/dt =  β·s·i - γ·i
//
// Its logistic closed form
//
//	i(t) = (1 - 1/R₀) / (1 + ((1 - 1/R₀ - i₀)/i₀)·e^{-(β-γ)t})
//
// with R₀ = β/γ makes it the standard vehicle for studying forward-Euler
// truncation error; see Analytical and ErrorSweep.
type SIS struct {
	s0, i0      float64
	beta, gamma float64
	tmax, dt    float64
	time        []float64
}

// SISSeries holds one integrated trajectory on fractions.
type SISSeries struct {
	Time []float64
	S    []float64
	I    []float64
}

// ErrorPoint is one row of an error-vs-stepsize sweep.
type ErrorPoint struct {
	Step     float64
	MaxError float64
}

// NewSIS validates parameters and builds a normalized SIS model.
// Fractions must satisfy s0, i0 ≥ 0, i0 > 0 and s0+i0 = 1; the closed-form
// solution requires β > 0, γ > 0 and β ≠ γ (at R₀ = 1 the logistic form
// degenerates to 0/0) plus a seed infection to divide by.
func NewSIS(s0, i0, beta, gamma, tmax, dt float64) (*SIS, error) {
	if s0 < 0 || i0 < 0 {
		return nil, ErrNegativeState
	}
	if i0 == 0 {
		return nil, ErrNoSeedInfection
	}
	if math.Abs(s0+i0-1) > 1e-9 {
		return nil, ErrBadFraction
	}
	if beta <= 0 || gamma <= 0 {
		return nil, ErrNegativeRate
	}
	if beta == gamma {
		return nil, ErrEqualRates
	}
	time, err := Grid(tmax, dt)
	if err != nil {
		return nil, err
	}
	return &SIS{
		s0: s0, i0: i0,
		beta: beta, gamma: gamma,
		tmax: tmax, dt: dt,
		time: time,
	}, nil
}

// R0 returns the basic reproduction number β/γ.
func (m *SIS) R0() float64 { return m.beta / m.gamma }

// Run integrates the model with forward Euler and returns the trajectory.
func (m *SIS) Run() SISSeries {
	T := len(m.time)
	s := make([]float64, T)
	i := make([]float64, T)
	s[0], i[0] = m.s0, m.i0

	for t := 1; t < T; t++ {
		dS := -m.beta*s[t-1]*i[t-1] + m.gamma*i[t-1]
		dI := m.beta*s[t-1]*i[t-1] - m.gamma*i[t-1]

		s[t] = s[t-1] + dS*m.dt
		i[t] = i[t-1] + dI*m.dt
	}

	return SISSeries{Time: append([]float64(nil), m.time...), S: s, I: i}
}

// Analytical evaluates the closed-form infected fraction i(t) on the
// model's time grid.
func (m *SIS) Analytical() []float64 {
	r0 := m.R0()
	num := 1 - 1/r0
	scale := (1 - 1/r0 - m.i0) / m.i0

	exact := make([]float64, len(m.time))
	for idx, t := range m.time {
		exact[idx] = num / (1 + scale*math.Exp(-(m.beta-m.gamma)*t))
	}
	return exact
}

// MaxAbsError returns the Chebyshev distance max_t |a(t) - b(t)| between
// two series on the same grid — the E(Δt) of the convergence study.
func MaxAbsError(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}

// ErrorSweep re-runs the model once per step size and reports the maximum
// absolute error of the Euler trajectory against the closed form —
// first-order convergence shows as E(Δt) ∝ Δt on the returned table.
func (m *SIS) ErrorSweep(steps []float64) ([]ErrorPoint, error) {
	if len(steps) == 0 {
		return nil, ErrNoStepSizes
	}

	points := make([]ErrorPoint, 0, len(steps))
	for _, step := range steps {
		variant, err := NewSIS(m.s0, m.i0, m.beta, m.gamma, m.tmax, step)
		if err != nil {
			return nil, err
		}
		run := variant.Run()
		e, err := MaxAbsError(run.I, variant.Analytical())
		if err != nil {
			return nil, err
		}
		points = append(points, ErrorPoint{Step: step, MaxError: e})
	}
	return points, nil
}
