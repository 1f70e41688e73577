package compartmental

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// groupCount is fixed by the model: four equal-sized groups, each
// normalized to unit population.
const groupCount = 4

// FourGroup is a normalized SIR model across four equal groups with
// heterogeneous susceptibility and fully mixed contacts. Group g feels the
// force of infection
//
//	λ_g = p_g · c̄ · Σ_h i_h
//
// where p_g is the group's susceptibility multiplier and c̄ the fully
// mixed contact rate; recovery γ is shared by all groups.
type FourGroup struct {
	p          [groupCount]float64
	cbar       float64
	gamma      float64
	tmax, dt   float64
	s0, i0, r0 float64 // initial fractions, identical within each group
	time       []float64
}

// FourGroupSeries holds one trajectory: each Dense is T×4, one column per
// group, rows aligned with Time. P echoes the susceptibility multipliers
// so diagnostics don't need the model.
type FourGroupSeries struct {
	Time []float64
	S    *mat.Dense
	I    *mat.Dense
	R    *mat.Dense
	P    [groupCount]float64
}

// GroupOption customizes a FourGroup before construction finishes.
type GroupOption func(*FourGroup)

// WithInitialFractions overrides the default per-group initial split
// (0.999 susceptible, 0.001 infected, 0 recovered). Values are validated
// by NewFourGroup, not here.
func WithInitialFractions(s0, i0, r0 float64) GroupOption {
	return func(m *FourGroup) {
		m.s0, m.i0, m.r0 = s0, i0, r0
	}
}

// NewFourGroup validates parameters and builds the model.
// Susceptibility multipliers and rates must be non-negative; initial
// fractions must be non-negative, include a seed infection, and sum to 1
// within each group.
func NewFourGroup(p [groupCount]float64, cbar, gamma, tmax, dt float64, opts ...GroupOption) (*FourGroup, error) {
	for _, pg := range p {
		if pg < 0 {
			return nil, ErrNegativeRate
		}
	}
	if cbar < 0 || gamma < 0 {
		return nil, ErrNegativeRate
	}
	time, err := Grid(tmax, dt)
	if err != nil {
		return nil, err
	}

	m := &FourGroup{
		p:    p,
		cbar: cbar, gamma: gamma,
		tmax: tmax, dt: dt,
		s0: 0.999, i0: 0.001, r0: 0,
		time: time,
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.s0 < 0 || m.i0 < 0 || m.r0 < 0 {
		return nil, ErrNegativeState
	}
	if m.i0 == 0 {
		return nil, ErrNoSeedInfection
	}
	if math.Abs(m.s0+m.i0+m.r0-1) > 1e-9 {
		return nil, ErrBadFraction
	}
	return m, nil
}

// Run integrates all four groups with forward Euler.
func (m *FourGroup) Run() FourGroupSeries {
	T := len(m.time)
	s := mat.NewDense(T, groupCount, nil)
	i := mat.NewDense(T, groupCount, nil)
	r := mat.NewDense(T, groupCount, nil)
	for g := 0; g < groupCount; g++ {
		s.Set(0, g, m.s0)
		i.Set(0, g, m.i0)
		r.Set(0, g, m.r0)
	}

	var sNext, iNext, rNext [groupCount]float64
	for t := 1; t < T; t++ {
		sPrev := s.RawRowView(t - 1)
		iPrev := i.RawRowView(t - 1)
		rPrev := r.RawRowView(t - 1)

		// Fully mixed: every group feels the total infected mass.
		iTotal := floats.Sum(iPrev)
		for g := 0; g < groupCount; g++ {
			lambda := m.p[g] * m.cbar * iTotal

			dS := -lambda * sPrev[g]
			dI := lambda*sPrev[g] - m.gamma*iPrev[g]
			dR := m.gamma * iPrev[g]

			sNext[g] = sPrev[g] + dS*m.dt
			iNext[g] = iPrev[g] + dI*m.dt
			rNext[g] = rPrev[g] + dR*m.dt
		}
		s.SetRow(t, sNext[:])
		i.SetRow(t, iNext[:])
		r.SetRow(t, rNext[:])
	}

	return FourGroupSeries{
		Time: append([]float64(nil), m.time...),
		S:    s, I: i, R: r,
		P: m.p,
	}
}

// MeanSusceptibility returns p̄(t) = Σ_g p_g·s_g(t) / Σ_g s_g(t), the
// average susceptibility among the still-susceptible — the quantity that
// drains over time as the most susceptible groups are infected first.
func (fs FourGroupSeries) MeanSusceptibility() []float64 {
	T := len(fs.Time)
	pbar := make([]float64, T)
	for t := 0; t < T; t++ {
		row := fs.S.RawRowView(t)
		pbar[t] = floats.Dot(fs.P[:], row) / floats.Sum(row)
	}
	return pbar
}
