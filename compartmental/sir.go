package compartmental

// SIR is the closed-population Susceptible-Infected-Recovered model:
//
//	dS/dt = -β·S·I/N
//	dI/dt =  β·S·I/N - γ·I
//	dR/dt =  γ·I
//
// with constant total population N = S₀+I₀+R₀.
type SIR struct {
	s0, i0, r0  float64
	beta, gamma float64
	tmax, dt    float64
	n           float64
	time        []float64
}

// SIRSeries holds one integrated trajectory. All slices share the length
// of Time; N is the (constant) total population.
type SIRSeries struct {
	Time []float64
	S    []float64
	I    []float64
	R    []float64
	N    float64
}

// NewSIR validates parameters and builds an SIR model.
//
//	s0, i0, r0 ≥ 0 with s0+i0+r0 > 0 → ErrNegativeState / ErrEmptyPopulation
//	beta, gamma ≥ 0                  → ErrNegativeRate
//	tmax > 0, dt > 0                 → ErrNonPositiveHorizon / ErrNonPositiveStep
func NewSIR(s0, i0, r0, beta, gamma, tmax, dt float64) (*SIR, error) {
	if s0 < 0 || i0 < 0 || r0 < 0 {
		return nil, ErrNegativeState
	}
	if s0+i0+r0 <= 0 {
		return nil, ErrEmptyPopulation
	}
	if beta < 0 || gamma < 0 {
		return nil, ErrNegativeRate
	}
	time, err := Grid(tmax, dt)
	if err != nil {
		return nil, err
	}
	return &SIR{
		s0: s0, i0: i0, r0: r0,
		beta: beta, gamma: gamma,
		tmax: tmax, dt: dt,
		n:    s0 + i0 + r0,
		time: time,
	}, nil
}

// Population returns the constant total population N.
func (m *SIR) Population() float64 { return m.n }

// Run integrates the model with forward Euler and returns the trajectory.
// Run never fails on a constructed model and may be called repeatedly.
func (m *SIR) Run() SIRSeries {
	T := len(m.time)
	s := make([]float64, T)
	i := make([]float64, T)
	r := make([]float64, T)
	s[0], i[0], r[0] = m.s0, m.i0, m.r0

	for t := 1; t < T; t++ {
		dS := -m.beta * s[t-1] * i[t-1] / m.n
		dI := m.beta*s[t-1]*i[t-1]/m.n - m.gamma*i[t-1]
		dR := m.gamma * i[t-1]

		s[t] = s[t-1] + dS*m.dt
		i[t] = i[t-1] + dI*m.dt
		r[t] = r[t-1] + dR*m.dt
	}

	return SIRSeries{Time: append([]float64(nil), m.time...), S: s, I: i, R: r, N: m.n}
}
