package compartmental

// SIRBD extends SIR with vital dynamics — a per-capita birth rate ε and
// death rate δ — so the population size becomes a state variable:
//
//	dS/dt = -β·S·I/N + ε·N - δ·S
//	dI/dt =  β·S·I/N - γ·I - δ·I
//	dR/dt =  γ·I - δ·R
//	dN/dt = (ε - δ)·N
//
// With ε = δ = 0 the trajectories coincide with SIR exactly (same
// arithmetic, zero extra terms).
type SIRBD struct {
	n0          float64
	s0, i0, r0  float64
	beta, gamma float64
	birth       float64 // ε
	death       float64 // δ
	tmax, dt    float64
	time        []float64
}

// SIRBDSeries holds one integrated trajectory; unlike SIRSeries the
// population N is a full time series.
type SIRBDSeries struct {
	Time []float64
	S    []float64
	I    []float64
	R    []float64
	N    []float64
}

// NewSIRBD validates parameters and builds a birth/death SIR model.
// n0 is the initial total population, taken as an independent parameter
// rather than derived from s0+i0+r0 so demographic scenarios can start
// off balance.
func NewSIRBD(n0, s0, i0, r0, beta, gamma, birth, death, tmax, dt float64) (*SIRBD, error) {
	if s0 < 0 || i0 < 0 || r0 < 0 {
		return nil, ErrNegativeState
	}
	if n0 <= 0 {
		return nil, ErrEmptyPopulation
	}
	if beta < 0 || gamma < 0 || birth < 0 || death < 0 {
		return nil, ErrNegativeRate
	}
	time, err := Grid(tmax, dt)
	if err != nil {
		return nil, err
	}
	return &SIRBD{
		n0: n0,
		s0: s0, i0: i0, r0: r0,
		beta: beta, gamma: gamma,
		birth: birth, death: death,
		tmax: tmax, dt: dt,
		time: time,
	}, nil
}

// Run integrates the model with forward Euler and returns the trajectory.
func (m *SIRBD) Run() SIRBDSeries {
	T := len(m.time)
	s := make([]float64, T)
	i := make([]float64, T)
	r := make([]float64, T)
	n := make([]float64, T)
	s[0], i[0], r[0], n[0] = m.s0, m.i0, m.r0, m.n0

	for t := 1; t < T; t++ {
		dS := (-m.beta * s[t-1] * i[t-1] / n[t-1]) + (m.birth * n[t-1]) - (m.death * s[t-1])
		dI := (m.beta * s[t-1] * i[t-1] / n[t-1]) - (m.gamma * i[t-1]) - (m.death * i[t-1])
		dR := (m.gamma * i[t-1]) - (m.death * r[t-1])
		dN := (m.birth - m.death) * n[t-1]

		s[t] = s[t-1] + dS*m.dt
		i[t] = i[t-1] + dI*m.dt
		r[t] = r[t-1] + dR*m.dt
		n[t] = n[t-1] + dN*m.dt
	}

	return SIRBDSeries{Time: append([]float64(nil), m.time...), S: s, I: i, R: r, N: n}
}
