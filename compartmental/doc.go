// Package compartmental implements the classic teaching compartmental
// epidemic models, integrated by explicit forward-Euler time stepping.
//
// 🚀 What's inside?
//
//	• SIR        — Susceptible-Infected-Recovered, closed population
//	• SIR-BD     — SIR with vital dynamics (birth rate ε, death rate δ),
//	               dynamic population size N(t)
//	• SIS        — normalized two-compartment model on fractions, with the
//	               closed-form solution i(t) and an error-vs-stepsize sweep
//	• FourGroup  — normalized SIR across four equal groups with
//	               heterogeneous susceptibility and fully mixed contacts
//
// ✨ Design notes:
//   - Models are immutable after construction; Run returns a value-typed
//     Series instead of mutating the model, so one model can be run and
//     compared under different questions safely.
//   - Forward Euler is deliberate: the point is to expose the O(Δt)
//     truncation error, not to hide it behind an adaptive solver. See
//     (*SIS).ErrorSweep for the convergence study.
//   - All parameters are validated eagerly with sentinel errors; Run on a
//     constructed model cannot fail.
//
// ⚙️ Usage:
//
//	model, err := compartmental.NewSIR(990, 10, 0, 0.3, 0.1, 160, 0.1)
//	if err != nil { ... }
//	series := model.Run()
//	fmt.Println(series.I[len(series.I)-1])
//
// Time grids include the endpoint: t_i = i·Δt for i = 0..⌊tmax/Δt⌋.
package compartmental
