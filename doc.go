// Package epikit is a small toolbox of teaching-grade epidemic models —
// deterministic compartmental ODEs next to a stochastic branching process.
//
// 🚀 What is epikit?
//
//	A compact, reproducibility-first library that brings together:
//		• Compartmental models: SIR, SIR with births/deaths, normalized SIS,
//		  and a four-group heterogeneous-susceptibility SIR — all integrated
//		  by explicit forward-Euler stepping
//		• Branching process: negative-binomial offspring, Monte Carlo
//		  extinction-probability estimation with superspreading dispersion
//		• Next-generation matrix: spectral-radius utility for R₀ of
//		  structured populations
//
// ✨ Why choose epikit?
//
//   - Deterministic by contract – every stochastic path takes an explicit
//     seed; same seed ⇒ identical results
//   - Small, orthogonal packages – each model is a pure function of its
//     parameters, returning value-typed series
//   - Honest numerics – eager parameter validation, sentinel errors,
//     overflow surfaced instead of clamped
//
// Under the hood, everything is organized under four subpackages plus a CLI:
//
//	branching/     — negative-binomial branching process & extinction estimator
//	compartmental/ — forward-Euler SIR / SIR-BD / SIS / four-group models
//	ngm/           — next-generation-matrix spectral radius
//	scenario/      — YAML scenario files consumed by the CLI
//	cmd/epikit/    — command-line front end (sweep tables, CSV trajectories)
//
// Dive into each package's doc.go for equations, contracts and examples.
//
//	go get github.com/tverem/epikit
package epikit
