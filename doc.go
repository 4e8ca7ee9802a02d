// Package mipheur is a matheuristic improvement layer for mixed-integer
// programming: a bounded archive of feasible solutions and two polishing
// heuristics that carve restricted sub-problems out of it, hand them to a
// solver, and feed every result back into the running search.
//
// 🚀 What is mipheur?
//
//	A deterministic, solver-agnostic toolkit that brings together:
//		• mip     — the problem model, solver contracts, and the sub-MIP workspace
//		• solpool — the bounded, deduplicated pool of known-good solutions
//		• polish  — Rothberg mutation/recombination and Maravilha biased sampling
//		• bnb     — a reference branch-and-bound solver for pure-binary programs
//		• gen     — seeded knapsack and set cover instance generators
//		• config  — YAML run configuration mirroring the CLI surface
//		• bench   — the two-phase pipeline, experiment grids, CSV output
//
// ✨ Why choose mipheur?
//
//   - Reproducible – every random stream is seeded; same seed, same run
//   - Solver-agnostic – two narrow interfaces separate heuristics from search
//   - Self-contained – generators and a reference solver make every layer testable
//   - Adaptive – neighborhood sizes steer themselves on sub-solve outcomes
//
// Start with bench.Execute for a complete run, or wire the polish
// heuristics onto your own solver through the mip.Search and mip.SubSolver
// contracts. The cmd/mipheur binary exposes both paths on the command line.
//
//	go get github.com/katalvlaran/mipheur
package mipheur
