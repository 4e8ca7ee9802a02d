// Package mip defines the shared model types and the solver contract used by
// the heuristic improvement layer.
//
// What this package provides:
//
//   - Problem / Variable / Constraint: a plain linear MIP model with explicit
//     variable bounds and a dense objective vector. The heuristic layer only
//     ever inspects variables, bounds, and the objective sense; constraints
//     travel along so that concrete solvers can evaluate feasibility.
//
//   - Sense / VarType / Relation / Status: small closed enums with the
//     comparison helpers the heuristics need (sense-aware "better than",
//     improvement beyond a tolerance, finished-vs-interrupted statuses).
//
//   - SubSolver / Search: the two faces of an external MIP solver. SubSolver
//     answers bound-restricted sub-problems under explicit limits; Search is
//     the view a running branch-and-bound exposes to callbacks (incumbent,
//     node relaxation, node count, candidate suggestion).
//
//   - SubMIP: a reusable bound-override workspace tied to one Problem. All
//     fixing performed by heuristics goes through a SubMIP, so the underlying
//     Problem is never mutated and bound restoration is structural rather
//     than undo-based.
//
// Conventions:
//   - Threshold (1e-5) is the single numeric tolerance of the layer: it
//     drives improvement tests, binary-variable identification, and value
//     agreement between solutions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - All operations are single-goroutine; concurrent use requires external
//     synchronization.
package mip
