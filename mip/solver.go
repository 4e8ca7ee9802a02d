// Package mip - the contract between the heuristic layer and MIP solvers.
//
// Two narrow interfaces keep the layer solver-agnostic:
//   - SubSolver answers bound-restricted sub-problems under explicit limits.
//   - Search is the callback-side view of a running branch-and-bound.
//
// Any solver able to satisfy these two can host the heuristics; the bnb
// package ships a reference implementation for pure-binary problems.
package mip

import "time"

// Result is the outcome of a solve attempt.
//
// Found reports whether Values/Objective carry a solution. A limit status
// (NodeLimit, TimeLimit) can appear both with and without a solution.
type Result struct {
	Found     bool
	Status    Status
	Values    []float64
	Objective float64
}

// Limits bounds a single solve call. Zero values disable the corresponding
// criterion.
type Limits struct {
	// MaxNodes stops the search after this many explored nodes.
	MaxNodes int64

	// UnsuccessfulNodes stops the search after this many nodes explored
	// without the incumbent improving by more than Threshold.
	UnsuccessfulNodes int64

	// Deadline stops the search once the wall clock passes it.
	Deadline time.Time
}

// HasDeadline reports whether a deadline criterion is set.
func (l Limits) HasDeadline() bool { return !l.Deadline.IsZero() }

// SubSolver solves bound-restricted copies of a problem on behalf of a
// heuristic. Implementations must honor every limit in limits, never mutate
// p, and return a copied Values slice (callers keep it past the next solve).
//
// start is an optional warm-start assignment: when non-nil and feasible it
// seeds the initial incumbent. Implementations ignore an infeasible start.
type SubSolver interface {
	SolveSub(p *Problem, start []float64, limits Limits) (Result, error)
}

// Search is the view of a running branch-and-bound that heuristic callbacks
// operate on. All methods are only meaningful while the search is active and
// must be called from the search goroutine.
type Search interface {
	// Incumbent returns the current best solution, its objective, and
	// whether one exists. The returned slice is owned by the solver: copy
	// before retaining.
	Incumbent() ([]float64, float64, bool)

	// Relaxation returns the relaxed solution of the current node, its
	// objective, and whether one is available. Same ownership rule as
	// Incumbent.
	Relaxation() ([]float64, float64, bool)

	// NodeCount returns the number of nodes explored so far.
	NodeCount() int64

	// Suggest hands the solver a candidate incumbent. The solver validates
	// it (dimension, bounds, integrality, constraints) and adopts it only
	// if it improves the current incumbent. Invalid or non-improving
	// candidates are ignored.
	Suggest(values []float64)
}

// IncumbentObserver is notified whenever the outer search accepts a new
// incumbent. The values slice is only valid during the call: copy to retain.
// This is the channel through which the solution pool is fed.
type IncumbentObserver func(values []float64, objective float64)

// TriggerFunc is a periodic heuristic hook installed into a search loop.
// The solver invokes it on its own goroutine at node boundaries; the hook
// may run sub-solves and call Suggest on the provided Search.
type TriggerFunc func(Search)
