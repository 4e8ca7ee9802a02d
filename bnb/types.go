// Package bnb - options and sentinel errors.
package bnb

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrNilProblem - NewSolver or SolveSub received a nil problem.
	ErrNilProblem = errors.New("bnb: problem is nil")

	// ErrNotBinary - the problem contains a variable this solver cannot
	// branch on (non-integral type, or bounds outside [0,1]).
	ErrNotBinary = errors.New("bnb: variable is not binary")

	// ErrSearchExhausted - Optimize was called again after the search space
	// was fully enumerated.
	ErrSearchExhausted = errors.New("bnb: search already exhausted")
)

// Options configure a Solver. Per-call stopping criteria (node caps,
// deadline) are not options: they arrive with each Optimize call as
// mip.Limits, which is what makes two-phase driving possible.
type Options struct {
	// TriggerFrequency gates installed trigger hooks: they fire whenever
	// the cumulative node count is divisible by it. Zero or negative
	// disables all triggers.
	TriggerFrequency int64
}

// DefaultOptions returns the default configuration: triggers fire on every
// node.
func DefaultOptions() Options {
	return Options{TriggerFrequency: 1}
}
