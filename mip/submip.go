// Package mip - the SubMIP bound-override workspace.
//
// Heuristics never touch the base problem: every fix/release lands in a
// workspace-local pair of bound vectors, and each sub-solve materializes a
// derived read-only problem from them. Restoration is therefore structural -
// there is nothing to undo on the base problem even when a sub-solve fails.
package mip

// SubMIP is a reusable sub-problem workspace over a fixed base problem.
//
// Typical cycle, repeated per heuristic iteration:
//
//	ws.ResetBounds()
//	ws.Fix(i, 1) // for every variable chosen by the fixing strategy
//	res, err := ws.Solve(start, limits)
//
// A SubMIP is not safe for concurrent use.
type SubMIP struct {
	base   *Problem
	solver SubSolver

	// Current bound overrides, indexed by variable.
	lower []float64
	upper []float64
}

// NewSubMIP validates the base problem and builds a workspace around it.
//
// Errors: ErrNilProblem, ErrNilSolver, plus anything Problem.Validate returns.
func NewSubMIP(p *Problem, solver SubSolver) (*SubMIP, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := &SubMIP{
		base:   p,
		solver: solver,
		lower:  make([]float64, len(p.Vars)),
		upper:  make([]float64, len(p.Vars)),
	}
	m.ResetBounds()

	return m, nil
}

// ResetBounds restores every override to the base problem bounds.
//
// Complexity: O(V).
func (m *SubMIP) ResetBounds() {
	var i int
	for i = 0; i < len(m.base.Vars); i++ {
		m.lower[i] = m.base.Vars[i].Lower
		m.upper[i] = m.base.Vars[i].Upper
	}
}

// Fix pins variable v to value (lower == upper == value).
//
// Errors: ErrVariableOutOfRange.
func (m *SubMIP) Fix(v int, value float64) error {
	if v < 0 || v >= len(m.lower) {
		return ErrVariableOutOfRange
	}
	m.lower[v] = value
	m.upper[v] = value

	return nil
}

// Release restores variable v to its base bounds.
//
// Errors: ErrVariableOutOfRange.
func (m *SubMIP) Release(v int) error {
	if v < 0 || v >= len(m.lower) {
		return ErrVariableOutOfRange
	}
	m.lower[v] = m.base.Vars[v].Lower
	m.upper[v] = m.base.Vars[v].Upper

	return nil
}

// SetBounds overrides the bounds of variable v.
//
// Errors: ErrVariableOutOfRange, ErrBadBounds (lo > hi).
func (m *SubMIP) SetBounds(v int, lo, hi float64) error {
	if v < 0 || v >= len(m.lower) {
		return ErrVariableOutOfRange
	}
	if lo > hi {
		return ErrBadBounds
	}
	m.lower[v] = lo
	m.upper[v] = hi

	return nil
}

// Bounds returns the current override bounds of variable v.
//
// Errors: ErrVariableOutOfRange.
func (m *SubMIP) Bounds(v int) (lo, hi float64, err error) {
	if v < 0 || v >= len(m.lower) {
		return 0, 0, ErrVariableOutOfRange
	}

	return m.lower[v], m.upper[v], nil
}

// Base returns the underlying problem (read-only by convention).
func (m *SubMIP) Base() *Problem { return m.base }

// Solve runs the configured SubSolver on the derived problem defined by the
// current overrides. The overrides themselves are left untouched (inspect
// them after the call if needed); the base problem is never modified.
//
// start is an optional warm-start assignment forwarded to the solver.
func (m *SubMIP) Solve(start []float64, limits Limits) (Result, error) {
	return m.solver.SolveSub(m.base.withBounds(m.lower, m.upper), start, limits)
}
