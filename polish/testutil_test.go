// Package polish_test - shared fixtures: a scriptable search view, a
// recording sub-solver, and small pure-binary problems.
package polish_test

import (
	"testing"

	"github.com/katalvlaran/mipheur/mip"
	"github.com/katalvlaran/mipheur/solpool"
)

// binaryProblem returns a validated problem whose variables are all binary
// with bounds [0,1] and the given dense objective.
func binaryProblem(sense mip.Sense, objective ...float64) *mip.Problem {
	vars := make([]mip.Variable, len(objective))
	for i := range vars {
		vars[i] = mip.Variable{Type: mip.Binary, Lower: 0, Upper: 1}
	}
	return &mip.Problem{
		Sense:     sense,
		Vars:      vars,
		Objective: objective,
	}
}

// poolWith builds a sorted pool of the given capacity and seeds it.
func poolWith(t *testing.T, sense mip.Sense, maxSize int, entries ...solpool.Entry) *solpool.Pool {
	t.Helper()
	p, err := solpool.New(sense, maxSize, true)
	if err != nil {
		t.Fatalf("solpool.New: %v", err)
	}
	for _, e := range entries {
		if !p.AddEntry(e.Solution, e.Value) {
			t.Fatalf("AddEntry(%v, %v) rejected while seeding", e.Solution, e.Value)
		}
	}
	return p
}

// fakeSearch implements mip.Search with settable state and a record of
// every suggestion it receives.
type fakeSearch struct {
	incValues []float64
	incObj    float64
	hasInc    bool

	relValues []float64
	relObj    float64
	hasRel    bool

	nodes int64

	suggestions [][]float64
}

func (s *fakeSearch) Incumbent() ([]float64, float64, bool) {
	return s.incValues, s.incObj, s.hasInc
}

func (s *fakeSearch) Relaxation() ([]float64, float64, bool) {
	return s.relValues, s.relObj, s.hasRel
}

func (s *fakeSearch) NodeCount() int64 {
	return s.nodes
}

func (s *fakeSearch) Suggest(values []float64) {
	v := make([]float64, len(values))
	copy(v, values)
	s.suggestions = append(s.suggestions, v)
}

// subCall captures one SolveSub invocation: the effective bounds of the
// restricted problem, the warm start (nil if absent), and the limits.
type subCall struct {
	lower  []float64
	upper  []float64
	start  []float64
	limits mip.Limits
}

// fixedCount reports how many variables arrived with lower == upper.
func (c subCall) fixedCount() int {
	n := 0
	for i := range c.lower {
		if c.lower[i] == c.upper[i] {
			n++
		}
	}
	return n
}

// freeVars reports the indices that arrived with lower != upper.
func (c subCall) freeVars() []int {
	var out []int
	for i := range c.lower {
		if c.lower[i] != c.upper[i] {
			out = append(out, i)
		}
	}
	return out
}

// scriptedSolver implements mip.SubSolver by replaying queued results in
// order, falling back to a default reply once the script runs dry, while
// recording every call it serves.
type scriptedSolver struct {
	script   []mip.Result
	fallback mip.Result
	calls    []subCall
}

// notFound returns a solver that always reports the given status with no
// solution attached.
func notFound(status mip.Status) *scriptedSolver {
	return &scriptedSolver{fallback: mip.Result{Found: false, Status: status}}
}

func (s *scriptedSolver) SolveSub(p *mip.Problem, start []float64, limits mip.Limits) (mip.Result, error) {
	call := subCall{
		lower:  make([]float64, p.NumVars()),
		upper:  make([]float64, p.NumVars()),
		limits: limits,
	}
	for i, v := range p.Vars {
		call.lower[i] = v.Lower
		call.upper[i] = v.Upper
	}
	if start != nil {
		call.start = make([]float64, len(start))
		copy(call.start, start)
	}
	s.calls = append(s.calls, call)

	if len(s.script) == 0 {
		return s.fallback, nil
	}
	next := s.script[0]
	s.script = s.script[1:]
	return next, nil
}

// errorSolver implements mip.SubSolver by failing every call.
type errorSolver struct {
	err error
}

func (s *errorSolver) SolveSub(*mip.Problem, []float64, mip.Limits) (mip.Result, error) {
	return mip.Result{}, s.err
}

// sameVector reports exact element-wise equality of two float vectors.
func sameVector(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
