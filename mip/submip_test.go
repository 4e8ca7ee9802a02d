package mip_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mipheur/mip"
	"github.com/stretchr/testify/require"
)

// recordingSolver captures the derived problem handed to SolveSub so tests
// can assert on the bounds a workspace materializes.
type recordingSolver struct {
	lastLower []float64
	lastUpper []float64
	lastStart []float64
	err       error
}

func (s *recordingSolver) SolveSub(p *mip.Problem, start []float64, _ mip.Limits) (mip.Result, error) {
	s.lastLower = make([]float64, p.NumVars())
	s.lastUpper = make([]float64, p.NumVars())
	for i := 0; i < p.NumVars(); i++ {
		s.lastLower[i] = p.Vars[i].Lower
		s.lastUpper[i] = p.Vars[i].Upper
	}
	s.lastStart = start
	if s.err != nil {
		return mip.Result{}, s.err
	}

	return mip.Result{Found: false, Status: mip.StatusInfeasible}, nil
}

// TestNewSubMIP_Guards covers the constructor sentinels.
func TestNewSubMIP_Guards(t *testing.T) {
	// Nil problem.
	_, err := mip.NewSubMIP(nil, &recordingSolver{})
	require.ErrorIs(t, err, mip.ErrNilProblem)

	// Nil solver.
	_, err = mip.NewSubMIP(makeKnapsack(), nil)
	require.ErrorIs(t, err, mip.ErrNilSolver)

	// Invalid base problem is rejected up front.
	bad := makeKnapsack()
	bad.Objective = bad.Objective[:1]
	_, err = mip.NewSubMIP(bad, &recordingSolver{})
	require.ErrorIs(t, err, mip.ErrDimensionMismatch)
}

// TestSubMIP_FixReleaseReset verifies the override lifecycle and that the
// base problem never changes.
func TestSubMIP_FixReleaseReset(t *testing.T) {
	p := makeKnapsack()
	ws, err := mip.NewSubMIP(p, &recordingSolver{})
	require.NoError(t, err)

	// Fix variable 1 to 1.
	require.NoError(t, ws.Fix(1, 1))
	lo, hi, err := ws.Bounds(1)
	require.NoError(t, err)
	require.Equal(t, 1.0, lo)
	require.Equal(t, 1.0, hi)

	// The base problem keeps its original bounds.
	require.Equal(t, 0.0, p.Vars[1].Lower)
	require.Equal(t, 1.0, p.Vars[1].Upper)

	// Release restores the base bounds for that variable.
	require.NoError(t, ws.Release(1))
	lo, hi, err = ws.Bounds(1)
	require.NoError(t, err)
	require.Equal(t, 0.0, lo)
	require.Equal(t, 1.0, hi)

	// ResetBounds restores everything at once.
	require.NoError(t, ws.Fix(0, 0))
	require.NoError(t, ws.Fix(2, 1))
	ws.ResetBounds()
	for v := 0; v < p.NumVars(); v++ {
		lo, hi, err = ws.Bounds(v)
		require.NoError(t, err)
		require.Equal(t, p.Vars[v].Lower, lo)
		require.Equal(t, p.Vars[v].Upper, hi)
	}

	// Out-of-range indices are rejected.
	require.ErrorIs(t, ws.Fix(7, 0), mip.ErrVariableOutOfRange)
	require.ErrorIs(t, ws.Release(-1), mip.ErrVariableOutOfRange)
	require.ErrorIs(t, ws.SetBounds(3, 0, 1), mip.ErrVariableOutOfRange)

	// Inverted bounds are rejected.
	require.ErrorIs(t, ws.SetBounds(0, 1, 0), mip.ErrBadBounds)
}

// TestSubMIP_SolveDerivesBounds checks that Solve hands the solver a problem
// carrying exactly the override bounds, and forwards the warm start.
func TestSubMIP_SolveDerivesBounds(t *testing.T) {
	p := makeKnapsack()
	rec := &recordingSolver{}
	ws, err := mip.NewSubMIP(p, rec)
	require.NoError(t, err)

	require.NoError(t, ws.Fix(0, 1))
	require.NoError(t, ws.Fix(2, 0))

	start := []float64{1, 0, 0}
	_, err = ws.Solve(start, mip.Limits{MaxNodes: 10})
	require.NoError(t, err)

	// The derived problem shows the overrides, untouched variables keep base bounds.
	require.Equal(t, []float64{1, 0, 0}, rec.lastLower)
	require.Equal(t, []float64{1, 1, 0}, rec.lastUpper)
	require.Equal(t, start, rec.lastStart)
}

// TestSubMIP_SolveErrorLeavesWorkspaceIntact verifies the restoration
// guarantee: a failing sub-solve does not disturb overrides or base bounds.
func TestSubMIP_SolveErrorLeavesWorkspaceIntact(t *testing.T) {
	p := makeKnapsack()
	boom := errors.New("boom")
	ws, err := mip.NewSubMIP(p, &recordingSolver{err: boom})
	require.NoError(t, err)

	require.NoError(t, ws.Fix(1, 1))
	_, err = ws.Solve(nil, mip.Limits{})
	require.ErrorIs(t, err, boom)

	// Overrides survive the failed call for inspection.
	lo, hi, berr := ws.Bounds(1)
	require.NoError(t, berr)
	require.Equal(t, 1.0, lo)
	require.Equal(t, 1.0, hi)

	// Base problem bounds are untouched, and the next reset recovers cleanly.
	require.Equal(t, 0.0, p.Vars[1].Lower)
	ws.ResetBounds()
	lo, hi, berr = ws.Bounds(1)
	require.NoError(t, berr)
	require.Equal(t, 0.0, lo)
	require.Equal(t, 1.0, hi)
}
