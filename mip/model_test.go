package mip_test

import (
	"testing"

	"github.com/katalvlaran/mipheur/mip"
	"github.com/stretchr/testify/require"
)

// makeKnapsack builds a tiny maximization knapsack:
// max 5a + 4b + 3c  s.t.  2a + 3b + c <= 4, binaries.
func makeKnapsack() *mip.Problem {
	return &mip.Problem{
		Name:  "tiny-knapsack",
		Sense: mip.Maximize,
		Vars: []mip.Variable{
			{Name: "a", Type: mip.Binary, Lower: 0, Upper: 1},
			{Name: "b", Type: mip.Binary, Lower: 0, Upper: 1},
			{Name: "c", Type: mip.Binary, Lower: 0, Upper: 1},
		},
		Objective: []float64{5, 4, 3},
		Cons: []mip.Constraint{
			{
				Name:  "capacity",
				Terms: []mip.Term{{Var: 0, Coef: 2}, {Var: 1, Coef: 3}, {Var: 2, Coef: 1}},
				Op:    mip.LE,
				RHS:   4,
			},
		},
	}
}

// TestProblemValidate_OK verifies that a well-formed problem passes validation.
func TestProblemValidate_OK(t *testing.T) {
	p := makeKnapsack()

	// A structurally sound problem validates cleanly.
	require.NoError(t, p.Validate())
}

// TestProblemValidate_Errors covers every structural violation and its sentinel.
func TestProblemValidate_Errors(t *testing.T) {
	// 1) Nil problem.
	var nilP *mip.Problem
	require.ErrorIs(t, nilP.Validate(), mip.ErrNilProblem)

	// 2) Empty variable set.
	empty := &mip.Problem{}
	require.ErrorIs(t, empty.Validate(), mip.ErrNoVariables)

	// 3) Objective length mismatch.
	p := makeKnapsack()
	p.Objective = p.Objective[:2]
	require.ErrorIs(t, p.Validate(), mip.ErrDimensionMismatch)

	// 4) Inverted bounds.
	p = makeKnapsack()
	p.Vars[1].Lower = 2
	require.ErrorIs(t, p.Validate(), mip.ErrBadBounds)

	// 5) Constraint term referencing a missing variable.
	p = makeKnapsack()
	p.Cons[0].Terms[0].Var = 9
	require.ErrorIs(t, p.Validate(), mip.ErrVariableOutOfRange)

	// 6) Unknown constraint relation.
	p = makeKnapsack()
	p.Cons[0].Op = mip.Relation(42)
	require.ErrorIs(t, p.Validate(), mip.ErrBadRelation)
}

// TestBinaryVariables_Identification checks the tolerance-based detection:
// declared binaries always qualify; integers qualify only with bounds within
// the layer tolerance of 0 and 1.
func TestBinaryVariables_Identification(t *testing.T) {
	p := &mip.Problem{
		Sense: mip.Minimize,
		Vars: []mip.Variable{
			{Type: mip.Binary, Lower: 0, Upper: 1},              // plain binary
			{Type: mip.Integer, Lower: 0, Upper: 1},             // integer with 0/1 bounds
			{Type: mip.Integer, Lower: 0.000001, Upper: 1},      // bounds within tolerance
			{Type: mip.Integer, Lower: 0, Upper: 5},             // general integer
			{Type: mip.Continuous, Lower: 0, Upper: 1},          // continuous never qualifies
			{Type: mip.Integer, Lower: -1, Upper: 1},            // lower bound too far from 0
			{Type: mip.Integer, Lower: 0, Upper: 1.0 + 2e-5},    // upper bound beyond tolerance
			{Type: mip.Integer, Lower: 0.0000099, Upper: 1 - 1e-6}, // both bounds inside tolerance
		},
		Objective: []float64{0, 0, 0, 0, 0, 0, 0, 0},
	}

	// Indices 0, 1, 2, 7 qualify; everything else is excluded.
	require.Equal(t, []int{0, 1, 2, 7}, p.BinaryVariables())
}

// TestObjectiveValue computes a dot product over a known assignment.
func TestObjectiveValue(t *testing.T) {
	p := makeKnapsack()

	// a=1, b=0, c=1 -> 5 + 3 = 8.
	require.Equal(t, 8.0, p.ObjectiveValue([]float64{1, 0, 1}))
}

// TestFeasibleWithin exercises bounds, integrality, and constraint checks.
func TestFeasibleWithin(t *testing.T) {
	p := makeKnapsack()

	// a=1, c=1 keeps the capacity at 3 <= 4.
	require.True(t, p.FeasibleWithin([]float64{1, 0, 1}, mip.Threshold))

	// All three items overload the capacity (6 > 4).
	require.False(t, p.FeasibleWithin([]float64{1, 1, 1}, mip.Threshold))

	// Fractional binaries violate integrality.
	require.False(t, p.FeasibleWithin([]float64{0.5, 0, 0}, mip.Threshold))

	// Out-of-bounds value.
	require.False(t, p.FeasibleWithin([]float64{2, 0, 0}, mip.Threshold))

	// Wrong dimension is never feasible.
	require.False(t, p.FeasibleWithin([]float64{1, 0}, mip.Threshold))

	// Tiny drift inside the tolerance is accepted.
	require.True(t, p.FeasibleWithin([]float64{1.000001, 0, 0.999999}, mip.Threshold))
}

// TestSense_Comparisons pins the sense-aware comparison helpers.
func TestSense_Comparisons(t *testing.T) {
	// Strict comparison has no tolerance.
	require.True(t, mip.Minimize.Better(1, 2))
	require.False(t, mip.Minimize.Better(2, 1))
	require.True(t, mip.Maximize.Better(2, 1))
	require.False(t, mip.Maximize.Better(1, 2))

	// Improvement must exceed the tolerance.
	require.True(t, mip.Minimize.BetterBy(1, 2, mip.Threshold))
	require.False(t, mip.Minimize.BetterBy(2-mip.Threshold/2, 2, mip.Threshold))
	require.True(t, mip.Maximize.BetterBy(2, 1, mip.Threshold))
	require.False(t, mip.Maximize.BetterBy(1+mip.Threshold/2, 1, mip.Threshold))
}

// TestStatus_Finished pins which statuses count as conclusive ends: the
// neighborhood adaptation of the heuristics branches on this predicate.
func TestStatus_Finished(t *testing.T) {
	require.True(t, mip.StatusOptimal.Finished())
	require.True(t, mip.StatusInfeasible.Finished())
	require.False(t, mip.StatusFeasible.Finished())
	require.False(t, mip.StatusNodeLimit.Finished())
	require.False(t, mip.StatusTimeLimit.Finished())
	require.False(t, mip.StatusUnknown.Finished())
}

// TestParseSense covers round-trips and the rejection sentinel.
func TestParseSense(t *testing.T) {
	s, err := mip.ParseSense("minimize")
	require.NoError(t, err)
	require.Equal(t, mip.Minimize, s)

	s, err = mip.ParseSense("maximize")
	require.NoError(t, err)
	require.Equal(t, mip.Maximize, s)

	_, err = mip.ParseSense("fastest")
	require.ErrorIs(t, err, mip.ErrBadSense)
}
