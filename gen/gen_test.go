// Package gen_test checks structural soundness and determinism of the
// generators, and cross-checks small instances against the bnb solver.
package gen_test

import (
	"testing"

	"github.com/katalvlaran/mipheur/bnb"
	"github.com/katalvlaran/mipheur/gen"
	"github.com/katalvlaran/mipheur/mip"
	"github.com/stretchr/testify/require"
)

func TestKnapsackOptions_Validate(t *testing.T) {
	o := gen.DefaultKnapsackOptions()
	require.NoError(t, o.Validate())

	o.Items = 0
	require.ErrorIs(t, o.Validate(), gen.ErrBadSize)

	o = gen.DefaultKnapsackOptions()
	o.Tightness = 0
	require.ErrorIs(t, o.Validate(), gen.ErrBadFraction)

	o.Tightness = 1.5
	require.ErrorIs(t, o.Validate(), gen.ErrBadFraction)
}

func TestKnapsack_Shape(t *testing.T) {
	opts := gen.KnapsackOptions{Items: 20, Constraints: 3, Tightness: 0.4, Seed: 7}
	p, err := gen.Knapsack(opts)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	require.Equal(t, mip.Maximize, p.Sense)
	require.Len(t, p.Vars, 20)
	require.Len(t, p.Cons, 3)
	require.Len(t, p.BinaryVariables(), 20)

	// Every row admits at least one item: capacity >= every single weight.
	for _, c := range p.Cons {
		require.Equal(t, mip.LE, c.Op)
		for _, term := range c.Terms {
			require.LessOrEqual(t, term.Coef, c.RHS)
		}
	}

	// The all-zero solution is always feasible for a knapsack.
	zero := make([]float64, 20)
	require.True(t, p.FeasibleWithin(zero, mip.Threshold))
}

func TestSetCover_ShapeAndFeasibility(t *testing.T) {
	opts := gen.SetCoverOptions{Rows: 12, Columns: 25, Density: 0.08, Seed: 3}
	p, err := gen.SetCover(opts)
	require.NoError(t, err)
	require.NoError(t, p.Validate())
	require.Equal(t, mip.Minimize, p.Sense)
	require.Len(t, p.Vars, 25)
	require.Len(t, p.Cons, 12)

	// Guaranteed coverage: every row has at least one member, so the
	// all-ones solution covers everything.
	ones := make([]float64, 25)
	for i := range ones {
		ones[i] = 1
	}
	require.True(t, p.FeasibleWithin(ones, mip.Threshold))
	for _, c := range p.Cons {
		require.NotEmpty(t, c.Terms)
		require.Equal(t, mip.GE, c.Op)
	}
}

func TestGenerators_DeterministicPerSeed(t *testing.T) {
	a, err := gen.Knapsack(gen.KnapsackOptions{Items: 15, Constraints: 2, Tightness: 0.5, Seed: 42})
	require.NoError(t, err)
	b, err := gen.Knapsack(gen.KnapsackOptions{Items: 15, Constraints: 2, Tightness: 0.5, Seed: 42})
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := gen.Knapsack(gen.KnapsackOptions{Items: 15, Constraints: 2, Tightness: 0.5, Seed: 43})
	require.NoError(t, err)
	require.NotEqual(t, a.Objective, c.Objective)

	// Zero seed is the fixed default stream, not time-based.
	d1, err := gen.SetCover(gen.SetCoverOptions{Rows: 5, Columns: 10, Density: 0.2, Seed: 0})
	require.NoError(t, err)
	d2, err := gen.SetCover(gen.SetCoverOptions{Rows: 5, Columns: 10, Density: 0.2, Seed: 0})
	require.NoError(t, err)
	require.Equal(t, d1, d2)
}

// TestGenerated_SolvableByReferenceSolver runs bnb to optimality on small
// generated instances of both kinds.
func TestGenerated_SolvableByReferenceSolver(t *testing.T) {
	knap, err := gen.Knapsack(gen.KnapsackOptions{Items: 12, Constraints: 2, Tightness: 0.5, Seed: 11})
	require.NoError(t, err)
	s, err := bnb.NewSolver(knap, bnb.DefaultOptions())
	require.NoError(t, err)
	res, err := s.Optimize(mip.Limits{})
	require.NoError(t, err)
	require.Equal(t, mip.StatusOptimal, res.Status)
	require.True(t, res.Found)
	require.True(t, knap.FeasibleWithin(res.Values, mip.Threshold))

	sc, err := gen.SetCover(gen.SetCoverOptions{Rows: 8, Columns: 12, Density: 0.2, Seed: 11})
	require.NoError(t, err)
	s, err = bnb.NewSolver(sc, bnb.DefaultOptions())
	require.NoError(t, err)
	res, err = s.Optimize(mip.Limits{})
	require.NoError(t, err)
	require.Equal(t, mip.StatusOptimal, res.Status)
	require.True(t, res.Found)
	require.True(t, sc.FeasibleWithin(res.Values, mip.Threshold))
}
