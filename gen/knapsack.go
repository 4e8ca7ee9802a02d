// Package gen - the multidimensional knapsack generator.
package gen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mipheur/mip"
)

// KnapsackOptions parameterize Knapsack.
type KnapsackOptions struct {
	// Items is the number of binary item variables. Must be >= 1.
	Items int

	// Constraints is the number of capacity rows. Must be >= 1.
	Constraints int

	// Tightness scales each capacity as a fraction of its row's total
	// weight, in (0,1]. Smaller values admit fewer items per row.
	Tightness float64

	// Seed drives generation. Zero selects the fixed default stream.
	Seed int64
}

// DefaultKnapsackOptions returns a 50-item, 5-row instance at tightness 0.5.
func DefaultKnapsackOptions() KnapsackOptions {
	return KnapsackOptions{
		Items:       50,
		Constraints: 5,
		Tightness:   0.5,
		Seed:        0,
	}
}

// Validate checks documented ranges, returning ErrBadSize or ErrBadFraction
// (wrapped with the offending field) on the first violation.
func (o KnapsackOptions) Validate() error {
	if o.Items < 1 {
		return fmt.Errorf("%w: Items=%d, want >= 1", ErrBadSize, o.Items)
	}
	if o.Constraints < 1 {
		return fmt.Errorf("%w: Constraints=%d, want >= 1", ErrBadSize, o.Constraints)
	}
	if o.Tightness <= 0 || o.Tightness > 1 {
		return fmt.Errorf("%w: Tightness=%g, want in (0,1]", ErrBadFraction, o.Tightness)
	}

	return nil
}

// Knapsack builds a maximization instance: binary item variables with
// integer profits in [10,100), and per-row integer weights in [1,50] whose
// capacity is Tightness times the row's weight sum (at least the row's
// largest weight, so every row admits at least one item).
//
// The returned problem passes mip.Problem.Validate.
func Knapsack(opts KnapsackOptions) (*mip.Problem, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	rng := rngFromSeed(opts.Seed)

	// 1) Variables and profits.
	vars := make([]mip.Variable, opts.Items)
	objective := make([]float64, opts.Items)
	var i int
	for i = 0; i < opts.Items; i++ {
		vars[i] = mip.Variable{
			Name:  fmt.Sprintf("x%d", i),
			Type:  mip.Binary,
			Lower: 0,
			Upper: 1,
		}
		objective[i] = float64(10 + rng.Intn(90))
	}

	// 2) Capacity rows.
	cons := make([]mip.Constraint, opts.Constraints)
	var (
		r      int
		w      float64
		sum    float64
		widest float64
		terms  []mip.Term
		rhs   float64
	)
	for r = 0; r < opts.Constraints; r++ {
		terms = make([]mip.Term, opts.Items)
		sum, widest = 0, 0
		for i = 0; i < opts.Items; i++ {
			w = float64(1 + rng.Intn(50))
			terms[i] = mip.Term{Var: i, Coef: w}
			sum += w
			if w > widest {
				widest = w
			}
		}
		rhs = math.Max(widest, math.Round(opts.Tightness*sum))
		cons[r] = mip.Constraint{
			Name:  fmt.Sprintf("cap%d", r),
			Terms: terms,
			Op:    mip.LE,
			RHS:   rhs,
		}
	}

	return &mip.Problem{
		Name:      fmt.Sprintf("knapsack-n%d-m%d-s%d", opts.Items, opts.Constraints, opts.Seed),
		Sense:     mip.Maximize,
		Vars:      vars,
		Objective: objective,
		Cons:      cons,
	}, nil
}
