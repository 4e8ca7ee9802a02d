// Package gen - the set cover generator.
package gen

import (
	"fmt"

	"github.com/katalvlaran/mipheur/mip"
)

// SetCoverOptions parameterize SetCover.
type SetCoverOptions struct {
	// Rows is the number of elements to cover. Must be >= 1.
	Rows int

	// Columns is the number of candidate sets (binary variables). Must be >= 1.
	Columns int

	// Density is the probability that a given set covers a given element,
	// in (0,1]. Every row additionally gets one guaranteed covering set, so
	// the instance is always feasible.
	Density float64

	// Seed drives generation. Zero selects the fixed default stream.
	Seed int64
}

// DefaultSetCoverOptions returns a 30-row, 60-set instance at density 0.1.
func DefaultSetCoverOptions() SetCoverOptions {
	return SetCoverOptions{
		Rows:    30,
		Columns: 60,
		Density: 0.1,
		Seed:    0,
	}
}

// Validate checks documented ranges, returning ErrBadSize or ErrBadFraction
// (wrapped with the offending field) on the first violation.
func (o SetCoverOptions) Validate() error {
	if o.Rows < 1 {
		return fmt.Errorf("%w: Rows=%d, want >= 1", ErrBadSize, o.Rows)
	}
	if o.Columns < 1 {
		return fmt.Errorf("%w: Columns=%d, want >= 1", ErrBadSize, o.Columns)
	}
	if o.Density <= 0 || o.Density > 1 {
		return fmt.Errorf("%w: Density=%g, want in (0,1]", ErrBadFraction, o.Density)
	}

	return nil
}

// SetCover builds a minimization instance: binary set variables with integer
// costs in [1,100), one >= 1 coverage constraint per row over the sets that
// contain it. Membership is drawn at Density per (row, set) pair; a
// uniformly chosen set is forced into every row, so feasibility is
// guaranteed regardless of density.
//
// The returned problem passes mip.Problem.Validate.
func SetCover(opts SetCoverOptions) (*mip.Problem, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	rng := rngFromSeed(opts.Seed)

	// 1) Variables and costs.
	vars := make([]mip.Variable, opts.Columns)
	objective := make([]float64, opts.Columns)
	var j int
	for j = 0; j < opts.Columns; j++ {
		vars[j] = mip.Variable{
			Name:  fmt.Sprintf("s%d", j),
			Type:  mip.Binary,
			Lower: 0,
			Upper: 1,
		}
		objective[j] = float64(1 + rng.Intn(99))
	}

	// 2) Coverage rows. covers is reused per row as a membership mask.
	cons := make([]mip.Constraint, opts.Rows)
	covers := make([]bool, opts.Columns)
	var (
		r     int
		terms []mip.Term
	)
	for r = 0; r < opts.Rows; r++ {
		for j = 0; j < opts.Columns; j++ {
			covers[j] = rng.Float64() < opts.Density
		}
		covers[rng.Intn(opts.Columns)] = true // guaranteed coverage

		terms = terms[:0]
		for j = 0; j < opts.Columns; j++ {
			if covers[j] {
				terms = append(terms, mip.Term{Var: j, Coef: 1})
			}
		}
		cons[r] = mip.Constraint{
			Name:  fmt.Sprintf("cover%d", r),
			Terms: append([]mip.Term(nil), terms...),
			Op:    mip.GE,
			RHS:   1,
		}
	}

	return &mip.Problem{
		Name:      fmt.Sprintf("setcover-r%d-c%d-s%d", opts.Rows, opts.Columns, opts.Seed),
		Sense:     mip.Minimize,
		Vars:      vars,
		Objective: objective,
		Cons:      cons,
	}, nil
}
