// Package mip - the linear MIP model and its inspection helpers.
//
// The model is deliberately plain: dense objective, sparse constraints,
// per-variable bounds. The heuristic layer reads it but never writes it;
// bound overrides live in SubMIP workspaces (see submip.go).
//
// Design principles:
//   - Validation is explicit and strict; algorithms may assume a validated
//     problem and skip per-access guards on hot paths.
//   - All inspection helpers are side-effect free and allocation-conscious.
package mip

import "math"

// Variable is a single decision variable with inclusive bounds.
type Variable struct {
	// Name is used in solution files and printouts. May be empty; writers
	// fall back to an index-derived name.
	Name string

	// Type declares the variable domain (continuous, integer, binary).
	Type VarType

	// Lower and Upper are the inclusive bounds. For Binary variables the
	// conventional bounds are 0 and 1, but they are not forced: binary
	// identification is tolerance-based (see BinaryVariables).
	Lower float64
	Upper float64
}

// Term is one coefficient of a sparse linear expression.
type Term struct {
	Var  int     // variable index
	Coef float64 // coefficient
}

// Constraint is a sparse linear constraint: sum(Terms) Op RHS.
type Constraint struct {
	Name  string
	Terms []Term
	Op    Relation
	RHS   float64
}

// Problem is a linear mixed-integer program.
//
// Invariants after a successful Validate:
//   - len(Objective) == len(Vars) and every coefficient is finite.
//   - Every variable has finite Lower ≤ Upper.
//   - Every constraint term references a valid variable with a finite
//     coefficient, and the relation is one of LE/GE/EQ.
type Problem struct {
	Name      string
	Sense     Sense
	Vars      []Variable
	Objective []float64
	Cons      []Constraint
}

// NumVars returns the number of decision variables.
func (p *Problem) NumVars() int { return len(p.Vars) }

// Validate checks the structural invariants listed on Problem.
//
// Errors: ErrNilProblem, ErrNoVariables, ErrDimensionMismatch, ErrBadBounds,
// ErrBadCoefficient, ErrVariableOutOfRange, ErrBadRelation, ErrBadSense.
//
// Complexity: O(V + T) where T is the total number of constraint terms.
func (p *Problem) Validate() error {
	if p == nil {
		return ErrNilProblem
	}
	if len(p.Vars) == 0 {
		return ErrNoVariables
	}
	if len(p.Objective) != len(p.Vars) {
		return ErrDimensionMismatch
	}
	if p.Sense != Minimize && p.Sense != Maximize {
		return ErrBadSense
	}

	// Stage 1 - variables: finite bounds, lower ≤ upper.
	var (
		i int      // loop index
		v Variable // variable under inspection
	)
	for i = 0; i < len(p.Vars); i++ {
		v = p.Vars[i]
		if math.IsNaN(v.Lower) || math.IsNaN(v.Upper) ||
			math.IsInf(v.Lower, 0) || math.IsInf(v.Upper, 0) {
			return ErrBadBounds
		}
		if v.Lower > v.Upper {
			return ErrBadBounds
		}
	}

	// Stage 2 - objective coefficients must be finite.
	var c float64
	for i = 0; i < len(p.Objective); i++ {
		c = p.Objective[i]
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrBadCoefficient
		}
	}

	// Stage 3 - constraints: valid indices, finite coefficients, known relation.
	var (
		ci int  // constraint index
		t  Term // term under inspection
	)
	for ci = 0; ci < len(p.Cons); ci++ {
		switch p.Cons[ci].Op {
		case LE, GE, EQ:
			// ok
		default:
			return ErrBadRelation
		}
		if math.IsNaN(p.Cons[ci].RHS) || math.IsInf(p.Cons[ci].RHS, 0) {
			return ErrBadCoefficient
		}
		for _, t = range p.Cons[ci].Terms {
			if t.Var < 0 || t.Var >= len(p.Vars) {
				return ErrVariableOutOfRange
			}
			if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
				return ErrBadCoefficient
			}
		}
	}

	return nil
}

// BinaryVariables returns the indices of variables treated as binary by the
// heuristic layer: declared Binary, or declared Integer with a lower bound
// within Threshold of 0 and an upper bound within Threshold of 1.
//
// The returned slice is freshly allocated; callers may reorder it freely.
//
// Complexity: O(V).
func (p *Problem) BinaryVariables() []int {
	out := make([]int, 0, len(p.Vars))

	var i int
	for i = 0; i < len(p.Vars); i++ {
		if p.Vars[i].Type == Binary ||
			(p.Vars[i].Type == Integer &&
				math.Abs(p.Vars[i].Lower) < Threshold &&
				math.Abs(p.Vars[i].Upper-1.0) < Threshold) {
			out = append(out, i)
		}
	}

	return out
}

// ObjectiveValue computes the objective of a complete assignment.
// The caller guarantees len(values) == NumVars().
//
// Complexity: O(V).
func (p *Problem) ObjectiveValue(values []float64) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i < len(p.Objective); i++ {
		sum += p.Objective[i] * values[i]
	}

	return sum
}

// FeasibleWithin reports whether values is a feasible assignment within
// tolerance tol: inside bounds, integral where the type demands it, and
// satisfying every constraint up to tol.
//
// Contract: len(values) == NumVars(); otherwise the result is false.
//
// Complexity: O(V + T).
func (p *Problem) FeasibleWithin(values []float64, tol float64) bool {
	if len(values) != len(p.Vars) {
		return false
	}

	// Bounds and integrality.
	var (
		i int     // variable index
		x float64 // value under inspection
	)
	for i = 0; i < len(p.Vars); i++ {
		x = values[i]
		if math.IsNaN(x) {
			return false
		}
		if x < p.Vars[i].Lower-tol || x > p.Vars[i].Upper+tol {
			return false
		}
		if p.Vars[i].Type.Integral() && math.Abs(x-math.Round(x)) > tol {
			return false
		}
	}

	// Constraints.
	var (
		ci  int     // constraint index
		lhs float64 // accumulated left-hand side
		t   Term
	)
	for ci = 0; ci < len(p.Cons); ci++ {
		lhs = 0
		for _, t = range p.Cons[ci].Terms {
			lhs += t.Coef * values[t.Var]
		}
		switch p.Cons[ci].Op {
		case LE:
			if lhs > p.Cons[ci].RHS+tol {
				return false
			}
		case GE:
			if lhs < p.Cons[ci].RHS-tol {
				return false
			}
		case EQ:
			if math.Abs(lhs-p.Cons[ci].RHS) > tol {
				return false
			}
		}
	}

	return true
}

// withBounds returns a derived problem sharing everything with p except the
// variable bounds, which are replaced by lower/upper. Objective, constraints,
// names, and types are shared; the derived problem must be treated as
// read-only by solvers.
//
// Complexity: O(V) time and space (the Vars slice is rebuilt).
func (p *Problem) withBounds(lower, upper []float64) *Problem {
	vars := make([]Variable, len(p.Vars))
	copy(vars, p.Vars)

	var i int
	for i = 0; i < len(vars); i++ {
		vars[i].Lower = lower[i]
		vars[i].Upper = upper[i]
	}

	return &Problem{
		Name:      p.Name,
		Sense:     p.Sense,
		Vars:      vars,
		Objective: p.Objective,
		Cons:      p.Cons,
	}
}
