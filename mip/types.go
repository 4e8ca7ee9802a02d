// Package mip - enums, tolerances, and sentinel errors shared by the layer.
//
// Design principles:
//   - Closed enums with explicit String() forms (stable for logs and CSV).
//   - Strict sentinels: callers match with errors.Is; no wrapped dynamic text.
//   - Sense carries the comparison logic so call sites never branch on it.
package mip

import "errors"

// Threshold is the numeric tolerance shared by the whole heuristic layer.
// It governs improvement tests (better by more than Threshold), binary
// variable identification (bounds within Threshold of 0 and 1), and value
// agreement between two solutions (difference below Threshold).
const Threshold = 1e-5

// Sentinel errors returned by this package.
var (
	// ErrNilProblem indicates that a nil *Problem was passed.
	ErrNilProblem = errors.New("mip: problem is nil")

	// ErrNoVariables indicates a problem with an empty variable set.
	ErrNoVariables = errors.New("mip: problem has no variables")

	// ErrDimensionMismatch indicates that a vector length does not match the
	// number of variables of the problem it is paired with.
	ErrDimensionMismatch = errors.New("mip: dimension mismatch")

	// ErrVariableOutOfRange indicates a variable index outside [0, NumVars).
	ErrVariableOutOfRange = errors.New("mip: variable index out of range")

	// ErrBadBounds indicates a lower bound above the upper bound, or a
	// non-finite bound where a finite one is required.
	ErrBadBounds = errors.New("mip: invalid variable bounds")

	// ErrBadCoefficient indicates a NaN or infinite coefficient in the
	// objective or a constraint.
	ErrBadCoefficient = errors.New("mip: coefficient is not finite")

	// ErrBadRelation indicates an unknown constraint relation.
	ErrBadRelation = errors.New("mip: unknown constraint relation")

	// ErrBadSense indicates an unknown objective sense.
	ErrBadSense = errors.New("mip: unknown objective sense")

	// ErrNilSolver indicates that a nil SubSolver was supplied where one is required.
	ErrNilSolver = errors.New("mip: solver is nil")

	// ErrBadSolutionFile indicates a malformed solution file.
	ErrBadSolutionFile = errors.New("mip: malformed solution file")
)

// Sense is the optimization direction of a problem.
type Sense int

const (
	// Minimize - smaller objective values are better.
	Minimize Sense = iota

	// Maximize - larger objective values are better.
	Maximize
)

// String returns the lowercase name used in configuration and output.
func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// ParseSense maps "minimize"/"maximize" to a Sense. Unknown strings yield ErrBadSense.
func ParseSense(text string) (Sense, error) {
	switch text {
	case "minimize":
		return Minimize, nil
	case "maximize":
		return Maximize, nil
	default:
		return Minimize, ErrBadSense
	}
}

// Better reports whether objective value a is strictly better than b under s.
// No tolerance is applied; use BetterBy for improvement tests.
func (s Sense) Better(a, b float64) bool {
	if s == Maximize {
		return a > b
	}

	return a < b
}

// BetterBy reports whether a improves on b by more than tol under s.
// This is the improvement test used throughout the heuristic layer:
// minimize ⇒ a < b-tol; maximize ⇒ a > b+tol.
func (s Sense) BetterBy(a, b, tol float64) bool {
	if s == Maximize {
		return a > b+tol
	}

	return a < b-tol
}

// VarType is the declared domain of a decision variable.
type VarType int

const (
	// Continuous variables take any value within their bounds.
	Continuous VarType = iota

	// Integer variables take integral values within their bounds.
	Integer

	// Binary variables take values in {0, 1}.
	Binary
)

// String returns a short stable name for the variable type.
func (t VarType) String() string {
	switch t {
	case Integer:
		return "integer"
	case Binary:
		return "binary"
	default:
		return "continuous"
	}
}

// Integral reports whether the type requires integral values.
func (t VarType) Integral() bool { return t == Integer || t == Binary }

// Relation is the comparison operator of a linear constraint.
type Relation int

const (
	// LE - left-hand side ≤ right-hand side.
	LE Relation = iota

	// GE - left-hand side ≥ right-hand side.
	GE

	// EQ - left-hand side = right-hand side.
	EQ
)

// String returns the operator in conventional notation.
func (r Relation) String() string {
	switch r {
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "<="
	}
}

// Status describes how a solve attempt ended.
type Status int

const (
	// StatusUnknown - the solve produced no classification (e.g. never ran).
	StatusUnknown Status = iota

	// StatusOptimal - the search space was exhausted with an incumbent;
	// the incumbent is optimal.
	StatusOptimal

	// StatusFeasible - a solution exists but the search ended without proof
	// of optimality and without hitting a declared limit.
	StatusFeasible

	// StatusInfeasible - the search space was exhausted with no solution.
	StatusInfeasible

	// StatusNodeLimit - the search stopped on a node budget (total nodes or
	// nodes without incumbent improvement).
	StatusNodeLimit

	// StatusTimeLimit - the search stopped on its deadline.
	StatusTimeLimit
)

// String returns the status name used in printouts and CSV rows.
func (st Status) String() string {
	switch st {
	case StatusOptimal:
		return "Optimal"
	case StatusFeasible:
		return "Feasible"
	case StatusInfeasible:
		return "Infeasible"
	case StatusNodeLimit:
		return "NodeLimit"
	case StatusTimeLimit:
		return "TimeLimit"
	default:
		return "Unknown"
	}
}

// Finished reports whether the solve ran to a conclusive end (Optimal or
// Infeasible) rather than being interrupted by a limit. The neighborhood
// adaptation rules of the heuristics branch on exactly this predicate:
// a finished sub-solve without improvement means the neighborhood was too
// small, an interrupted one means it was too large.
func (st Status) Finished() bool {
	return st == StatusOptimal || st == StatusInfeasible
}
