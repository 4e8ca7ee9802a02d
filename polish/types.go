// Package polish - strategy enumeration, heuristic contract, sentinel errors.
package polish

import (
	"errors"

	"github.com/katalvlaran/mipheur/mip"
)

// Sentinel errors returned by constructors and option validation.
// Callers should match them with errors.Is; they may arrive wrapped with
// additional context.
var (
	// ErrNilProblem - a constructor received a nil problem.
	ErrNilProblem = errors.New("polish: problem must not be nil")

	// ErrNilPool - a constructor received a nil solution pool.
	ErrNilPool = errors.New("polish: pool must not be nil")

	// ErrNilSolver - a constructor received a nil sub-problem solver.
	ErrNilSolver = errors.New("polish: solver must not be nil")

	// ErrBadOption - an option value lies outside its documented range.
	ErrBadOption = errors.New("polish: invalid option")

	// ErrUnknownStrategy - ParseStrategy received an unrecognized name.
	ErrUnknownStrategy = errors.New("polish: unknown strategy")
)

// Strategy identifies which polishing heuristic a run attaches to the search.
// The set is closed: dispatch switches over these values and treats anything
// else as a configuration error.
type Strategy int

const (
	// StrategyNone disables polishing entirely.
	StrategyNone Strategy = iota

	// StrategyRothberg selects mutation/recombination polishing (Rothberg).
	StrategyRothberg

	// StrategyMaravilha selects adaptive biased-sampling polishing (Maravilha).
	StrategyMaravilha
)

// String returns the canonical lower-case name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyRothberg:
		return "rothberg"
	case StrategyMaravilha:
		return "maravilha"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a canonical name ("none", "rothberg", "maravilha") to
// its Strategy value. Unrecognized names return ErrUnknownStrategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "none":
		return StrategyNone, nil
	case "rothberg":
		return StrategyRothberg, nil
	case "maravilha":
		return StrategyMaravilha, nil
	default:
		return StrategyNone, ErrUnknownStrategy
	}
}

// Heuristic is a polishing pass invoked from inside a running search.
//
// Run performs one pass against the live search s: it may read the incumbent
// and relaxation, solve restricted sub-problems within budget, feed the
// shared pool, and suggest an improved solution back via s.Suggest. A nil
// error means the pass completed (finding nothing is not an error).
// Implementations must not retain s beyond the call and must be
// deterministic for a fixed seed and identical solver replies.
type Heuristic interface {
	Run(s mip.Search, budget Budget) error
}
