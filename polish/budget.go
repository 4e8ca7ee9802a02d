// Package polish - the wall-clock budget shared by a polishing pass.
package polish

import (
	"math"
	"time"

	"github.com/katalvlaran/mipheur/mip"
)

// Budget carries the single deadline every sub-solve of a polishing pass must
// respect. One pass may issue dozens of sub-solves; they all share this
// deadline rather than receiving per-call slices, so a slow sub-solve eats
// into the time of the remaining ones.
//
// The zero value is an unlimited budget.
type Budget struct {
	// Deadline is the instant the pass must stop issuing work.
	// Zero means unlimited.
	Deadline time.Time
}

// NewBudget returns a budget expiring limit from now.
// Non-positive limits yield an unlimited budget.
func NewBudget(limit time.Duration) Budget {
	if limit <= 0 {
		return Budget{}
	}
	return Budget{Deadline: time.Now().Add(limit)}
}

// BudgetUntil returns a budget expiring at deadline.
// A zero deadline means unlimited.
func BudgetUntil(deadline time.Time) Budget {
	return Budget{Deadline: deadline}
}

// Exceeded reports whether the deadline has passed. Heuristics check it
// before building each sub-problem and stop early when it trips.
func (b Budget) Exceeded() bool {
	if b.Deadline.IsZero() {
		return false
	}
	return !time.Now().Before(b.Deadline)
}

// Remaining reports the time left until the deadline. An unlimited budget
// reports the maximum representable duration.
func (b Budget) Remaining() time.Duration {
	if b.Deadline.IsZero() {
		return time.Duration(math.MaxInt64)
	}
	return time.Until(b.Deadline)
}

// SubLimits stamps the shared deadline into per-call solver limits.
// maxNodes and unsuccessful follow the mip.Limits convention: zero disables
// the respective cap.
func (b Budget) SubLimits(maxNodes, unsuccessful int64) mip.Limits {
	return mip.Limits{
		MaxNodes:          maxNodes,
		UnsuccessfulNodes: unsuccessful,
		Deadline:          b.Deadline,
	}
}
