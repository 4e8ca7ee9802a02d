// Package polish - periodic invocation glue between a search and a Heuristic.
package polish

import "github.com/katalvlaran/mipheur/mip"

// Trigger fires a Heuristic every frequency nodes of the outer search.
//
// Contracts:
//   - frequency <= 0 or a nil heuristic disables the trigger entirely.
//   - Heuristic errors never propagate into the search: the hook records the
//     most recent one (LastErr) and returns, so a failed polishing pass
//     cannot abort the run that hosts it.
//   - Single-goroutine: the search invokes the hook inline; Trigger holds no
//     locks.
type Trigger struct {
	heuristic Heuristic
	frequency int64
	budget    Budget
	lastErr   error
}

// NewTrigger wires h to fire on every node count divisible by frequency,
// passing budget through to each pass.
func NewTrigger(h Heuristic, frequency int64, budget Budget) *Trigger {
	return &Trigger{
		heuristic: h,
		frequency: frequency,
		budget:    budget,
	}
}

// Hook returns the callback to install on the search.
func (t *Trigger) Hook() mip.TriggerFunc {
	return func(s mip.Search) {
		if t.heuristic == nil || t.frequency <= 0 {
			return
		}
		if s.NodeCount()%t.frequency != 0 {
			return
		}
		if err := t.heuristic.Run(s, t.budget); err != nil {
			t.lastErr = err
		}
	}
}

// LastErr reports the most recent error a pass returned, or nil if every
// pass so far succeeded.
func (t *Trigger) LastErr() error {
	return t.lastErr
}
