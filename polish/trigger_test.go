package polish_test

import (
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/mipheur/mip"
	"github.com/katalvlaran/mipheur/polish"
	"github.com/stretchr/testify/require"
)

// countingHeuristic records invocations and replays a fixed error.
type countingHeuristic struct {
	runs   int
	budget polish.Budget
	err    error
}

func (h *countingHeuristic) Run(_ mip.Search, budget polish.Budget) error {
	h.runs++
	h.budget = budget
	return h.err
}

// TestTrigger_FiresOnMultiples walks the node counter 1..7 with frequency 3
// and expects exactly the passes at nodes 3 and 6.
func TestTrigger_FiresOnMultiples(t *testing.T) {
	h := &countingHeuristic{}
	hook := polish.NewTrigger(h, 3, polish.Budget{}).Hook()

	s := &fakeSearch{}
	for node := int64(1); node <= 7; node++ {
		s.nodes = node
		hook(s)
	}

	require.Equal(t, 2, h.runs)
}

// TestTrigger_DisabledByFrequency verifies frequency <= 0 never fires.
func TestTrigger_DisabledByFrequency(t *testing.T) {
	for _, freq := range []int64{0, -1} {
		h := &countingHeuristic{}
		hook := polish.NewTrigger(h, freq, polish.Budget{}).Hook()

		s := &fakeSearch{}
		for node := int64(1); node <= 10; node++ {
			s.nodes = node
			hook(s)
		}

		require.Zero(t, h.runs, "frequency %d", freq)
	}
}

// TestTrigger_NilHeuristicIsInert verifies a nil heuristic disables the hook
// without panicking.
func TestTrigger_NilHeuristicIsInert(t *testing.T) {
	hook := polish.NewTrigger(nil, 1, polish.Budget{}).Hook()

	s := &fakeSearch{nodes: 1}
	require.NotPanics(t, func() { hook(s) })
}

// TestTrigger_RecordsErrorAndKeepsFiring verifies pass errors are absorbed,
// recorded, and do not stop later passes.
func TestTrigger_RecordsErrorAndKeepsFiring(t *testing.T) {
	wantErr := errors.New("pass exploded")
	h := &countingHeuristic{err: wantErr}
	trig := polish.NewTrigger(h, 1, polish.Budget{})
	hook := trig.Hook()

	s := &fakeSearch{nodes: 1}
	hook(s)
	s.nodes = 2
	hook(s)

	require.Equal(t, 2, h.runs)
	require.ErrorIs(t, trig.LastErr(), wantErr)
}

// TestTrigger_PassesBudgetThrough verifies the budget handed to NewTrigger
// reaches every pass unchanged.
func TestTrigger_PassesBudgetThrough(t *testing.T) {
	deadline := time.Now().Add(time.Minute)
	h := &countingHeuristic{}
	hook := polish.NewTrigger(h, 1, polish.BudgetUntil(deadline)).Hook()

	hook(&fakeSearch{nodes: 1})

	require.Equal(t, 1, h.runs)
	require.True(t, h.budget.Deadline.Equal(deadline))
}
