// Package solpool_test exercises the pool through its public API.
// Focus: duplicate rejection, bounded eviction, ranked order, recency ages,
// and the strictness of the eviction comparison.
package solpool_test

import (
	"testing"

	"github.com/katalvlaran/mipheur/mip"
	"github.com/katalvlaran/mipheur/solpool"
)

// -----------------------------------------------------------------------------
// Helpers (minimal, stdlib-only)
// -----------------------------------------------------------------------------

// mustPool builds a pool or stops the test.
func mustPool(t *testing.T, sense mip.Sense, maxSize int, sorted bool) *solpool.Pool {
	t.Helper()
	p, err := solpool.New(sense, maxSize, sorted)
	if err != nil {
		t.Fatalf("New(%v, %d, %v) error: %v", sense, maxSize, sorted, err)
	}

	return p
}

// values extracts the objective values in pool order.
func values(p *solpool.Pool) []float64 {
	out := make([]float64, 0, p.Size())
	for _, e := range p.Entries() {
		out = append(out, e.Value)
	}

	return out
}

// -----------------------------------------------------------------------------
// 1) Construction guards.
// -----------------------------------------------------------------------------

func TestNew_RejectsBadSize(t *testing.T) {
	if _, err := solpool.New(mip.Minimize, 0, true); err != solpool.ErrBadPoolSize {
		t.Fatalf("want ErrBadPoolSize, got %v", err)
	}
	if _, err := solpool.New(mip.Minimize, -3, false); err != solpool.ErrBadPoolSize {
		t.Fatalf("want ErrBadPoolSize, got %v", err)
	}
}

// -----------------------------------------------------------------------------
// 2) Duplicate rejection: coordinate-wise similarity wins over value.
// -----------------------------------------------------------------------------

func TestAddEntry_RejectsNearDuplicate(t *testing.T) {
	p := mustPool(t, mip.Minimize, 4, true)

	if !p.AddEntry([]float64{0, 1, 0, 1}, 10) {
		t.Fatalf("first insert rejected")
	}

	// Identical vector, even with a much better value, is a duplicate.
	if p.AddEntry([]float64{0, 1, 0, 1}, 1) {
		t.Fatalf("exact duplicate accepted")
	}

	// Every coordinate within the similarity tolerance: still a duplicate.
	if p.AddEntry([]float64{0.000001, 0.999999, 0.000001, 1}, 1) {
		t.Fatalf("near-duplicate accepted")
	}

	// One coordinate beyond the tolerance: distinct solution.
	if !p.AddEntry([]float64{0, 1, 1, 1}, 12) {
		t.Fatalf("distinct solution rejected")
	}

	if p.Size() != 2 {
		t.Fatalf("want size 2, got %d", p.Size())
	}
}

// -----------------------------------------------------------------------------
// 3) Bounded eviction: strictly better than worst replaces exactly the worst.
// -----------------------------------------------------------------------------

func TestAddEntry_EvictsWorstWhenFull(t *testing.T) {
	p := mustPool(t, mip.Minimize, 2, true)

	// Fill with A (10) and B (5).
	if !p.AddEntry([]float64{1, 1, 1, 1}, 10) { // A
		t.Fatalf("A rejected")
	}
	if !p.AddEntry([]float64{0, 0, 0, 0}, 5) { // B
		t.Fatalf("B rejected")
	}

	// C (7) beats the worst (A at 10): accepted, A evicted.
	if !p.AddEntry([]float64{1, 0, 1, 0}, 7) { // C
		t.Fatalf("C rejected")
	}

	// The pool now holds exactly B and C, ranked best-first.
	got := values(p)
	if len(got) != 2 || got[0] != 5 || got[1] != 7 {
		t.Fatalf("want [5 7], got %v", got)
	}

	// A duplicate of B is still rejected at capacity.
	if p.AddEntry([]float64{0, 0, 0, 0}, 5) {
		t.Fatalf("duplicate of B accepted")
	}

	// Worse than the current worst (7): rejected.
	if p.AddEntry([]float64{0, 1, 0, 1}, 9) {
		t.Fatalf("worse-than-worst candidate accepted")
	}
}

func TestAddEntry_EvictionIsStrict(t *testing.T) {
	p := mustPool(t, mip.Minimize, 1, true)

	if !p.AddEntry([]float64{0, 0, 1}, 7) {
		t.Fatalf("seed insert rejected")
	}

	// Equal to the worst: rejected (no tolerance in the eviction test).
	if p.AddEntry([]float64{1, 1, 0}, 7) {
		t.Fatalf("equal-value candidate accepted")
	}

	// Better by a margin far below the layer tolerance: still accepted,
	// because eviction compares strictly with no epsilon.
	if !p.AddEntry([]float64{1, 1, 0}, 7-1e-9) {
		t.Fatalf("strictly better candidate rejected")
	}
}

func TestAddEntry_EvictionMaximize(t *testing.T) {
	p := mustPool(t, mip.Maximize, 2, true)

	p.AddEntry([]float64{0, 0, 0}, 3) // worst under maximize
	p.AddEntry([]float64{1, 1, 1}, 9)

	// 5 beats the worst (3) under maximize.
	if !p.AddEntry([]float64{1, 0, 1}, 5) {
		t.Fatalf("improving candidate rejected")
	}

	got := values(p)
	if len(got) != 2 || got[0] != 9 || got[1] != 5 {
		t.Fatalf("want [9 5], got %v", got)
	}
}

// -----------------------------------------------------------------------------
// 4) Ranked order and recency tie-break.
// -----------------------------------------------------------------------------

func TestSortedOrder_BestFirstPerSense(t *testing.T) {
	pMin := mustPool(t, mip.Minimize, 5, true)
	pMin.AddEntry([]float64{1, 0, 0}, 8)
	pMin.AddEntry([]float64{0, 1, 0}, 3)
	pMin.AddEntry([]float64{0, 0, 1}, 5)

	if got := values(pMin); got[0] != 3 || got[1] != 5 || got[2] != 8 {
		t.Fatalf("minimize ranking wrong: %v", got)
	}

	pMax := mustPool(t, mip.Maximize, 5, true)
	pMax.AddEntry([]float64{1, 0, 0}, 8)
	pMax.AddEntry([]float64{0, 1, 0}, 3)
	pMax.AddEntry([]float64{0, 0, 1}, 5)

	if got := values(pMax); got[0] != 8 || got[1] != 5 || got[2] != 3 {
		t.Fatalf("maximize ranking wrong: %v", got)
	}
}

func TestSortedOrder_RecencyBreaksNearTies(t *testing.T) {
	p := mustPool(t, mip.Minimize, 4, true)

	// Three solutions whose objectives differ by less than the tolerance:
	// ranked order must list the most recent first.
	p.AddEntry([]float64{0, 0, 0}, 5)
	p.AddEntry([]float64{1, 0, 0}, 5+1e-6)
	p.AddEntry([]float64{0, 1, 0}, 5-1e-6)

	entries := p.Entries()
	if len(entries) != 3 {
		t.Fatalf("want 3 entries, got %d", len(entries))
	}
	// Ages decrease per insert, so "most recent first" is ascending age.
	if !(entries[0].Age < entries[1].Age && entries[1].Age < entries[2].Age) {
		t.Fatalf("recency order violated: ages %d, %d, %d",
			entries[0].Age, entries[1].Age, entries[2].Age)
	}
	// The newest of the three is the last inserted vector.
	if entries[0].Solution[1] != 1 {
		t.Fatalf("most recent entry not first: %v", entries[0].Solution)
	}
}

func TestUnsortedPool_KeepsInsertionOrder(t *testing.T) {
	p := mustPool(t, mip.Minimize, 4, false)

	p.AddEntry([]float64{1, 0}, 9)
	p.AddEntry([]float64{0, 1}, 2)

	if got := values(p); got[0] != 9 || got[1] != 2 {
		t.Fatalf("insertion order not preserved: %v", got)
	}
}

// -----------------------------------------------------------------------------
// 5) Ages: strictly decreasing over accepted inserts, including evictions.
// -----------------------------------------------------------------------------

func TestAges_StrictlyDecreasing(t *testing.T) {
	p := mustPool(t, mip.Minimize, 2, false)

	p.AddEntry([]float64{0, 0}, 10)
	p.AddEntry([]float64{1, 1}, 20)
	p.AddEntry([]float64{1, 0}, 15) // evicts the 20 entry

	seen := make(map[uint64]bool)
	var minAge uint64
	first := true
	for _, e := range p.Entries() {
		if seen[e.Age] {
			t.Fatalf("duplicate age %d", e.Age)
		}
		seen[e.Age] = true
		if first || e.Age < minAge {
			minAge = e.Age
			first = false
		}
	}

	// Three accepts happened, so the newest live age is the initial age
	// minus two. A rejected insert must not consume an age.
	p.AddEntry([]float64{0, 0}, 1) // duplicate: rejected
	p.AddEntry([]float64{0, 1}, 1) // accepted
	var newest uint64
	first = true
	for _, e := range p.Entries() {
		if first || e.Age < newest {
			newest = e.Age
			first = false
		}
	}
	if newest != minAge-1 {
		t.Fatalf("rejected insert consumed an age: newest %d, want %d", newest, minAge-1)
	}
}

// -----------------------------------------------------------------------------
// 6) Dimension discipline.
// -----------------------------------------------------------------------------

func TestAddEntry_DimensionPinned(t *testing.T) {
	p := mustPool(t, mip.Minimize, 4, true)

	if p.AddEntry(nil, 1) {
		t.Fatalf("empty vector accepted")
	}
	if !p.AddEntry([]float64{0, 1, 0}, 4) {
		t.Fatalf("first insert rejected")
	}
	if p.AddEntry([]float64{0, 1}, 3) {
		t.Fatalf("wrong-dimension vector accepted")
	}
}

// -----------------------------------------------------------------------------
// 7) Copy-on-insert: the caller may reuse its buffer.
// -----------------------------------------------------------------------------

func TestAddEntry_CopiesSolution(t *testing.T) {
	p := mustPool(t, mip.Minimize, 4, true)

	buf := []float64{0, 1, 0}
	p.AddEntry(buf, 5)

	// Mutating the caller's buffer must not affect the pooled entry.
	buf[0] = 1
	if p.Entries()[0].Solution[0] != 0 {
		t.Fatalf("pool aliases the caller buffer")
	}
}
