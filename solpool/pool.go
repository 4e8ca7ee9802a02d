// Package solpool - the pool implementation.
//
// Design principles:
//   - One linear scan per insertion does both duplicate detection and
//     worst-entry tracking; no auxiliary index structures.
//   - Solutions are copied on accept; callers may reuse their buffers.
//   - Eviction overwrites the worst entry in place (buffer reuse, no churn).
//   - No logging, no panics on user input.
package solpool

import (
	"math"
	"sort"

	"github.com/katalvlaran/mipheur/mip"
)

// Pool is a bounded, deduplicated collection of feasible solutions.
// Not safe for concurrent use.
type Pool struct {
	sense   mip.Sense
	maxSize int
	sorted  bool

	// nextAge is assigned to the next accepted entry, then decremented.
	// Starting at the maximum uint64 makes smaller ages strictly newer.
	nextAge uint64

	// dim is pinned by the first accepted entry; 0 until then.
	dim int

	entries []Entry
}

// New creates an empty pool.
//
//   - sense: objective direction used for ranking and eviction decisions.
//   - maxSize: capacity; must be at least 1 (ErrBadPoolSize otherwise).
//   - sorted: when true, Entries is kept in ranked order after every accept.
func New(sense mip.Sense, maxSize int, sorted bool) (*Pool, error) {
	if maxSize < 1 {
		return nil, ErrBadPoolSize
	}

	return &Pool{
		sense:   sense,
		maxSize: maxSize,
		sorted:  sorted,
		nextAge: math.MaxUint64,
		entries: make([]Entry, 0, maxSize),
	}, nil
}

// AddEntry offers a solution to the pool and reports whether it was accepted.
//
// The decision procedure, in order:
//  1. Reject empty or wrong-dimension vectors.
//  2. Reject a near-duplicate: every coordinate within SimilarityThreshold
//     of some existing entry (the objective value plays no role here).
//  3. Accept by appending while the pool is below capacity.
//  4. At capacity, accept only if value is strictly better than the worst
//     entry's value under the pool sense; the worst entry is overwritten.
//
// On accept the solution is copied, stamped with the next age, and the pool
// is re-sorted when ranked order is enabled.
//
// Complexity: O(size·dim) for the scan, plus O(size·log size) when sorted.
func (p *Pool) AddEntry(solution []float64, value float64) bool {
	if len(solution) == 0 {
		return false
	}
	if p.dim != 0 && len(solution) != p.dim {
		return false
	}

	// Single pass: similarity rejection and worst tracking.
	var (
		worstIdx = 0                  // index of the worst entry seen so far
		worstVal = p.worstScanSeed()  // sentinel beaten by any real value
		i, j     int                  // scan indices
		similar  bool                 // candidate matches entry i
	)
	for i = 0; i < len(p.entries); i++ {
		similar = true
		for j = 0; j < len(solution); j++ {
			if math.Abs(solution[j]-p.entries[i].Solution[j]) > SimilarityThreshold {
				similar = false
				break
			}
		}
		if similar {
			return false
		}

		if p.worseThan(p.entries[i].Value, worstVal) {
			worstIdx = i
			worstVal = p.entries[i].Value
		}
	}

	// Insert: append below capacity, otherwise replace the worst if beaten.
	inserted := false
	if len(p.entries) < p.maxSize {
		buf := make([]float64, len(solution))
		copy(buf, solution)
		p.entries = append(p.entries, Entry{Solution: buf, Value: value, Age: p.nextAge})
		inserted = true
	} else if p.sense.Better(value, worstVal) {
		copy(p.entries[worstIdx].Solution, solution)
		p.entries[worstIdx].Value = value
		p.entries[worstIdx].Age = p.nextAge
		inserted = true
	}

	if inserted {
		if p.sorted {
			p.sortEntries()
		}
		p.nextAge--
		if p.dim == 0 {
			p.dim = len(solution)
		}
	}

	return inserted
}

// worstScanSeed returns a value any real objective beats in the "worse than"
// direction, seeding the worst-entry scan.
func (p *Pool) worstScanSeed() float64 {
	if p.sense == mip.Minimize {
		return -math.MaxFloat64
	}

	return math.MaxFloat64
}

// worseThan reports whether a is strictly worse than b under the pool sense.
func (p *Pool) worseThan(a, b float64) bool {
	return p.sense.Better(b, a)
}

// sortEntries establishes ranked order: best objective first; entries whose
// objectives are within SimilarityThreshold order by age ascending, i.e.
// most recent first.
func (p *Pool) sortEntries() {
	sort.Slice(p.entries, func(i, j int) bool {
		a, b := p.entries[i], p.entries[j]
		if math.Abs(a.Value-b.Value) < SimilarityThreshold {
			return a.Age < b.Age
		}

		return p.sense.Better(a.Value, b.Value)
	})
}

// Entries returns the pool contents as a live read-only view: ranked when
// the pool is sorted, insertion-order otherwise. The slice and the entry
// solutions are owned by the pool and valid until the next AddEntry.
func (p *Pool) Entries() []Entry { return p.entries }

// Size returns the current number of entries.
func (p *Pool) Size() int { return len(p.entries) }

// MaxSize returns the pool capacity.
func (p *Pool) MaxSize() int { return p.maxSize }

// Sense returns the objective direction the pool ranks by.
func (p *Pool) Sense() mip.Sense { return p.sense }

// Sorted reports whether ranked order is maintained.
func (p *Pool) Sorted() bool { return p.sorted }
