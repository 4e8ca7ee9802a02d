// Package solpool - entry type, tolerances, and sentinel errors.
package solpool

import "errors"

// SimilarityThreshold is the per-coordinate tolerance for duplicate
// detection and for the objective tie-break in ranked order.
const SimilarityThreshold = 1e-5

// Sentinel errors returned by this package.
var (
	// ErrBadPoolSize indicates a pool capacity below 1.
	ErrBadPoolSize = errors.New("solpool: pool size must be at least 1")

	// ErrBadSnapshot indicates a snapshot stream that is not a pool snapshot
	// or is internally inconsistent.
	ErrBadSnapshot = errors.New("solpool: malformed pool snapshot")

	// ErrSnapshotVersion indicates a snapshot written by an incompatible version.
	ErrSnapshotVersion = errors.New("solpool: unsupported snapshot version")
)

// Entry is one pooled solution.
//
// Age encodes recency: the pool assigns ages from a decrementing counter,
// so a smaller Age means a more recently inserted solution.
type Entry struct {
	// Solution is the full assignment vector. Owned by the pool: callers
	// must not modify it.
	Solution []float64

	// Value is the objective value of Solution.
	Value float64

	// Age is the recency stamp (smaller = newer).
	Age uint64
}
