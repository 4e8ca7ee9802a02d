// Package solpool implements a bounded, deduplicated pool of feasible MIP
// solutions ranked by objective quality and recency.
//
// The pool is the shared memory of the heuristic layer: the outer search
// feeds every accepted incumbent into it, and the improvement heuristics
// draw seed solutions from it to build sub-problems.
//
// Behavior:
//
//   - Near-duplicate rejection: a candidate whose every coordinate lies
//     within SimilarityThreshold of an existing entry is rejected outright,
//     regardless of its objective value.
//
//   - Bounded eviction: when full, a candidate is accepted only if strictly
//     better than the current worst entry, which it overwrites in place.
//     No tolerance applies to this comparison.
//
//   - Recency ages: an internal counter starts at the maximum uint64 and
//     decrements once per accepted insertion, so a smaller age always means
//     a more recent solution and ties cannot occur.
//
//   - Ranked order: a sorted pool keeps entries ordered by objective (best
//     first under the pool's sense); entries whose objectives differ by less
//     than SimilarityThreshold are ordered most recent first.
//
// Entries returned by Entries are a live read-only view: heuristics index it
// directly on hot paths, and it is valid until the next AddEntry.
//
// The pool does no locking: the search loop, the pool, and the heuristics
// all run on the solver's callback goroutine by design.
//
// Snapshots (snapshot.go) persist a pool to a zstd-compressed gob stream so
// a later run can resume with a warm pool.
package solpool
