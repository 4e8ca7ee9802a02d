// Package polish - solution-polishing heuristics for mixed-integer programs.
//
// The package improves feasible solutions found by an exact solver without
// replacing the solver itself. It plugs into a running search through two
// narrow seams: the mip.Search view (incumbent, node relaxation, node count,
// Suggest) and the mip.SubSolver contract used to optimize restricted copies
// of the problem. Candidate solutions are archived in a solpool.Pool shared
// between the search and the heuristics.
//
// What's inside:
//   - Strategy: a closed enumeration of the available heuristics
//     (StrategyNone, StrategyRothberg, StrategyMaravilha) with ParseStrategy.
//   - Heuristic: the single-method contract a polishing pass implements.
//   - Trigger: periodic invocation glue; fires a Heuristic every N nodes of
//     the outer search and absorbs its errors so a failed pass never aborts
//     the search.
//   - Budget: a shared wall-clock deadline stamped into every sub-solve.
//   - Rothberg: mutation/recombination polishing over the solution pool with
//     an adaptive fixing fraction.
//   - Maravilha: biased-sampling polishing that frees the binary variables
//     most in disagreement between incumbent, pool entry, and relaxation,
//     with an adaptive sub-problem size band.
//
// Design principles:
//   - Determinism: all randomness flows from a caller-provided seed; the same
//     seed, pool state, and solver replies reproduce the same sub-problems.
//   - Explicit adaptive state: fixing fraction, offsets, and size bands live
//     on the heuristic instance and persist across Run calls; nothing hides
//     in globals.
//   - No panics on user input, no logging - only sentinel errors from
//     types.go, optionally wrapped with context.
//   - Single-goroutine contract: a Heuristic instance must not be shared
//     across goroutines; the outer search invokes it inline.
//
// Errors:
//   - ErrNilProblem, ErrNilPool, ErrNilSolver - missing collaborators.
//   - ErrBadOption - an option outside its documented range.
//   - ErrUnknownStrategy - ParseStrategy received an unrecognized name.
//
// Complexity: one Run call performs at most Mutations+Recombinations
// (Rothberg) or Iterations (Maravilha) sub-solves; everything around the
// sub-solves is O(pool size × variables) per iteration.
package polish
