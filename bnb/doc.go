// Package bnb - an exact branch-and-bound solver for pure-binary programs.
//
// The package exists so the polishing layer has a real search to plug into:
// it drives the outer optimization, exposes the mip.Search view (incumbent,
// node relaxation, node count, Suggest), and doubles as the mip.SubSolver
// the heuristics use for their restricted sub-problems. Any solver honoring
// those two contracts can replace it; nothing in the heuristic layer knows
// this implementation.
//
// Scope: every decision variable must be binary (declared Binary, or an
// Integer whose bounds sit inside [0,1] - bound-fixed variables included).
// That is exactly the variable class the polishing heuristics manipulate.
//
// Rationale (succinct):
//  1. Deterministic branching: variables ordered by descending absolute
//     objective coefficient (index tiebreak), the objective-preferred value
//     tried first. High-impact decisions near the root tighten the
//     incumbent early.
//  2. Depth-first search over an explicit stack. The stack survives between
//     Optimize calls, so a run stopped by a node or time limit resumes
//     where it left off with tightened or relaxed limits - the two-phase
//     drivers build on this.
//  3. Admissible pruning by objective relaxation: assigned variables
//     contribute their values, free ones their bound-optimal value. Suffix
//     sums over the fixed branch order make the bound O(1) per node.
//  4. Feasibility is checked at leaves only; constraints never prune
//     internal nodes. Simple, predictable, and exact.
//  5. Limits follow mip.Limits: cumulative node cap, nodes-since-last-
//     improvement cap, and a deadline probed sparsely (every 1024 steps).
//
// Complexity: worst case exponential in the variable count (exact search);
// per step O(1) bound work plus O(V+T) at leaves for the feasibility check.
//
// No logging, no panics on user input - only sentinel errors from types.go.
// A Solver must not be shared across goroutines.
package bnb
