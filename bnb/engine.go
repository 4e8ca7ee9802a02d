// Package bnb - the depth-first search engine.
//
// The engine is a dedicated struct (no anonymous closures) so hot-path state
// stays predictable and the search can pause and resume: the explicit frame
// stack survives between run calls, which is what two-phase driving needs.
// One engine instance serves exactly one problem; Solver owns one for the
// outer search and builds a throwaway one per sub-solve.
package bnb

import (
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/mipheur/mip"
)

// stopReason classifies why a run call returned.
type stopReason int

const (
	stopExhausted stopReason = iota // stack drained: search space enumerated
	stopNodes                       // node cap or unsuccessful-node cap hit
	stopTime                        // deadline passed
)

// frame is one pending branching decision: assign position pos of the branch
// order to value, with obj the objective of the prefix including it.
type frame struct {
	pos   int
	value float64
	obj   float64
}

// engine holds all search data and policies for one problem.
type engine struct {
	p     *mip.Problem
	sense mip.Sense
	n     int // number of variables

	// Branch order and per-position precomputes, all indexed by position.
	order     []int     // variable index at each position (desc |obj coef|)
	can0      []bool    // value 0 admissible at this position
	can1      []bool    // value 1 admissible at this position
	preferred []float64 // objective-preferred admissible value
	suffix    []float64 // best-case contribution of positions [d:], len n+1

	rootInfeasible bool // some variable admits neither 0 nor 1

	// Current search state. values carries the assignment of the active
	// prefix; entries past curLen are stale leftovers of explored branches.
	stack  []frame
	values []float64
	curLen int     // assigned prefix length of the last expanded node
	curObj float64 // objective of that prefix

	// Incumbent.
	incumbent []float64
	incObj    float64
	hasInc    bool

	// Counters. nodes is cumulative across run calls; unsuccessful counts
	// nodes since the incumbent last improved by more than mip.Threshold.
	nodes        int64
	unsuccessful int64
	exhausted    bool
	steps        int // sparse deadline check counter

	// Scratch buffer for relaxation vectors.
	relax []float64

	// Hooks wired by the Solver. Either may be nil.
	onNode      func()                // after each node expansion
	onIncumbent mip.IncumbentObserver // after each incumbent adoption
}

// branchOrder implements sort.Interface: positions ordered by descending
// absolute objective coefficient, variable index tiebreak.
type branchOrder struct {
	order []int
	obj   []float64
}

func (bo branchOrder) Len() int { return len(bo.order) }
func (bo branchOrder) Less(i, j int) bool {
	vi, vj := bo.order[i], bo.order[j]
	ai, aj := math.Abs(bo.obj[vi]), math.Abs(bo.obj[vj])
	if ai == aj {
		return vi < vj
	}

	return ai > aj
}
func (bo branchOrder) Swap(i, j int) { bo.order[i], bo.order[j] = bo.order[j], bo.order[i] }

// newEngine validates the problem, precomputes branching data, and seeds the
// stack with the root branches.
//
// Errors: ErrNilProblem, ErrNotBinary, plus anything Problem.Validate returns.
func newEngine(p *mip.Problem) (*engine, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	e := &engine{
		p:     p,
		sense: p.Sense,
		n:     p.NumVars(),
	}

	// Stage 1 - admissible values per variable. A variable fixed by bound
	// overrides (lower == upper) admits exactly one value; a variable whose
	// bounds exclude both 0 and 1 makes the whole problem infeasible.
	var (
		i        int
		lo, hi   float64
		ok0, ok1 bool
	)
	e.order = make([]int, e.n)
	e.can0 = make([]bool, e.n)
	e.can1 = make([]bool, e.n)
	for i = 0; i < e.n; i++ {
		if !p.Vars[i].Type.Integral() {
			return nil, ErrNotBinary
		}
		lo, hi = p.Vars[i].Lower, p.Vars[i].Upper
		if lo < -mip.Threshold || hi > 1+mip.Threshold {
			return nil, ErrNotBinary
		}
		ok0 = lo <= mip.Threshold
		ok1 = hi >= 1-mip.Threshold
		if !ok0 && !ok1 {
			e.rootInfeasible = true
		}
		e.order[i] = i
		e.can0[i] = ok0
		e.can1[i] = ok1
	}

	// Stage 2 - deterministic branch order: high-impact variables first.
	sort.Sort(branchOrder{order: e.order, obj: p.Objective})

	// Stage 3 - reindex admissibility by position, pick the objective-
	// preferred value per position, and build the best-case suffix sums
	// that make the node bound O(1).
	var (
		pos  int
		v    int
		c    float64
		pref float64
	)
	can0, can1 := e.can0, e.can1
	e.can0 = make([]bool, e.n)
	e.can1 = make([]bool, e.n)
	e.preferred = make([]float64, e.n)
	e.suffix = make([]float64, e.n+1)
	for pos = 0; pos < e.n; pos++ {
		v = e.order[pos]
		e.can0[pos] = can0[v]
		e.can1[pos] = can1[v]
		c = p.Objective[v]
		pref = 0
		switch {
		case !can0[v]:
			pref = 1
		case !can1[v]:
			pref = 0
		case e.sense == mip.Maximize:
			if c > 0 {
				pref = 1
			}
		default: // minimize
			if c < 0 {
				pref = 1
			}
		}
		e.preferred[pos] = pref
	}
	for pos = e.n - 1; pos >= 0; pos-- {
		e.suffix[pos] = e.suffix[pos+1] + p.Objective[e.order[pos]]*e.preferred[pos]
	}

	// Stage 4 - search state: root branches on the stack, preferred value
	// on top so it is expanded first.
	e.values = make([]float64, e.n)
	e.relax = make([]float64, e.n)
	if !e.rootInfeasible {
		e.pushChildren(0, 0)
	}

	return e, nil
}

// pushChildren pushes the admissible branches of position pos, preferred
// value last (popped first). objPrefix is the objective of positions [0,pos).
func (e *engine) pushChildren(pos int, objPrefix float64) {
	var (
		c    = e.p.Objective[e.order[pos]]
		pref = e.preferred[pos]
	)
	if e.can0[pos] && pref != 0 {
		e.stack = append(e.stack, frame{pos: pos, value: 0, obj: objPrefix})
	}
	if e.can1[pos] && pref != 1 {
		e.stack = append(e.stack, frame{pos: pos, value: 1, obj: objPrefix + c})
	}
	e.stack = append(e.stack, frame{pos: pos, value: pref, obj: objPrefix + c*pref})
}

// deadlineCheck performs a rare deadline test (every 1024 node events).
func (e *engine) deadlineCheck(deadline time.Time) bool {
	e.steps++
	if deadline.IsZero() || (e.steps&1023) != 0 {
		return false
	}

	return time.Now().After(deadline)
}

// adopt installs values (a complete assignment) as the incumbent when it
// strictly improves the current one. It resets the unsuccessful-node counter
// only on improvement beyond mip.Threshold, the same test the heuristics use.
func (e *engine) adopt(values []float64, obj float64) bool {
	if e.hasInc && !e.sense.Better(obj, e.incObj) {
		return false
	}
	if !e.hasInc || e.sense.BetterBy(obj, e.incObj, mip.Threshold) {
		e.unsuccessful = 0
	}
	if e.incumbent == nil {
		e.incumbent = make([]float64, e.n)
	}
	copy(e.incumbent, values)
	e.incObj = obj
	e.hasInc = true
	if e.onIncumbent != nil {
		e.onIncumbent(e.incumbent, e.incObj)
	}

	return true
}

// adoptCandidate validates an externally suggested assignment against the
// engine's problem (dimension, bounds, integrality, constraints within
// mip.Threshold) and adopts it if it improves the incumbent beyond
// mip.Threshold. Invalid or non-improving candidates are ignored.
func (e *engine) adoptCandidate(values []float64) bool {
	if len(values) != e.n {
		return false
	}
	if !e.p.FeasibleWithin(values, mip.Threshold) {
		return false
	}
	obj := e.p.ObjectiveValue(values)
	if e.hasInc && !e.sense.BetterBy(obj, e.incObj, mip.Threshold) {
		return false
	}

	return e.adopt(values, obj)
}

// warmStart seeds the incumbent from a caller-provided assignment.
// Infeasible or mis-sized starts are silently ignored.
func (e *engine) warmStart(start []float64) {
	if start == nil || len(start) != e.n {
		return
	}
	if !e.p.FeasibleWithin(start, mip.Threshold) {
		return
	}
	e.adopt(start, e.p.ObjectiveValue(start))
}

// run continues the search under limits and reports why it stopped.
// Node budgets are per call; the cumulative node counter keeps growing.
func (e *engine) run(limits mip.Limits) stopReason {
	var (
		startNodes = e.nodes
		f          frame
		bound      float64
		next       int
	)
	for len(e.stack) > 0 {
		// 1) Per-call stopping criteria, checked before each expansion.
		if limits.MaxNodes > 0 && e.nodes-startNodes >= limits.MaxNodes {
			return stopNodes
		}
		if limits.UnsuccessfulNodes > 0 && e.unsuccessful >= limits.UnsuccessfulNodes {
			return stopNodes
		}
		if e.deadlineCheck(limits.Deadline) {
			return stopTime
		}

		// 2) Expand the next frame. DFS order guarantees the values prefix
		// below f.pos still belongs to f's ancestors.
		f = e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
		e.values[e.order[f.pos]] = f.value
		e.curLen = f.pos + 1
		e.curObj = f.obj
		e.nodes++
		e.unsuccessful++
		if e.onNode != nil {
			e.onNode()
		}

		// 3) Prune by the admissible objective relaxation: assigned prefix
		// plus best-case free suffix.
		bound = f.obj + e.suffix[e.curLen]
		if e.hasInc && !e.sense.Better(bound, e.incObj) {
			continue
		}

		// 4) Leaf: constraints are checked here and only here.
		if e.curLen == e.n {
			if e.p.FeasibleWithin(e.values, mip.Threshold) {
				e.adopt(e.values, f.obj)
			}

			continue
		}

		// 5) Branch on the next position.
		next = f.pos + 1
		e.pushChildren(next, f.obj)
	}

	e.exhausted = true

	return stopExhausted
}

// relaxation fills the scratch buffer with the current node relaxation:
// the assigned prefix keeps its values, free variables take their
// objective-preferred value (0.5 when the objective is indifferent), and
// returns it with its objective. Before the first expansion this is the pure
// best-case vector of the root.
func (e *engine) relaxation() ([]float64, float64) {
	var (
		pos int
		v   int
		x   float64
	)
	for pos = 0; pos < e.n; pos++ {
		v = e.order[pos]
		switch {
		case pos < e.curLen:
			x = e.values[v]
		case e.p.Objective[v] == 0 && e.can0[pos] && e.can1[pos]:
			x = 0.5
		default:
			x = e.preferred[pos]
		}
		e.relax[v] = x
	}

	return e.relax, e.curObj + e.suffix[e.curLen]
}

// result packages the current engine state for a given stop reason.
func (e *engine) result(reason stopReason) mip.Result {
	res := mip.Result{}
	if e.hasInc {
		res.Found = true
		res.Values = make([]float64, e.n)
		copy(res.Values, e.incumbent)
		res.Objective = e.incObj
	}
	switch reason {
	case stopExhausted:
		if e.hasInc {
			res.Status = mip.StatusOptimal
		} else {
			res.Status = mip.StatusInfeasible
		}
	case stopNodes:
		res.Status = mip.StatusNodeLimit
	case stopTime:
		res.Status = mip.StatusTimeLimit
	}

	return res
}
