// Package bnb - the Solver facade over the search engine.
//
// Solver plays both external roles of the mip contract at once: it is the
// outer search the heuristic layer observes and feeds (mip.Search), and the
// sub-problem solver the heuristics call back into (mip.SubSolver). Each
// sub-solve runs on a throwaway engine, so reentrancy from inside a trigger
// hook is safe: the outer stack is untouched while a sub-solve runs.
package bnb

import "github.com/katalvlaran/mipheur/mip"

// Solver is a resumable branch-and-bound search over one problem.
// Not safe for concurrent use.
type Solver struct {
	eng  *engine
	opts Options

	observers []mip.IncumbentObserver
	triggers  []mip.TriggerFunc
}

// NewSolver validates p (every variable must be binary, see ErrNotBinary)
// and prepares a search positioned at the root.
func NewSolver(p *mip.Problem, opts Options) (*Solver, error) {
	eng, err := newEngine(p)
	if err != nil {
		return nil, err
	}

	s := &Solver{eng: eng, opts: opts}
	eng.onIncumbent = s.notifyIncumbent
	eng.onNode = s.fireTriggers

	return s, nil
}

// AddObserver registers obs to run on every incumbent adoption, including
// adoptions that originate from Suggest. Observers registered mid-search
// see only subsequent incumbents.
func (s *Solver) AddObserver(obs mip.IncumbentObserver) {
	if obs != nil {
		s.observers = append(s.observers, obs)
	}
}

// AddTrigger registers t to run at every node whose cumulative count is
// divisible by Options.TriggerFrequency. Triggers run inline on the search
// goroutine and never inside sub-solves.
func (s *Solver) AddTrigger(t mip.TriggerFunc) {
	if t != nil {
		s.triggers = append(s.triggers, t)
	}
}

// Optimize continues the search under limits and returns its state when a
// stopping criterion trips. A run stopped on a node or time limit resumes
// exactly where it left off on the next call; once the space is exhausted
// further calls return ErrSearchExhausted alongside the final result.
func (s *Solver) Optimize(limits mip.Limits) (mip.Result, error) {
	if s.eng.exhausted {
		return s.eng.result(stopExhausted), ErrSearchExhausted
	}

	return s.eng.result(s.eng.run(limits)), nil
}

// SolveSub implements mip.SubSolver: it solves p on a fresh engine, warm-
// started from start when feasible, honoring every limit. The outer search
// state is untouched; no triggers or observers fire.
func (s *Solver) SolveSub(p *mip.Problem, start []float64, limits mip.Limits) (mip.Result, error) {
	eng, err := newEngine(p)
	if err != nil {
		return mip.Result{}, err
	}
	eng.warmStart(start)

	return eng.result(eng.run(limits)), nil
}

// Incumbent implements mip.Search. The returned slice is owned by the
// solver: copy before retaining.
func (s *Solver) Incumbent() ([]float64, float64, bool) {
	if !s.eng.hasInc {
		return nil, 0, false
	}

	return s.eng.incumbent, s.eng.incObj, true
}

// Relaxation implements mip.Search: the relaxed solution of the current
// node (assigned prefix plus objective-preferred completion) and its
// objective. Same ownership rule as Incumbent.
func (s *Solver) Relaxation() ([]float64, float64, bool) {
	values, obj := s.eng.relaxation()

	return values, obj, true
}

// NodeCount implements mip.Search: nodes explored since construction,
// across all Optimize calls.
func (s *Solver) NodeCount() int64 { return s.eng.nodes }

// Suggest implements mip.Search: validates the candidate against the
// problem and adopts it only when it improves the incumbent beyond
// mip.Threshold. Invalid or non-improving candidates are dropped silently.
func (s *Solver) Suggest(values []float64) {
	s.eng.adoptCandidate(values)
}

// Exhausted reports whether the search space has been fully enumerated.
func (s *Solver) Exhausted() bool { return s.eng.exhausted }

func (s *Solver) notifyIncumbent(values []float64, objective float64) {
	var i int
	for i = 0; i < len(s.observers); i++ {
		s.observers[i](values, objective)
	}
}

func (s *Solver) fireTriggers() {
	if len(s.triggers) == 0 || s.opts.TriggerFrequency <= 0 {
		return
	}
	if s.eng.nodes%s.opts.TriggerFrequency != 0 {
		return
	}

	var i int
	for i = 0; i < len(s.triggers); i++ {
		s.triggers[i](s)
	}
}
