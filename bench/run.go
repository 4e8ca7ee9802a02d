// Package bench - the two-phase solve pipeline.
package bench

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mipheur/bnb"
	"github.com/katalvlaran/mipheur/config"
	"github.com/katalvlaran/mipheur/mip"
	"github.com/katalvlaran/mipheur/polish"
	"github.com/katalvlaran/mipheur/solpool"
)

// Phase captures the search state at the end of one pipeline phase.
type Phase struct {
	Status    mip.Status
	Found     bool
	Objective float64
	Values    []float64
	Nodes     int64
	Runtime   time.Duration
}

// Outcome is the result of one complete Execute run.
type Outcome struct {
	RunID    uuid.UUID
	Instance string
	Strategy polish.Strategy
	Seed     int64

	// Before is the state after the warm-up phase, After the final state.
	// With no trigger criteria configured the warm-up solves to optimality
	// and After equals Before.
	Before Phase
	After  Phase

	// PoolSize is the number of distinct solutions archived over the run.
	PoolSize int
}

// Improved reports whether the heuristic phase strictly improved the
// warm-up objective beyond mip.Threshold.
func (o Outcome) Improved(sense mip.Sense) bool {
	if !o.After.Found || !o.Before.Found {
		return o.After.Found && !o.Before.Found
	}

	return sense.BetterBy(o.After.Objective, o.Before.Objective, mip.Threshold)
}

// nzmin returns the smaller of two node budgets treating zero as unlimited.
func nzmin(a, b int64) int64 {
	switch {
	case a <= 0:
		return b
	case b <= 0:
		return a
	case a < b:
		return a
	default:
		return b
	}
}

// earliest returns the sooner of two deadlines treating zero as unlimited.
func earliest(a, b time.Time) time.Time {
	switch {
	case a.IsZero():
		return b
	case b.IsZero():
		return a
	case a.Before(b):
		return a
	default:
		return b
	}
}

// phaseFrom freezes a result into a Phase record.
func phaseFrom(res mip.Result, nodes int64, runtime time.Duration) Phase {
	ph := Phase{
		Status:    res.Status,
		Found:     res.Found,
		Objective: res.Objective,
		Nodes:     nodes,
		Runtime:   runtime,
	}
	if res.Found {
		ph.Values = make([]float64, len(res.Values))
		copy(ph.Values, res.Values)
	}

	return ph
}

// buildHeuristic constructs the configured polishing strategy, or nil for
// StrategyNone.
func buildHeuristic(cfg config.Config, p *mip.Problem, pool *solpool.Pool, sub mip.SubSolver) (polish.Heuristic, error) {
	switch cfg.ParsedStrategy() {
	case polish.StrategyRothberg:
		return polish.NewRothberg(p, pool, sub, cfg.RothbergOptions())
	case polish.StrategyMaravilha:
		return polish.NewMaravilha(p, pool, sub, cfg.MaravilhaOptions())
	default:
		return nil, nil
	}
}

// Execute runs the full two-phase pipeline for one configuration and
// returns the outcome together with the pool it filled (for snapshotting).
func Execute(cfg config.Config) (Outcome, *solpool.Pool, error) {
	if err := cfg.Validate(); err != nil {
		return Outcome{}, nil, err
	}

	problem, err := cfg.BuildInstance()
	if err != nil {
		return Outcome{}, nil, err
	}
	pool, err := cfg.NewPool(problem.Sense)
	if err != nil {
		return Outcome{}, nil, err
	}
	solver, err := bnb.NewSolver(problem, bnb.Options{TriggerFrequency: 1})
	if err != nil {
		return Outcome{}, nil, fmt.Errorf("bench: build solver for %s: %w", problem.Name, err)
	}

	// Every incumbent the outer search accepts is archived, including the
	// ones the heuristic suggests back.
	solver.AddObserver(func(values []float64, objective float64) {
		pool.AddEntry(values, objective)
	})

	out := Outcome{
		RunID:    uuid.New(),
		Instance: problem.Name,
		Strategy: cfg.ParsedStrategy(),
		Seed:     cfg.Seed,
	}

	var overallDeadline time.Time
	if cfg.Solver.TimeLimit > 0 {
		overallDeadline = time.Now().Add(cfg.Solver.TimeLimit)
	}

	// Phase 1 - warm-up under the trigger criteria.
	var warmupDeadline time.Time
	if cfg.Trigger.Time > 0 {
		warmupDeadline = time.Now().Add(cfg.Trigger.Time)
	}
	started := time.Now()
	res, err := solver.Optimize(mip.Limits{
		MaxNodes: nzmin(cfg.Trigger.Nodes, cfg.Solver.MaxNodes),
		Deadline: earliest(warmupDeadline, overallDeadline),
	})
	if err != nil {
		return Outcome{}, nil, fmt.Errorf("bench: warm-up phase on %s: %w", problem.Name, err)
	}
	warmupRuntime := time.Since(started)
	out.Before = phaseFrom(res, solver.NodeCount(), warmupRuntime)
	out.After = out.Before
	out.PoolSize = pool.Size()

	if solver.Exhausted() {
		return out, pool, nil
	}

	// Phase 2 - resume with the heuristic installed, under the extension
	// budget. Both time extensions may be set; the tighter one binds.
	var heurDeadline time.Time
	if cfg.Budget.AbsoluteTime > 0 {
		heurDeadline = time.Now().Add(cfg.Budget.AbsoluteTime)
	}
	if cfg.Budget.ProportionalTime > 0 {
		prop := time.Now().Add(time.Duration(cfg.Budget.ProportionalTime * float64(warmupRuntime)))
		heurDeadline = earliest(heurDeadline, prop)
	}
	heurDeadline = earliest(heurDeadline, overallDeadline)

	heuristic, err := buildHeuristic(cfg, problem, pool, solver)
	if err != nil {
		return Outcome{}, nil, fmt.Errorf("bench: build heuristic %s: %w", cfg.Strategy, err)
	}
	var trigger *polish.Trigger
	if heuristic != nil {
		trigger = polish.NewTrigger(heuristic, cfg.Trigger.Frequency, polish.BudgetUntil(heurDeadline))
		solver.AddTrigger(trigger.Hook())
	}

	extraNodes := cfg.Budget.ExtraNodes
	if cfg.Solver.MaxNodes > 0 {
		remaining := cfg.Solver.MaxNodes - solver.NodeCount()
		if remaining <= 0 {
			return out, pool, nil
		}
		extraNodes = nzmin(extraNodes, remaining)
	}

	started = time.Now()
	res, err = solver.Optimize(mip.Limits{
		MaxNodes: extraNodes,
		Deadline: heurDeadline,
	})
	if err != nil {
		return Outcome{}, nil, fmt.Errorf("bench: heuristic phase on %s: %w", problem.Name, err)
	}
	if trigger != nil && trigger.LastErr() != nil {
		return Outcome{}, nil, fmt.Errorf("bench: polishing pass on %s: %w", problem.Name, trigger.LastErr())
	}

	out.After = phaseFrom(res, solver.NodeCount(), warmupRuntime+time.Since(started))
	out.PoolSize = pool.Size()

	return out, pool, nil
}
