// Package polish - Maravilha-style adaptive biased-sampling polishing.
//
// Each iteration starts from the incumbent with every binary variable fixed
// to its rounded value, then frees a sampled subset and re-optimizes. The
// sample is biased: every binary gets a difference score blending how much
// it disagrees with a pooled solution and with the node relaxation, and
// variables are drawn without replacement with probability proportional to
// that score. The blend weight comes from two normalized gaps - pooled
// entry vs incumbent (feasibility side) and incumbent vs relaxation (bound
// side) - so whichever signal looks more promising dominates the sample.
//
// The number of freed variables is the midpoint of an adaptive band
// [submipMin, submipMax]: a finished sub-problem without improvement raises
// the floor (too small), an aborted one lowers the ceiling (too large).
// Both ends are clamped into [0,1] independently; no ordering between them
// is enforced, matching the published control law.
//
// Determinism: all draws come from the instance RNG seeded at construction.
// The band persists across Run calls and is never reset.
package polish

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mipheur/mip"
	"github.com/katalvlaran/mipheur/solpool"
)

// Maravilha is the adaptive biased-sampling heuristic. Create it with
// NewMaravilha; the zero value is not usable.
type Maravilha struct {
	problem *mip.Problem
	pool    *solpool.Pool
	sub     *mip.SubMIP
	opts    MaravilhaOptions
	rng     *rand.Rand

	// binaries holds the indices of the binary variables in ascending
	// order; unlike the mutation heuristic this order never changes.
	binaries []int

	// differences holds the per-variable release scores of the current
	// iteration, indexed by variable; rewritten before every use.
	differences []float64

	// available lists the still-fixed binaries during sampling, ascending;
	// reused across iterations to avoid churn.
	available []int

	// Adaptive band, persisting across Run calls.
	submipMin float64
	submipMax float64
}

// NewMaravilha builds the heuristic around problem, the shared pool, and
// the solver used for sub-problems. Returns ErrNilProblem/ErrNilPool/
// ErrNilSolver for missing collaborators and ErrBadOption (wrapped) for
// options outside their documented ranges.
func NewMaravilha(problem *mip.Problem, pool *solpool.Pool, solver mip.SubSolver, opts MaravilhaOptions) (*Maravilha, error) {
	if problem == nil {
		return nil, ErrNilProblem
	}
	if pool == nil {
		return nil, ErrNilPool
	}
	if solver == nil {
		return nil, ErrNilSolver
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sub, err := mip.NewSubMIP(problem, solver)
	if err != nil {
		return nil, err
	}

	return &Maravilha{
		problem:     problem,
		pool:        pool,
		sub:         sub,
		opts:        opts,
		rng:         rngFromSeed(opts.Seed),
		binaries:    problem.BinaryVariables(),
		differences: make([]float64, problem.NumVars()),
		submipMin:   opts.SubMIPMin,
		submipMax:   opts.SubMIPMax,
	}, nil
}

// Band reports the current adaptive size band. After repeated one-sided
// adaptation min may exceed max; callers should not assume an ordering.
func (m *Maravilha) Band() (min, max float64) {
	return m.submipMin, m.submipMax
}

// Run performs one biased-sampling pass against the live search s. The pass
// is a no-op unless the pool holds at least one solution and the search
// exposes both an incumbent and a relaxation. Sub-solver failures abort the
// pass and are returned; a sub-solve that finds nothing is skipped.
func (m *Maravilha) Run(s mip.Search, budget Budget) error {
	// The whole pass, final suggestion included, needs pooled material plus
	// both reference vectors.
	if m.pool.Size() == 0 {
		return nil
	}
	incValues, incObjective, ok := s.Incumbent()
	if !ok {
		return nil
	}
	relValues, relObjective, ok := s.Relaxation()
	if !ok {
		return nil
	}

	// Track a private incumbent copy; improvements land here first and are
	// suggested back once the pass ends.
	incumbent := make([]float64, len(incValues))
	copy(incumbent, incValues)

	limits := budget.SubLimits(m.opts.SubNodeLimit, m.opts.SubUnsuccessfulLimit)

	var (
		iteration int     // pass-local iteration counter
		index     int     // variable index
		count     int     // variables released so far this iteration
		pos       int     // position within the available set
		target    int     // variables to release this iteration
		draw      float64 // weighted roulette draw
		acc       float64 // running weight while walking the available set
	)
	for iteration = 0; iteration < m.opts.Iterations; iteration++ {
		// Stop criterion shared by every sub-solve.
		if budget.Exceeded() {
			break
		}

		// Stage 1 - pick a pooled solution uniformly.
		entry := m.pool.Entries()[m.rng.Intn(m.pool.Size())]

		// Stage 2 - blend the two gap signals into one sampling bias. The
		// epsilon guards the division when an objective sits at zero.
		feasBias := 1 - clamp01((entry.Value-incObjective)/(1e-5+math.Abs(incObjective)))
		relBias := 1 - clamp01((incObjective-relObjective)/(1e-5+math.Abs(relObjective)))
		bias := 1 - feasBias/(feasBias+relBias)

		// Stage 3 - fix every binary to the incumbent's rounded value and
		// score how strongly each one disagrees with the pooled entry and
		// with the relaxation.
		m.sub.ResetBounds()
		sumDifferences := 0.0
		for _, index = range m.binaries {
			m.sub.Fix(index, roundBinary(incumbent[index]))
			m.differences[index] = bias*math.Abs(incumbent[index]-entry.Solution[index]) +
				(1-bias)*math.Abs(incumbent[index]-relValues[index])
			sumDifferences += m.differences[index]
		}

		// Stage 4 - release a biased sample of the fixed binaries, without
		// replacement, weight proportional to the difference score. A
		// roulette pass that falls through the whole set releases nothing
		// but still consumes its round.
		m.available = append(m.available[:0], m.binaries...)
		target = int(math.Max(1, math.Round(float64(len(m.binaries))*(m.submipMin+m.submipMax)/2)))
		for count = 0; count < target; count++ {
			draw = m.rng.Float64() * sumDifferences
			acc = 0
			for pos = 0; pos < len(m.available); pos++ {
				index = m.available[pos]
				acc += m.differences[index]
				if acc >= draw {
					m.sub.Release(index)
					sumDifferences -= m.differences[index]
					m.available = append(m.available[:pos], m.available[pos+1:]...)
					break
				}
			}
		}

		// Stage 5 - solve warm-started from the tracked incumbent.
		result, err := m.sub.Solve(incumbent, limits)
		if err != nil {
			return err
		}

		// Stage 6 - archive the outcome and score it against the tracked
		// incumbent.
		improved := false
		if result.Found {
			m.pool.AddEntry(result.Values, result.Objective)
			if m.problem.Sense.BetterBy(result.Objective, incObjective, mip.Threshold) {
				incObjective = result.Objective
				copy(incumbent, result.Values)
				improved = true
			}
		}

		// Stage 7 - adapt the band on non-improving outcomes: a finished
		// sub-problem was too small, an aborted one too large. Each end is
		// clamped on its own; their ordering is deliberately left alone.
		if !improved {
			if result.Status.Finished() {
				m.submipMin = clamp01(m.submipMin + (m.submipMax-m.submipMin)*m.opts.Offset)
			} else {
				m.submipMax = clamp01(m.submipMax - (m.submipMax-m.submipMin)*m.opts.Offset)
			}
		}
	}

	// Hand the tracked incumbent back to the search, improved or not.
	s.Suggest(incumbent)

	return nil
}

// clamp01 clamps x into the unit interval.
func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
