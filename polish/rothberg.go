// Package polish - Rothberg-style mutation/recombination polishing.
//
// The heuristic runs two phases over the shared solution pool:
//
//   - Mutations: pick a pooled solution (biased toward the best ranks via
//     two-stage resampling), fix a random fraction of the binary variables
//     to its rounded values, and solve the rest. The fraction adapts on
//     non-improving outcomes: a sub-problem the solver finished (optimal or
//     infeasible) was too small, so the fraction shrinks; one the solver
//     aborted was too large, so it grows. The adaptation step itself cools
//     geometrically once per phase, floored at a configured minimum.
//   - Recombinations: pick two pooled solutions (again front-biased), fix
//     every binary variable they agree on, and solve the rest warm-started
//     from the better pick. One iteration per pass, chosen uniformly up
//     front, recombines the whole pool instead: it fixes only the variables
//     every entry agrees on and warm-starts from the best entry.
//
// Throughout a pass the heuristic tracks its own incumbent copy; every
// sub-solve result feeds the pool, improvements beyond mip.Threshold update
// the tracked copy, and the pass ends by suggesting it back to the search.
//
// Determinism: all draws come from the instance RNG seeded at construction.
// Adaptive state (fixing fraction, offset) persists across Run calls.
package polish

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mipheur/mip"
	"github.com/katalvlaran/mipheur/solpool"
)

// Rothberg is the mutation/recombination heuristic. Create it with
// NewRothberg; the zero value is not usable.
type Rothberg struct {
	problem *mip.Problem
	pool    *solpool.Pool
	sub     *mip.SubMIP
	opts    RothbergOptions
	rng     *rand.Rand

	// binaries holds the indices of the binary variables; mutations shuffle
	// it in place, so its order evolves across iterations.
	binaries []int

	// Adaptive state, persisting across Run calls.
	fixingFraction float64
	offset         float64
}

// NewRothberg builds the heuristic around problem, the shared pool, and the
// solver used for sub-problems. Binary variables are identified once here.
// Returns ErrNilProblem/ErrNilPool/ErrNilSolver for missing collaborators
// and ErrBadOption (wrapped) for options outside their documented ranges.
func NewRothberg(problem *mip.Problem, pool *solpool.Pool, solver mip.SubSolver, opts RothbergOptions) (*Rothberg, error) {
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

	return &Rothberg{
		problem:        problem,
		pool:           pool,
		sub:            sub,
		opts:           opts,
		rng:            rngFromSeed(opts.Seed),
		binaries:       problem.BinaryVariables(),
		fixingFraction: opts.FixingFraction,
		offset:         opts.OffsetInit,
	}, nil
}

// FixingFraction reports the current adaptive fixing fraction.
func (r *Rothberg) FixingFraction() float64 {
	return r.fixingFraction
}

// Offset reports the current adaptation step.
func (r *Rothberg) Offset() float64 {
	return r.offset
}

// Run performs one mutation/recombination pass against the live search s.
// Without an incumbent the pass is a no-op; without pooled solutions only
// the final suggestion remains. Sub-solver failures abort the pass and are
// returned; a sub-solve that merely finds nothing is skipped, not an error.
func (r *Rothberg) Run(s mip.Search, budget Budget) error {
	// Snapshot the incumbent. Both phases measure improvement against this
	// tracked copy, not against the live search.
	incValues, incObjective, ok := s.Incumbent()
	if !ok {
		return nil
	}
	incumbent := make([]float64, len(incValues))
	copy(incumbent, incValues)

	limits := budget.SubLimits(r.opts.SubNodeLimit, r.opts.SubUnsuccessfulLimit)

	// Phase 1 - mutations (need at least one pooled solution).
	if r.pool.Size() >= 1 {
		var (
			i          int // mutation iteration
			entryIdx   int // pool rank of the seed entry
			countFixed int // leading binaries to fix this iteration
			j          int // position within the shuffled binaries
			index      int // variable index
		)
		for i = 0; i < r.opts.Mutations; i++ {
			// Stop criterion shared by every sub-solve.
			if budget.Exceeded() {
				break
			}

			// Stage 1 - pick a seed entry, biased toward the front ranks:
			// draw a uniform rank, then redraw uniformly below it.
			entryIdx = r.rng.Intn(r.pool.Size())
			if entryIdx != 0 {
				entryIdx = r.rng.Intn(entryIdx)
			}
			entry := r.pool.Entries()[entryIdx]

			// Stage 2 - shape the sub-problem: shuffle the binaries and fix
			// the leading fraction to the seed entry's rounded values. All
			// other variables keep their original bounds.
			countFixed = int(math.Round(float64(len(r.binaries)) * r.fixingFraction))
			shuffleIntsInPlace(r.binaries, r.rng)
			r.sub.ResetBounds()
			for j = 0; j < countFixed; j++ {
				index = r.binaries[j]
				r.sub.Fix(index, roundBinary(entry.Solution[index]))
			}

			// Stage 3 - solve without a warm start; mutations explore.
			result, err := r.sub.Solve(nil, limits)
			if err != nil {
				return err
			}

			// Stage 4 - archive the outcome and score it against the
			// tracked incumbent.
			improved := false
			if result.Found {
				r.pool.AddEntry(result.Values, result.Objective)
				if r.problem.Sense.BetterBy(result.Objective, incObjective, mip.Threshold) {
					incObjective = result.Objective
					copy(incumbent, result.Values)
					improved = true
				}
			}

			// Stage 5 - adapt the fraction on non-improving outcomes: a
			// finished sub-problem was too small to hold an improvement,
			// an aborted one too large to explore.
			if !improved {
				if result.Status.Finished() {
					r.fixingFraction = math.Max(0, r.fixingFraction-r.offset)
				} else {
					r.fixingFraction = math.Min(1, r.fixingFraction+r.offset)
				}
			}
		}

		// Cool the adaptation step, once per mutation phase.
		r.offset = math.Max(r.opts.OffsetMinimum, (1-r.opts.OffsetReduction)*r.offset)
	}

	// Phase 2 - recombinations (need at least two pooled solutions).
	if r.pool.Size() >= 2 {
		// The iteration that recombines the whole pool, chosen up front.
		considerAll := r.rng.Intn(r.opts.Recombinations)

		var (
			i     int     // recombination iteration
			idx1  int     // pool rank of the first parent
			idx2  int     // pool rank of the second parent
			index int     // variable index
			k     int     // pool rank while checking consensus
			value float64 // candidate bound for a fixed binary
			fix   bool    // whether the pool agrees on index
		)
		for i = 0; i < r.opts.Recombinations; i++ {
			if budget.Exceeded() {
				break
			}

			r.sub.ResetBounds()
			entries := r.pool.Entries()

			var start []float64
			if i == considerAll {
				// Consensus iteration - fix only the binaries every pooled
				// solution agrees on; warm-start from the best rank.
				for _, index = range r.binaries {
					value = roundBinary(entries[0].Solution[index])
					fix = true
					for k = 1; k < len(entries); k++ {
						if math.Abs(value-entries[k].Solution[index]) >= mip.Threshold {
							fix = false
							break
						}
					}
					if fix {
						r.sub.Fix(index, value)
					}
				}
				start = entries[0].Solution
			} else {
				// Pair iteration - draw two distinct ranks, the pair biased
				// toward the front, and fix where the parents agree.
				idx2 = r.rng.Intn(r.pool.Size()-1) + 1
				idx1 = r.rng.Intn(idx2)
				for _, index = range r.binaries {
					if math.Abs(entries[idx1].Solution[index]-entries[idx2].Solution[index]) < mip.Threshold {
						r.sub.Fix(index, roundBinary(entries[idx1].Solution[index]))
					}
				}
				start = entries[idx1].Solution
			}

			result, err := r.sub.Solve(start, limits)
			if err != nil {
				return err
			}
			if result.Found {
				r.pool.AddEntry(result.Values, result.Objective)
				if r.problem.Sense.BetterBy(result.Objective, incObjective, mip.Threshold) {
					incObjective = result.Objective
					copy(incumbent, result.Values)
				}
			}
		}
	}

	// Hand the tracked incumbent back to the search, improved or not.
	s.Suggest(incumbent)

	return nil
}
