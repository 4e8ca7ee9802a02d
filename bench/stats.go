// Package bench - per-cell aggregation of experiment outcomes.
package bench

import (
	"sort"
	"time"

	"github.com/katalvlaran/mipheur/mip"
)

// Summary aggregates every outcome of one (instance, strategy) cell.
type Summary struct {
	Instance string
	Strategy string
	Runs     int

	// BestObjective is the best final objective across runs (per sense);
	// MeanObjective averages them. Both consider only runs that found a
	// solution, counted by Solved.
	Solved        int
	BestObjective float64
	MeanObjective float64

	MeanNodes   float64
	MeanRuntime time.Duration
}

// Summarize groups outcomes by (instance, strategy) and aggregates each
// cell. sense selects the direction of BestObjective. Cells come back
// sorted by instance, then strategy.
func Summarize(outcomes []Outcome, sense mip.Sense) []Summary {
	type key struct {
		instance string
		strategy string
	}

	cells := make(map[key]*Summary)
	order := make([]key, 0)
	for _, o := range outcomes {
		k := key{instance: o.Instance, strategy: o.Strategy.String()}
		cell, ok := cells[k]
		if !ok {
			cell = &Summary{Instance: k.instance, Strategy: k.strategy}
			cells[k] = cell
			order = append(order, k)
		}

		cell.Runs++
		cell.MeanNodes += float64(o.After.Nodes)
		cell.MeanRuntime += o.After.Runtime
		if o.After.Found {
			if cell.Solved == 0 || sense.Better(o.After.Objective, cell.BestObjective) {
				cell.BestObjective = o.After.Objective
			}
			cell.MeanObjective += o.After.Objective
			cell.Solved++
		}
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		cell := cells[k]
		if cell.Runs > 0 {
			cell.MeanNodes /= float64(cell.Runs)
			cell.MeanRuntime /= time.Duration(cell.Runs)
		}
		if cell.Solved > 0 {
			cell.MeanObjective /= float64(cell.Solved)
		}
		out = append(out, *cell)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Instance != out[j].Instance {
			return out[i].Instance < out[j].Instance
		}
		return out[i].Strategy < out[j].Strategy
	})

	return out
}
