// Package bench - parallel grid execution with CSV output.
package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mipheur/config"
)

// csvHeader is the fixed column layout of the experiment CSV.
var csvHeader = []string{
	"run_id", "instance", "strategy", "seed",
	"status_before", "objective_before", "nodes_before", "time_before_ms",
	"status_after", "objective_after", "nodes_after", "time_after_ms",
	"pool_size",
}

// Runner executes experiment grids over a bounded worker group.
type Runner struct {
	// Parallel is the maximum number of concurrent runs. Values below 1
	// mean sequential execution.
	Parallel int

	// Log receives per-run progress records. Nil disables logging.
	Log *slog.Logger
}

// row renders one outcome as a CSV record.
func row(o Outcome) []string {
	return []string{
		o.RunID.String(),
		o.Instance,
		o.Strategy.String(),
		strconv.FormatInt(o.Seed, 10),
		o.Before.Status.String(),
		strconv.FormatFloat(o.Before.Objective, 'g', -1, 64),
		strconv.FormatInt(o.Before.Nodes, 10),
		strconv.FormatInt(o.Before.Runtime.Milliseconds(), 10),
		o.After.Status.String(),
		strconv.FormatFloat(o.After.Objective, 'g', -1, 64),
		strconv.FormatInt(o.After.Nodes, 10),
		strconv.FormatInt(o.After.Runtime.Milliseconds(), 10),
		strconv.Itoa(o.PoolSize),
	}
}

// Run expands grid over base, executes every entry, and streams one CSV row
// per run to w (header first). Outcomes are returned in grid order. The
// first failing run cancels the remaining ones.
func (r Runner) Run(ctx context.Context, grid Grid, base config.Config, w io.Writer) ([]Outcome, error) {
	entries := grid.Entries()
	outcomes := make([]Outcome, len(entries))

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("bench: write csv header: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	limit := r.Parallel
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	var mu sync.Mutex // guards cw
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			cfg := entry.Apply(base)
			out, _, err := Execute(cfg)
			if err != nil {
				return err
			}
			outcomes[i] = out

			if r.Log != nil {
				r.Log.Info("run finished",
					"instance", out.Instance,
					"strategy", out.Strategy.String(),
					"seed", out.Seed,
					"status", out.After.Status.String(),
					"objective", out.After.Objective,
					"nodes", out.After.Nodes,
					"pool", out.PoolSize,
				)
			}

			mu.Lock()
			defer mu.Unlock()
			if err = cw.Write(row(out)); err != nil {
				return fmt.Errorf("bench: write csv row: %w", err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("bench: flush csv: %w", err)
	}

	return outcomes, nil
}
