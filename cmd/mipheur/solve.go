package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mipheur/bench"
	"github.com/katalvlaran/mipheur/config"
	"github.com/katalvlaran/mipheur/mip"
)

// solveFlags holds the flag targets of the solve command. Flags mirror the
// parameter families of config.Config; only flags the user actually set
// override the configuration file.
var solveFlags struct {
	configPath string

	seed      int64
	heuristic string
	poolSize  int

	triggerNodes     int64
	triggerTime      time.Duration
	frequency        int64
	absoluteTime     time.Duration
	proportionalTime float64
	nodesLimit       int64

	submipNodes        int64
	submipUnsuccessful int64

	instanceKind        string
	instanceSize        int
	instanceConstraints int
	instanceTightness   float64
	instanceRows        int
	instanceColumns     int
	instanceDensity     float64
	instanceSeed        int64

	details      int
	solutionPath string
	snapshotPath string
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the two-phase pipeline once and print the result",
	RunE:  runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringVarP(&solveFlags.configPath, "config", "c", "", "YAML configuration file")

	f.Int64Var(&solveFlags.seed, "seed", 0, "seed for all random streams (0 = fixed default)")
	f.StringVar(&solveFlags.heuristic, "heuristic", "none", "polishing heuristic: none, rothberg, maravilha")
	f.IntVar(&solveFlags.poolSize, "pool-size", 40, "maximum number of pooled solutions")

	f.Int64Var(&solveFlags.triggerNodes, "heuristic-trigger-nodes", 0, "warm-up node budget before polishing starts (0 = disabled)")
	f.DurationVar(&solveFlags.triggerTime, "heuristic-trigger-time", 0, "warm-up time budget before polishing starts (0 = disabled)")
	f.Int64Var(&solveFlags.frequency, "heuristic-frequency", 1, "node interval between heuristic calls (0 = never)")
	f.DurationVar(&solveFlags.absoluteTime, "heuristic-absolute-time-limit", 0, "extra time for the heuristic phase (0 = disabled)")
	f.Float64Var(&solveFlags.proportionalTime, "heuristic-proportional-time-limit", 0, "extra time as a multiple of the warm-up runtime (0 = disabled)")
	f.Int64Var(&solveFlags.nodesLimit, "heuristic-nodes-limit", 0, "extra nodes for the heuristic phase (0 = disabled)")

	f.Int64Var(&solveFlags.submipNodes, "submip-nodes-limit", 500, "node cap per sub-MIP solve (0 = unlimited)")
	f.Int64Var(&solveFlags.submipUnsuccessful, "submip-nodes-unsuccessful", 0, "cap on sub-MIP nodes without improvement (0 = unlimited)")

	f.StringVar(&solveFlags.instanceKind, "instance", config.KindKnapsack, "instance kind: knapsack, setcover")
	f.IntVar(&solveFlags.instanceSize, "instance-size", 50, "knapsack: number of items")
	f.IntVar(&solveFlags.instanceConstraints, "instance-constraints", 5, "knapsack: number of capacity rows")
	f.Float64Var(&solveFlags.instanceTightness, "instance-tightness", 0.5, "knapsack: capacity tightness in (0,1]")
	f.IntVar(&solveFlags.instanceRows, "instance-rows", 30, "setcover: number of elements")
	f.IntVar(&solveFlags.instanceColumns, "instance-columns", 60, "setcover: number of candidate sets")
	f.Float64Var(&solveFlags.instanceDensity, "instance-density", 0.1, "setcover: membership density in (0,1]")
	f.Int64Var(&solveFlags.instanceSeed, "instance-seed", 0, "instance seed override (0 = use --seed)")

	f.IntVar(&solveFlags.details, "details", 1, "result detail level 0..4")
	f.StringVarP(&solveFlags.solutionPath, "solution", "s", "", "write the best solution to this file")
	f.StringVar(&solveFlags.snapshotPath, "pool-snapshot", "", "write the final pool snapshot to this file")

	rootCmd.AddCommand(solveCmd)
}

// solveConfig layers changed flags over the configuration file (or the
// defaults when no file is given).
func solveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if solveFlags.configPath != "" {
		loaded, err := config.Load(solveFlags.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	set := cmd.Flags().Changed
	if set("seed") {
		cfg.Seed = solveFlags.seed
	}
	if set("heuristic") {
		cfg.Strategy = solveFlags.heuristic
	}
	if set("pool-size") {
		cfg.Pool.Size = solveFlags.poolSize
	}
	if set("heuristic-trigger-nodes") {
		cfg.Trigger.Nodes = solveFlags.triggerNodes
	}
	if set("heuristic-trigger-time") {
		cfg.Trigger.Time = solveFlags.triggerTime
	}
	if set("heuristic-frequency") {
		cfg.Trigger.Frequency = solveFlags.frequency
	}
	if set("heuristic-absolute-time-limit") {
		cfg.Budget.AbsoluteTime = solveFlags.absoluteTime
	}
	if set("heuristic-proportional-time-limit") {
		cfg.Budget.ProportionalTime = solveFlags.proportionalTime
	}
	if set("heuristic-nodes-limit") {
		cfg.Budget.ExtraNodes = solveFlags.nodesLimit
	}
	if set("submip-nodes-limit") {
		cfg.SubMIP.NodeLimit = solveFlags.submipNodes
	}
	if set("submip-nodes-unsuccessful") {
		cfg.SubMIP.UnsuccessfulLimit = solveFlags.submipUnsuccessful
	}
	if set("instance") {
		cfg.Instance.Kind = solveFlags.instanceKind
	}
	if set("instance-size") {
		cfg.Instance.Size = solveFlags.instanceSize
	}
	if set("instance-constraints") {
		cfg.Instance.Constraints = solveFlags.instanceConstraints
	}
	if set("instance-tightness") {
		cfg.Instance.Tightness = solveFlags.instanceTightness
	}
	if set("instance-rows") {
		cfg.Instance.Rows = solveFlags.instanceRows
	}
	if set("instance-columns") {
		cfg.Instance.Columns = solveFlags.instanceColumns
	}
	if set("instance-density") {
		cfg.Instance.Density = solveFlags.instanceDensity
	}
	if set("instance-seed") {
		cfg.Instance.Seed = solveFlags.instanceSeed
	}

	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, _ []string) error {
	cfg, err := solveConfig(cmd)
	if err != nil {
		return err
	}

	out, pool, err := bench.Execute(cfg)
	if err != nil {
		return err
	}

	printDetails(cmd.OutOrStdout(), out, solveFlags.details)

	if solveFlags.solutionPath != "" && out.After.Found {
		problem, err := cfg.BuildInstance()
		if err != nil {
			return err
		}
		file, err := os.Create(solveFlags.solutionPath)
		if err != nil {
			return fmt.Errorf("create solution file: %w", err)
		}
		defer file.Close()
		if err = mip.WriteSolution(file, problem, out.After.Values, out.After.Objective); err != nil {
			return err
		}
	}

	if solveFlags.snapshotPath != "" {
		if err = pool.SaveFile(solveFlags.snapshotPath); err != nil {
			return err
		}
	}

	return nil
}

// printDetails renders the run outcome at the requested verbosity, from a
// bare objective line (1) up to a before/after summary block (4).
func printDetails(w io.Writer, out bench.Outcome, details int) {
	objective := func(ph bench.Phase) string {
		if ph.Found {
			return fmt.Sprintf("%.5f", ph.Objective)
		}
		return "?"
	}

	switch details {
	case 0:
		// Quiet.
	case 2:
		fmt.Fprintf(w, "%s %s\n", out.After.Status, objective(out.After))
	case 3:
		fmt.Fprintf(w, "%s %s %d %d %.3f\n",
			out.After.Status, objective(out.After), out.PoolSize,
			out.After.Nodes, out.After.Runtime.Seconds())
	case 4:
		dash := func(ph bench.Phase) string {
			if ph.Found {
				return fmt.Sprintf("%.5f", ph.Objective)
			}
			return "---"
		}
		line := "======================================================================"
		fmt.Fprintln(w, line)
		fmt.Fprintln(w, "SUMMARY")
		fmt.Fprintln(w, line)
		fmt.Fprintf(w, "Status:                           %s\n", out.After.Status)
		fmt.Fprintf(w, "Best solution (before heuristic): %s\n", dash(out.Before))
		fmt.Fprintf(w, "Best solution (after heuristic):  %s\n", dash(out.After))
		fmt.Fprintf(w, "Pool size:                        %d\n", out.PoolSize)
		fmt.Fprintf(w, "MIP nodes (before heuristic):     %d\n", out.Before.Nodes)
		fmt.Fprintf(w, "MIP nodes (using heuristic):      %d\n", out.After.Nodes-out.Before.Nodes)
		fmt.Fprintf(w, "MIP nodes (total):                %d\n", out.After.Nodes)
		fmt.Fprintf(w, "Time in sec. (before heuristic):  %.3f\n", out.Before.Runtime.Seconds())
		fmt.Fprintf(w, "Time in sec. (using heuristic):   %.3f\n", (out.After.Runtime - out.Before.Runtime).Seconds())
		fmt.Fprintf(w, "Time in sec. (total):             %.3f\n", out.After.Runtime.Seconds())
		fmt.Fprintln(w, line)
	default:
		fmt.Fprintf(w, "%s\n", objective(out.After))
	}
}
