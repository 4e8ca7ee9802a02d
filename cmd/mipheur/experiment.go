package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mipheur/bench"
	"github.com/katalvlaran/mipheur/config"
)

var experimentFlags struct {
	configPath string
	strategies []string
	seeds      []int64
	output     string
	parallel   int
}

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "Run a strategy x seed grid and write one CSV row per run",
	RunE:  runExperiment,
}

func init() {
	f := experimentCmd.Flags()
	f.StringVarP(&experimentFlags.configPath, "config", "c", "", "base YAML configuration file")
	f.StringSliceVar(&experimentFlags.strategies, "strategies",
		[]string{"none", "rothberg", "maravilha"}, "strategies to compare")
	f.Int64SliceVar(&experimentFlags.seeds, "seeds", []int64{1, 2, 3, 4, 5}, "seeds per strategy")
	f.StringVarP(&experimentFlags.output, "output", "o", "results.csv", `CSV output file ("-" for stdout)`)
	f.IntVarP(&experimentFlags.parallel, "parallel", "p", 1, "concurrent runs")

	rootCmd.AddCommand(experimentCmd)
}

func runExperiment(cmd *cobra.Command, _ []string) error {
	base := config.Default()
	if experimentFlags.configPath != "" {
		loaded, err := config.Load(experimentFlags.configPath)
		if err != nil {
			return err
		}
		base = loaded
	}

	var out io.Writer
	if experimentFlags.output == "-" {
		out = cmd.OutOrStdout()
	} else {
		file, err := os.Create(experimentFlags.output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	grid := bench.Grid{
		Instances:  []config.InstanceConfig{base.Instance},
		Strategies: experimentFlags.strategies,
		Seeds:      experimentFlags.seeds,
	}

	runner := bench.Runner{Parallel: experimentFlags.parallel, Log: slog.Default()}
	outcomes, err := runner.Run(cmd.Context(), grid, base, out)
	if err != nil {
		return err
	}

	// Per-cell summary on stdout, after the CSV is complete.
	problem, err := base.BuildInstance()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "instance\tstrategy\truns\tsolved\tbest\tmean\tmean nodes\tmean time")
	for _, cell := range bench.Summarize(outcomes, problem.Sense) {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.5f\t%.5f\t%.1f\t%s\n",
			cell.Instance, cell.Strategy, cell.Runs, cell.Solved,
			cell.BestObjective, cell.MeanObjective, cell.MeanNodes, cell.MeanRuntime)
	}

	return tw.Flush()
}
