// Command mipheur solves generated binary programs with the polishing
// heuristics layered over the reference branch-and-bound solver.
//
// Usage:
//
//	mipheur solve --heuristic rothberg --heuristic-trigger-nodes 1000 --details 4
//	mipheur experiment --config runs.yaml --strategies none,rothberg,maravilha \
//	    --seeds 1,2,3,4,5 --output results.csv --parallel 4
//
// The solve command runs the two-phase pipeline once: a warm-up solve fills
// the solution pool, then the search resumes with the chosen heuristic
// firing periodically. The experiment command fans a strategy x seed grid
// out in parallel and writes one CSV row per run.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "mipheur",
	Short:         "MIP polishing heuristics over a reference branch-and-bound solver",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log run progress to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mipheur:", err)
		os.Exit(1)
	}
}
