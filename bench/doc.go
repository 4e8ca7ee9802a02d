// Package bench drives complete polishing runs and experiment grids.
//
// Execute is the two-phase pipeline around the reference solver: a warm-up
// phase solves the instance under the trigger criteria while the incumbent
// observer fills the solution pool; the heuristic phase then resumes the
// same search with the configured polishing strategy firing periodically,
// bounded by the extension budget (absolute time, time proportional to the
// warm-up runtime, extra nodes - whichever binds first).
//
// Runner fans a (instance x strategy x seed) grid out over a bounded worker
// group and streams one CSV row per run; Summarize aggregates outcomes per
// (instance, strategy) cell. Runs are deterministic per seed, so a rerun of
// the same grid reproduces every objective column exactly.
package bench
