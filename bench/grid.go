// Package bench - experiment grid expansion.
package bench

import "github.com/katalvlaran/mipheur/config"

// Entry is one cell of an experiment grid.
type Entry struct {
	Instance config.InstanceConfig
	Strategy string
	Seed     int64
}

// Grid is the cross product of instances, strategies, and seeds.
type Grid struct {
	Instances  []config.InstanceConfig
	Strategies []string
	Seeds      []int64
}

// Entries expands the grid in deterministic order: instance-major, then
// strategy, then seed.
func (g Grid) Entries() []Entry {
	out := make([]Entry, 0, len(g.Instances)*len(g.Strategies)*len(g.Seeds))
	for _, inst := range g.Instances {
		for _, strat := range g.Strategies {
			for _, seed := range g.Seeds {
				out = append(out, Entry{Instance: inst, Strategy: strat, Seed: seed})
			}
		}
	}

	return out
}

// Apply derives the run configuration of one entry from a base config.
func (e Entry) Apply(base config.Config) config.Config {
	cfg := base
	cfg.Instance = e.Instance
	cfg.Strategy = e.Strategy
	cfg.Seed = e.Seed

	return cfg
}
