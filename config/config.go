// Package config - the Config tree, defaults, loading, and adapters.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mipheur/gen"
	"github.com/katalvlaran/mipheur/mip"
	"github.com/katalvlaran/mipheur/polish"
	"github.com/katalvlaran/mipheur/solpool"
)

// Sentinel errors returned by this package.
var (
	// ErrBadConfig - a configuration value is out of range or inconsistent.
	ErrBadConfig = errors.New("config: invalid configuration")

	// ErrUnknownInstance - Instance.Kind names no known generator.
	ErrUnknownInstance = errors.New("config: unknown instance kind")
)

// Instance kinds accepted by BuildInstance.
const (
	KindKnapsack = "knapsack"
	KindSetCover = "setcover"
)

// Config is the complete run configuration. The zero value is not usable;
// start from Default and override.
type Config struct {
	// Seed drives every random stream of the run: generators, heuristics.
	// Zero selects the fixed default stream everywhere.
	Seed int64 `yaml:"seed"`

	// Strategy names the polishing heuristic: none, rothberg, maravilha.
	Strategy string `yaml:"strategy"`

	Pool      PoolConfig      `yaml:"pool"`
	Trigger   TriggerConfig   `yaml:"trigger"`
	Budget    BudgetConfig    `yaml:"budget"`
	SubMIP    SubMIPConfig    `yaml:"submip"`
	Rothberg  RothbergConfig  `yaml:"rothberg"`
	Maravilha MaravilhaConfig `yaml:"maravilha"`
	Solver    SolverConfig    `yaml:"solver"`
	Instance  InstanceConfig  `yaml:"instance"`
}

// PoolConfig shapes the shared solution pool.
type PoolConfig struct {
	Size   int  `yaml:"size"`
	Sorted bool `yaml:"sorted"`
}

// TriggerConfig bounds the warm-up phase that runs before polishing starts
// and gates how often the heuristic fires afterwards. Zero values disable
// the respective criterion.
type TriggerConfig struct {
	// Nodes is the warm-up node budget before the heuristic phase begins.
	Nodes int64 `yaml:"nodes"`

	// Time is the warm-up wall-clock budget before the heuristic phase.
	Time time.Duration `yaml:"time"`

	// Frequency is the node interval at which the heuristic fires during
	// the heuristic phase. Zero disables the heuristic entirely.
	Frequency int64 `yaml:"frequency"`
}

// BudgetConfig bounds the heuristic phase itself. Zero values disable the
// respective criterion; with everything zero the phase runs to optimality.
type BudgetConfig struct {
	// AbsoluteTime extends the run by a fixed duration.
	AbsoluteTime time.Duration `yaml:"absolute_time"`

	// ProportionalTime extends the run by this multiple of the warm-up
	// phase runtime. Both time criteria may be set; the tighter one binds.
	ProportionalTime float64 `yaml:"proportional_time"`

	// ExtraNodes extends the run by a fixed node count.
	ExtraNodes int64 `yaml:"extra_nodes"`
}

// SubMIPConfig bounds each sub-problem solve issued by a heuristic.
type SubMIPConfig struct {
	NodeLimit         int64 `yaml:"node_limit"`
	UnsuccessfulLimit int64 `yaml:"unsuccessful_limit"`
}

// RothbergConfig mirrors polish.RothbergOptions.
type RothbergConfig struct {
	Recombinations  int     `yaml:"recombinations"`
	Mutations       int     `yaml:"mutations"`
	FixingFraction  float64 `yaml:"fixing_fraction"`
	OffsetInit      float64 `yaml:"offset_init"`
	OffsetReduction float64 `yaml:"offset_reduction"`
	OffsetMinimum   float64 `yaml:"offset_minimum"`
}

// MaravilhaConfig mirrors polish.MaravilhaOptions.
type MaravilhaConfig struct {
	Iterations int     `yaml:"iterations"`
	SubMIPMin  float64 `yaml:"submip_min"`
	SubMIPMax  float64 `yaml:"submip_max"`
	Offset     float64 `yaml:"offset"`
}

// SolverConfig bounds the whole optimization (both phases together).
// Zero values disable the respective criterion.
type SolverConfig struct {
	MaxNodes  int64         `yaml:"max_nodes"`
	TimeLimit time.Duration `yaml:"time_limit"`
}

// InstanceConfig selects and parameterizes the generated problem.
// Size/Constraints/Tightness apply to knapsacks, Rows/Columns/Density to
// set covers. Seed zero falls back to the run seed.
type InstanceConfig struct {
	Kind        string  `yaml:"kind"`
	Size        int     `yaml:"size"`
	Constraints int     `yaml:"constraints"`
	Tightness   float64 `yaml:"tightness"`
	Rows        int     `yaml:"rows"`
	Columns     int     `yaml:"columns"`
	Density     float64 `yaml:"density"`
	Seed        int64   `yaml:"seed"`
}

// Default returns the reference configuration: the published heuristic
// defaults, a sorted 40-entry pool, per-node trigger frequency, 500-node
// sub-solves, and a mid-size knapsack instance. Disabled criteria stay zero.
func Default() Config {
	roth := polish.DefaultRothbergOptions()
	mara := polish.DefaultMaravilhaOptions()
	knap := gen.DefaultKnapsackOptions()

	return Config{
		Seed:     0,
		Strategy: polish.StrategyNone.String(),
		Pool:     PoolConfig{Size: 40, Sorted: true},
		Trigger:  TriggerConfig{Nodes: 0, Time: 0, Frequency: 1},
		Budget:   BudgetConfig{},
		SubMIP:   SubMIPConfig{NodeLimit: 500, UnsuccessfulLimit: 0},
		Rothberg: RothbergConfig{
			Recombinations:  roth.Recombinations,
			Mutations:       roth.Mutations,
			FixingFraction:  roth.FixingFraction,
			OffsetInit:      roth.OffsetInit,
			OffsetReduction: roth.OffsetReduction,
			OffsetMinimum:   roth.OffsetMinimum,
		},
		Maravilha: MaravilhaConfig{
			Iterations: mara.Iterations,
			SubMIPMin:  mara.SubMIPMin,
			SubMIPMax:  mara.SubMIPMax,
			Offset:     mara.Offset,
		},
		Solver: SolverConfig{},
		Instance: InstanceConfig{
			Kind:        KindKnapsack,
			Size:        knap.Items,
			Constraints: knap.Constraints,
			Tightness:   knap.Tightness,
			Rows:        gen.DefaultSetCoverOptions().Rows,
			Columns:     gen.DefaultSetCoverOptions().Columns,
			Density:     gen.DefaultSetCoverOptions().Density,
			Seed:        0,
		},
	}
}

// Load reads a YAML file over the defaults: keys present in the file
// override Default, unknown keys are an error.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and consistency across the whole tree. Heuristic
// and generator parameter sets are validated by their owning packages.
func (c Config) Validate() error {
	if _, err := polish.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy %q", ErrBadConfig, c.Strategy)
	}
	if c.Pool.Size < 1 {
		return fmt.Errorf("%w: pool.size=%d, want >= 1", ErrBadConfig, c.Pool.Size)
	}
	if c.Trigger.Nodes < 0 || c.Trigger.Time < 0 || c.Trigger.Frequency < 0 {
		return fmt.Errorf("%w: trigger criteria must be non-negative", ErrBadConfig)
	}
	if c.Budget.AbsoluteTime < 0 || c.Budget.ProportionalTime < 0 || c.Budget.ExtraNodes < 0 {
		return fmt.Errorf("%w: budget criteria must be non-negative", ErrBadConfig)
	}
	if c.SubMIP.NodeLimit < 0 || c.SubMIP.UnsuccessfulLimit < 0 {
		return fmt.Errorf("%w: submip limits must be non-negative", ErrBadConfig)
	}
	if c.Solver.MaxNodes < 0 || c.Solver.TimeLimit < 0 {
		return fmt.Errorf("%w: solver limits must be non-negative", ErrBadConfig)
	}
	if err := c.RothbergOptions().Validate(); err != nil {
		return err
	}
	if err := c.MaravilhaOptions().Validate(); err != nil {
		return err
	}

	switch c.Instance.Kind {
	case KindKnapsack:
		return c.KnapsackOptions().Validate()
	case KindSetCover:
		return c.SetCoverOptions().Validate()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownInstance, c.Instance.Kind)
	}
}

// ParsedStrategy returns the strategy enum. Call Validate first; unknown
// names degrade to StrategyNone here.
func (c Config) ParsedStrategy() polish.Strategy {
	s, err := polish.ParseStrategy(c.Strategy)
	if err != nil {
		return polish.StrategyNone
	}

	return s
}

// RothbergOptions assembles the polish options from the Rothberg block plus
// the shared seed and sub-MIP limits.
func (c Config) RothbergOptions() polish.RothbergOptions {
	return polish.RothbergOptions{
		Recombinations:       c.Rothberg.Recombinations,
		Mutations:            c.Rothberg.Mutations,
		FixingFraction:       c.Rothberg.FixingFraction,
		OffsetInit:           c.Rothberg.OffsetInit,
		OffsetReduction:      c.Rothberg.OffsetReduction,
		OffsetMinimum:        c.Rothberg.OffsetMinimum,
		Seed:                 c.Seed,
		SubNodeLimit:         c.SubMIP.NodeLimit,
		SubUnsuccessfulLimit: c.SubMIP.UnsuccessfulLimit,
	}
}

// MaravilhaOptions assembles the polish options from the Maravilha block
// plus the shared seed and sub-MIP limits.
func (c Config) MaravilhaOptions() polish.MaravilhaOptions {
	return polish.MaravilhaOptions{
		Iterations:           c.Maravilha.Iterations,
		SubMIPMin:            c.Maravilha.SubMIPMin,
		SubMIPMax:            c.Maravilha.SubMIPMax,
		Offset:               c.Maravilha.Offset,
		Seed:                 c.Seed,
		SubNodeLimit:         c.SubMIP.NodeLimit,
		SubUnsuccessfulLimit: c.SubMIP.UnsuccessfulLimit,
	}
}

// instanceSeed resolves the instance seed: per-instance override first, run
// seed otherwise.
func (c Config) instanceSeed() int64 {
	if c.Instance.Seed != 0 {
		return c.Instance.Seed
	}

	return c.Seed
}

// KnapsackOptions assembles the generator options for a knapsack instance.
func (c Config) KnapsackOptions() gen.KnapsackOptions {
	return gen.KnapsackOptions{
		Items:       c.Instance.Size,
		Constraints: c.Instance.Constraints,
		Tightness:   c.Instance.Tightness,
		Seed:        c.instanceSeed(),
	}
}

// SetCoverOptions assembles the generator options for a set cover instance.
func (c Config) SetCoverOptions() gen.SetCoverOptions {
	return gen.SetCoverOptions{
		Rows:    c.Instance.Rows,
		Columns: c.Instance.Columns,
		Density: c.Instance.Density,
		Seed:    c.instanceSeed(),
	}
}

// BuildInstance generates the configured problem.
func (c Config) BuildInstance() (*mip.Problem, error) {
	switch c.Instance.Kind {
	case KindKnapsack:
		return gen.Knapsack(c.KnapsackOptions())
	case KindSetCover:
		return gen.SetCover(c.SetCoverOptions())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstance, c.Instance.Kind)
	}
}

// NewPool builds the solution pool for a problem of the given sense.
func (c Config) NewPool(sense mip.Sense) (*solpool.Pool, error) {
	return solpool.New(sense, c.Pool.Size, c.Pool.Sorted)
}
