// Package polish - heuristic options with defaults and range validation.
//
// Defaults reproduce the published parameterization of both heuristics.
// Validate enforces the documented ranges once, at the configuration
// boundary; the engines clamp their own adaptive state afterwards and do not
// re-check these invariants in hot loops.
package polish

import "fmt"

// RothbergOptions parameterize the mutation/recombination heuristic.
type RothbergOptions struct {
	// Recombinations is the number of recombination sub-problems per pass.
	// Must be at least 1: one iteration, chosen at random, recombines the
	// whole pool instead of a pair.
	Recombinations int

	// Mutations is the number of mutation sub-problems per pass.
	Mutations int

	// FixingFraction is the initial share of binary variables fixed by a
	// mutation, in [0,1]. The engine adapts it between passes.
	FixingFraction float64

	// OffsetInit is the initial step applied when adapting FixingFraction,
	// in [0,1].
	OffsetInit float64

	// OffsetReduction is the multiplicative cooling applied to the offset
	// after each mutation phase, in [0,1].
	OffsetReduction float64

	// OffsetMinimum floors the cooled offset, in [0,1].
	OffsetMinimum float64

	// Seed drives all randomness. Zero selects a fixed default stream.
	Seed int64

	// SubNodeLimit caps the nodes of each sub-solve. Zero means unlimited.
	SubNodeLimit int64

	// SubUnsuccessfulLimit aborts a sub-solve after this many nodes without
	// incumbent improvement. Zero means unlimited.
	SubUnsuccessfulLimit int64
}

// DefaultRothbergOptions returns the published defaults:
// 40 recombinations, 20 mutations, fixing fraction 0.5, offset 0.2 cooled by
// 0.25 down to 0.01, sub-solves capped at 500 nodes.
func DefaultRothbergOptions() RothbergOptions {
	return RothbergOptions{
		Recombinations:       40,
		Mutations:            20,
		FixingFraction:       0.5,
		OffsetInit:           0.2,
		OffsetReduction:      0.25,
		OffsetMinimum:        0.01,
		Seed:                 0,
		SubNodeLimit:         500,
		SubUnsuccessfulLimit: 0,
	}
}

// Validate checks documented ranges. It returns ErrBadOption (wrapped with
// the offending field) on the first violation.
func (o RothbergOptions) Validate() error {
	if o.Recombinations < 1 {
		return fmt.Errorf("%w: Recombinations=%d, want >= 1", ErrBadOption, o.Recombinations)
	}
	if o.Mutations < 0 {
		return fmt.Errorf("%w: Mutations=%d, want >= 0", ErrBadOption, o.Mutations)
	}
	if !inUnitRange(o.FixingFraction) {
		return fmt.Errorf("%w: FixingFraction=%g, want in [0,1]", ErrBadOption, o.FixingFraction)
	}
	if !inUnitRange(o.OffsetInit) {
		return fmt.Errorf("%w: OffsetInit=%g, want in [0,1]", ErrBadOption, o.OffsetInit)
	}
	if !inUnitRange(o.OffsetReduction) {
		return fmt.Errorf("%w: OffsetReduction=%g, want in [0,1]", ErrBadOption, o.OffsetReduction)
	}
	if !inUnitRange(o.OffsetMinimum) {
		return fmt.Errorf("%w: OffsetMinimum=%g, want in [0,1]", ErrBadOption, o.OffsetMinimum)
	}
	if o.SubNodeLimit < 0 {
		return fmt.Errorf("%w: SubNodeLimit=%d, want >= 0", ErrBadOption, o.SubNodeLimit)
	}
	if o.SubUnsuccessfulLimit < 0 {
		return fmt.Errorf("%w: SubUnsuccessfulLimit=%d, want >= 0", ErrBadOption, o.SubUnsuccessfulLimit)
	}

	return nil
}

// MaravilhaOptions parameterize the adaptive biased-sampling heuristic.
type MaravilhaOptions struct {
	// Iterations is the number of sub-problems per pass.
	Iterations int

	// SubMIPMin and SubMIPMax bound the share of binary variables freed per
	// sub-problem, both in [0,1] with SubMIPMin <= SubMIPMax initially. The
	// engine adapts both ends between iterations and keeps each inside [0,1];
	// their ordering is not re-enforced afterwards.
	SubMIPMin float64
	SubMIPMax float64

	// Offset scales how fast the [SubMIPMin, SubMIPMax] band contracts, in
	// [0,1].
	Offset float64

	// Seed drives all randomness. Zero selects a fixed default stream.
	Seed int64

	// SubNodeLimit caps the nodes of each sub-solve. Zero means unlimited.
	SubNodeLimit int64

	// SubUnsuccessfulLimit aborts a sub-solve after this many nodes without
	// incumbent improvement. Zero means unlimited.
	SubUnsuccessfulLimit int64
}

// DefaultMaravilhaOptions returns the published defaults: a single iteration
// per pass over the band [0.00, 0.65] contracting by 0.45, sub-solves capped
// at 500 nodes.
func DefaultMaravilhaOptions() MaravilhaOptions {
	return MaravilhaOptions{
		Iterations:           1,
		SubMIPMin:            0.00,
		SubMIPMax:            0.65,
		Offset:               0.45,
		Seed:                 0,
		SubNodeLimit:         500,
		SubUnsuccessfulLimit: 0,
	}
}

// Validate checks documented ranges. It returns ErrBadOption (wrapped with
// the offending field) on the first violation.
func (o MaravilhaOptions) Validate() error {
	if o.Iterations < 0 {
		return fmt.Errorf("%w: Iterations=%d, want >= 0", ErrBadOption, o.Iterations)
	}
	if !inUnitRange(o.SubMIPMin) {
		return fmt.Errorf("%w: SubMIPMin=%g, want in [0,1]", ErrBadOption, o.SubMIPMin)
	}
	if !inUnitRange(o.SubMIPMax) {
		return fmt.Errorf("%w: SubMIPMax=%g, want in [0,1]", ErrBadOption, o.SubMIPMax)
	}
	if o.SubMIPMin > o.SubMIPMax {
		return fmt.Errorf("%w: SubMIPMin=%g > SubMIPMax=%g", ErrBadOption, o.SubMIPMin, o.SubMIPMax)
	}
	if !inUnitRange(o.Offset) {
		return fmt.Errorf("%w: Offset=%g, want in [0,1]", ErrBadOption, o.Offset)
	}
	if o.SubNodeLimit < 0 {
		return fmt.Errorf("%w: SubNodeLimit=%d, want >= 0", ErrBadOption, o.SubNodeLimit)
	}
	if o.SubUnsuccessfulLimit < 0 {
		return fmt.Errorf("%w: SubUnsuccessfulLimit=%d, want >= 0", ErrBadOption, o.SubUnsuccessfulLimit)
	}

	return nil
}

// inUnitRange reports x in [0,1]. NaN fails both bounds and is rejected.
func inUnitRange(x float64) bool {
	return x >= 0 && x <= 1
}
