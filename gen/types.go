// Package gen - sentinel errors and the shared RNG policy.
package gen

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by option validation.
var (
	// ErrBadSize - a dimension option (items, rows, columns, constraints)
	// is below its documented minimum.
	ErrBadSize = errors.New("gen: size option out of range")

	// ErrBadFraction - a fraction option (tightness, density) lies outside
	// its documented range.
	ErrBadFraction = errors.New("gen: fraction option out of range")
)

// defaultSeed is the fixed stream used when callers pass seed==0, keeping
// default runs reproducible.
const defaultSeed int64 = 1

// rngFromSeed applies the zero-seed policy and returns a deterministic stream.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
