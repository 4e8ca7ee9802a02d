// Package gen builds seeded random binary-program instances for the solve
// harness and integration tests: multidimensional knapsacks (maximize) and
// set covers (minimize). Generation is fully deterministic for a given seed;
// a zero seed selects a fixed default stream, so default runs reproduce.
//
// The generators only promise structural soundness - validated problems,
// every cover row coverable, capacities strictly positive - not any
// particular hardness profile. Instance difficulty is steered coarsely via
// Tightness (knapsack) and Density (set cover).
//
// No logging, no panics on user input - only sentinel errors from types.go.
package gen
