// Package config loads and validates run configuration for the solve
// harness. The surface mirrors the CLI parameter families of the polishing
// layer one to one: general run knobs, trigger and budget criteria, sub-MIP
// limits, per-heuristic parameter sets, solver limits, and the instance to
// generate. YAML decoding is strict - unknown keys are an error - so typos
// never silently fall back to defaults.
//
// Adapter methods translate the flat configuration into the option types of
// the gen and polish packages; validation delegates to those packages'
// Validate methods wherever one exists.
package config
