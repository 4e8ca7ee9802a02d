// Package polish - the shared bound-fixing convention.
//
// Both heuristics restrict the problem the same way: a chosen subset of
// binary variables is pinned to a reference solution's rounded values while
// every other variable keeps its original bounds. The mip.SubMIP workspace
// supplies the bound overrides (ResetBounds restores, Fix pins); this file
// supplies the rounding convention they share.
package polish

// roundBinary maps a reference value to the binary bound it fixes: 1 when
// the value exceeds 0.5, otherwise 0. Solver noise around integrality
// (values like 0.9999998) lands on the intended bound.
func roundBinary(v float64) float64 {
	if v > 0.5 {
		return 1
	}
	return 0
}
