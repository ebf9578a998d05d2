package search

import (
	"github.com/katalvlaran/trailcore/core"
	"github.com/katalvlaran/trailcore/state"
)

// LoadYMin inspects the state before the nonlinear step and returns,
// per column, the minimum y-position where orbitals may be placed,
// together with a flag telling whether the core lies in the
// column-parity kernel. Affected columns take no orbitals at all; an
// odd unaffected column admits orbitals only above its single active
// bit.
func LoadYMin(c core.TrailCore) ([]int, bool) {
	parity := c.StateA.Parity()
	effect := state.ThetaEffect(parity)

	yMin := make([]int, state.LaneSize)
	kernel := true
	for z := 0; z < state.LaneSize; z++ {
		odd := (parity>>(state.LaneSize-1-z))&1 != 0
		if odd {
			kernel = false
		}
		affected := (effect>>(state.LaneSize-1-z))&1 != 0
		switch {
		case affected:
			yMin[z] = state.ColumnSize
		case odd:
			for y := 0; y < state.ColumnSize; y++ {
				if c.StateA.Bit(y, z) {
					yMin[z] = y + 1
					break
				}
			}
		}
	}
	return yMin, kernel
}
