package core

import (
	"fmt"

	"github.com/katalvlaran/trailcore/state"
)

// Orbital is a pair of active bits at y-positions (Y0, Y1) of the
// column at Z, placed identically in both halves of a trail core. It
// preserves the column parity and contributes 4 to the total weight.
// Invariant: Y0 < Y1 < ColumnSize.
type Orbital struct {
	// Y0 is the y-coordinate of the lower bit.
	Y0 int
	// Y1 is the y-coordinate of the upper bit.
	Y1 int
	// Z is the z-coordinate of the column, 0 ≤ Z < LaneSize.
	Z int
}

// First positions o at the first admissible orbital with respect to the
// order (z, y0, y1), honoring the per-column floor yMin. Returns false
// when no admissible position exists.
func (o *Orbital) First(yMin []int) bool {
	o.Z = 0
	o.Y0 = yMin[o.Z]
	for o.Y0 >= state.ColumnSize-1 {
		if o.Z >= state.LaneSize-1 {
			return false
		}
		o.Z++
		o.Y0 = yMin[o.Z]
	}
	o.Y1 = o.Y0 + 1
	return true
}

// Next advances o to the next admissible orbital in (z, y0, y1) order,
// honoring yMin. Returns false when o was the last one.
func (o *Orbital) Next(yMin []int) bool {
	if o.Y1 < state.ColumnSize-1 {
		o.Y1++
		return true
	}
	if o.Y0 < state.ColumnSize-2 {
		o.Y0++
		o.Y1 = o.Y0 + 1
		return true
	}
	for {
		if o.Z >= state.LaneSize-1 {
			return false
		}
		o.Z++
		o.Y0 = yMin[o.Z]
		if o.Y0 < state.ColumnSize-1 {
			break
		}
	}
	o.Y1 = o.Y0 + 1
	return true
}

// SuccessorOf positions o at the first admissible orbital after other:
// in the same column with y-coordinates above other's, or in a later
// column at its yMin floor. Returns false when none remains.
func (o *Orbital) SuccessorOf(other Orbital, yMin []int) bool {
	o.Z = other.Z
	o.Y0 = other.Y1 + 1
	for o.Y0 >= state.ColumnSize-1 {
		if o.Z >= state.LaneSize-1 {
			return false
		}
		o.Z++
		o.Y0 = yMin[o.Z]
	}
	o.Y1 = o.Y0 + 1
	return true
}

// String renders the orbital as (z,(y0,y1)).
func (o Orbital) String() string {
	return fmt.Sprintf("(%d,(%d,%d))", o.Z, o.Y0, o.Y1)
}

// Column is a column assignment: a ColumnSize-bit value placed at Z,
// classified by parity (Odd) and by whether the θ-effect hits the
// column (Affected). Entangled marks an unaffected odd column sharing
// its z with a previously placed affected even column, whose value is
// then constrained to the y=0 bit. Index tracks the position within
// the kind's value table to speed up iteration.
type Column struct {
	// Z is the z-coordinate of the column.
	Z int
	// Value holds the ColumnSize column bits in the low bits of the byte.
	Value uint8
	// Odd is the parity of the column.
	Odd bool
	// Affected is the θ-effect on the column.
	Affected bool
	// Entangled marks a column sharing its z with an earlier one.
	Entangled bool
	// Index is the current position within the kind's value table.
	Index int
}

// InverseValue returns the complement of the column value within the
// ColumnSize-bit space.
func (c Column) InverseValue() uint8 {
	return uint8((1<<state.ColumnSize)-1) ^ c.Value
}

// String renders the column as (z,value).
func (c Column) String() string {
	return fmt.Sprintf("(%d,%d)", c.Z, c.Value)
}
