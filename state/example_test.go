package state_test

import (
	"fmt"

	"github.com/katalvlaran/trailcore/state"
)

// ExampleThetaEffect derives the effect vector of a single odd column.
func ExampleThetaEffect() {
	fmt.Printf("%#04x\n", state.ThetaEffect(0x0001))
	// Output:
	// 0xc800
}

// ExampleState_Parity shows the column parity of a two-row pattern.
func ExampleState_Parity() {
	var s state.State
	s.SetColumn(0x3, 0) // rows 0 and 1 of column 0
	fmt.Printf("%#04x\n", s.Parity())
	s.SetBit(2, 0) // a third cell flips the parity back on
	fmt.Printf("%#04x\n", s.Parity())
	// Output:
	// 0x0000
	// 0x8000
}
