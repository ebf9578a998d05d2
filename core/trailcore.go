package core

import (
	"fmt"

	"github.com/katalvlaran/trailcore/state"
	"github.com/katalvlaran/trailcore/tree"
)

// TrailCore is the output snapshot of a tree node: a two-round trail
// core with its weights, completeness and z-period.
type TrailCore struct {
	// StateA is the state before the nonlinear step of the first round.
	StateA state.State
	// StateB is the state before the linear layer of the second round.
	StateB state.State
	// W0 is the minimum reverse weight of A.
	W0 int
	// W1 is the weight of B.
	W1 int
	// Complete is false while an odd column still awaits its closing
	// affected column.
	Complete bool
	// ZPeriod is the z-period of the core; LaneSize means aperiodic.
	ZPeriod int
}

// Weight returns the total propagation weight w0+w1.
func (c TrailCore) Weight() int {
	return c.W0 + c.W1
}

// String renders both halves and the total weight.
func (c TrailCore) String() string {
	return fmt.Sprintf("At A:\n%v\nAt B:\n%v\nWith weight: %d", c.StateA, c.StateB, c.Weight())
}

// OrbitalIterator walks the orbital tree rooted at a (possibly seeded)
// cache.
type OrbitalIterator = tree.Iterator[Orbital, TrailCore, *Stack]

// RunIterator walks the column-assignment tree.
type RunIterator = tree.Iterator[Column, TrailCore, *Stack]

// NewOrbitalIterator builds an orbital-tree iterator over set and
// cache, pruned at maxCost.
func NewOrbitalIterator(set OrbitalsSet, cache *Stack, maxCost int) *OrbitalIterator {
	return tree.NewIterator[Orbital, TrailCore, *Stack](set, cache, OrbitalCost{}, maxCost)
}

// NewRunIterator builds a column-tree iterator over cache, pruned at
// maxCost.
func NewRunIterator(cache *Stack, maxCost int) *RunIterator {
	return tree.NewIterator[Column, TrailCore, *Stack](ColumnsSet{}, cache, ColumnCost{}, maxCost)
}
