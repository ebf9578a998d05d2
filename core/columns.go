package core

import (
	"github.com/katalvlaran/trailcore/state"
	"github.com/katalvlaran/trailcore/tree"
)

// Value tables of the generated column kinds. Affected odd columns are
// never generated directly: they emerge as an unaffected odd column and
// an affected even column sharing the same z.
var (
	// UOValues are the values of unaffected odd columns.
	UOValues = []uint8{0x01, 0x02, 0x04, 0x08}
	// AEValues are the values of affected even columns.
	AEValues = []uint8{0x00, 0x03, 0x05, 0x06, 0x09, 0x0A, 0x0C, 0x0F}
	// AOValues are the values of affected odd columns.
	AOValues = []uint8{0x01, 0x02, 0x04, 0x07, 0x08, 0x0B, 0x0D, 0x0E}
)

// ColumnsSet enumerates column assignments, interleaving unaffected odd
// and affected even columns into runs. It implements
// tree.UnitSet[Column, *Stack].
type ColumnsSet struct{}

// FirstChild returns the first column assignment extending list. The
// very first column is an unaffected odd one at z=0; an unaffected odd
// column is followed by an affected even one in the next z; an affected
// even column is followed by the unaffected odd column that continues
// the run, entangled into the same z when the even value leaves y=0
// free.
func (s ColumnsSet) FirstChild(list []Column) (Column, error) {
	var c Column

	if len(list) == 0 {
		c = Column{Z: 0, Odd: true, Value: UOValues[0]}
		return c, nil
	}

	last := list[len(list)-1]
	switch {
	case !last.Affected && last.Odd:
		// UOC -> AEC in the next column.
		c.Affected = true
		c.Z = (last.Z + 1) % state.LaneSize
		c.Value = AEValues[0]
		c.Entangled = s.checkEntanglement(list, c)

	case last.Affected && !last.Odd:
		// AEC -> UOC continuing the run.
		if last.Z == 0 {
			return c, tree.ErrEndOfSet
		}
		c.Odd = true
		c.Value = UOValues[0]
		if last.Value&1 != 0 {
			// y=0 is taken; the run continues in the next column.
			if last.Z+1 >= state.LaneSize {
				return c, tree.ErrEndOfSet
			}
			c.Z = last.Z + 1
		} else {
			c.Z = last.Z
			c.Entangled = true
		}

	default:
		return c, tree.ErrEndOfSet
	}
	return c, nil
}

// checkEntanglement reports whether current shares its z with a column
// of list such that not both are affected.
func (s ColumnsSet) checkEntanglement(list []Column, current Column) bool {
	for i := range list {
		if current.Z == list[i].Z && !(current.Affected && list[i].Affected) {
			return true
		}
	}
	return false
}

// Iterate advances cur through its kind's value table. An entangled
// unaffected odd column has no siblings (its value is pinned to y=0),
// and the very first column of the tree cannot leave z=0.
func (s ColumnsSet) Iterate(list []Column, cur *Column) error {
	switch {
	case !cur.Affected && cur.Odd:
		if cur.Entangled {
			return tree.ErrEndOfSet
		}
		if cur.Index >= len(UOValues)-1 {
			return tree.ErrEndOfSet
		}
		cur.Index++
		cur.Value = UOValues[cur.Index]

	case cur.Affected && !cur.Odd:
		if cur.Index >= len(AEValues)-1 {
			return tree.ErrEndOfSet
		}
		cur.Index++
		cur.Value = AEValues[cur.Index]
	}

	if len(list) == 0 && cur.Z > 0 {
		return tree.ErrEndOfSet
	}
	return nil
}

// Compare orders columns: unaffected before affected, then by z, then
// by value.
func (s ColumnsSet) Compare(first, second Column) tree.Order {
	switch {
	case !first.Affected && second.Affected:
		return tree.Smaller
	case first.Affected && !second.Affected:
		return tree.Greater
	case first.Z < second.Z:
		return tree.Smaller
	case first.Z > second.Z:
		return tree.Greater
	case first.Value < second.Value:
		return tree.Smaller
	case first.Value > second.Value:
		return tree.Greater
	}
	return tree.Equal
}

// IsCanonical reports whether list is z-canonical under the column
// order. Shortcuts: a root with no z-symmetry accepts everything; a
// list not starting at z=0 is rejected; a list ending in an odd column
// is an intermediate state whose completion is tested on the next push.
// Otherwise translations by every distinct nonzero z in the list are
// compared, and the first shift mapping the list onto itself is
// recorded as the node period.
func (s ColumnsSet) IsCanonical(list []Column, cache *Stack) bool {
	cache.NodePeriod = state.LaneSize

	if cache.RootPeriod == state.LaneSize {
		return true
	}
	if list[0].Z != 0 {
		return false
	}
	if list[len(list)-1].Odd {
		return true
	}

	lastZ := 0
	for i := range list {
		z := list[i].Z
		if z == 0 || z <= lastZ {
			// Translation by z was already considered.
			continue
		}
		lastZ = z
		tau := translateColumns(list, i, z)
		switch compareColumnLists(s, tau, list) {
		case tree.Smaller:
			return false
		case tree.Equal:
			cache.NodePeriod = z
			return true
		}
	}
	return true
}

// Push adds the column to the cache.
func (s ColumnsSet) Push(cache *Stack, u Column) {
	cache.PushColumn(u)
}

// translateColumns builds the list translated by shift, keeping the
// original ordering of the rotated segments.
func translateColumns(list []Column, split, shift int) []Column {
	tau := make([]Column, 0, len(list))
	for j := split; j < len(list); j++ {
		c := list[j]
		c.Z = (c.Z - shift + state.LaneSize) % state.LaneSize
		tau = append(tau, c)
	}
	for j := 0; j < split; j++ {
		c := list[j]
		c.Z = (c.Z - shift + state.LaneSize) % state.LaneSize
		tau = append(tau, c)
	}
	return tau
}

// compareColumnLists compares tau against list element by element; the
// first non-equal pair decides.
func compareColumnLists(s ColumnsSet, tau, list []Column) tree.Order {
	for k := range list {
		if cmp := s.Compare(tau[k], list[k]); cmp != tree.Equal {
			return cmp
		}
	}
	return tree.Equal
}
