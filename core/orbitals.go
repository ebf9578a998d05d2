package core

import (
	"github.com/katalvlaran/trailcore/state"
	"github.com/katalvlaran/trailcore/tree"
)

// OrbitalsSet enumerates orbitals over a trail core, with the lower bit
// of each orbital floored per column by YMin. It implements
// tree.UnitSet[Orbital, *Stack].
type OrbitalsSet struct {
	// Kernel indicates the root core is in the column-parity kernel;
	// canonicity then tests translations by every distinct z in the
	// list instead of multiples of the root period.
	Kernel bool
	// YMin holds, per column, the minimum y-coordinate of an orbital's
	// lower bit; a floor of ColumnSize-1 or above disables the column.
	YMin []int
}

// NewOrbitalsSet returns an orbital set with the given kernel flag and
// per-column floor.
func NewOrbitalsSet(kernel bool, yMin []int) OrbitalsSet {
	return OrbitalsSet{Kernel: kernel, YMin: yMin}
}

// FirstChild returns the first orbital extending list: the overall
// first admissible position for the empty list, otherwise the successor
// of the highest unit.
func (s OrbitalsSet) FirstChild(list []Orbital) (Orbital, error) {
	var o Orbital
	if len(list) == 0 {
		if !o.First(s.YMin) {
			return o, tree.ErrEndOfSet
		}
		return o, nil
	}
	if !o.SuccessorOf(list[len(list)-1], s.YMin) {
		return o, tree.ErrEndOfSet
	}
	return o, nil
}

// Iterate advances cur to the next admissible orbital.
func (s OrbitalsSet) Iterate(_ []Orbital, cur *Orbital) error {
	if !cur.Next(s.YMin) {
		return tree.ErrEndOfSet
	}
	return nil
}

// Compare orders orbitals lexicographically on (z, y0, y1).
func (s OrbitalsSet) Compare(first, second Orbital) tree.Order {
	switch {
	case first.Z < second.Z:
		return tree.Smaller
	case first.Z > second.Z:
		return tree.Greater
	case first.Y0 < second.Y0:
		return tree.Smaller
	case first.Y0 > second.Y0:
		return tree.Greater
	case first.Y1 < second.Y1:
		return tree.Smaller
	case first.Y1 > second.Y1:
		return tree.Greater
	}
	return tree.Equal
}

// IsCanonical reports whether list is z-canonical: no cyclic
// z-translation of the list precedes it in the unit order. In kernel
// mode the candidate shifts are the distinct nonzero z-values occurring
// in the list; outside the kernel only multiples of the root period are
// tested. The first shift that maps the list onto itself is recorded as
// the node period and ends the scan.
func (s OrbitalsSet) IsCanonical(list []Orbital, cache *Stack) bool {
	cache.NodePeriod = state.LaneSize

	if s.Kernel {
		if list[0].Z != 0 {
			return false
		}
		lastZ := 0
		for i := range list {
			z := list[i].Z
			if z == 0 || z <= lastZ {
				// Translation by z was already considered.
				continue
			}
			lastZ = z
			tau := translateOrbitals(list, i, z)
			switch compareOrbitalLists(s, tau, list) {
			case tree.Smaller:
				return false
			case tree.Equal:
				cache.NodePeriod = z
				return true
			}
		}
		return true
	}

	if cache.RootPeriod == 0 || cache.RootPeriod == state.LaneSize {
		return true
	}
	for z := cache.RootPeriod; z < state.LaneSize; z += cache.RootPeriod {
		split := 0
		for split < len(list) && list[split].Z < z {
			split++
		}
		tau := translateOrbitals(list, split, z)
		switch compareOrbitalLists(s, tau, list) {
		case tree.Smaller:
			return false
		case tree.Equal:
			cache.NodePeriod = z
			return true
		}
	}
	return true
}

// Push adds the orbital to the cache.
func (s OrbitalsSet) Push(cache *Stack, u Orbital) {
	cache.PushOrbital(u)
}

// translateOrbitals builds the list translated by shift, rotating the
// elements so that those at z ≥ shift come first with z reduced by
// shift and the remainder wraps around the lane.
func translateOrbitals(list []Orbital, split, shift int) []Orbital {
	tau := make([]Orbital, 0, len(list))
	for j := split; j < len(list); j++ {
		o := list[j]
		o.Z -= shift
		tau = append(tau, o)
	}
	for j := 0; j < split; j++ {
		o := list[j]
		o.Z = o.Z - shift + state.LaneSize
		tau = append(tau, o)
	}
	return tau
}

// compareOrbitalLists compares tau against list element by element; the
// first non-equal pair decides.
func compareOrbitalLists(s OrbitalsSet, tau, list []Orbital) tree.Order {
	for k := range list {
		if cmp := s.Compare(tau[k], list[k]); cmp != tree.Equal {
			return cmp
		}
	}
	return tree.Equal
}
