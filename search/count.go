package search

import "github.com/katalvlaran/trailcore/core"

// Counts holds per-weight totals of two-round trail cores: All counts
// every core, Kernel only those whose parity profile lies in the
// column-parity kernel. Index i is the number of cores of weight i.
type Counts struct {
	All    []uint64
	Kernel []uint64
}

// CountTrailCores enumerates every canonical two-round trail core of
// total weight at most maxWeight: the column tree generates the parity
// profiles, and each complete node seeds an orbital tree that adds the
// parity-preserving completions.
func CountTrailCores(maxWeight int) Counts {
	counts := Counts{
		All:    make([]uint64, maxWeight+1),
		Kernel: make([]uint64, maxWeight+1),
	}

	itRun := core.NewRunIterator(core.NewStack(), maxWeight)
	for !itRun.End() {
		node := itRun.Current()
		if node.Weight() <= maxWeight && node.Complete {
			yMin, kernel := LoadYMin(node)
			cache := core.NewSeededStack(node.StateA, node.StateB, node.W0, node.W1, node.Complete, node.ZPeriod)
			itOrb := core.NewOrbitalIterator(core.NewOrbitalsSet(kernel, yMin), cache, maxWeight)
			for !itOrb.End() {
				w := itOrb.Current().Weight()
				counts.All[w]++
				if kernel {
					counts.Kernel[w]++
				}
				itOrb.Advance()
			}
		}
		itRun.Advance()
	}
	return counts
}
