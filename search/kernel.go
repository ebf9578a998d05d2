package search

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/trailcore/core"
	"github.com/katalvlaran/trailcore/state"
	"github.com/katalvlaran/trailcore/trail"
)

// InKernel reports whether both halves of a core keep every column free
// of single active cells, state B taken after dispersion.
func InKernel(c core.TrailCore) bool {
	b := c.StateB
	state.ApplyDispersion(&b)
	sumA := c.StateA.Sums()
	sumB := b.Sums()
	for z := 0; z < state.LaneSize; z++ {
		if sumA[z] == 1 || sumB[z] == 1 {
			return false
		}
	}
	return true
}

// CountInKernelTrails extends every in-kernel two-round core forward
// and backward by one round, keeps the extensions that stay in the
// kernel, and returns the per-weight histogram of the surviving
// rounds-round trails together with the number of in-kernel cores
// visited.
func CountInKernelTrails(rounds, maxWeight int) ([]int, int, error) {
	budget := coreBudget(rounds, maxWeight)
	var stats []int
	cores := 0

	itRun := core.NewRunIterator(core.NewStack(), budget)
	// Skip the root; it is always the empty trail core.
	itRun.Advance()

	for !itRun.End() {
		node := itRun.Current()
		if node.Weight() <= budget && node.Complete {
			yMin, kernel := LoadYMin(node)
			cache := core.NewSeededStack(node.StateA, node.StateB, node.W0, node.W1, true, node.ZPeriod)
			itOrb := core.NewOrbitalIterator(core.NewOrbitalsSet(kernel, yMin), cache, budget)

			for !itOrb.End() {
				c := itOrb.Current()
				if InKernel(c) {
					cores++
					var err error
					if stats, err = kernelExtensions(c, rounds, maxWeight, stats); err != nil {
						return nil, 0, err
					}
				}
				itOrb.Advance()
			}
		}
		itRun.Advance()
	}
	return stats, cores, nil
}

// kernelExtensions extends c one round forward and one round backward,
// filters both extension sets to the kernel, and accumulates stats.
func kernelExtensions(c core.TrailCore, rounds, maxWeight int, stats []int) ([]int, error) {
	fwd := trail.FromCore(c)
	if err := fwd.ExtendForward(maxWeight); err != nil {
		return stats, err
	}
	fwd.RemoveOutsideKernel(rounds)
	stats = fwd.Stats(rounds, stats)
	for i := range fwd.Trails {
		logrus.Debug(fwd.Trails[i].String())
	}

	bwd := trail.FromCore(c)
	if err := bwd.ExtendBackward(maxWeight); err != nil {
		return stats, err
	}
	bwd.RemoveOutsideKernel(rounds)
	stats = bwd.Stats(rounds, stats)
	for i := range bwd.Trails {
		logrus.Debug(bwd.Trails[i].String())
	}
	return stats, nil
}

// BruteforceInKernel walks the orbital tree over the empty state and
// returns the lowest-weight in-kernel core (state B dispersed) together
// with the number of in-kernel cores visited.
func BruteforceInKernel(maxWeight int) (core.TrailCore, int) {
	yMin := make([]int, state.LaneSize)
	cache := core.NewSeededStack(state.State{}, state.State{}, 0, 0, true, state.LaneSize)
	it := core.NewOrbitalIterator(core.NewOrbitalsSet(true, yMin), cache, maxWeight)

	minWeight := math.MaxInt
	cores := 0
	var best core.TrailCore

	// Skip the root; it is always the empty trail core.
	it.Advance()
	for !it.End() {
		c := it.Current()
		if InKernel(c) {
			cores++
			if w := c.Weight(); w < minWeight && w <= maxWeight {
				minWeight = w
				state.ApplyDispersion(&c.StateB)
				best = c
				logrus.WithField("weight", w).Infof("search: in-kernel core\n%s", c)
			}
		}
		it.Advance()
	}
	return best, cores
}
