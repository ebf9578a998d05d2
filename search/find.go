package search

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trailcore/core"
	"github.com/katalvlaran/trailcore/trail"
)

// Default CLI parameters.
const (
	// DefaultRounds is the default number of rounds to search.
	DefaultRounds = 5
	// DefaultMaxWeight is the default total weight budget.
	DefaultMaxWeight = 30
)

// dispatchDelay spaces out task dispatch so the load average can react.
const dispatchDelay = 200 * time.Millisecond

// coreBudget is the two-round weight budget used to seed rounds-round
// extension work within maxWeight.
func coreBudget(rounds, maxWeight int) int {
	return (maxWeight/rounds)*2 + 1
}

// FindTrails searches the best rounds-round trail of total weight at
// most maxWeight. Every complete two-round core emitted by the column
// tree is handed to an extension task running on its own iterators and
// stacks; tasks append candidate trails to a shared partial-results
// slice under a mutex. Partial results are kept even when a peer task
// fails. The returned trail is empty when nothing was found.
func FindTrails(rounds, maxWeight int) (trail.Trail, error) {
	budget := coreBudget(rounds, maxWeight)
	hw := float64(runtime.NumCPU())

	var (
		mu      sync.Mutex
		partial []trail.Trail
		g       errgroup.Group
	)

	itRun := core.NewRunIterator(core.NewStack(), budget)
	// Skip the root; it is always the empty trail core.
	itRun.Advance()

	tasks := 0
	for !itRun.End() {
		node := itRun.Current()
		if node.Weight() <= budget && node.Complete {
			// Pause dispatch while the machine is saturated.
			for loadAverage() > hw {
				time.Sleep(time.Second)
			}
			tasks++
			g.Go(func() error {
				return findFromCore(rounds, maxWeight, node, &mu, &partial)
			})
			time.Sleep(dispatchDelay)
		}
		itRun.Advance()
	}
	logrus.WithField("tasks", tasks).Info("search: extension tasks dispatched")

	err := g.Wait()
	if err != nil {
		logrus.WithError(err).Warn("search: extension task failed; keeping partial results")
	}

	bestWeight := math.MaxInt
	var best trail.Trail
	for i := range partial {
		if partial[i].TotalWeight < bestWeight {
			bestWeight = partial[i].TotalWeight
			best = partial[i]
		}
	}
	return best, err
}

// findFromCore runs the orbital tree over one parity profile and
// extends every emitted core to rounds rounds, publishing the best
// result into partial when no better one is already there.
func findFromCore(rounds, maxWeight int, node core.TrailCore, mu *sync.Mutex, partial *[]trail.Trail) error {
	minWeight := math.MaxInt
	var best trail.Trail

	yMin, kernel := LoadYMin(node)
	cache := core.NewSeededStack(node.StateA, node.StateB, node.W0, node.W1, true, node.ZPeriod)
	it := core.NewOrbitalIterator(core.NewOrbitalsSet(kernel, yMin), cache, coreBudget(rounds, maxWeight))

	for !it.End() {
		ext := trail.FromCore(it.Current())
		for i := 0; i < rounds-2; i++ {
			if err := ext.ExtendForward(maxWeight); err != nil {
				return err
			}
		}
		for i := 0; i < rounds-2; i++ {
			if err := ext.ExtendBackward(maxWeight); err != nil {
				return err
			}
		}

		t, err := ext.BestTrail(rounds)
		if err != nil {
			return err
		}
		if t.Len() == rounds && t.TotalWeight > 0 && t.TotalWeight < minWeight && t.TotalWeight <= maxWeight {
			minWeight = t.TotalWeight
			best = t
		}
		it.Advance()
	}

	if best.Len() != rounds {
		return nil
	}

	mu.Lock()
	add := true
	for i := range *partial {
		if (*partial)[i].TotalWeight < minWeight {
			add = false
			break
		}
	}
	if add {
		*partial = append(*partial, best)
	}
	mu.Unlock()

	if add {
		logrus.WithField("weight", best.TotalWeight).Infof("search: best trail updated\n%s", best.String())
	}
	return nil
}
