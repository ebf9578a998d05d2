package trail

import (
	"math"

	"github.com/katalvlaran/trailcore/core"
	"github.com/katalvlaran/trailcore/state"
)

// Extension expands a set of trails outward through the θ-branching of
// the linear layer, one round per pass.
type Extension struct {
	// Trails is the current working set; every pass rewrites it.
	Trails []Trail
}

// FromCore seeds an extension with a two-round trail core: state A
// followed by the dispersed state B, weighted w0 and w1.
func FromCore(c core.TrailCore) *Extension {
	var t Trail
	t.Append(c.StateA, c.W0)
	b := c.StateB
	state.ApplyDispersion(&b)
	t.Append(b, c.W1)
	return &Extension{Trails: []Trail{t}}
}

// FromTrail seeds an extension with an existing trail.
func FromTrail(t Trail) *Extension {
	return &Extension{Trails: []Trail{t.Clone()}}
}

// ExtendForward replaces every trail by its one-round forward
// extensions within maxWeight total weight. The weight already spent
// from the seed core onward is subtracted from the budget, and the
// per-round lower bound is max(1, w_init + w_init+1 − w_last). Trails
// with no compatible successor are kept as they are.
func (e *Extension) ExtendForward(maxWeight int) error {
	var next []Trail
	for i := range e.Trails {
		t := &e.Trails[i]

		spent := 0
		for j := t.InitialIndex; j < t.Len(); j++ {
			spent += t.Weights[j]
		}
		min := t.Weights[t.InitialIndex] + t.Weights[t.InitialIndex+1] - t.Weights[t.Len()-1]
		if min < 1 {
			min = 1
		}

		compatible, err := state.ThetaCompatibleStates(t.States[t.Len()-1], min, maxWeight-spent)
		if err != nil {
			return err
		}
		if len(compatible) == 0 {
			next = append(next, t.Clone())
			continue
		}
		for _, s := range compatible {
			tn := t.Clone()
			state.ApplyDispersion(&s)
			tn.Append(s, s.HammingWeight())
			next = append(next, tn)
		}
	}
	e.Trails = next
	return nil
}

// ExtendBackward is the symmetric pass: the first state is pulled back
// through the inverse dispersion, its θ-compatible predecessors are
// enumerated, and each one is prepended.
func (e *Extension) ExtendBackward(maxWeight int) error {
	var next []Trail
	for i := range e.Trails {
		t := &e.Trails[i]

		spent := 0
		for j := 0; j < 2+t.InitialIndex; j++ {
			spent += t.Weights[j]
		}
		min := t.Weights[t.InitialIndex] + t.Weights[t.InitialIndex+1] - t.Weights[0]
		if min < 1 {
			min = 1
		}

		front := t.States[0]
		state.ApplyInverseDispersion(&front)
		compatible, err := state.ThetaCompatibleStates(front, min, maxWeight-spent)
		if err != nil {
			return err
		}
		if len(compatible) == 0 {
			next = append(next, t.Clone())
			continue
		}
		for _, s := range compatible {
			tn := t.Clone()
			tn.Prepend(s, s.HammingWeight())
			next = append(next, tn)
		}
	}
	e.Trails = next
	return nil
}

// BestTrail prunes every trail to rounds and returns the candidate with
// the strictly lowest total weight, or an empty trail when none prunes
// successfully.
func (e *Extension) BestTrail(rounds int) (Trail, error) {
	bestWeight := math.MaxInt
	var best Trail
	for i := range e.Trails {
		t := e.Trails[i].Clone()
		ok, err := t.Prune(rounds, bestWeight)
		if err != nil {
			return Trail{}, err
		}
		if ok && t.TotalWeight < bestWeight {
			bestWeight = t.TotalWeight
			best = t
		}
	}
	return best, nil
}

// RemoveOutsideKernel drops every trail that leaves the column-parity
// kernel: a trail of the wrong length, with unequal per-round weights,
// or with any column holding exactly one active cell.
func (e *Extension) RemoveOutsideKernel(rounds int) {
	kept := e.Trails[:0]
	for i := range e.Trails {
		if !outsideKernel(&e.Trails[i], rounds) {
			kept = append(kept, e.Trails[i])
		}
	}
	e.Trails = kept
}

func outsideKernel(t *Trail, rounds int) bool {
	if t.Len() != rounds {
		return true
	}
	first := t.Weights[0]
	for _, w := range t.Weights {
		if w != first {
			return true
		}
	}
	for i := range t.States {
		sums := t.States[i].Sums()
		for z := 0; z < state.LaneSize; z++ {
			if sums[z] == 1 {
				return true
			}
		}
	}
	return false
}

// Stats accumulates the per-weight histogram of trails with exactly
// rounds states into stats, growing it as needed.
func (e *Extension) Stats(rounds int, stats []int) []int {
	for i := range e.Trails {
		t := &e.Trails[i]
		if t.Len() != rounds {
			continue
		}
		for len(stats) <= t.TotalWeight {
			stats = append(stats, 0)
		}
		stats[t.TotalWeight]++
	}
	return stats
}
