package trail

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/trailcore/state"
)

// ErrPrepopSeed indicates an attempt to remove a state of the seed
// two-round core from the front of a trail.
var ErrPrepopSeed = errors.New("trail: prepop would drop the seed trail core")

// Trail is an ordered sequence of states with per-round propagation
// weights. If S_i = States[i], the trail is S_0 χλ S_1 χλ … χλ S_{n-1}.
type Trail struct {
	// States lists the states round after round, before χ.
	States []state.State
	// Weights holds the propagation weight of each state; same length
	// as States.
	Weights []int
	// TotalWeight is the sum of Weights.
	TotalWeight int
	// InitialIndex is the position of the first half of the seed
	// two-round core within States.
	InitialIndex int
}

// Len returns the number of rounds in the trail.
func (t *Trail) Len() int {
	return len(t.States)
}

// Clear empties the trail.
func (t *Trail) Clear() {
	t.States = nil
	t.Weights = nil
	t.TotalWeight = 0
	t.InitialIndex = 0
}

// Append adds a state with its propagation weight to the end.
func (t *Trail) Append(s state.State, weight int) {
	t.States = append(t.States, s)
	t.Weights = append(t.Weights, weight)
	t.TotalWeight += weight
}

// Prepend inserts a state with its propagation weight at the front,
// shifting the seed reference accordingly.
func (t *Trail) Prepend(s state.State, weight int) {
	t.States = append([]state.State{s}, t.States...)
	t.Weights = append([]int{weight}, t.Weights...)
	t.TotalWeight += weight
	t.InitialIndex++
}

// Pop removes the last state.
func (t *Trail) Pop() {
	last := t.Len() - 1
	t.TotalWeight -= t.Weights[last]
	t.States = t.States[:last]
	t.Weights = t.Weights[:last]
}

// Prepop removes the first state. It fails with ErrPrepopSeed when the
// first state belongs to the seed two-round core.
func (t *Trail) Prepop() error {
	if t.InitialIndex == 0 {
		return ErrPrepopSeed
	}
	t.TotalWeight -= t.Weights[0]
	t.States = t.States[1:]
	t.Weights = t.Weights[1:]
	t.InitialIndex--
	return nil
}

// Prune truncates the trail to its minimum-weight window of rounds
// consecutive states, but only when that window's weight is strictly
// below bestMinWeight. It reports whether the trail still needs to be
// considered. Truncating a window that would drop the seed core
// surfaces ErrPrepopSeed.
func (t *Trail) Prune(rounds, bestMinWeight int) (bool, error) {
	n := t.Len()
	if n < rounds {
		return false, nil
	}
	if n == rounds {
		return true, nil
	}

	window := 0
	for i := 0; i < rounds; i++ {
		window += t.Weights[i]
	}
	bestWeight, bestOffset := window, 0
	for i := 1; i <= n-rounds; i++ {
		window -= t.Weights[i-1]
		window += t.Weights[i+rounds-1]
		if window < bestWeight {
			bestWeight, bestOffset = window, i
		}
	}

	if bestWeight >= bestMinWeight {
		return false, nil
	}
	for i := 0; i < bestOffset; i++ {
		if err := t.Prepop(); err != nil {
			return false, err
		}
	}
	for i := bestOffset + rounds; i < n; i++ {
		t.Pop()
	}
	return true, nil
}

// Clone returns a deep copy of the trail.
func (t *Trail) Clone() Trail {
	return Trail{
		States:       append([]state.State(nil), t.States...),
		Weights:      append([]int(nil), t.Weights...),
		TotalWeight:  t.TotalWeight,
		InitialIndex: t.InitialIndex,
	}
}

// String renders the trail in a human-readable form, states side by
// side, top row first.
func (t *Trail) String() string {
	if t.Len() == 0 {
		return "This trail is empty.\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d-round differential trail core of total weight %d\n", t.Len(), t.TotalWeight)
	for y := state.ColumnSize - 1; y >= 0; y-- {
		for i := range t.States {
			b.WriteString(t.States[i].RowString(y))
			b.WriteString("    ")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
