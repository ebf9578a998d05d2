package trail

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trailcore/core"
	"github.com/katalvlaran/trailcore/state"
)

// TestFromCore seeds a two-round trail: state A verbatim, state B
// dispersed, weights w0 and w1.
func TestFromCore(t *testing.T) {
	var a, b state.State
	a.SetBit(0, 0)
	a.SetBit(1, 0)
	b.SetBit(0, 0)

	ext := FromCore(core.TrailCore{StateA: a, StateB: b, W0: 2, W1: 1})
	require.Len(t, ext.Trails, 1)

	tr := ext.Trails[0]
	require.Equal(t, 2, tr.Len())
	require.Equal(t, 0, tr.InitialIndex)
	require.Equal(t, []int{2, 1}, tr.Weights)
	require.Equal(t, a, tr.States[0])

	want := b
	state.ApplyDispersion(&want)
	require.Equal(t, want, tr.States[1])
}

// TestExtendForwardKeepsDeadEnds: a trail with no θ-compatible
// successor survives the pass unchanged.
func TestExtendForwardKeepsDeadEnds(t *testing.T) {
	// The empty core has no successors of weight >= 1.
	ext := FromCore(core.TrailCore{})
	require.NoError(t, ext.ExtendForward(10))
	require.Len(t, ext.Trails, 1)
	require.Equal(t, 2, ext.Trails[0].Len())
}

// TestExtendForwardAppendsDispersedSuccessors: every appended state is
// the dispersion of a θ-compatible successor and carries its Hamming
// weight.
func TestExtendForwardAppendsDispersedSuccessors(t *testing.T) {
	var a state.State
	a.SetBit(0, 0)

	ext := FromCore(core.TrailCore{StateA: a, StateB: a, W0: 1, W1: 1})
	last := ext.Trails[0].States[1]

	require.NoError(t, ext.ExtendForward(40))
	require.NotEmpty(t, ext.Trails)

	compatible, err := state.ThetaCompatibleStates(last, 1, 40-2)
	require.NoError(t, err)
	require.Len(t, ext.Trails, len(compatible))

	for i, tr := range ext.Trails {
		require.Equal(t, 3, tr.Len())
		s := compatible[i]
		state.ApplyDispersion(&s)
		require.Equal(t, s, tr.States[2])
		require.Equal(t, s.HammingWeight(), tr.Weights[2])
	}
}

// TestExtendBackwardPrepends: the backward pass prepends predecessors
// and shifts the seed reference.
func TestExtendBackwardPrepends(t *testing.T) {
	var a state.State
	a.SetBit(0, 0)

	ext := FromCore(core.TrailCore{StateA: a, StateB: a, W0: 1, W1: 1})
	front := ext.Trails[0].States[0]
	state.ApplyInverseDispersion(&front)

	require.NoError(t, ext.ExtendBackward(40))
	require.NotEmpty(t, ext.Trails)

	compatible, err := state.ThetaCompatibleStates(front, 1, 40-2)
	require.NoError(t, err)
	require.Len(t, ext.Trails, len(compatible))

	for i, tr := range ext.Trails {
		require.Equal(t, 3, tr.Len())
		require.Equal(t, 1, tr.InitialIndex)
		require.Equal(t, compatible[i], tr.States[0])
	}
}

// TestExtendForwardBudgetGuard propagates the sanity bound of the
// θ-compatible generator.
func TestExtendForwardBudgetGuard(t *testing.T) {
	ext := FromCore(core.TrailCore{})
	require.ErrorIs(t, ext.ExtendForward(200), state.ErrWeightBudget)
}

// TestBestTrail picks the strictly lowest pruned candidate.
func TestBestTrail(t *testing.T) {
	var light, heavy Trail
	light.Append(bitState(0, 0), 1)
	light.Append(bitState(1, 1), 1)
	heavy.Append(bitState(0, 0), 5)
	heavy.Append(bitState(1, 1), 5)

	ext := &Extension{Trails: []Trail{heavy, light}}
	best, err := ext.BestTrail(2)
	require.NoError(t, err)
	require.Equal(t, 2, best.TotalWeight)
}

// TestRemoveOutsideKernel drops wrong lengths, uneven weights and
// single-cell columns.
func TestRemoveOutsideKernel(t *testing.T) {
	// Length mismatch.
	short := Trail{}
	short.Append(bitState(0, 0), 1)
	short.Append(bitState(1, 1), 1)

	// Right length but a single active cell per column.
	var sparse Trail
	sparse.Append(bitState(0, 0), 1)
	sparse.Append(bitState(1, 1), 1)
	sparse.Append(bitState(2, 2), 1)

	// Right length, even columns, equal weights.
	var full state.State
	full.SetColumn(0x3, 0)
	var dense Trail
	dense.Append(full, 2)
	dense.Append(full, 2)
	dense.Append(full, 2)

	// Equal columns but uneven weights.
	uneven := dense.Clone()
	uneven.Weights[1] = 3
	uneven.TotalWeight = 7

	ext := &Extension{Trails: []Trail{short, sparse, dense, uneven}}
	ext.RemoveOutsideKernel(3)
	require.Len(t, ext.Trails, 1)
	require.Equal(t, dense, ext.Trails[0])
}

// TestStats histograms trails of the requested length by total weight.
func TestStats(t *testing.T) {
	var a, b Trail
	a.Append(bitState(0, 0), 1)
	a.Append(bitState(1, 1), 2)
	b.Append(bitState(0, 0), 2)
	b.Append(bitState(1, 1), 1)

	ext := &Extension{Trails: []Trail{a, b}}
	stats := ext.Stats(2, nil)
	require.Equal(t, []int{0, 0, 0, 2}, stats)

	// Other lengths are ignored.
	stats = ext.Stats(3, stats)
	require.Equal(t, []int{0, 0, 0, 2}, stats)
}
