package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trailcore/core"
	"github.com/katalvlaran/trailcore/state"
)

// TestInKernelEmpty: the empty core has no single-cell column.
func TestInKernelEmpty(t *testing.T) {
	require.True(t, InKernel(core.TrailCore{}))
}

// TestInKernelSingleOrbital: one orbital keeps state A paired, but the
// dispersion spreads state B's pair over two single-cell columns.
func TestInKernelSingleOrbital(t *testing.T) {
	cache := core.NewStack()
	cache.PushOrbital(core.Orbital{Y0: 0, Y1: 1, Z: 0})
	c := cache.Snapshot()

	require.Equal(t, 2, c.StateA.Sums()[0])
	require.False(t, InKernel(c))
}

// TestInKernelSparseA: a single-cell column in state A alone already
// disqualifies.
func TestInKernelSparseA(t *testing.T) {
	var a state.State
	a.SetBit(2, 9)
	require.False(t, InKernel(core.TrailCore{StateA: a}))
}

// TestBruteforceInKernelSmallBudget: with at most two orbitals the
// dispersed images can never regroup into paired columns, so no
// in-kernel core exists below weight 12.
func TestBruteforceInKernelSmallBudget(t *testing.T) {
	best, cores := BruteforceInKernel(8)
	require.Zero(t, cores)
	require.Zero(t, best.Weight())
}
