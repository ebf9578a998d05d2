package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCountTrailCoresTiny: with budget 2 no orbital and no complete
// column run fits, so the only core is the empty root, which is in the
// kernel.
func TestCountTrailCoresTiny(t *testing.T) {
	counts := CountTrailCores(2)
	require.Equal(t, []uint64{1, 0, 0}, counts.All)
	require.Equal(t, []uint64{1, 0, 0}, counts.Kernel)
}

// TestCountTrailCoresBudget4: with budget 4 the empty parity profile
// admits exactly the six canonical single orbitals at z=0; no column
// run completes within the budget.
func TestCountTrailCoresBudget4(t *testing.T) {
	counts := CountTrailCores(4)
	require.Equal(t, []uint64{1, 0, 0, 0, 6}, counts.All)
	require.Equal(t, []uint64{1, 0, 0, 0, 6}, counts.Kernel)
}

// TestCountTrailCoresKernelSubset: kernel counts never exceed the
// overall counts at any weight.
func TestCountTrailCoresKernelSubset(t *testing.T) {
	counts := CountTrailCores(8)
	require.Len(t, counts.All, 9)
	for w := range counts.All {
		require.LessOrEqual(t, counts.Kernel[w], counts.All[w], "weight %d", w)
	}
	// A larger budget keeps the low-weight prefix: the empty core and
	// the six single orbitals.
	require.Equal(t, uint64(1), counts.All[0])
	require.Equal(t, uint64(6), counts.All[4])
}
