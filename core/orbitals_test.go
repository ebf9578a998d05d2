package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trailcore/state"
	"github.com/katalvlaran/trailcore/tree"
)

// TestOrbitalsSetFirstChild: the first child of the empty list is the
// overall first orbital; deeper children succeed the highest unit.
func TestOrbitalsSetFirstChild(t *testing.T) {
	set := NewOrbitalsSet(true, flatYMin(0))

	first, err := set.FirstChild(nil)
	require.NoError(t, err)
	require.Equal(t, Orbital{Y0: 0, Y1: 1, Z: 0}, first)

	next, err := set.FirstChild([]Orbital{first})
	require.NoError(t, err)
	require.Equal(t, Orbital{Y0: 2, Y1: 3, Z: 0}, next)
}

// TestOrbitalsSetFirstChildEnd: a fully blocked floor has no children.
func TestOrbitalsSetFirstChildEnd(t *testing.T) {
	set := NewOrbitalsSet(true, flatYMin(state.ColumnSize-1))
	_, err := set.FirstChild(nil)
	require.ErrorIs(t, err, tree.ErrEndOfSet)
}

// TestOrbitalsSetCompare orders lexicographically on (z, y0, y1).
func TestOrbitalsSetCompare(t *testing.T) {
	set := NewOrbitalsSet(true, flatYMin(0))
	a := Orbital{Y0: 0, Y1: 1, Z: 2}
	cases := []struct {
		b    Orbital
		want tree.Order
	}{
		{Orbital{Y0: 0, Y1: 1, Z: 2}, tree.Equal},
		{Orbital{Y0: 0, Y1: 1, Z: 3}, tree.Smaller},
		{Orbital{Y0: 0, Y1: 2, Z: 2}, tree.Smaller},
		{Orbital{Y0: 0, Y1: 1, Z: 1}, tree.Greater},
		{Orbital{Y0: 1, Y1: 2, Z: 2}, tree.Smaller},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, set.Compare(a, tc.b), "compare %v vs %v", a, tc.b)
	}
}

// TestOrbitalsSetCanonicalKernel: a half-lane repetition is canonical
// and records its period; the same pattern shifted off z=0 is not.
func TestOrbitalsSetCanonicalKernel(t *testing.T) {
	set := NewOrbitalsSet(true, flatYMin(0))
	cache := NewStack()

	list := []Orbital{
		{Y0: 0, Y1: 1, Z: 0},
		{Y0: 0, Y1: 1, Z: 8},
	}
	require.True(t, set.IsCanonical(list, cache))
	require.Equal(t, 8, cache.NodePeriod)

	shifted := []Orbital{
		{Y0: 0, Y1: 1, Z: 4},
		{Y0: 0, Y1: 1, Z: 12},
	}
	require.False(t, set.IsCanonical(shifted, cache))
}

// TestOrbitalsSetCanonicalKernelRejectsSmallerTranslation: a list whose
// translation sorts strictly below it is refused.
func TestOrbitalsSetCanonicalKernelRejectsSmallerTranslation(t *testing.T) {
	set := NewOrbitalsSet(true, flatYMin(0))
	cache := NewStack()

	// Translating by z=1 yields [(0,(0,1)), (15,(2,3))], smaller than
	// the original [(0,(2,3)), (1,(0,1))].
	list := []Orbital{
		{Y0: 2, Y1: 3, Z: 0},
		{Y0: 0, Y1: 1, Z: 1},
	}
	require.False(t, set.IsCanonical(list, cache))
}

// TestOrbitalsSetCanonicalNonKernel: outside the kernel only multiples
// of the root period are tested, and a root with no z-symmetry accepts
// immediately.
func TestOrbitalsSetCanonicalNonKernel(t *testing.T) {
	set := NewOrbitalsSet(false, flatYMin(0))

	cache := NewStack()
	cache.RootPeriod = state.LaneSize
	list := []Orbital{{Y0: 0, Y1: 1, Z: 4}}
	require.True(t, set.IsCanonical(list, cache))
	require.Equal(t, state.LaneSize, cache.NodePeriod)

	// With root period 8, the singleton at z=4 maps to z=12 under the
	// only shift, which is greater: canonical, aperiodic.
	cache.RootPeriod = 8
	require.True(t, set.IsCanonical(list, cache))
	require.Equal(t, state.LaneSize, cache.NodePeriod)

	// A pair repeating with period 8 records that period.
	pair := []Orbital{
		{Y0: 0, Y1: 1, Z: 0},
		{Y0: 0, Y1: 1, Z: 8},
	}
	require.True(t, set.IsCanonical(pair, cache))
	require.Equal(t, 8, cache.NodePeriod)

	// The mirrored singleton at z=12 maps to z=4 under shift 8: a
	// smaller translation exists, so the list is refused.
	require.False(t, set.IsCanonical([]Orbital{{Y0: 0, Y1: 1, Z: 12}}, cache))
}
