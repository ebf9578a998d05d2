package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCoreBudget: the two-round seed budget for an n-round search.
func TestCoreBudget(t *testing.T) {
	require.Equal(t, 13, coreBudget(5, 30))
	require.Equal(t, 21, coreBudget(3, 30))
	require.Equal(t, 3, coreBudget(3, 5))
}

// TestFindTrailsNoCompleteCores: a budget too small for any complete
// parity profile dispatches no tasks and returns the empty trail.
func TestFindTrailsNoCompleteCores(t *testing.T) {
	best, err := FindTrails(3, 5)
	require.NoError(t, err)
	require.Zero(t, best.Len())
}
