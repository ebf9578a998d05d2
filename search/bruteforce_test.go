package search

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trailcore/trail"
)

// TestBruteforceConfigTable: 55 canonical parity profiles for pattern
// 0x13, all with at least one odd column.
func TestBruteforceConfigTable(t *testing.T) {
	require.Len(t, bfConfigs, 55)
	for _, cfg := range bfConfigs {
		require.NotZero(t, cfg.odd)
	}
}

// TestBruteforceTinyBudget: every profile carries at least one odd and
// several affected columns, so nothing fits in weight 4.
func TestBruteforceTinyBudget(t *testing.T) {
	var buf bytes.Buffer
	total, err := Bruteforce(4, &buf)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Zero(t, buf.Len())
}

// TestBruteforceWeight14: only the profile with a single odd column
// (odd=1, affected={1,2,5}) reaches weight 14, once per 1-bit odd
// value; no orbital fits on top.
func TestBruteforceWeight14(t *testing.T) {
	var buf bytes.Buffer
	total, err := Bruteforce(14, &buf)
	require.NoError(t, err)
	require.Equal(t, uint64(4), total)
	require.Equal(t, 64, buf.Len())

	// Records decode into two-round trails of weights [1, 13].
	r := bytes.NewReader(buf.Bytes())
	for i := 0; i < 4; i++ {
		var tr trail.Trail
		require.True(t, tr.LoadBruteforce(r))
		require.Equal(t, []int{1, 13}, tr.Weights)
	}
	var tr trail.Trail
	require.False(t, tr.LoadBruteforce(r))
}

// TestBruteforceRecordLayout: the first record of the weight-14 run
// carries odd value 1 at column 0 and the inverted affected columns in
// state B.
func TestBruteforceRecordLayout(t *testing.T) {
	var buf bytes.Buffer
	_, err := Bruteforce(14, &buf)
	require.NoError(t, err)
	require.GreaterOrEqual(t, buf.Len(), 16)

	rec := buf.Bytes()[:16]
	require.Equal(t, byte(0x01), rec[0]) // A: column 0 = 1
	for i := 1; i < 8; i++ {
		require.Zero(t, rec[i])
	}
	require.Equal(t, byte(0xF1), rec[8])  // B: column 0 = 1, column 1 = 0xF
	require.Equal(t, byte(0x0F), rec[9])  // B: column 2 = 0xF
	require.Equal(t, byte(0xF0), rec[10]) // B: column 5 = 0xF
	for i := 11; i < 16; i++ {
		require.Zero(t, rec[i])
	}
}
