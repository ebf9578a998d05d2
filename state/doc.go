// Package state implements the 4×16 difference-state model of the
// small-scale column-parity permutation, together with its linear
// layer: the θ-effect derived from the column parity by the fixed
// rotation pattern 0x13, the dispersion permutation and its inverse,
// and the θ-compatible-state generator used when extending trails
// round by round.
//
// A State is a dense bit matrix of ColumnSize rows by LaneSize
// z-positions, stored row-wise in uint16 words so that parity and
// popcount reduce to word operations. Bit (y,z) lives at word bit
// LaneSize-1-z; printing is therefore top row first, high z first.
//
// Complexity: every primitive on State is O(ColumnSize) or O(1);
// ThetaCompatibleStates is exponential in the number of branching
// columns but bounded by the caller's weight budget.
package state
