package state

import "math/bits"

// ThetaEffect derives the effect vector from a column parity profile.
// The effect follows the differential propagation of parity pattern
// 0x13: the parity rotated right by 1, 2 and 5 positions, XORed.
func ThetaEffect(parity uint16) uint16 {
	return bits.RotateLeft16(parity, -1) ^
		bits.RotateLeft16(parity, -2) ^
		bits.RotateLeft16(parity, -5)
}

// ApplyTheta applies the full θ step to s: compute the column parity,
// derive the effect, and XOR it back into every row.
func ApplyTheta(s *State) {
	ApplyThetaEffect(s, ThetaEffect(s.Parity()))
}

// ApplyThetaEffect XORs a given effect vector into every row of s.
// The effect does not have to be the one derived from s's own parity.
func ApplyThetaEffect(s *State, effect uint16) {
	for y := 0; y < ColumnSize; y++ {
		s.rows[y] ^= effect
	}
}

// ApplyDispersion applies the dispersion layer to s: the row index is
// rotated (row 0 ← old row 1, …, row 3 ← old row 0) and rows 1, 2, 3
// are then rotated right by 10, 3 and 14 z-positions.
func ApplyDispersion(s *State) {
	tmp := s.rows[0]
	s.rows[0] = s.rows[1]
	s.rows[1] = s.rows[2]
	s.rows[2] = s.rows[3]
	s.rows[3] = tmp

	s.RotateRow(1, 10)
	s.RotateRow(2, 3)
	s.RotateRow(3, 14)
}

// ApplyInverseDispersion undoes ApplyDispersion: the row rotations are
// reverted first, then the row index shift.
func ApplyInverseDispersion(s *State) {
	s.RotateRow(1, LaneSize-10)
	s.RotateRow(2, LaneSize-3)
	s.RotateRow(3, LaneSize-14)

	tmp := s.rows[3]
	s.rows[3] = s.rows[2]
	s.rows[2] = s.rows[1]
	s.rows[1] = s.rows[0]
	s.rows[0] = tmp
}
