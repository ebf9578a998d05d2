package state

import "errors"

// ErrWeightBudget indicates a θ-compatible-state budget large enough to
// suggest an integer underflow upstream.
var ErrWeightBudget = errors.New("state: weight budget above sanity bound")

// maxSaneWeight bounds the budget accepted by ThetaCompatibleStates.
const maxSaneWeight = 100

// ThetaCompatibleStates collects every state reachable from s through
// one θ step with a modified effect, within the given weight window.
// Two branchings interact:
//
//  1. Parity branching: every column with at least two active cells can
//     have its parity toggled by the nonlinear step at no cost to s, so
//     each subset of those columns yields a modified effect vector.
//  2. Effect branching: under a modified effect, active cells of an
//     affected column may cancel when the effect is applied; the legal
//     cancellation patterns depend on the column sum and parity.
//
// Candidates are finished by applying the modified effect and filtered
// to minWeight ≤ HammingWeight ≤ maxWeight. A non-positive or inverted
// window yields no states; a maxWeight above 100 is rejected with
// ErrWeightBudget.
func ThetaCompatibleStates(s State, minWeight, maxWeight int) ([]State, error) {
	if maxWeight <= 0 || minWeight > maxWeight {
		return nil, nil
	}
	if maxWeight > maxSaneWeight {
		return nil, ErrWeightBudget
	}

	sums := s.Sums()

	// Columns with >= 2 active cells can branch on parity; map each such
	// z to its bit index in the effect vector via the θ transposition.
	var relevant []int
	for z := 0; z < LaneSize; z++ {
		if sums[z] >= 2 {
			relevant = append(relevant, (2*LaneSize-z-2)%LaneSize)
		}
	}

	effect := ThetaEffect(s.Parity())
	var compatible []State
	for i := 0; i < 1<<len(relevant); i++ {
		modified := effect
		for j, bit := range relevant {
			if i&(1<<j) != 0 {
				modified ^= uint16(1) << bit
			}
		}

		var branch []State
		effectBranch(s, &branch, modified, sums, 0)

		for _, c := range branch {
			ApplyThetaEffect(&c, modified)
			if w := c.HammingWeight(); w >= minWeight && w <= maxWeight {
				compatible = append(compatible, c)
			}
		}
	}
	return compatible, nil
}

// effectBranch recursively enumerates the cancellation choices of every
// affected column with at least two active cells, accumulating the
// pre-θ candidates into acc. Columns not meeting the condition pass
// through unchanged.
func effectBranch(s State, acc *[]State, effect uint16, sums [LaneSize]int, col int) {
	if col >= LaneSize {
		*acc = append(*acc, s)
		return
	}

	sumCol := sums[col]
	nextIdx := (2*LaneSize - col - 2) % LaneSize
	colIdx := (nextIdx + 1) % LaneSize

	if (effect>>colIdx)&1 == 0 || sumCol < 2 {
		effectBranch(s, acc, effect, sums, col+1)
		return
	}

	// Which cells may cancel depends on the column sum and on the
	// column parity, read from the already-transposed effect vector.
	var diff, pair, trip, same bool
	if (effect>>nextIdx)&1 != 0 { // odd parity
		switch sumCol {
		case 2: // the two active cells must differ
			diff = true
		case 3:
			diff, pair, same = true, true, true
		case 4: // every combination except all equal
			diff, pair, trip = true, true, true
		}
	} else { // even parity
		switch sumCol {
		case 2: // both stay or both disappear
			same = true
		case 3: // all different, at most one disappears
			diff = true
		case 4: // all different, two pairs, or all the same
			diff, pair, same = true, true, true
		}
	}

	// The no-survivor choice is always available.
	c := s
	c.ResetColumn(0, col)
	effectBranch(c, acc, effect, sums, col+1)
	// If all cells are equal, all of them can cancel.
	if same {
		effectBranch(s, acc, effect, sums, col+1)
	}
	// If all differ, exactly one cancels; enumerate which.
	if diff {
		for y := 0; y < ColumnSize; y++ {
			if s.Bit(y, col) {
				c = s
				c.ResetColumn(1<<y, col)
				effectBranch(c, acc, effect, sums, col+1)
			}
		}
	}
	// If there is a pair, two cancel; enumerate the pairs.
	if pair {
		for y0 := 0; y0 < ColumnSize-1; y0++ {
			if !s.Bit(y0, col) {
				continue
			}
			for y1 := y0 + 1; y1 < ColumnSize; y1++ {
				if s.Bit(y1, col) {
					c = s
					c.ResetColumn(1<<y0|1<<y1, col)
					effectBranch(c, acc, effect, sums, col+1)
				}
			}
		}
	}
	// If there is a triple, three cancel; enumerate the complement.
	if trip {
		for y := 0; y < ColumnSize; y++ {
			if s.Bit(y, col) {
				c = s
				c.UnsetColumn(1<<y, col)
				effectBranch(c, acc, effect, sums, col+1)
			}
		}
	}
}
