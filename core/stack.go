package core

import (
	"math/bits"

	"github.com/katalvlaran/trailcore/state"
)

// Stack is the incremental cache behind a tree iterator: parallel
// stacks of equal depth holding the state at A, the state at B, the
// minimum reverse weight w0, the weight w1 and a completeness flag.
// The bottom element is the root core the search starts from; each
// further element equals its predecessor plus one unit.
//
// RootPeriod is the z-period of the root, fixed when the iterator is
// constructed. NodePeriod is the z-period of the current node; every
// canonicity test overwrites it (LaneSize means aperiodic).
type Stack struct {
	stateA   []state.State
	stateB   []state.State
	w0       []int
	w1       []int
	complete []bool

	// RootPeriod is the z-period of the root of the tree.
	RootPeriod int
	// NodePeriod is the z-period of the current node.
	NodePeriod int
}

// NewStack returns a cache rooted at the empty core.
func NewStack() *Stack {
	return NewSeededStack(state.State{}, state.State{}, 0, 0, true, 0)
}

// NewSeededStack returns a cache rooted at the given core, typically a
// node emitted by a previous column-tree search.
func NewSeededStack(stateA, stateB state.State, w0, w1 int, complete bool, rootPeriod int) *Stack {
	return &Stack{
		stateA:     []state.State{stateA},
		stateB:     []state.State{stateB},
		w0:         []int{w0},
		w1:         []int{w1},
		complete:   []bool{complete},
		RootPeriod: rootPeriod,
		NodePeriod: state.LaneSize,
	}
}

// Depth returns the number of elements on the parallel stacks.
func (s *Stack) Depth() int {
	return len(s.stateA)
}

func (s *Stack) top() int {
	return len(s.stateA) - 1
}

// PushOrbital sets the orbital's two bits in both halves; w0 and w1
// each grow by 2 and the new top is complete.
func (s *Stack) PushOrbital(o Orbital) {
	a := s.stateA[s.top()]
	b := s.stateB[s.top()]

	a.SetBit(o.Y0, o.Z)
	a.SetBit(o.Y1, o.Z)
	b.SetBit(o.Y0, o.Z)
	b.SetBit(o.Y1, o.Z)

	s.push(a, b, s.w0[s.top()]+2, s.w1[s.top()]+2, true)
}

// PushColumn applies a column assignment. An affected even column puts
// its value in A and the inverse value in B and is complete; an
// unaffected odd column puts its value in A, adjusts B according to
// entanglement, and leaves the top incomplete until the run is closed.
func (s *Stack) PushColumn(c Column) {
	switch {
	case c.Affected && !c.Odd:
		s.pushAffectedEven(c)
	case !c.Affected && c.Odd:
		s.pushUnaffectedOdd(c)
	}
}

func (s *Stack) pushAffectedEven(c Column) {
	a := s.stateA[s.top()]
	b := s.stateB[s.top()]

	// Bits set in the value become active in A, the rest in B.
	a.SetColumn(c.Value, c.Z)
	b.SetColumn(c.InverseValue(), c.Z)

	delta := bits.OnesCount8(c.Value)
	s.push(a, b, s.w0[s.top()]+delta, s.w1[s.top()]+state.ColumnSize-delta, true)
}

func (s *Stack) pushUnaffectedOdd(c Column) {
	a := s.stateA[s.top()]
	b := s.stateB[s.top()]

	a.SetColumn(c.Value, c.Z)
	w0 := s.w0[s.top()] + 1
	w1 := s.w1[s.top()]

	if c.Entangled {
		// Completes the affected even column sharing this z at y=0.
		b.UnsetColumn(c.Value, c.Z)
		w1--
	} else {
		b.SetColumn(c.Value, c.Z)
		w1++
	}

	s.push(a, b, w0, w1, false)
}

// PushDummy duplicates the top of every stack, preserving the ability
// to pop after a unit set reports end-of-set.
func (s *Stack) PushDummy() {
	t := s.top()
	s.push(s.stateA[t], s.stateB[t], s.w0[t], s.w1[t], s.complete[t])
}

// Pop removes the top of every stack.
func (s *Stack) Pop() {
	t := s.top()
	s.stateA = s.stateA[:t]
	s.stateB = s.stateB[:t]
	s.w0 = s.w0[:t]
	s.w1 = s.w1[:t]
	s.complete = s.complete[:t]
}

// Snapshot returns the current top as a trail-core value.
func (s *Stack) Snapshot() TrailCore {
	t := s.top()
	return TrailCore{
		StateA:   s.stateA[t],
		StateB:   s.stateB[t],
		W0:       s.w0[t],
		W1:       s.w1[t],
		Complete: s.complete[t],
		ZPeriod:  s.NodePeriod,
	}
}

func (s *Stack) push(a, b state.State, w0, w1 int, complete bool) {
	s.stateA = append(s.stateA, a)
	s.stateB = append(s.stateB, b)
	s.w0 = append(s.w0, w0)
	s.w1 = append(s.w1, w1)
	s.complete = append(s.complete, complete)
}

// weight returns w0+w1 of the current top; it is the node cost used by
// both cost functions.
func (s *Stack) weight() int {
	return s.w0[s.top()] + s.w1[s.top()]
}
