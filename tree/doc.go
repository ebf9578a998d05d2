// Package tree provides a generic depth-first iterator over trees whose
// nodes are ordered lists of units.
//
// A unit set defines which unit may extend a list (first child), how a
// unit advances to its next value (sibling), a total order on units,
// and a canonicity test that suppresses duplicates under cyclic
// z-translation. A cache keeps an incremental representation of the
// current node that can be pushed, popped and snapshotted; a cost
// function prices nodes and prunes the walk against a budget.
//
// The iterator visits nodes in pre-order, cutting every branch that
// exceeds the budget or is non-canonical. End-of-set conditions are
// reported by unit sets through the ErrEndOfSet sentinel; the iterator
// converts them into its structural "no child" / "no sibling".
//
// Complexity: O(depth) memory in the unit list, cost vector and cache;
// each step performs one set call, and at most one canonicity test, per
// candidate unit it examines.
package tree
