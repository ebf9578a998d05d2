// Package core implements the two-round trail-core machinery: the unit
// types appended by the tree search (orbitals and column assignments),
// the two unit sets defining their enumeration order and z-canonicity,
// the incremental push/pop cache shared by both searches, and the cost
// functions that prune the walk by propagation weight.
//
// A two-round trail core is a pair of states (A, B) with weights
// (w0, w1): A before the nonlinear step of the first round, B before
// the linear layer of the second. The column tree (ColumnsSet) places
// parity-defining column assignments; the orbital tree (OrbitalsSet)
// completes a parity-bare core with parity-preserving bit pairs.
//
// Iterators instantiated here (NewRunIterator, NewOrbitalIterator) are
// stateful and single-goroutine; parallel searches construct one
// iterator and one Stack per task.
package core
