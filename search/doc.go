// Package search wires the tree iterators and the trail extension into
// the top-level use-cases: counting two-round trail cores by weight,
// finding the best multi-round trail, counting in-kernel trails,
// extending trails loaded from a brute-force file, and the brute-force
// state generator itself.
//
// The core engine is single-threaded; FindTrails parallelizes by
// handing every emitted two-round core to an extension task that owns
// its own iterators and stacks. Tasks only share the partial-results
// slice, guarded by a mutex, and dispatch pauses while the 1-minute
// load average exceeds the hardware parallelism.
package search
