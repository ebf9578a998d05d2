// Package trailcore is a search engine for low-weight two-round
// differential trail cores in a small-scale column-parity permutation
// (4 rows × 16 z-positions), and for their extension to multi-round
// trails.
//
// The engine enumerates trail cores with a canonical tree search:
//
//	state/  — the 4×16 bit-matrix state and its linear layer (θ-effect,
//	          dispersion, θ-compatible-state generator)
//	tree/   — the generic depth-first iterator over ordered unit lists
//	core/   — units (orbitals, column assignments), unit sets, the
//	          incremental trail-core cache and the cost functions
//	trail/  — multi-round trails, their codecs and the extension pass
//	search/ — the use-cases: counting, best-trail search, in-kernel
//	          analysis and the brute-force generator
//
// The column tree enumerates parity profiles as runs of odd and
// affected columns; each complete profile seeds an orbital tree adding
// parity-preserving completions. Canonicity under cyclic z-translation
// keeps one representative per orbit, so counts and best-trail bounds
// are over distinct cores only.
//
// Binaries live under cmd/: trailcore (the search front-end) and
// bruteforce (the bounded-weight state-pair generator).
package trailcore
