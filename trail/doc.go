// Package trail implements containers and algorithms for multi-round
// differential trails: the Trail sequence of states with per-round
// weights, its text and brute-force binary codecs, and the Extension
// pass that grows a two-round trail core forward and backward through
// the θ-branching of the linear layer.
//
// A Trail records the states round after round, before the nonlinear
// step. InitialIndex marks the first half of the seed two-round core
// within the sequence; prepending shifts it so that back-extension
// never loses the reference to the originating core.
package trail
