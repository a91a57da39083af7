// Package order reconstructs the reading order of a set of text segments
// using only pairwise semantic distances. The algorithm is greedy
// nearest-neighbor chaining: the first segment is a fixed anchor and each
// subsequent position is filled by the remaining segment closest to the last
// placed one. It is a deliberate linear heuristic, not a minimum-weight
// Hamiltonian path search.
package order
