// Package solver implements the variable-selection branch-and-bound search:
// given a set of RegVecs, a multiplicity bound m, and a pool of candidate
// Variables, find the smallest subset whose joint classification separates
// every pair of vectors (or leaves at most m sharing a signature).
//
// The search keeps a live partition of "alive" buckets (subsets still above
// the multiplicity bound) the way the original IguGen/VarHeap code does,
// re-expressed as an iterative partition over index slices instead of
// pointer-linked bucket objects — following the teacher's dfs package,
// which favors explicit, flat state over recursive object graphs, and its
// bfs package's functional-option + cooperative-cancellation idiom
// (context-free here, since §5 specifies a bare time-expired flag rather
// than context.Context).
package solver
