package variable

import "errors"

// ErrInvalidDegree is returned by GenerateCandidates when maxDegree is
// outside [1, inputSize].
var ErrInvalidDegree = errors.New("variable: compound degree must be in [1, input size]")

// GenerateCandidates enumerates every primary and compound Variable over
// inputSize input positions, up to and including maxDegree (the
// compound_degree bound, §6): all C(inputSize, r) size-r position subsets
// for every 1 <= r <= maxDegree, in increasing-degree, lexicographic-within-
// degree order. This is the candidate pool the variable-selection solver
// searches over.
//
// The candidate count grows combinatorially with maxDegree; callers with
// large inputSize should keep maxDegree small (the specification's default
// is 1, primary variables only).
func GenerateCandidates(inputSize, maxDegree int) ([]*Variable, error) {
	if maxDegree < 1 || maxDegree > inputSize {
		return nil, ErrInvalidDegree
	}

	var out []*Variable
	combo := make([]int, 0, maxDegree)
	for r := 1; r <= maxDegree; r++ {
		out = appendSubsets(out, combo[:0], 0, r, inputSize)
	}
	return out, nil
}

// appendSubsets recursively builds every size-r subset of {0, ..., n-1} in
// lexicographic order, starting the search at position `start`, and appends
// one Variable per subset to out.
func appendSubsets(out []*Variable, chosen []int, start, r, n int) []*Variable {
	if len(chosen) == r {
		v, err := New(append([]int(nil), chosen...))
		if err != nil {
			// unreachable: chosen is always nonempty here
			return out
		}
		return append(out, v)
	}
	for i := start; i <= n-(r-len(chosen)); i++ {
		out = appendSubsets(out, append(chosen, i), i+1, r, n)
	}
	return out
}
