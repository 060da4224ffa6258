package phfgraph

import "github.com/go-igu/igu/funcvect"

// Displace builds the d=2 specialization of §4.4.6: an offset table delta
// of length f1.MaxVal() such that i -> combine(f2.Val(i), delta[f1.Val(i)])
// is injective over the k vectors, where combine is modular addition mod
// f2.MaxVal() when useXor is false, or XOR when useXor is true (kept as a
// caller-selectable flag per the source's own dual-mode support).
//
// Buckets on the f1 side are resolved in decreasing incident-vector-count
// order; within a bucket, delta values are tried from 0 upward and the
// first one producing no collision (tracked in a used bitmap over the
// f2-range) is kept.
func Displace(f1, f2 *funcvect.FuncVect, useXor bool) ([]uint32, error) {
	k := f1.InputSize()
	m1 := f1.MaxVal()
	m2 := f2.MaxVal()

	buckets := make([][]int, m1)
	for v := 0; v < k; v++ {
		b := f1.Val(v)
		buckets[b] = append(buckets[b], v)
	}

	order := make([]uint32, m1)
	for i := range order {
		order[i] = uint32(i)
	}
	// simple insertion sort by descending bucket size; m1 stays small
	// (bounded by 2^p) so this never needs anything fancier.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && len(buckets[order[j]]) > len(buckets[order[j-1]]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	delta := make([]uint32, m1)
	used := make([]bool, m2)

	combine := func(v2, d uint32) uint32 {
		if useXor {
			return v2 ^ d
		}
		return (v2 + d) % m2
	}

	for _, b := range order {
		vecs := buckets[b]
		if len(vecs) == 0 {
			continue
		}

		found := false
		for d := uint32(0); d < m2; d++ {
			ok := true
			seen := make(map[uint32]bool, len(vecs))
			for _, v := range vecs {
				pos := combine(f2.Val(v), d)
				if used[pos] || seen[pos] {
					ok = false
					break
				}
				seen[pos] = true
			}
			if !ok {
				continue
			}
			for _, v := range vecs {
				used[combine(f2.Val(v), d)] = true
			}
			delta[b] = d
			found = true
			break
		}
		if !found {
			return nil, ErrNoDisplaceSolution
		}
	}

	return delta, nil
}
