package solver

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/go-igu/igu/variable"
	"github.com/go-igu/igu/vector"
)

// Bucket is a subset of the registered set still needing distinction,
// represented as indices into the caller's V slice. Every Bucket carried in
// solver state is "alive": len(Bucket) > m.
type Bucket []int

// String lists the vector ids in the bucket, for diagnostics (mirrors the
// source material's VectSetList dump).
func (b Bucket) String() string {
	ids := make([]string, len(b))
	for i, idx := range b {
		ids[i] = strconv.Itoa(idx)
	}
	return "{" + strings.Join(ids, ",") + "}"
}

// split partitions bucket by w's classification of each vector, returning
// the 0-class and 1-class sub-buckets.
func split(bucket Bucket, w *variable.Variable, V []*vector.RegVec) (b0, b1 Bucket) {
	for _, idx := range bucket {
		if w.Classify(V[idx]) == 0 {
			b0 = append(b0, idx)
		} else {
			b1 = append(b1, idx)
		}
	}
	return b0, b1
}

// splitAll splits every alive bucket by w and drops resulting sub-buckets
// whose size has fallen to or below m (the "buckets of size <= m are
// removed" invariant).
func splitAll(buckets []Bucket, w *variable.Variable, V []*vector.RegVec, m int) []Bucket {
	next := make([]Bucket, 0, len(buckets)*2)
	for _, b := range buckets {
		b0, b1 := split(b, w, V)
		if len(b0) > m {
			next = append(next, b0)
		}
		if len(b1) > m {
			next = append(next, b1)
		}
	}
	return next
}

// lowerBoundSingle computes ceil(log2(ceil(s/m))), the minimum number of
// additional Variables needed to shatter a bucket of size s under
// multiplicity m.
func lowerBoundSingle(s, m int) int {
	if s <= m {
		return 0
	}
	q := (s + m - 1) / m
	return bits.Len(uint(q - 1))
}

// maxAliveSize returns the size of the largest bucket, or 0 if buckets is
// empty.
func maxAliveSize(buckets []Bucket) int {
	max := 0
	for _, b := range buckets {
		if len(b) > max {
			max = len(b)
		}
	}
	return max
}

// ambiguity computes the primary ordering measure am = sum over buckets of
// (n0^2 + n1^2) for variable w, the secondary measure am2 (the summed
// per-bucket lower-bound estimate), and whether w is useful at all (splits
// at least one bucket into two nonempty parts). A Variable that splits no
// bucket is dropped by the caller.
func ambiguity(buckets []Bucket, w *variable.Variable, V []*vector.RegVec, m int) (am, am2 int64, useful bool) {
	for _, b := range buckets {
		n0, n1 := 0, 0
		for _, idx := range b {
			if w.Classify(V[idx]) == 0 {
				n0++
			} else {
				n1++
			}
		}
		if n0 > 0 && n1 > 0 {
			useful = true
		}
		am += int64(n0)*int64(n0) + int64(n1)*int64(n1)
		s := n0
		if n1 > s {
			s = n1
		}
		am2 += int64(lowerBoundSingle(s, m))
	}
	return am, am2, useful
}
