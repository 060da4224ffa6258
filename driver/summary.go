package driver

import (
	"fmt"
	"strings"
)

// MemoryEstimate holds the three bit-count models §6 asks the driver to
// report: a direct 2^p-entry table storing the untouched remainder of the
// input plus the vector id, the parallel-IGU model (d g-tables of width q
// over 2^p buckets), and the information-theoretic ideal of just storing
// the k vectors with their ids.
type MemoryEstimate struct {
	DirectTableBits int64
	ParallelIGUBits int64
	IdealBits       int64
}

// EstimateMemory computes the three models for a vector width n, count k,
// index width q, hash width p, function count d, and multiplicity m.
func EstimateMemory(n, k, q, p, d, m int) MemoryEstimate {
	bucket := int64(1) << uint(p)
	return MemoryEstimate{
		DirectTableBits: bucket * int64(n-p+q) * int64(m),
		ParallelIGUBits: int64(d) * bucket * int64(q),
		IdealBits:       int64(k) * int64(n+q),
	}
}

// Summary renders a human-readable report of a successful Run: the
// outcome, the final p, the winning functions' output widths, and memory
// estimates under the three §6 models. k is the number of registered
// vectors and m the multiplicity bound used by the caller (1 for the
// perfect-hash case). This is purely informational — the core never
// parses it back.
func Summary(n, k, q int, r *Result, m int) string {
	d := len(r.Funcs)

	var b strings.Builder
	switch r.Outcome {
	case OutcomePerfectHash:
		fmt.Fprintf(&b, "outcome: perfect hash\n")
	case OutcomeCollisionFree:
		fmt.Fprintf(&b, "outcome: collision-free partition\n")
	}
	fmt.Fprintf(&b, "p = %d, hash_count = %d, attempts = %d\n", r.P, d, r.Attempts)
	fmt.Fprintf(&b, "selected functions: %d, each output_width = %d\n", d, r.P)

	est := EstimateMemory(n, k, q, r.P, d, m)
	fmt.Fprintf(&b, "memory estimate (bits): direct_table=%d parallel_igu=%d ideal=%d\n",
		est.DirectTableBits, est.ParallelIGUBits, est.IdealBits)

	return b.String()
}
