package hashgen

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// streamRNG is a deterministic, seedable draw stream built on siphash run
// in counter mode: draw i is siphash.Hash(k0, k1, b), where b is the 8-byte
// little-endian encoding of i. Two
// streamRNGs built from the same seed produce identical draws.
type streamRNG struct {
	k0, k1  uint64
	counter uint64
}

// newStreamRNG derives a siphash key pair from a single uint64 seed.
func newStreamRNG(seed uint64) *streamRNG {
	return &streamRNG{k0: seed, k1: ^seed}
}

// next returns the next uint64 in the deterministic draw stream.
func (r *streamRNG) next() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], r.counter)
	r.counter++
	return siphash.Hash(r.k0, r.k1, buf[:])
}

// intn returns a uniform draw in [0, n), n > 0.
func (r *streamRNG) intn(n int) int {
	return int(r.next() % uint64(n))
}

// sampleWithoutReplacement draws count distinct elements from pool without
// replacement, preserving none of pool's original order (partial
// Fisher-Yates). pool is consumed; pass a copy if the caller needs the
// original. count must be in [0, len(pool)].
func sampleWithoutReplacement(r *streamRNG, pool []int, count int) []int {
	n := len(pool)
	for i := 0; i < count; i++ {
		j := i + r.intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	out := make([]int, count)
	copy(out, pool[:count])
	return out
}
