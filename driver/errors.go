package driver

import "errors"

// ErrInconsistentConfiguration is returned when Run is called with
// parameters that can never succeed (e.g. hash_count < 1, count_limit < 1,
// or an initial p already exceeding the vector width n).
var ErrInconsistentConfiguration = errors.New("driver: inconsistent configuration")

// ErrSearchSpaceExhausted is returned when p would have to grow past the
// vector width n without finding a working set of hash functions. The
// random generator needs one distinct primary input position per output
// bit, so it cannot build a function wider than n; this bounds what would
// otherwise be an unbounded retry loop (the specification itself places no
// explicit ceiling on p).
var ErrSearchSpaceExhausted = errors.New("driver: exhausted search space up to vector width")
