package solver

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-igu/igu/variable"
	"github.com/go-igu/igu/vector"
)

// Solve searches for the smallest subset S of W such that every subset of V
// that agrees on all Variables in S has size at most m. U is an upper bound
// on the solution size considered (the search only records solutions
// strictly smaller than the best found so far, starting from U). Returns
// ErrInconsistentConfiguration if m > len(V).
//
// If the time limit (WithTimeLimit) expires before the search completes,
// Solve returns the best feasible S found so far (possibly empty/nil) and
// a nil error: time expiry is not a failure, per the specification's error
// model.
func Solve(V []*vector.RegVec, m int, W []*variable.Variable, U int, opts ...Option) ([]*variable.Variable, error) {
	if m < 1 || m > len(V) {
		return nil, fmt.Errorf("%w: multiplicity %d invalid for %d vectors", ErrInconsistentConfiguration, m, len(V))
	}
	if U < 0 {
		return nil, fmt.Errorf("%w: negative upper bound %d", ErrInconsistentConfiguration, U)
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var deadline time.Time
	hasDeadline := cfg.TimeLimitSeconds > 0
	if hasDeadline {
		deadline = time.Now().Add(time.Duration(cfg.TimeLimitSeconds) * time.Second)
	}

	s := &search{
		V:       V,
		m:       m,
		best:    U,
		cfg:     cfg,
		expired: func() bool { return hasDeadline && time.Now().After(deadline) },
	}

	all := make(Bucket, len(V))
	for i := range all {
		all[i] = i
	}
	var initial []Bucket
	if len(all) > m {
		initial = []Bucket{all}
	}

	s.recurse(initial, nil, W)

	return s.bestS, nil
}

// search carries the mutable state of one Solve invocation.
type search struct {
	V       []*vector.RegVec
	m       int
	cfg     Options
	expired func() bool

	best     int
	bestS    []*variable.Variable
	timedOut bool
	improved bool // set once best has improved at least once (OrderingSwitchOnImprovement)
}

type candidate struct {
	pos int // index into the `remaining` slice this candidate came from
	v   *variable.Variable
	am  int64
	am2 int64
}

func (s *search) recurse(buckets []Bucket, selected []*variable.Variable, remaining []*variable.Variable) {
	if s.timedOut || s.expired() {
		s.timedOut = true
		return
	}

	if len(buckets) == 0 {
		if len(selected) < s.best {
			s.best = len(selected)
			s.bestS = append([]*variable.Variable(nil), selected...)
			s.improved = true
			s.cfg.Logger("solver: improved best to %d: %v", s.best, s.bestS)
		}
		return
	}

	if len(selected) >= s.best {
		return // cannot possibly improve on current best
	}

	cands := make([]candidate, 0, len(remaining))
	for i, w := range remaining {
		am, am2, useful := ambiguity(buckets, w, s.V, s.m)
		if !useful {
			continue
		}
		cands = append(cands, candidate{pos: i, v: w, am: am, am2: am2})
	}
	if len(cands) == 0 {
		return // no candidate distinguishes anything further on this path
	}

	sort.Slice(cands, s.candidateLess(cands))

	if L := s.cfg.BranchLimit; L > 0 && len(cands) > L {
		cutoff := cands[L-1].am
		end := L
		for end < len(cands) && cands[end].am == cutoff {
			end++
		}
		cands = cands[:end]
	}

	for _, c := range cands {
		if s.timedOut || s.expired() {
			s.timedOut = true
			return
		}

		nextBuckets := splitAll(buckets, c.v, s.V, s.m)
		lb := lowerBoundSingle(maxAliveSize(nextBuckets), s.m)
		if len(selected)+1+lb >= s.best {
			continue // prune: cannot beat current best down this branch
		}

		nextRemaining := removeAt(remaining, c.pos)
		s.recurse(nextBuckets, append(selected, c.v), nextRemaining)
	}
}

// candidateLess returns the less-function sort.Slice uses to rank cands,
// chosen by the configured OrderingMode (§6's ordering_mode):
//
//   - OrderingPrimaryAM: am primary, am2 tie-break, for the whole search.
//   - OrderingSwitchOnImprovement: identical to OrderingPrimaryAM until
//     s.improved first becomes true, then the OrderingAM2Only comparator
//     for the rest of the search.
//   - OrderingAM2Only: am2 alone throughout, am used only as a final
//     tie-break for determinism.
func (s *search) candidateLess(cands []candidate) func(i, j int) bool {
	am2Only := s.cfg.OrderingMode == OrderingAM2Only ||
		(s.cfg.OrderingMode == OrderingSwitchOnImprovement && s.improved)

	if am2Only {
		return func(i, j int) bool {
			if cands[i].am2 != cands[j].am2 {
				return cands[i].am2 < cands[j].am2
			}
			return cands[i].am < cands[j].am
		}
	}
	return func(i, j int) bool {
		if cands[i].am != cands[j].am {
			return cands[i].am < cands[j].am
		}
		return cands[i].am2 < cands[j].am2
	}
}

// removeAt returns a copy of s without the element at index i.
func removeAt(s []*variable.Variable, i int) []*variable.Variable {
	out := make([]*variable.Variable, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}
