package driver

import (
	"fmt"
	"math/bits"

	"github.com/go-igu/igu/funcvect"
	"github.com/go-igu/igu/hashgen"
	"github.com/go-igu/igu/phfgraph"
	"github.com/go-igu/igu/regvec"
	"github.com/go-igu/igu/solver"
	"github.com/go-igu/igu/variable"
)

// Outcome classifies which of the two PHF queries an attempt satisfied.
type Outcome int

const (
	// OutcomePerfectHash means the hash functions admit a perfect-hash
	// g-table assignment (§4.4.4): every vector recovers its own id as
	// the XOR of g_j(f_j(v)) over all j.
	OutcomePerfectHash Outcome = iota
	// OutcomeCollisionFree means no perfect hash was found but the
	// hypergraph's peeling residue admits a collision-free partition
	// (§4.4.5): every vector routes to exactly one of d parallel IGUs.
	OutcomeCollisionFree
)

// Result is the successful output of Run.
type Result struct {
	Outcome   Outcome
	P         int                   // final hash width
	Funcs     []*variable.InputFunc // the winning hash functions: len 1 if the solver path won, HashCount if the random-XOR path won
	GTables   [][]uint32            // set iff Outcome == OutcomePerfectHash
	Partition []int                 // set iff Outcome == OutcomeCollisionFree: Partition[v] is the winning function's slot
	Attempts  int                   // total function-set attempts across all widths tried
}

// Run executes the outer composition loop of §4.6 against a loaded RvMgr.
// Hash functions are built from Variables or random XORs (§2): when
// CompoundDegree or CandidatePool is configured, Run first asks the
// variable-selection solver for a minimal distinguishing subset and tests
// the resulting single InputFunc against both PHF queries; only if that
// path is unconfigured or unsuccessful does it fall back to the random-XOR
// source.
//
// The random-XOR source, starting from p = q - ceil(log2(hash_count)),
// repeatedly generates hash_count random XOR hash functions of width p,
// evaluates them over the store, and asks the PHF engine first for a
// perfect-hash assignment, then (if that hypergraph's residue is
// non-empty) for a collision-free partition of the same functions. Both
// PHF queries are pure and side-effect-free (§4.4.7), so trying both
// against one generated hypergraph costs nothing beyond the two
// already-cheap calls; only the hash-function generation itself is
// retried, up to CountLimit times per p, before p is widened and the
// counter resets.
func Run(mgr *regvec.RvMgr, opts ...Option) (*Result, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.HashCount < 1 || cfg.CountLimit < 1 || cfg.MaxDegree < 1 || cfg.Multiplicity < 1 {
		return nil, ErrInconsistentConfiguration
	}

	n := mgr.VectSize()
	q := mgr.IndexSize()
	d := cfg.HashCount
	maxDegree := cfg.MaxDegree
	if maxDegree > n {
		maxDegree = n
	}

	if r, ok, err := trySolverHash(mgr, cfg, n); err != nil {
		return nil, err
	} else if ok {
		return r, nil
	}

	p := q - ceilLog2(d)
	if p < 1 {
		p = 1
	}
	if p > n {
		return nil, ErrInconsistentConfiguration
	}

	attempts := 0
	for p <= n {
		if cfg.DebugLevel >= 1 {
			cfg.Logger("driver: trying p=%d (q=%d, d=%d)", p, q, d)
		}

		for attempt := 0; attempt < cfg.CountLimit; attempt++ {
			attempts++
			seed := cfg.Seed ^ uint64(p)<<48 ^ uint64(attempt)

			funcs, vects, err := genFuncSet(mgr, seed, n, p, d, maxDegree)
			if err != nil {
				return nil, fmt.Errorf("driver: generating hash functions: %w", err)
			}

			g, err := phfgraph.Build(vects)
			if err != nil {
				return nil, fmt.Errorf("driver: building hypergraph: %w", err)
			}

			if cfg.DebugLevel >= 2 {
				cfg.Logger("driver: p=%d attempt=%d simple=%v", p, attempt, g.SimpleCheck())
			}

			if ok, order := g.AcyclicCheck(); ok {
				tables, err := g.AssignPerfectHash(order)
				if err == nil {
					return &Result{Outcome: OutcomePerfectHash, P: p, Funcs: funcs, GTables: tables, Attempts: attempts}, nil
				}
			}

			if assignment, err := g.CollisionFreePartition(); err == nil {
				return &Result{Outcome: OutcomeCollisionFree, P: p, Funcs: funcs, Partition: assignment, Attempts: attempts}, nil
			}

			if cfg.DebugLevel >= 1 {
				cfg.Logger("driver: p=%d attempt=%d failed, retrying", p, attempt)
			}
		}

		if cfg.DebugLevel >= 1 {
			cfg.Logger("driver: exhausted count_limit at p=%d, widening", p)
		}
		p++
	}

	return nil, ErrSearchSpaceExhausted
}

// trySolverHash attempts the Variable-based hash-function source: build (or
// accept) a candidate pool, ask the solver for a minimal distinguishing
// subset S, and test the resulting single InputFunc (d=1) against both PHF
// queries. It is a no-op (ok=false, nil error) whenever the solver path is
// not configured (CompoundDegree == 0 and CandidatePool is nil) or the
// solver finds no feasible S.
func trySolverHash(mgr *regvec.RvMgr, cfg Options, n int) (*Result, bool, error) {
	pool := cfg.CandidatePool
	if pool == nil {
		if cfg.CompoundDegree < 1 {
			return nil, false, nil
		}
		generated, err := variable.GenerateCandidates(n, cfg.CompoundDegree)
		if err != nil {
			return nil, false, fmt.Errorf("driver: generating candidate pool: %w", err)
		}
		pool = generated
	}
	if len(pool) == 0 {
		return nil, false, nil
	}

	upperBound := cfg.SolverUpperBound
	if upperBound <= 0 {
		upperBound = n
	}

	S, err := solver.Solve(mgr.VectList(), cfg.Multiplicity, pool, upperBound, cfg.SolverOptions...)
	if err != nil {
		return nil, false, fmt.Errorf("driver: solving for distinguishing variables: %w", err)
	}
	if len(S) == 0 {
		return nil, false, nil
	}

	f, err := variable.NewVarFunc(S)
	if err != nil {
		return nil, false, fmt.Errorf("driver: building variable-selected hash function: %w", err)
	}
	fv, err := mgr.GenHashVect(f)
	if err != nil {
		return nil, false, fmt.Errorf("driver: evaluating variable-selected hash function: %w", err)
	}

	g, err := phfgraph.Build([]*funcvect.FuncVect{fv})
	if err != nil {
		return nil, false, fmt.Errorf("driver: building hypergraph: %w", err)
	}

	if cfg.DebugLevel >= 1 {
		cfg.Logger("driver: trying solver-selected S=%v (|S|=%d)", S, len(S))
	}

	funcs := []*variable.InputFunc{f}
	if ok, order := g.AcyclicCheck(); ok {
		tables, err := g.AssignPerfectHash(order)
		if err == nil {
			return &Result{Outcome: OutcomePerfectHash, P: f.OutputWidth(), Funcs: funcs, GTables: tables, Attempts: 1}, true, nil
		}
	}
	if assignment, err := g.CollisionFreePartition(); err == nil {
		return &Result{Outcome: OutcomeCollisionFree, P: f.OutputWidth(), Funcs: funcs, Partition: assignment, Attempts: 1}, true, nil
	}

	if cfg.DebugLevel >= 1 {
		cfg.Logger("driver: solver-selected S failed both PHF queries, falling back to random XORs")
	}
	return nil, false, nil
}

// genFuncSet generates d random XOR hash functions of width p and
// evaluates each over mgr, returning both the functions (for the caller's
// inspection/summary) and their FuncVects (for the PHF engine).
func genFuncSet(mgr *regvec.RvMgr, seed uint64, n, p, d, maxDegree int) ([]*variable.InputFunc, []*funcvect.FuncVect, error) {
	gen := hashgen.New(seed)

	funcs := make([]*variable.InputFunc, d)
	vects := make([]*funcvect.FuncVect, d)
	for j := 0; j < d; j++ {
		f, err := gen.GenFunc(n, p, maxDegree)
		if err != nil {
			return nil, nil, err
		}
		fv, err := mgr.GenHashVect(f)
		if err != nil {
			return nil, nil, err
		}
		funcs[j] = f
		vects[j] = fv
	}
	return funcs, vects, nil
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
