package driver

import (
	"github.com/go-igu/igu/solver"
	"github.com/go-igu/igu/variable"
)

// Options configures one Run call. Zero-value construction followed by
// functional options mirrors solver.Options.
type Options struct {
	// HashCount is d, the number of parallel hash functions tried
	// together. Default 2.
	HashCount int

	// CountLimit is the number of fresh function sets tried at a given p
	// before widening it. Default 32.
	CountLimit int

	// MaxDegree bounds the fan-in of each random XOR hash function
	// (hashgen.GenFunc's max_degree). Default 3.
	MaxDegree int

	// Seed seeds the deterministic hash-function stream. Default 1.
	Seed uint64

	// CompoundDegree is D, the compound_degree bound (§6) passed to
	// variable.GenerateCandidates when CandidatePool is nil. 0 (the
	// default) leaves the Variable-selection path disabled entirely:
	// Run tries only the random-XOR source, matching prior behavior for
	// callers who never opt in. A positive value enables the solver path
	// as the first hash-function source tried, ahead of random XORs, per
	// the specification's "Variables or random XORs" data flow.
	CompoundDegree int

	// CandidatePool overrides automatic candidate generation with a
	// caller-supplied Variable pool for the solver path. Takes precedence
	// over CompoundDegree when non-nil.
	CandidatePool []*variable.Variable

	// Multiplicity is m, the solver's bucket-size tolerance. Default 1
	// (every bucket must shrink to a single vector: a true injection).
	Multiplicity int

	// SolverUpperBound bounds the size of S the solver will accept. 0
	// means "use the input bit-width n", a safe bound for any pool drawn
	// from GenerateCandidates(n, ...).
	SolverUpperBound int

	// SolverOptions are passed through to solver.Solve unchanged (branch
	// limit, time limit, ordering mode, logger).
	SolverOptions []solver.Option

	// DebugLevel gates Logger verbosity: 0 silent, 1 retries/outer loop,
	// 2 per-attempt detail (matches §6's debug_level).
	DebugLevel int

	// Logger receives debug trace messages. Defaults to a no-op.
	Logger func(format string, args ...interface{})
}

// Option configures a driver Options value.
type Option func(*Options)

// WithHashCount sets d, the number of parallel hash functions per attempt.
func WithHashCount(d int) Option {
	return func(o *Options) { o.HashCount = d }
}

// WithCountLimit sets the number of retries attempted at a given p before
// widening it.
func WithCountLimit(n int) Option {
	return func(o *Options) { o.CountLimit = n }
}

// WithMaxDegree sets the fan-in bound passed to the random hash generator.
func WithMaxDegree(d int) Option {
	return func(o *Options) { o.MaxDegree = d }
}

// WithSeed sets the deterministic seed for the hash-function stream.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithDebugLevel sets the verbosity gate for Logger.
func WithDebugLevel(level int) Option {
	return func(o *Options) { o.DebugLevel = level }
}

// WithLogger installs a debug trace sink.
func WithLogger(fn func(format string, args ...interface{})) Option {
	return func(o *Options) { o.Logger = fn }
}

// WithCompoundDegree enables the Variable-selection solver as the first
// hash-function source Run tries, generating candidates up to degree D via
// variable.GenerateCandidates (unless WithCandidatePool overrides it).
func WithCompoundDegree(d int) Option {
	return func(o *Options) { o.CompoundDegree = d }
}

// WithCandidatePool supplies a fixed Variable pool to the solver path,
// bypassing automatic generation from CompoundDegree.
func WithCandidatePool(pool []*variable.Variable) Option {
	return func(o *Options) { o.CandidatePool = pool }
}

// WithMultiplicity sets m, the solver's bucket-size tolerance.
func WithMultiplicity(m int) Option {
	return func(o *Options) { o.Multiplicity = m }
}

// WithSolverUpperBound sets the size bound passed to solver.Solve as U.
func WithSolverUpperBound(u int) Option {
	return func(o *Options) { o.SolverUpperBound = u }
}

// WithSolverOptions passes options through to the underlying solver.Solve
// call unchanged.
func WithSolverOptions(opts ...solver.Option) Option {
	return func(o *Options) { o.SolverOptions = opts }
}

func defaultOptions() Options {
	return Options{
		HashCount:    2,
		CountLimit:   32,
		MaxDegree:    3,
		Seed:         1,
		Multiplicity: 1,
		Logger:       func(string, ...interface{}) {},
	}
}
