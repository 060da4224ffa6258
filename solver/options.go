package solver

// OrderingMode selects the candidate-ranking policy recurse uses at each
// branch point (§6's ordering_mode).
type OrderingMode int

const (
	// OrderingPrimaryAM ranks candidates by am (primary), breaking ties by
	// am2, for the whole search. The default.
	OrderingPrimaryAM OrderingMode = iota
	// OrderingSwitchOnImprovement ranks by am/am2 exactly like
	// OrderingPrimaryAM until the first time a feasible solution improves
	// on best, then switches to the OrderingAM2Only ranking for the
	// remainder of the search.
	OrderingSwitchOnImprovement
	// OrderingAM2Only ranks candidates by am2 for the whole search; am is
	// used only to break ties in am2.
	OrderingAM2Only
)

// Options configures one Solve call.
type Options struct {
	// BranchLimit caps recursion fan-out to the L candidates of lowest
	// ambiguity measure (plus ties with the L-th value). 0 means
	// unlimited.
	BranchLimit int

	// TimeLimitSeconds bounds wall-clock search time. 0 means unlimited.
	// On expiry, Solve returns the best feasible solution found so far
	// rather than an error.
	TimeLimitSeconds int

	// OrderingMode selects the candidate-ranking policy. Default
	// OrderingPrimaryAM.
	OrderingMode OrderingMode

	// Logger receives a trace message each time the search improves its
	// best solution. Defaults to a no-op.
	Logger func(format string, args ...interface{})
}

// Option configures a solver Options value.
type Option func(*Options)

// WithBranchLimit sets the branch-fan-out cap L (0 = unlimited).
func WithBranchLimit(l int) Option {
	return func(o *Options) { o.BranchLimit = l }
}

// WithTimeLimit sets the wall-clock budget in seconds (0 = unlimited).
func WithTimeLimit(seconds int) Option {
	return func(o *Options) { o.TimeLimitSeconds = seconds }
}

// WithLogger installs a debug trace sink.
func WithLogger(fn func(format string, args ...interface{})) Option {
	return func(o *Options) { o.Logger = fn }
}

// WithOrderingMode sets the candidate-ranking policy used at each branch
// point.
func WithOrderingMode(mode OrderingMode) Option {
	return func(o *Options) { o.OrderingMode = mode }
}

func defaultOptions() Options {
	return Options{
		OrderingMode: OrderingPrimaryAM,
		Logger:       func(string, ...interface{}) {},
	}
}
