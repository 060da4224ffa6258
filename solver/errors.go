package solver

import "errors"

// ErrInconsistentConfiguration is returned when the solver is called with
// parameters that can never produce a valid answer, e.g. m > len(V).
var ErrInconsistentConfiguration = errors.New("solver: inconsistent configuration")
