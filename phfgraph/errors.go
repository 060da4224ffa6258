package phfgraph

import "errors"

// ErrTooFewFunctions is returned when zero FuncVects are supplied; a
// hypergraph needs at least one function to have any edges at all.
var ErrTooFewFunctions = errors.New("phfgraph: need at least 1 function")

// ErrMismatchedFuncVects is returned when the supplied FuncVects disagree
// on input size or max value.
var ErrMismatchedFuncVects = errors.New("phfgraph: functions disagree on input size or max value")

// ErrNotAcyclic is returned by AssignPerfectHash when the graph has a
// cyclic residue; the caller must rebuild with fresh hash functions.
var ErrNotAcyclic = errors.New("phfgraph: hypergraph is not acyclic")

// ErrNoPartition is returned by CollisionFreePartition when Hall's
// condition fails on the cyclic residue (fewer residue nodes than
// residue edges) or the resulting bipartite matching is not perfect.
var ErrNoPartition = errors.New("phfgraph: no collision-free partition exists")

// ErrNoDisplaceSolution is returned by Displace when some f1-bucket admits
// no collision-free offset.
var ErrNoDisplaceSolution = errors.New("phfgraph: no displacement value found")
