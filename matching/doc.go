// Package matching implements deterministic bipartite maximum matching via
// augmenting paths (Kuhn's algorithm), used by the PHF hypergraph engine to
// complete a collision-free partition after peeling leaves a cyclic
// residue (§4.4.5 of the specification this module implements).
//
// The API is a thin, allocation-light adjacency-list form rather than a
// general *core.Graph the way the teacher's flow package wraps one: the
// caller (phfgraph) already owns dense integer ids for residue edges and
// nodes, so matching works directly on those rather than re-deriving a
// string-keyed graph. Determinism (ties broken by ascending id, as in the
// teacher's tsp package) makes matching results reproducible across runs
// with identical input.
package matching
