// Package driver implements the outer composition loop described in §4.6:
// pick a hash width p starting near the ideal index width, generate d
// random hash functions of that width, evaluate them over a loaded RegVec
// store, and ask the PHF hypergraph engine for a perfect-hash assignment or,
// failing that, a collision-free partition. Failures retry with fresh
// random functions up to a per-width count limit; exhausting that limit
// widens p and resets the counter.
//
// This is the single orchestrator entry point for the core, in the way the
// teacher's builder package exposes one BuildGraph call composing
// independently-testable constructors: Run wires together regvec, hashgen,
// and phfgraph without any of those packages depending on each other.
package driver
