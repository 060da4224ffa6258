// Package igu synthesizes Index Generation Units: perfect-hash and
// collision-free-partition index structures for a set of registered
// bit-vectors, using far less memory than a naive lookup table.
//
// Given k distinct n-bit vectors, the core finds a small set of hash
// functions mapping them to compact indices, either via an XOR-assignable
// g-table (a true minimal perfect hash) or, when that fails, a
// collision-free routing across several parallel index tables.
//
// The module is organized bottom-up by dependency:
//
//	vector/    — packed-bit immutable registered vectors
//	variable/  — primary/compound classifiers and the polymorphic InputFunc
//	funcvect/  — dense vector-id -> hash-value arrays
//	regvec/    — the RvMgr store: load, dedup, and evaluate hash functions
//	hashgen/   — deterministic random XOR hash function generator
//	solver/    — branch-and-bound variable-selection search
//	phfgraph/  — the d-uniform PHF hypergraph engine (peeling, g-tables,
//	             collision-free partition, displace decomposition)
//	matching/  — bipartite maximum matching backing the partition fallback
//	driver/    — the outer retry loop composing the above into one answer
//
// There is no command-line front end or file-format tooling beyond the
// vector-dump loader in regvec; those are external collaborators, not part
// of the core.
package igu
