// Package phfgraph implements the PHF hypergraph engine: given d FuncVects
// sharing one input size and output width, it builds a d-uniform
// hypergraph on the function-value buckets and answers simple_check,
// acyclic_check (peeling), perfect-hash g-table assignment, collision-free
// partition (peeling + bipartite matching), and the d=2 displace
// specialization.
//
// Nodes and edges live in flat, dense-id-indexed slices rather than a
// pointer graph (§9 of the specification this module implements): an edge
// holds a fixed-size tuple of node ids, and peeling tracks active/inactive
// state on parallel bool slices plus a work queue of (node, edge) pairs —
// the array-of-structs style the teacher's core.Graph/flow packages use for
// their own adjacency bookkeeping, adapted here to avoid the teacher's
// string-keyed maps in favor of integer ids matching the pattern-index
// lookup design note (§9: "pattern-to-id array... without a general hash
// map").
package phfgraph
