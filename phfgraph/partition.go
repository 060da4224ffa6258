package phfgraph

import (
	"sort"

	"github.com/go-igu/igu/matching"
)

// CollisionFreePartition finds, for every vector, one of its d candidate
// hash-function slots such that no two vectors share a final slot+pattern
// position (§4.4.5). It returns assignment, where assignment[v] is the
// chosen function index (0..d-1) for vector v: the pair
// (assignment[v], funcs[assignment[v]].Val(v)) is then guaranteed distinct
// across all v.
//
// Vectors peeled during the acyclicity pass keep the slot their degree-1
// node belonged to at removal time — that node was, by construction, not
// shared with any other still-active edge. The cyclic residue left after
// peeling is resolved by a maximum bipartite matching between residual
// edges and residual nodes; Hall's condition (enough residual nodes to
// cover the residual edges) is checked before running it.
func (g *Graph) CollisionFreePartition() ([]int, error) {
	r := g.peel()

	assignment := make([]int, len(g.edges))
	for eid, nid := range r.assignedNode {
		assignment[eid] = g.nodes[nid].FuncIdx
	}

	if len(r.residueEdges) == 0 {
		return assignment, nil
	}

	if len(r.residueNodes) < len(r.residueEdges) {
		return nil, ErrNoPartition
	}

	nodeIdx := make(map[int]int, len(r.residueNodes))
	for i, nid := range r.residueNodes {
		nodeIdx[nid] = i
	}

	leftAdj := make([][]int, len(r.residueEdges))
	for i, eid := range r.residueEdges {
		edge := g.edges[eid]
		adj := make([]int, 0, len(edge.Nodes))
		for _, nid := range edge.Nodes {
			if ri, ok := nodeIdx[nid]; ok {
				adj = append(adj, ri)
			}
		}
		sort.Ints(adj)
		leftAdj[i] = adj
	}

	matchLeft, perfect := matching.Maximize(leftAdj, len(r.residueNodes))
	if !perfect {
		return nil, ErrNoPartition
	}

	for i, eid := range r.residueEdges {
		nid := r.residueNodes[matchLeft[i]]
		assignment[eid] = g.nodes[nid].FuncIdx
	}

	return assignment, nil
}
