package phfgraph

import "github.com/go-igu/igu/funcvect"

// sentinelNode marks an unused slot in the pattern-to-node lookup table.
const sentinelNode = -1

// Build constructs a PHF hypergraph from d >= 1 FuncVects sharing the same
// input size and max value. For every vector-id i, one node per function j
// is looked up or created at (j, funcs[j].Val(i)), and one Edge is created
// with those d nodes and Value = i.
//
// d == 1 is legal and degenerates to a plain graph: one node per distinct
// hash value, edges of arity 1. Peeling such a graph succeeds exactly when
// the single function is injective over the registered set (every node
// ends up at degree 1), which is the minimal perfect-hash case.
//
// The (function-slot, pattern) -> node-id lookup is a dense array of size
// d*maxVal, not a hash map (§9 design note), giving O(1) lookups at the
// cost of O(d*maxVal) setup memory — acceptable since maxVal = 2^p is kept
// close to the ideal index width by the outer driver.
func Build(funcs []*funcvect.FuncVect) (*Graph, error) {
	if len(funcs) < 1 {
		return nil, ErrTooFewFunctions
	}
	k := funcs[0].InputSize()
	maxVal := funcs[0].MaxVal()
	for _, f := range funcs[1:] {
		if f.InputSize() != k || f.MaxVal() != maxVal {
			return nil, ErrMismatchedFuncVects
		}
	}

	d := len(funcs)
	g := &Graph{d: d, maxVal: maxVal}

	lookup := make([][]int, d)
	for j := range lookup {
		lookup[j] = make([]int, maxVal)
		for p := range lookup[j] {
			lookup[j][p] = sentinelNode
		}
	}

	g.edges = make([]*Edge, k)
	for v := 0; v < k; v++ {
		nodeIDs := make([]int, d)
		for j, f := range funcs {
			pat := f.Val(v)
			nid := lookup[j][pat]
			if nid == sentinelNode {
				nid = len(g.nodes)
				g.nodes = append(g.nodes, &Node{ID: nid, FuncIdx: j, Pattern: pat})
				lookup[j][pat] = nid
			}
			nodeIDs[j] = nid
		}
		edge := &Edge{ID: v, Nodes: nodeIDs, Value: v}
		g.edges[v] = edge
		for _, nid := range nodeIDs {
			g.nodes[nid].edges = append(g.nodes[nid].edges, edge.ID)
		}
	}

	return g, nil
}
