package phfgraph

// SimpleCheck reports whether the hypergraph is simple: no two edges share
// an identical d-tuple of node ids. Cost is bounded by the sum of squared
// node degrees, which stays small for the realistic loads this engine
// targets.
func (g *Graph) SimpleCheck() bool {
	for _, node := range g.nodes {
		edges := node.edges
		for i := 0; i < len(edges); i++ {
			e1 := g.edges[edges[i]]
			for j := i + 1; j < len(edges); j++ {
				e2 := g.edges[edges[j]]
				if sameTuple(e1, e2) {
					return false
				}
			}
		}
	}
	return true
}

func sameTuple(e1, e2 *Edge) bool {
	for i := range e1.Nodes {
		if e1.Nodes[i] != e2.Nodes[i] {
			return false
		}
	}
	return true
}
