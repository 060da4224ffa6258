package phfgraph

// peelResult is the shared outcome of one peeling pass, reused by
// AcyclicCheck (which only needs the order and success flag) and
// CollisionFreePartition (which also needs the peeling-time assignment and
// any cyclic residue).
type peelResult struct {
	// order lists peeled edge ids in reverse-removal order: each edge has
	// at least one endpoint that has not appeared in any earlier edge of
	// the list (the property AssignPerfectHash relies on).
	order []int
	// assignedNode maps a peeled edge id to the node id that had degree 1
	// at the moment the edge was removed.
	assignedNode map[int]int
	residueEdges []int
	residueNodes []int
	fullyAcyclic bool
}

// peel runs the degree-1 removal process of §4.4.3 over the whole graph.
func (g *Graph) peel() *peelResult {
	nodeActive := make([]bool, len(g.nodes))
	for i := range nodeActive {
		nodeActive[i] = true
	}
	edgeActive := make([]bool, len(g.edges))
	for i := range edgeActive {
		edgeActive[i] = true
	}
	degree := make([]int, len(g.nodes))
	for i, node := range g.nodes {
		degree[i] = len(node.edges)
	}

	type qItem struct{ node, edge int }
	queue := make([]qItem, 0, len(g.nodes))
	for i, d := range degree {
		if d == 1 {
			queue = append(queue, qItem{i, activeEdgeOf(g, i, edgeActive)})
		}
	}

	removalOrder := make([]int, 0, len(g.edges))
	assignedNode := make(map[int]int, len(g.edges))

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if !nodeActive[item.node] || item.edge < 0 || !edgeActive[item.edge] {
			continue
		}

		nodeActive[item.node] = false
		edgeActive[item.edge] = false
		removalOrder = append(removalOrder, item.edge)
		assignedNode[item.edge] = item.node

		edge := g.edges[item.edge]
		for _, nb := range edge.Nodes {
			if nb == item.node || !nodeActive[nb] {
				continue
			}
			degree[nb]--
			if degree[nb] == 1 {
				queue = append(queue, qItem{nb, activeEdgeOf(g, nb, edgeActive)})
			}
		}
	}

	order := make([]int, len(removalOrder))
	for i, e := range removalOrder {
		order[len(order)-1-i] = e
	}

	var residueEdges, residueNodes []int
	for i, active := range edgeActive {
		if active {
			residueEdges = append(residueEdges, i)
		}
	}
	for i, active := range nodeActive {
		if active {
			residueNodes = append(residueNodes, i)
		}
	}

	return &peelResult{
		order:        order,
		assignedNode: assignedNode,
		residueEdges: residueEdges,
		residueNodes: residueNodes,
		fullyAcyclic: len(residueEdges) == 0,
	}
}

// activeEdgeOf returns the first active edge id incident to node i, or -1
// if none remain (should not occur when called for a degree-1 node, but
// guarded defensively).
func activeEdgeOf(g *Graph, i int, edgeActive []bool) int {
	for _, eid := range g.nodes[i].edges {
		if edgeActive[eid] {
			return eid
		}
	}
	return -1
}

// AcyclicCheck reports whether iteratively removing degree-1 nodes (and
// their incident edge) eliminates every edge. On success it also returns
// the elimination order AssignPerfectHash expects.
func (g *Graph) AcyclicCheck() (bool, []int) {
	r := g.peel()
	if !r.fullyAcyclic {
		return false, nil
	}
	return true, r.order
}
