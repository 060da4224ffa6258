package phfgraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-igu/igu/funcvect"
)

// scenarioBFuncs builds f1=(x0,x1), f2=(x1,x2) over V={000,011,101,110},
// matching the fixture vectors used throughout spec.md's worked examples.
func scenarioBFuncs(t *testing.T) (*funcvect.FuncVect, *funcvect.FuncVect) {
	t.Helper()
	f1, err := funcvect.New([]uint32{0, 1, 2, 3}, 4, 4)
	require.NoError(t, err)
	f2, err := funcvect.New([]uint32{0, 3, 1, 2}, 4, 4)
	require.NoError(t, err)
	return f1, f2
}

func TestScenarioB_SimpleAcyclicAndAssign(t *testing.T) {
	f1, f2 := scenarioBFuncs(t)
	g, err := Build([]*funcvect.FuncVect{f1, f2})
	require.NoError(t, err)

	require.True(t, g.SimpleCheck())

	ok, order := g.AcyclicCheck()
	require.True(t, ok)
	require.Len(t, order, len(g.Edges()))

	tables, err := g.AssignPerfectHash(order)
	require.NoError(t, err)

	for i, edge := range g.Edges() {
		var acc uint32
		for _, nid := range edge.Nodes {
			n := g.Nodes()[nid]
			acc ^= tables[n.FuncIdx][n.Pattern]
		}
		require.Equal(t, uint32(i), acc, "XOR-sum must recover vector id %d", i)
	}
}

func TestAcyclicCheck_OrderIsPermutationCoveringEveryNewEndpoint(t *testing.T) {
	f1, f2 := scenarioBFuncs(t)
	g, err := Build([]*funcvect.FuncVect{f1, f2})
	require.NoError(t, err)

	ok, order := g.AcyclicCheck()
	require.True(t, ok)

	seen := make(map[int]bool, len(order))
	for _, eid := range order {
		require.False(t, seen[eid], "edge %d repeated in acyclic order", eid)
		seen[eid] = true
	}
	require.Len(t, seen, len(g.Edges()))

	newlySeen := make(map[int]bool, len(g.Nodes()))
	for _, eid := range order {
		edge := g.edges[eid]
		foundNew := false
		for _, nid := range edge.Nodes {
			if !newlySeen[nid] {
				newlySeen[nid] = true
				foundNew = true
				break
			}
		}
		require.True(t, foundNew, "edge %d introduces no new endpoint", eid)
	}
}

// scenarioEGraph builds the minimal non-peelable d=3 residue: three nodes,
// each incident to all three edges in a cyclic rotation of slots, so no
// node ever reaches degree 1.
func scenarioEGraph() *Graph {
	n0 := &Node{ID: 0, FuncIdx: 0, Pattern: 0}
	n1 := &Node{ID: 1, FuncIdx: 1, Pattern: 0}
	n2 := &Node{ID: 2, FuncIdx: 2, Pattern: 0}
	nodes := []*Node{n0, n1, n2}

	edges := []*Edge{
		{ID: 0, Nodes: []int{0, 1, 2}, Value: 0},
		{ID: 1, Nodes: []int{1, 2, 0}, Value: 1},
		{ID: 2, Nodes: []int{2, 0, 1}, Value: 2},
	}
	for _, e := range edges {
		for _, nid := range e.Nodes {
			nodes[nid].edges = append(nodes[nid].edges, e.ID)
		}
	}

	return &Graph{d: 3, nodes: nodes, edges: edges, maxVal: 1}
}

func TestScenarioE_CyclicFallsThroughToMatching(t *testing.T) {
	g := scenarioEGraph()

	ok, _ := g.AcyclicCheck()
	require.False(t, ok, "3-node cycle must not be acyclic-peelable")

	assignment, err := g.CollisionFreePartition()
	require.NoError(t, err)
	require.Len(t, assignment, 3)

	// maxVal is 1, so every node's Pattern is 0: uniqueness of the
	// (slot, pattern) pair collapses to uniqueness of the slot itself.
	seen := map[int]bool{}
	for _, slot := range assignment {
		require.False(t, seen[slot], "slot %d assigned to more than one edge", slot)
		seen[slot] = true
	}
	require.Len(t, seen, 3)
}

// TestProperty8_SingleInjectiveFunctionIsTriviallyAcyclic covers the d=1
// boundary: p = ceil(log2(k)) = 2 for k = 4, one function that is the
// identity on vector ids 0..3, injective over V.
// Peeling a 1-uniform graph built from an injective function must succeed
// immediately (every node starts at degree 1), and the resulting g-table
// is the identity permutation on the image: g0[f(v_i)] == i for every i.
func TestProperty8_SingleInjectiveFunctionIsTriviallyAcyclic(t *testing.T) {
	f, err := funcvect.New([]uint32{0, 1, 2, 3}, 4, 4)
	require.NoError(t, err)

	g, err := Build([]*funcvect.FuncVect{f})
	require.NoError(t, err)
	require.Equal(t, 1, g.D())

	ok, order := g.AcyclicCheck()
	require.True(t, ok, "an injective single function must peel completely")
	require.Len(t, order, len(g.Edges()))

	tables, err := g.AssignPerfectHash(order)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	for i, edge := range g.Edges() {
		node := g.Nodes()[edge.Nodes[0]]
		require.Equal(t, uint32(i), tables[node.FuncIdx][node.Pattern])
	}
}

func TestProperty9_IdenticalFunctionsFailSimpleCheck(t *testing.T) {
	// Both vectors collide under f (value 0 for both), and with f1=f2 the
	// resulting edges share an identical (slot0, slot1) node tuple.
	f, err := funcvect.New([]uint32{0, 0}, 4, 2)
	require.NoError(t, err)

	g, err := Build([]*funcvect.FuncVect{f, f})
	require.NoError(t, err)

	require.False(t, g.SimpleCheck())
}

func TestScenarioF_DisplaceProducesInjection(t *testing.T) {
	f1, err := funcvect.New([]uint32{0, 0, 1, 1, 2, 2}, 8, 6)
	require.NoError(t, err)
	f2, err := funcvect.New([]uint32{0, 1, 0, 1, 0, 1}, 8, 6)
	require.NoError(t, err)

	for _, useXor := range []bool{false, true} {
		delta, err := Displace(f1, f2, useXor)
		require.NoError(t, err)
		require.Len(t, delta, 8)

		seen := make(map[uint32]bool)
		for i := 0; i < f1.InputSize(); i++ {
			var pos uint32
			if useXor {
				pos = f2.Val(i) ^ delta[f1.Val(i)]
			} else {
				pos = (f2.Val(i) + delta[f1.Val(i)]) % f2.MaxVal()
			}
			require.False(t, seen[pos], "collision at vector %d", i)
			seen[pos] = true
		}
	}
}
