package driver_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-igu/igu/driver"
	"github.com/go-igu/igu/funcvect"
	"github.com/go-igu/igu/phfgraph"
	"github.com/go-igu/igu/regvec"
)

func loadFixture(t *testing.T, data string) *regvec.RvMgr {
	t.Helper()
	m := regvec.New()
	require.NoError(t, m.Load(strings.NewReader(data)))
	return m
}

func TestRun_InconsistentConfiguration(t *testing.T) {
	m := loadFixture(t, "3 4\n000\n011\n101\n110\n")
	_, err := driver.Run(m, driver.WithHashCount(0))
	require.ErrorIs(t, err, driver.ErrInconsistentConfiguration)
}

func TestRun_SingleHashFunctionIsLegal(t *testing.T) {
	m := loadFixture(t, "3 4\n000\n011\n101\n110\n")
	r, err := driver.Run(m, driver.WithHashCount(1), driver.WithCountLimit(64), driver.WithSeed(7))
	require.NoError(t, err)
	require.NotNil(t, r)
	require.Len(t, r.Funcs, 1)
}

func TestRun_SolverPathWinsWhenCompoundDegreeConfigured(t *testing.T) {
	m := loadFixture(t, "3 4\n000\n011\n101\n110\n")

	r, err := driver.Run(m, driver.WithCompoundDegree(1))
	require.NoError(t, err)
	require.NotNil(t, r)
	require.Len(t, r.Funcs, 1, "the solver path builds one combined InputFunc")
	require.Equal(t, driver.OutcomePerfectHash, r.Outcome)
	require.NotNil(t, r.GTables)
}

func TestRun_SucceedsOnSmallFixture(t *testing.T) {
	data := "6 8\n000000\n000011\n001100\n001111\n110000\n110011\n111100\n111111\n"
	m := loadFixture(t, data)

	r, err := driver.Run(m, driver.WithHashCount(2), driver.WithCountLimit(64), driver.WithSeed(7))
	require.NoError(t, err)
	require.NotNil(t, r)
	require.Len(t, r.Funcs, 2)
	require.GreaterOrEqual(t, r.P, 1)
	require.LessOrEqual(t, r.P, m.VectSize())

	// Recompute the winning hypergraph independently and check the
	// invariant for whichever outcome Run reported (§8 properties #2, #3).
	vects := make([]*funcvect.FuncVect, len(r.Funcs))
	for i, f := range r.Funcs {
		v, err := m.GenHashVect(f)
		require.NoError(t, err)
		vects[i] = v
	}

	g, err := phfgraph.Build(vects)
	require.NoError(t, err)

	switch r.Outcome {
	case driver.OutcomePerfectHash:
		require.NotNil(t, r.GTables)
		for i := range m.VectList() {
			var acc uint32
			edge := g.Edges()[i]
			for _, nid := range edge.Nodes {
				n := g.Nodes()[nid]
				acc ^= r.GTables[n.FuncIdx][n.Pattern]
			}
			require.Equal(t, uint32(i), acc)
		}
	case driver.OutcomeCollisionFree:
		require.NotNil(t, r.Partition)
		seen := map[string]bool{}
		for i, slot := range r.Partition {
			key := fmt.Sprintf("%d:%d", slot, vects[slot].Val(i))
			require.False(t, seen[key], "collision at vector %d", i)
			seen[key] = true
		}
	default:
		t.Fatalf("unexpected outcome %v", r.Outcome)
	}

	summary := driver.Summary(m.VectSize(), len(m.VectList()), m.IndexSize(), r, 1)
	require.NotEmpty(t, summary)
}
