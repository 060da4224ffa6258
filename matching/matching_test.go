package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-igu/igu/matching"
)

func TestMaximize_PerfectMatching(t *testing.T) {
	// Left 0 -> {0,1}, Left 1 -> {0}, Left 2 -> {1,2}
	adj := [][]int{
		{0, 1},
		{0},
		{1, 2},
	}
	m, perfect := matching.Maximize(adj, 3)
	require.True(t, perfect)
	seen := map[int]bool{}
	for _, r := range m {
		require.NotEqual(t, -1, r)
		require.False(t, seen[r])
		seen[r] = true
	}
}

func TestMaximize_NotPerfect(t *testing.T) {
	// Two left nodes both only adjacent to the same single right node.
	adj := [][]int{
		{0},
		{0},
	}
	_, perfect := matching.Maximize(adj, 1)
	require.False(t, perfect)
}

func TestMaximize_EmptyLeft(t *testing.T) {
	m, perfect := matching.Maximize(nil, 0)
	require.True(t, perfect)
	require.Empty(t, m)
}

func TestMaximize_ThreeCycle(t *testing.T) {
	// 3 edges each adjacent to 2 of 3 shared nodes, forming a cycle;
	// |edges| == |nodes| so a perfect matching exists (Scenario E).
	adj := [][]int{
		{0, 1},
		{1, 2},
		{2, 0},
	}
	_, perfect := matching.Maximize(adj, 3)
	require.True(t, perfect)
}
