package matching

// Maximize finds a maximum bipartite matching between left and right node
// sets. leftAdj[i] lists, in ascending order, the right-node indices left
// node i is adjacent to; rightSize is the number of right nodes (indices
// 0..rightSize-1 referenced by leftAdj).
//
// Returns matchLeft, where matchLeft[i] is the right node matched to left
// node i, or -1 if i is unmatched, and perfect, which is true iff every
// left node was matched (a perfect matching on the left side — the
// condition the PHF engine's collision-free partition requires after
// Hall's-condition peeling, §4.4.5).
//
// Uses Kuhn's augmenting-path algorithm: O(V*E) time. Ties within a search
// are broken by ascending right-node index, making results deterministic
// for a given adjacency.
func Maximize(leftAdj [][]int, rightSize int) (matchLeft []int, perfect bool) {
	n := len(leftAdj)
	matchLeft = make([]int, n)
	for i := range matchLeft {
		matchLeft[i] = -1
	}
	matchRight := make([]int, rightSize)
	for i := range matchRight {
		matchRight[i] = -1
	}

	matched := 0
	for i := 0; i < n; i++ {
		visited := make([]bool, rightSize)
		if augment(i, leftAdj, visited, matchLeft, matchRight) {
			matched++
		}
	}

	return matchLeft, matched == n
}

// augment attempts to find an augmenting path starting at left node u,
// extending the current matching. visited tracks right nodes already
// explored during this single search.
func augment(u int, leftAdj [][]int, visited []bool, matchLeft, matchRight []int) bool {
	for _, v := range leftAdj[u] {
		if visited[v] {
			continue
		}
		visited[v] = true
		if matchRight[v] == -1 || augment(matchRight[v], leftAdj, visited, matchLeft, matchRight) {
			matchRight[v] = u
			matchLeft[u] = v
			return true
		}
	}
	return false
}
