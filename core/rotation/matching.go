package rotation

import "github.com/transitops/omloop/core/model"

// Matching computes a maximum bipartite matching over the compatibility
// graph with Hopcroft-Karp and reads the chains off the match pointers.
// With M matched pairs over N trips the result is N-M chains, which is the
// minimum possible chain count (minimum path cover on a DAG). The algorithm
// is indifferent to which maximum matching it finds, hence indifferent to
// idle time.
type Matching struct{}

func (Matching) Name() string { return MatchingName }

func (Matching) Chains(trips []model.Trip, g *Graph) [][]int {
	n := len(trips)
	matchL, _ := MaxBipartiteMatching(g.Adj, n, n)
	return chainsFromMatching(n, matchL)
}

// MaxBipartiteMatching runs Hopcroft-Karp over an adjacency list where
// adj[u] holds the right-side nodes left-side node u may match. It returns
// matchL and matchR with -1 marking unmatched nodes. Phases alternate a BFS
// that layers the graph from all free left nodes and a DFS that augments
// only along shortest paths.
func MaxBipartiteMatching(adj [][]int, nLeft, nRight int) (matchL, matchR []int) {
	const inf = int(^uint(0) >> 1)

	matchL = make([]int, nLeft)
	matchR = make([]int, nRight)
	for i := range matchL {
		matchL[i] = -1
	}
	for i := range matchR {
		matchR[i] = -1
	}

	dist := make([]int, nLeft)
	queue := make([]int, 0, nLeft)

	bfs := func() bool {
		queue = queue[:0]
		for u := 0; u < nLeft; u++ {
			if matchL[u] == -1 {
				dist[u] = 0
				queue = append(queue, u)
			} else {
				dist[u] = inf
			}
		}
		found := false
		for head := 0; head < len(queue); head++ {
			u := queue[head]
			for _, v := range adj[u] {
				w := matchR[v]
				if w == -1 {
					found = true
				} else if dist[w] == inf {
					dist[w] = dist[u] + 1
					queue = append(queue, w)
				}
			}
		}
		return found
	}

	var dfs func(u int) bool
	dfs = func(u int) bool {
		for _, v := range adj[u] {
			w := matchR[v]
			if w == -1 || (dist[w] == dist[u]+1 && dfs(w)) {
				matchL[u] = v
				matchR[v] = u
				return true
			}
		}
		dist[u] = inf
		return false
	}

	for bfs() {
		for u := 0; u < nLeft; u++ {
			if matchL[u] == -1 {
				dfs(u)
			}
		}
	}
	return matchL, matchR
}

// chainsFromMatching resolves each trip to chain-start or chain-continuation
// in one linear pass: a trip that is never the target of a match starts a
// chain, and match pointers are followed until they run out.
func chainsFromMatching(n int, matchL []int) [][]int {
	isTarget := make([]bool, n)
	for _, v := range matchL {
		if v != -1 {
			isTarget[v] = true
		}
	}
	var chains [][]int
	for i := 0; i < n; i++ {
		if isTarget[i] {
			continue
		}
		chain := []int{i}
		for cur := i; matchL[cur] != -1; {
			cur = matchL[cur]
			chain = append(chain, cur)
		}
		chains = append(chains, chain)
	}
	return chains
}
