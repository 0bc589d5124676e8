package rotation

import "github.com/transitops/omloop/core/model"

// MinCost finds a maximum matching of minimum total idle cost via successive
// shortest augmenting paths. Each round runs a multi-source SPFA seeded from
// every free left node, relaxing through alternating matched/unmatched edges
// of the residual bipartite graph, then augments along the cheapest path
// ending in a free right node. All edge costs are non-negative idle gaps.
// The result matches Matching in chain count and additionally minimizes the
// idle sum among all minimum-chain-count solutions.
type MinCost struct{}

func (MinCost) Name() string { return MinCostName }

func (MinCost) Chains(trips []model.Trip, g *Graph) [][]int {
	n := len(trips)

	matchL := make([]int, n)
	matchR := make([]int, n)
	for i := 0; i < n; i++ {
		matchL[i] = -1
		matchR[i] = -1
	}

	for augmentCheapest(g, matchL, matchR) {
	}
	return chainsFromMatching(n, matchL)
}

// augmentCheapest finds the minimum-cost augmenting path from any free left
// node to any free right node and flips the matched/unmatched edges along
// it. Returns false when no augmenting path remains.
func augmentCheapest(g *Graph, matchL, matchR []int) bool {
	const inf = int(^uint(0) >> 1)
	n := g.Len()

	dist := make([]int, n)     // cheapest known cost to reach right node v
	distL := make([]int, n)    // cheapest known cost to reach left node u
	prevL := make([]int, n)    // left predecessor on the path to right node v
	inQueue := make([]bool, n)
	for i := 0; i < n; i++ {
		dist[i] = inf
		distL[i] = inf
		prevL[i] = -1
	}

	var queue []int
	relaxFrom := func(u, base int) {
		for _, v := range g.Adj[u] {
			if c := base + g.Cost(u, v); c < dist[v] {
				dist[v] = c
				prevL[v] = u
				if !inQueue[v] {
					queue = append(queue, v)
					inQueue[v] = true
				}
			}
		}
	}

	for u := 0; u < n; u++ {
		if matchL[u] == -1 {
			distL[u] = 0
			relaxFrom(u, 0)
		}
	}

	for head := 0; head < len(queue); head++ {
		v := queue[head]
		inQueue[v] = false

		w := matchR[v]
		if w == -1 {
			continue // free right node: candidate path end, nothing to relax
		}
		// Cross the matched edge at zero cost, then relax w's out-edges.
		if dist[v] < distL[w] {
			distL[w] = dist[v]
			relaxFrom(w, dist[v])
		}
	}

	best := -1
	for v := 0; v < n; v++ {
		if matchR[v] == -1 && dist[v] < inf && (best == -1 || dist[v] < dist[best]) {
			best = v
		}
	}
	if best == -1 {
		return false
	}

	for v := best; v != -1; {
		u := prevL[v]
		next := matchL[u]
		matchL[u] = v
		matchR[v] = u
		v = next
	}
	return true
}
