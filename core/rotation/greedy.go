package rotation

import "github.com/transitops/omloop/core/model"

// Greedy chains trips with a best-fit heuristic: each trip joins the open
// chain whose last trip connects with the smallest idle gap, or starts a new
// chain when none qualifies. O(N*K) with K open chains. Correct but not
// guaranteed minimal in chain count or idle time when several successors
// compete for the same predecessor.
type Greedy struct{}

func (Greedy) Name() string { return GreedyName }

func (Greedy) Chains(trips []model.Trip, g *Graph) [][]int {
	var chains [][]int
	for idx := range trips {
		best := -1
		bestGap := 0
		for ci, chain := range chains {
			last := chain[len(chain)-1]
			if !g.HasEdge(last, idx) {
				continue
			}
			gap := g.Cost(last, idx)
			if best == -1 || gap < bestGap {
				best = ci
				bestGap = gap
			}
		}
		if best >= 0 {
			chains[best] = append(chains[best], idx)
		} else {
			chains = append(chains, []int{idx})
		}
	}
	return chains
}
