package rotation

import (
	"fmt"

	"github.com/transitops/omloop/core/model"
)

// Algorithm names accepted by New.
const (
	GreedyName   = "greedy"
	MatchingName = "matching"
	MinCostName  = "mincost"
)

// Algorithm computes a chain partition of one sorted trip group. Chains
// returns ordered chains of indices into the sorted trip slice; every index
// appears in exactly one chain and indices within a chain are ascending.
type Algorithm interface {
	Name() string
	Chains(trips []model.Trip, g *Graph) [][]int
}

// New returns the algorithm registered under the given name.
func New(name string) (Algorithm, error) {
	switch name {
	case GreedyName:
		return Greedy{}, nil
	case MatchingName:
		return Matching{}, nil
	case MinCostName:
		return MinCost{}, nil
	default:
		return nil, fmt.Errorf("rotation: unknown algorithm %q", name)
	}
}

// Names lists the available algorithm names.
func Names() []string { return []string{GreedyName, MatchingName, MinCostName} }
