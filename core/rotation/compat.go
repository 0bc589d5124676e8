package rotation

import (
	"sort"

	"github.com/transitops/omloop/core/model"
	"github.com/transitops/omloop/core/turnaround"
)

// Canonicalizer maps a raw location code to its canonical identity.
type Canonicalizer func(code string) string

// Checker decides whether one trip may directly follow another on the same
// vehicle. It is total: any pair of trips yields a verdict, never a panic.
type Checker struct {
	Turnaround model.TurnaroundMap
	Canon      Canonicalizer
	// SameService forbids chaining two revenue trips from different
	// services. Reserve trips may still bridge services.
	SameService bool
}

// CanConnect reports whether next may directly follow prev: same vehicle
// type, same date, prev's canonical destination equals next's canonical
// origin, and the gap covers the type's minimum turnaround. Reserve trips
// connect with zero turnaround since the vehicle never leaves the station.
func (c Checker) CanConnect(prev, next model.Trip) bool {
	if prev.VehicleType != next.VehicleType {
		return false
	}
	if prev.Date != next.Date {
		return false
	}
	if c.SameService && !prev.Reserve && !next.Reserve && prev.Service != next.Service {
		return false
	}
	if c.canon(prev.Destination) != c.canon(next.Origin) {
		return false
	}

	min := 0
	if !prev.Reserve && !next.Reserve {
		var ok bool
		min, ok = c.Turnaround[prev.VehicleType]
		if !ok {
			min = turnaround.Fallback
		}
	}
	return next.Departure-prev.Arrival >= min
}

func (c Checker) canon(code string) string {
	if c.Canon == nil {
		return code
	}
	return c.Canon(code)
}

// Graph is the explicit compatibility graph over one sorted partition.
// An edge i→j means trip j may directly follow trip i on the same vehicle;
// the edge cost is the idle gap in minutes. The graph is built once per
// partition and shared by all algorithms.
type Graph struct {
	Adj  [][]int
	cost map[[2]int]int
}

// BuildGraph evaluates the checker pairwise over the sorted trip slice.
// Edges only go forward in sorted time, so the graph is acyclic.
func BuildGraph(trips []model.Trip, check Checker) *Graph {
	n := len(trips)
	g := &Graph{Adj: make([][]int, n), cost: make(map[[2]int]int)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if check.CanConnect(trips[i], trips[j]) {
				g.Adj[i] = append(g.Adj[i], j)
				g.cost[[2]int{i, j}] = trips[j].Departure - trips[i].Arrival
			}
		}
	}
	return g
}

// Len returns the number of trips the graph covers.
func (g *Graph) Len() int { return len(g.Adj) }

// HasEdge reports whether trip j may directly follow trip i.
func (g *Graph) HasEdge(i, j int) bool {
	_, ok := g.cost[[2]int{i, j}]
	return ok
}

// Cost returns the idle gap of edge i→j. The edge must exist.
func (g *Graph) Cost(i, j int) int { return g.cost[[2]int{i, j}] }

// SortTrips orders trips by departure then arrival, stably. The tie-break on
// arrival keeps repeated runs byte-identical for equal departure times. All
// algorithms and the assembler operate on this order.
func SortTrips(trips []model.Trip) {
	sort.SliceStable(trips, func(i, j int) bool {
		if trips[i].Departure != trips[j].Departure {
			return trips[i].Departure < trips[j].Departure
		}
		return trips[i].Arrival < trips[j].Arrival
	})
}
