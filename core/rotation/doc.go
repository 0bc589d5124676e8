// Package rotation implements the core rotation optimization engine: it
// assigns scheduled trips to virtual vehicles so that each vehicle executes
// a feasible, time-ordered chain of trips, minimizing the number of vehicles
// used and, secondarily, the idle time between chained trips.
//
// Key components:
//   - Checker: decides whether one trip may directly follow another
//     (same type, same date, matching canonical location, turnaround gap).
//   - Partition: splits trips into independent (date, type[, service])
//     subproblems; no chain ever crosses a partition boundary.
//   - Graph: the explicit compatibility graph of one sorted partition,
//     built once and shared by all algorithms.
//   - Algorithm implementations: Greedy (best-fit heuristic), Matching
//     (Hopcroft-Karp maximum bipartite matching, provably minimum vehicle
//     count via the minimum path cover reduction) and MinCost (successive
//     shortest augmenting paths, minimum vehicles then minimum idle).
//   - Assembler: turns chains of trip indices into rotation records with
//     generated vehicle identifiers.
//   - Solver: orchestrates partitioning, concurrent per-partition solving
//     and deterministic assembly.
//
// The engine is a pure batch pipeline with no long-lived state: partition,
// build the graph, run the selected algorithm, assemble rotations. Given
// identical input and turnaround map, repeated runs produce byte-identical
// assignments.
//
// Input contract: trips are assumed well-formed (arrival > departure,
// validated by the caller). Internal failure modes are benign: an empty
// partition yields zero rotations and a partition without compatible edges
// yields one single-trip rotation per trip.
package rotation
