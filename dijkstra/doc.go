// Package dijkstra computes single-source, single-destination shortest paths
// on core.Graph snapshots with non-negative integer weights.
//
// Overview:
//
//   - New(opts...) returns a Dijkstra value implementing Algorithm.
//   - FindShortestPath(g, start, end) returns the node sequence start..end of
//     one minimum-weight route, or (nil, false) when none exists.
//   - Run(g, start, end) returns the same route together with its total
//     distance and the number of settled nodes.
//
// Semantics:
//
//   - Distances are uint64; Infinity (math.MaxUint64) marks "unreached".
//     Candidate distances saturate at Infinity instead of wrapping.
//   - Missing start or end ids are not errors: the result is no-path.
//   - start == end yields the single-element path [start] at distance 0.
//   - The loop stops as soon as end is extracted from the frontier, when the
//     extracted distance is Infinity, or when the frontier is exhausted.
//   - Relaxation uses strict "<", so equal-cost alternatives never replace
//     a recorded predecessor. Which of several equal-cost routes is returned
//     depends on frontier tie-breaking and is unspecified.
//
// Frontier strategies (see package frontier):
//
//   - frontier.StrategyHeap (default): binary heap with lazy deletion.
//     O((V + E) log V) time, O(V + E) space.
//   - frontier.StrategyScan: linear scan over the unsettled set.
//     O(V² + E) time, O(V) space.
//
// Thread safety:
//
//   - A query allocates its own distance table, predecessor table and
//     frontier; the graph is only read. Concurrent queries over one shared
//     *core.Graph are safe. A Dijkstra value holds only immutable options
//     and may be shared as well.
//
// Example:
//
//	alg := dijkstra.New(dijkstra.WithStrategy(frontier.StrategyScan))
//	path, ok := alg.FindShortestPath(g, 1, 6)
//	if !ok {
//	    fmt.Println("no path")
//	}
package dijkstra
