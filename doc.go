// Package pathfinder computes single-pair shortest paths over static,
// weighted, undirected graphs with integer node ids.
//
// The root package holds no code; functionality lives in subpackages:
//
//	core/     : immutable Graph snapshot: nodes, undirected edges, incidence index
//	frontier/ : priority frontiers: binary heap (lazy deletion) and linear scan
//	dijkstra/ : the shortest-path engine and predecessor-chain reconstruction
//	loader/   : section-text and HCL graph descriptions with an expected path
//	render/   : plain-text output of graphs and query results
//	store/    : graph snapshots read from Neo4j over Bolt
//	router/   : query service with tracing, metrics and concurrent batches
//	builder/  : generated topologies for tests, benchmarks and fixtures
//	config/, logging/, cli/: process configuration, slog setup, flag parsing
//
// Commands:
//
//	cmd/pathfinder: load descriptions, print graphs and shortest paths,
//	                verify recorded paths, or query interactively
//	cmd/pathgen   : write generated descriptions for use as fixtures
//
// Quick example:
//
//	g := core.NewGraph(core.NodesFromIDs(1, 2, 3), []core.Edge{
//		{A: 1, B: 2, Weight: 7},
//		{A: 2, B: 3, Weight: 1},
//	})
//	path, ok := dijkstra.ShortestPath(g, 1, 3) // [1 2 3], true
package pathfinder
