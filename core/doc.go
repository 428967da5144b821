// Package core provides the read-only Graph model consumed by the
// shortest-path engine.
//
// A Graph G = (V,E) is an ordered list of Nodes plus a list of undirected,
// non-negatively weighted Edges:
//
//   - Nodes are addressed by NodeID (uint64); ids are unique within a graph.
//   - Edges are undirected: (a,b,w) is traversable a→b and b→a at cost w.
//   - Parallel edges between the same pair are kept as-is (no min-collapse).
//   - Self-loops are kept; they never improve a distance.
//
// Storage is arena-style: nodes live in a slice and are referenced by a
// slot index resolved once through an id→slot map. NewGraph builds, per slot,
// the list of incident edge indices, so Incident(id) costs O(deg(id)).
//
// Construction performs no validation. Checking that every edge endpoint
// names a declared node is the loader's job; the engine trusts its input.
//
// Concurrency:
//
//	A Graph is never mutated after NewGraph returns, so any number of
//	goroutines may read it concurrently without locking. Callers that need a
//	different topology build a new Graph.
//
// Complexity:
//
//	NewGraph:  O(V + E) time and space.
//	HasNode:   O(1).
//	Incident:  O(deg(v)).
//	Nodes/Edges: O(V)/O(E) defensive copies.
package core
