// File: types.go
// Role: Node, Edge and Graph declarations plus the NewGraph constructor.
// Determinism:
//   - Nodes() keeps caller insertion order.
//   - Edges() keeps caller insertion order.

package core

import "errors"

// ErrNodeNotFound indicates a lookup referenced a node id absent from the graph.
var ErrNodeNotFound = errors.New("core: node not found")

// NodeID identifies a Node within a Graph.
type NodeID = uint64

// Weight is the non-negative cost of traversing an Edge.
type Weight = uint64

// Node is a graph vertex. It carries no attributes besides its ID.
type Node struct {
	ID NodeID
}

// Edge is an undirected, weighted connection between nodes A and B.
type Edge struct {
	A      NodeID
	B      NodeID
	Weight Weight
}

// Other returns the endpoint opposite to id. For a self-loop it returns id.
func (e Edge) Other(id NodeID) NodeID {
	if e.A == id {
		return e.B
	}

	return e.A
}

// IsLoop reports whether both endpoints are the same node.
func (e Edge) IsLoop() bool { return e.A == e.B }

// Graph is an immutable snapshot of nodes and undirected weighted edges.
//
// slots maps NodeID → index into nodes; incident[i] lists the indices into
// edges touching nodes[i]. Both are built once by NewGraph.
type Graph struct {
	nodes    []Node
	edges    []Edge
	slots    map[NodeID]int
	incident [][]int
}

// NewGraph builds a Graph from the given nodes and edges.
//
// No validation is performed: an edge whose endpoint is not among nodes is
// stored but never reported by Incident for the missing side. Duplicate node
// ids resolve to their first occurrence.
//
// Complexity: O(V + E).
func NewGraph(nodes []Node, edges []Edge) *Graph {
	g := &Graph{
		nodes: append([]Node(nil), nodes...),
		edges: append([]Edge(nil), edges...),
		slots: make(map[NodeID]int, len(nodes)),
	}
	for i, n := range g.nodes {
		if _, dup := g.slots[n.ID]; !dup {
			g.slots[n.ID] = i
		}
	}
	g.incident = buildIncidence(g.slots, len(g.nodes), g.edges)

	return g
}

// NodesFromIDs is a convenience that wraps ids into Nodes, preserving order.
func NodesFromIDs(ids ...NodeID) []Node {
	nodes := make([]Node, len(ids))
	for i, id := range ids {
		nodes[i] = Node{ID: id}
	}

	return nodes
}
