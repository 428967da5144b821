// File: api.go
// Role: read-only getters over a Graph snapshot.
// Policy:
//   - No mutation; returned slices are copies the caller may modify.

package core

// Nodes returns a copy of the node list in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	if g == nil {
		return nil
	}

	return append([]Node(nil), g.nodes...)
}

// NodeIDs returns the node ids in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []NodeID {
	if g == nil {
		return nil
	}
	ids := make([]NodeID, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}

	return ids
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}

	return append([]Edge(nil), g.edges...)
}

// HasNode reports whether id is a node of g.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	if g == nil {
		return false
	}
	_, ok := g.slots[id]

	return ok
}

// Order returns |V|, counting duplicate ids once.
func (g *Graph) Order() int {
	if g == nil {
		return 0
	}

	return len(g.slots)
}

// Size returns |E|, counting parallel edges and loops individually.
func (g *Graph) Size() int {
	if g == nil {
		return 0
	}

	return len(g.edges)
}

// HasEdge reports whether some edge connects a and b (in either orientation).
// Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b NodeID) bool {
	_, ok := g.MinWeight(a, b)

	return ok
}

// MinWeight returns the smallest weight among the edges connecting a and b.
// The boolean is false when no such edge exists.
// Complexity: O(deg(a)).
func (g *Graph) MinWeight(a, b NodeID) (Weight, bool) {
	if g == nil {
		return 0, false
	}
	var (
		best  Weight
		found bool
	)
	g.EachIncident(a, func(e Edge) {
		if e.B != b {
			return
		}
		if !found || e.Weight < best {
			best, found = e.Weight, true
		}
	})

	return best, found
}
