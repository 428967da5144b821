// File: adjacency_list.go
// Role: incidence index construction and the Incident query.
// Determinism:
//   - Incident(id) lists edges in their insertion order.

package core

// buildIncidence returns, for every node slot, the indices of edges touching it.
// A self-loop is listed once for its node. Endpoints without a slot are skipped.
func buildIncidence(slots map[NodeID]int, n int, edges []Edge) [][]int {
	incident := make([][]int, n)
	for i, e := range edges {
		if s, ok := slots[e.A]; ok {
			incident[s] = append(incident[s], i)
		}
		if e.IsLoop() {
			continue
		}
		if s, ok := slots[e.B]; ok {
			incident[s] = append(incident[s], i)
		}
	}

	return incident
}

// Incident returns the edges touching id, each oriented so that A == id and
// B is the neighbor reached by traversing it.
//
// Errors:
//   - ErrNodeNotFound: id is not a node of g.
//
// Complexity: O(deg(id)).
func (g *Graph) Incident(id NodeID) ([]Edge, error) {
	s, ok := g.slots[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]Edge, 0, len(g.incident[s]))
	for _, ei := range g.incident[s] {
		e := g.edges[ei]
		out = append(out, Edge{A: id, B: e.Other(id), Weight: e.Weight})
	}

	return out, nil
}

// Degree returns the number of edges touching id, or 0 when id is absent.
func (g *Graph) Degree(id NodeID) int {
	s, ok := g.slots[id]
	if !ok {
		return 0
	}

	return len(g.incident[s])
}

// EachIncident calls fn for every edge touching id, oriented as in Incident,
// without allocating. It is a no-op when id is absent.
func (g *Graph) EachIncident(id NodeID, fn func(Edge)) {
	s, ok := g.slots[id]
	if !ok {
		return
	}
	for _, ei := range g.incident[s] {
		e := g.edges[ei]
		fn(Edge{A: id, B: e.Other(id), Weight: e.Weight})
	}
}
