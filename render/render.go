// Package render prints graphs and shortest-path results as plain text.
//
// The formats are line-oriented and stable so that command output can be
// compared verbatim in tests:
//
//	Node: 1
//	Edge: 1 - 2, weight: 7
//	Shortest path from node 1 to node 3: [1 2 3]
//	No path from node 1 to node 4.
package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// Graph writes one "Node:" line per node in insertion order, then one
// "Edge:" line per edge in insertion order. A nil graph writes nothing.
func Graph(w io.Writer, g *core.Graph) error {
	for _, n := range g.Nodes() {
		if _, err := fmt.Fprintf(w, "Node: %d\n", n.ID); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "Edge: %d - %d, weight: %d\n", e.A, e.B, e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// Path formats p as "[1 2 3]"; an empty path is "[]".
func Path(p dijkstra.Path) string { return p.String() }

// Result writes the outcome of one query.
func Result(w io.Writer, start, end core.NodeID, p dijkstra.Path, ok bool) error {
	var err error
	if ok {
		_, err = fmt.Fprintf(w, "Shortest path from node %d to node %d: %s\n", start, end, Path(p))
	} else {
		_, err = fmt.Fprintf(w, "No path from node %d to node %d.\n", start, end)
	}

	return err
}

// Expected writes the path recorded in a graph description.
func Expected(w io.Writer, p dijkstra.Path) error {
	_, err := fmt.Fprintf(w, "Expected shortest path: %s\n", Path(p))

	return err
}
