package loader

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// Sentinel errors returned by the loader.
var (
	// ErrIO indicates the description could not be opened or read.
	ErrIO = errors.New("loader: i/o failure")

	// ErrFormat is the umbrella for every malformed-input condition below.
	ErrFormat = errors.New("loader: invalid graph description")

	// ErrInvalidSection indicates a "#" line that is not a known header.
	ErrInvalidSection = errors.New("loader: invalid section")

	// ErrMissingSection indicates data before any header, or a required header never seen.
	ErrMissingSection = errors.New("loader: missing section")

	// ErrInvalidNodeID indicates a node id that is not an unsigned integer.
	ErrInvalidNodeID = errors.New("loader: invalid node id")

	// ErrInvalidEdge indicates an edge line without exactly three fields.
	ErrInvalidEdge = errors.New("loader: invalid edge data")

	// ErrInvalidWeight indicates an edge weight that is not an unsigned integer.
	ErrInvalidWeight = errors.New("loader: invalid weight")

	// ErrUnknownNode indicates an edge endpoint that was never declared as a node.
	ErrUnknownNode = errors.New("loader: edge references unknown node")

	// ErrLineTooLong indicates a line longer than MaxLineBytes.
	ErrLineTooLong = errors.New("loader: line too long")

	// ErrEmptyPath indicates an expected path with no node ids.
	ErrEmptyPath = errors.New("loader: no start or end node provided")
)

// Section header lines of the text format.
const (
	HeaderNodes        = "# Nodes"
	HeaderEdges        = "# Edges"
	HeaderShortestPath = "# ShortestPath"
)

// Document is a parsed graph description.
type Document struct {
	// Source is the file the document came from; empty for in-memory input.
	Source string

	// Graph is the loaded graph. Every edge endpoint is a declared node.
	Graph *core.Graph

	// Expected is the shortest path recorded alongside the graph.
	// It may be empty; Endpoints rejects that case.
	Expected dijkstra.Path
}

// FormatError describes a malformed line of a text description.
type FormatError struct {
	Line int    // 1-based line number; 0 when the problem is not tied to a line
	Kind error  // one of the specific sentinels
	Text string // offending line or detail
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v at line %d: %q", e.Kind, e.Line, e.Text)
	}
	if e.Text != "" {
		return fmt.Sprintf("%v: %s", e.Kind, e.Text)
	}

	return e.Kind.Error()
}

// Unwrap exposes both the specific sentinel and ErrFormat to errors.Is.
func (e *FormatError) Unwrap() []error { return []error{e.Kind, ErrFormat} }

// Endpoints returns the first and last node of an expected path.
//
// Errors:
//   - ErrEmptyPath (wrapped in *FormatError) if path is empty.
func Endpoints(path dijkstra.Path) (start, end core.NodeID, err error) {
	if len(path) == 0 {
		return 0, 0, &FormatError{Kind: ErrEmptyPath}
	}

	return path.Start(), path.End(), nil
}

// checkEndpoints verifies every edge endpoint is a declared node and returns
// the first offender.
func checkEndpoints(nodes []core.Node, edges []core.Edge) (core.Edge, bool) {
	declared := make(map[core.NodeID]struct{}, len(nodes))
	for _, n := range nodes {
		declared[n.ID] = struct{}{}
	}
	for _, e := range edges {
		if _, ok := declared[e.A]; !ok {
			return e, false
		}
		if _, ok := declared[e.B]; !ok {
			return e, false
		}
	}

	return core.Edge{}, true
}
