// Package loader reads graph descriptions into core.Graph values together
// with the expected shortest path that accompanies each fixture.
//
// Two formats are supported and selected by LoadFile from the file extension.
//
// Section text (any extension other than .hcl):
//
//	# Nodes
//	1
//	2
//	3
//	# Edges
//	1 2 7
//	2 3 1
//	# ShortestPath
//	1 2 3
//
// All three headers are required, may appear in any order, and must be
// spelled exactly. Blank lines are ignored. Edge lines carry exactly three
// unsigned integers: endpoint, endpoint, weight. Every edge endpoint must be
// declared under "# Nodes".
//
// HCL (.hcl), decoded with hashicorp/hcl/v2:
//
//	nodes = [1, 2, 3]
//
//	edge {
//	  a      = 1
//	  b      = 2
//	  weight = 7
//	}
//
//	shortest_path = [1, 2, 3]
//
// Errors:
//
//	Every malformed-input failure unwraps to ErrFormat plus one specific
//	sentinel (ErrInvalidSection, ErrMissingSection, ErrInvalidNodeID,
//	ErrInvalidEdge, ErrInvalidWeight, ErrUnknownNode, ErrLineTooLong,
//	ErrEmptyPath). Lines may be up to MaxLineBytes long.
//	Text-format failures are *FormatError values carrying the line number.
//	Open/read failures unwrap to ErrIO and to the underlying *fs.PathError.
//
// The loader never runs the shortest-path engine.
package loader
