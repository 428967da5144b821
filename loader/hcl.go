package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// hclGraphFile is the top-level structure of an HCL description.
// Numbers decode as int64 so that negative values can be reported precisely.
type hclGraphFile struct {
	Nodes        []int64    `hcl:"nodes"`
	Edges        []*hclEdge `hcl:"edge,block"`
	ShortestPath []int64    `hcl:"shortest_path,optional"`
}

type hclEdge struct {
	A      int64 `hcl:"a"`
	B      int64 `hcl:"b"`
	Weight int64 `hcl:"weight"`
}

// ParseHCL decodes an HCL description held in src. filename is used only in
// diagnostics.
func ParseHCL(src []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrFormat, filename, diags)
	}

	return decodeHCL(file, filename)
}

func decodeHCL(file *hcl.File, filename string) (*Document, error) {
	var parsed hclGraphFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrFormat, filename, diags)
	}

	nodes := make([]core.Node, 0, len(parsed.Nodes))
	for _, id := range parsed.Nodes {
		if id < 0 {
			return nil, &FormatError{Kind: ErrInvalidNodeID, Text: fmt.Sprintf("%s: node %d", filename, id)}
		}
		nodes = append(nodes, core.Node{ID: core.NodeID(id)})
	}

	edges := make([]core.Edge, 0, len(parsed.Edges))
	for _, e := range parsed.Edges {
		if e.A < 0 || e.B < 0 {
			return nil, &FormatError{Kind: ErrInvalidNodeID, Text: fmt.Sprintf("%s: edge %d %d", filename, e.A, e.B)}
		}
		if e.Weight < 0 {
			return nil, &FormatError{Kind: ErrInvalidWeight, Text: fmt.Sprintf("%s: weight %d", filename, e.Weight)}
		}
		edges = append(edges, core.Edge{A: core.NodeID(e.A), B: core.NodeID(e.B), Weight: core.Weight(e.Weight)})
	}

	expected := make(dijkstra.Path, 0, len(parsed.ShortestPath))
	for _, id := range parsed.ShortestPath {
		if id < 0 {
			return nil, &FormatError{Kind: ErrInvalidNodeID, Text: fmt.Sprintf("%s: path node %d", filename, id)}
		}
		expected = append(expected, core.NodeID(id))
	}

	if e, ok := checkEndpoints(nodes, edges); !ok {
		return nil, &FormatError{Kind: ErrUnknownNode, Text: fmt.Sprintf("%s: edge %d %d", filename, e.A, e.B)}
	}

	return &Document{
		Source:   filename,
		Graph:    core.NewGraph(nodes, edges),
		Expected: expected,
	}, nil
}
