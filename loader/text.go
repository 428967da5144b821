package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

type section int

const (
	sectionNone section = iota
	sectionNodes
	sectionEdges
	sectionShortestPath
)

// headers maps exact header lines to their section.
var headers = map[string]section{
	HeaderNodes:        sectionNodes,
	HeaderEdges:        sectionEdges,
	HeaderShortestPath: sectionShortestPath,
}

// MaxLineBytes caps a single line of a text description. Write puts the
// whole expected path on one line, so the cap is far above bufio's default.
const MaxLineBytes = 64 << 20

// Parse reads a section-text description from r.
//
// Complexity: O(size of input).
func Parse(r io.Reader) (*Document, error) {
	return parse(r, MaxLineBytes)
}

func parse(r io.Reader, maxLine int) (*Document, error) {
	var (
		nodes    []core.Node
		edges    []core.Edge
		expected dijkstra.Path
		current  = sectionNone
		seen     = make(map[section]int, len(headers))
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			s, ok := headers[line]
			if !ok {
				return nil, &FormatError{Line: lineNo, Kind: ErrInvalidSection, Text: raw}
			}
			current = s
			seen[s] = lineNo
			continue
		}

		switch current {
		case sectionNone:
			return nil, &FormatError{Line: lineNo, Kind: ErrMissingSection, Text: raw}

		case sectionNodes:
			id, err := parseID(line)
			if err != nil {
				return nil, &FormatError{Line: lineNo, Kind: ErrInvalidNodeID, Text: raw}
			}
			nodes = append(nodes, core.Node{ID: id})

		case sectionEdges:
			e, kind := parseEdge(line)
			if kind != nil {
				return nil, &FormatError{Line: lineNo, Kind: kind, Text: raw}
			}
			edges = append(edges, e)

		case sectionShortestPath:
			for _, f := range strings.Fields(line) {
				id, err := parseID(f)
				if err != nil {
					return nil, &FormatError{Line: lineNo, Kind: ErrInvalidNodeID, Text: raw}
				}
				expected = append(expected, id)
			}
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &FormatError{Line: lineNo + 1, Kind: ErrLineTooLong, Text: fmt.Sprintf("longer than %d bytes", maxLine)}
		}
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	for _, h := range []string{HeaderNodes, HeaderEdges, HeaderShortestPath} {
		if _, ok := seen[headers[h]]; !ok {
			return nil, &FormatError{Kind: ErrMissingSection, Text: h}
		}
	}
	if e, ok := checkEndpoints(nodes, edges); !ok {
		return nil, &FormatError{Kind: ErrUnknownNode, Text: fmt.Sprintf("%d %d %d", e.A, e.B, e.Weight)}
	}

	return &Document{
		Graph:    core.NewGraph(nodes, edges),
		Expected: expected,
	}, nil
}

// parseEdge parses "a b w". It returns the specific sentinel on failure.
func parseEdge(line string) (core.Edge, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return core.Edge{}, ErrInvalidEdge
	}
	a, err := parseID(parts[0])
	if err != nil {
		return core.Edge{}, ErrInvalidNodeID
	}
	b, err := parseID(parts[1])
	if err != nil {
		return core.Edge{}, ErrInvalidNodeID
	}
	w, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return core.Edge{}, ErrInvalidWeight
	}

	return core.Edge{A: a, B: b, Weight: w}, nil
}

func parseID(s string) (core.NodeID, error) {
	return strconv.ParseUint(s, 10, 64)
}
