// File: topology.go
// Role: deterministic constructors.
// Determinism:
//   - Nodes ascend by id; edges are emitted in a fixed order per constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

const (
	minPathNodes     = 1
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minGridDim       = 1
)

// Path returns n nodes chained 0-1-…-(n-1). O(n).
func Path(n int) Constructor {
	return func(cfg config) ([]core.Node, []core.Edge, error) {
		if n < minPathNodes {
			return nil, nil, fmt.Errorf("Path: n=%d < %d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		edges := make([]core.Edge, 0, n-1)
		for i := 0; i+1 < n; i++ {
			edges = append(edges, cfg.edge(i, i+1))
		}

		return cfg.nodes(n), edges, nil
	}
}

// Cycle returns Path(n) closed by the edge (n-1)-0. O(n).
func Cycle(n int) Constructor {
	return func(cfg config) ([]core.Node, []core.Edge, error) {
		if n < minCycleNodes {
			return nil, nil, fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		edges := make([]core.Edge, 0, n)
		for i := 0; i < n; i++ {
			edges = append(edges, cfg.edge(i, (i+1)%n))
		}

		return cfg.nodes(n), edges, nil
	}
}

// Star returns a hub (the first node) joined to n-1 leaves. O(n).
func Star(n int) Constructor {
	return func(cfg config) ([]core.Node, []core.Edge, error) {
		if n < minStarNodes {
			return nil, nil, fmt.Errorf("Star: n=%d < %d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		edges := make([]core.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, cfg.edge(0, i))
		}

		return cfg.nodes(n), edges, nil
	}
}

// Complete returns K_n, one edge per unordered pair. O(n²).
func Complete(n int) Constructor {
	return func(cfg config) ([]core.Node, []core.Edge, error) {
		if n < minCompleteNodes {
			return nil, nil, fmt.Errorf("Complete: n=%d < %d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		edges := make([]core.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, cfg.edge(i, j))
			}
		}

		return cfg.nodes(n), edges, nil
	}
}

// Grid returns a rows×cols 4-neighbour grid. Cell (r,c) has index r*cols+c;
// each cell emits its right then its bottom edge. O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(cfg config) ([]core.Node, []core.Edge, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGridDim, ErrTooFewVertices)
		}
		edges := make([]core.Edge, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					edges = append(edges, cfg.edge(u, u+1))
				}
				if r+1 < rows {
					edges = append(edges, cfg.edge(u, u+cols))
				}
			}
		}

		return cfg.nodes(rows * cols), edges, nil
	}
}
