// File: random.go
// Role: stochastic constructors; both require an RNG.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
)

// RandomSparse includes each unordered pair {i,j}, i<j, independently with
// probability p (Erdős–Rényi). Trials run in i-then-j ascending order.
// O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(cfg config) ([]core.Node, []core.Edge, error) {
		if n < 1 {
			return nil, nil, fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return nil, nil, fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return nil, nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		var edges []core.Edge
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					edges = append(edges, cfg.edge(i, j))
				}
			}
		}

		return cfg.nodes(n), edges, nil
	}
}

// RandomEdges draws m edges with independently uniform endpoints over n
// nodes. Self-loops and parallel edges are kept. O(n + m).
func RandomEdges(n, m int) Constructor {
	return func(cfg config) ([]core.Node, []core.Edge, error) {
		if n < 1 {
			return nil, nil, fmt.Errorf("RandomEdges: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if m < 0 {
			return nil, nil, fmt.Errorf("RandomEdges: m=%d < 0: %w", m, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return nil, nil, fmt.Errorf("RandomEdges: %w", ErrNeedRandSource)
		}
		edges := make([]core.Edge, m)
		for k := range edges {
			i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
			edges[k] = cfg.edge(i, j)
		}

		return cfg.nodes(n), edges, nil
	}
}
