package dijkstra_test

import (
	"math/rand"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
)

// randomGraph builds a graph on ids 1..n with m random edges (loops and
// parallels allowed) and weights in [0, maxW].
func randomGraph(rng *rand.Rand, n, m, maxW int) *core.Graph {
	g, err := builder.Build(builder.RandomEdges(n, m),
		builder.WithRand(rng),
		builder.WithFirstID(1),
		builder.WithWeightFn(builder.UniformWeight(0, core.Weight(maxW))),
	)
	if err != nil {
		panic(err)
	}

	return g
}

// bruteForce enumerates every simple path start..end and returns the
// minimum total weight. Only suitable for tiny graphs.
func bruteForce(g *core.Graph, start, end core.NodeID) (uint64, bool) {
	if start == end {
		return 0, true
	}
	best := dijkstra.Infinity
	found := false
	onPath := map[core.NodeID]bool{start: true}

	var walk func(u core.NodeID, acc uint64)
	walk = func(u core.NodeID, acc uint64) {
		g.EachIncident(u, func(e core.Edge) {
			v := e.B
			if onPath[v] {
				return
			}
			d := acc + e.Weight
			if v == end {
				if !found || d < best {
					best, found = d, true
				}
				return
			}
			onPath[v] = true
			walk(v, d)
			onPath[v] = false
		})
	}
	walk(start, 0)

	return best, found
}
