package dijkstra

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/frontier"
)

// Infinity is the tentative distance of an unreached node.
const Infinity = frontier.Infinity

// Algorithm is any single-pair shortest-path solver. Alternative algorithms
// may be substituted behind it without changing callers.
type Algorithm interface {
	// FindShortestPath returns the route start..end inclusive, or (nil, false)
	// when end is unreachable from start or either id is absent from g.
	FindShortestPath(g *core.Graph, start, end core.NodeID) (Path, bool)
}

// Path is an ordered sequence of node ids from start to end inclusive.
type Path []core.NodeID

// Start returns the first node of p. It panics on an empty path.
func (p Path) Start() core.NodeID { return p[0] }

// End returns the last node of p. It panics on an empty path.
func (p Path) End() core.NodeID { return p[len(p)-1] }

// String renders p as "[1 2 3]".
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", id)
	}
	b.WriteByte(']')

	return b.String()
}

// Cost sums, hop by hop, the cheapest edge weight connecting consecutive
// nodes of p in g. The boolean is false when some hop has no edge.
// A single-node path costs 0.
func (p Path) Cost(g *core.Graph) (uint64, bool) {
	var total uint64
	for i := 1; i < len(p); i++ {
		w, ok := g.MinWeight(p[i-1], p[i])
		if !ok {
			return Infinity, false
		}
		total = addSat(total, w)
	}

	return total, len(p) > 0
}

// Valid reports whether p starts at start, ends at end, and every
// consecutive pair is connected by an edge of g.
func (p Path) Valid(g *core.Graph, start, end core.NodeID) bool {
	if len(p) == 0 || p.Start() != start || p.End() != end {
		return false
	}
	if len(p) == 1 {
		return g.HasNode(start)
	}
	_, ok := p.Cost(g)

	return ok
}

// Result is the full outcome of one Run.
type Result struct {
	Path     Path   // route start..end; nil when Found is false
	Distance uint64 // total weight of Path; Infinity when Found is false
	Found    bool   // whether a route exists
	Settled  int    // nodes finalized before the loop stopped
}

// Options configures a Dijkstra instance.
type Options struct {
	// Strategy picks the frontier implementation.
	Strategy frontier.Strategy

	// OnSettle, if non-nil, is called once per node when its distance becomes final.
	OnSettle func(id core.NodeID, dist uint64)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStrategy selects the frontier strategy.
func WithStrategy(s frontier.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithOnSettle registers a callback fired when a node is settled.
func WithOnSettle(fn func(id core.NodeID, dist uint64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns the heap strategy with no hooks.
func DefaultOptions() Options {
	return Options{
		Strategy: frontier.StrategyHeap,
	}
}

// addSat returns d + w, clamped to Infinity.
func addSat(d, w uint64) uint64 {
	if w > Infinity-d {
		return Infinity
	}

	return d + w
}
