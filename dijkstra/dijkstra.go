package dijkstra

import (
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/frontier"
)

// Dijkstra is the default Algorithm. The zero value is not usable; call New.
type Dijkstra struct {
	options Options
}

var _ Algorithm = (*Dijkstra)(nil)

// New returns a Dijkstra configured by opts on top of DefaultOptions.
func New(opts ...Option) *Dijkstra {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dijkstra{options: cfg}
}

// Options returns a copy of the configuration.
func (d *Dijkstra) Options() Options { return d.options }

// ShortestPath runs a default-configured Dijkstra once.
func ShortestPath(g *core.Graph, start, end core.NodeID) (Path, bool) {
	return New().FindShortestPath(g, start, end)
}

// FindShortestPath implements Algorithm.
func (d *Dijkstra) FindShortestPath(g *core.Graph, start, end core.NodeID) (Path, bool) {
	res := d.Run(g, start, end)

	return res.Path, res.Found
}

// Run computes the shortest route from start to end.
//
// Steps:
//  1. Nil graph or absent endpoints ⇒ no-path.
//  2. Seed dist[v] = Infinity for all v, dist[start] = 0, push start.
//  3. Pop minima until end is popped, an Infinity entry is popped, or the
//     frontier is exhausted; relax each settled node's incident edges.
//  4. Rebuild the route from the predecessor table.
//
// Complexity: see package doc; depends on Options.Strategy.
func (d *Dijkstra) Run(g *core.Graph, start, end core.NodeID) Result {
	noPath := Result{Distance: Infinity}
	if g == nil || !g.HasNode(start) || !g.HasNode(end) {
		return noPath
	}

	r := &runner{
		g:       g,
		options: d.options,
		end:     end,
	}
	r.init(start)
	r.process()

	if r.dist[end] == Infinity {
		noPath.Settled = r.settledCount
		return noPath
	}
	path, ok := Reconstruct(r.prev, start, end)
	if !ok {
		noPath.Settled = r.settledCount
		return noPath
	}

	return Result{
		Path:     path,
		Distance: r.dist[end],
		Found:    true,
		Settled:  r.settledCount,
	}
}

// runner holds the mutable state of a single query.
type runner struct {
	g       *core.Graph                 // read-only input
	options Options                     // strategy and hooks
	end     core.NodeID                 // destination for early stop
	dist    map[core.NodeID]uint64      // best-known distance from start
	prev    map[core.NodeID]core.NodeID // predecessor on the best-known route
	settled map[core.NodeID]struct{}    // nodes whose distance is final
	pq      frontier.Frontier           // candidates ordered by distance

	settledCount int
}

// init allocates the tables and seeds the frontier with start at distance 0.
func (r *runner) init(start core.NodeID) {
	ids := r.g.NodeIDs()
	r.dist = make(map[core.NodeID]uint64, len(ids))
	r.prev = make(map[core.NodeID]core.NodeID, len(ids))
	r.settled = make(map[core.NodeID]struct{}, len(ids))

	for _, id := range ids {
		r.dist[id] = Infinity
	}
	r.dist[start] = 0

	r.pq = frontier.New(r.options.Strategy, ids)
	r.pq.Push(start, 0)
}

// process is the main relaxation loop.
func (r *runner) process() {
	for {
		item, ok := r.pq.PopMin()
		if !ok {
			return
		}
		u := item.ID

		// Stale heap entry: a cheaper copy of u was pushed after this one.
		if item.Dist > r.distance(u) {
			continue
		}
		if _, done := r.settled[u]; done {
			continue
		}

		if u == r.end || item.Dist == Infinity {
			return
		}

		r.settled[u] = struct{}{}
		r.settledCount++
		if r.options.OnSettle != nil {
			r.options.OnSettle(u, item.Dist)
		}

		r.relax(u, item.Dist)
	}
}

// relax tries to improve every neighbor of u through u. du is final.
func (r *runner) relax(u core.NodeID, du uint64) {
	r.g.EachIncident(u, func(e core.Edge) {
		v := e.B
		if _, done := r.settled[v]; done {
			return
		}

		cand := addSat(du, e.Weight)
		// Strict "<": equal-cost routes keep the first predecessor recorded.
		if cand >= r.distance(v) {
			return
		}

		r.dist[v] = cand
		r.prev[v] = u
		r.pq.Push(v, cand)
	})
}

// distance returns dist[id], treating ids outside the table as unreached.
func (r *runner) distance(id core.NodeID) uint64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return Infinity
}
