package dijkstra

import "github.com/katalvlaran/pathfinder/core"

// Reconstruct walks prev backward from end to start and returns the route in
// traversal order.
//
// The boolean is false if the chain breaks (a node other than start has no
// predecessor) or loops for longer than the table allows. A correct Dijkstra
// run never produces either case; the check guards against corrupt tables.
//
// start == end yields [start] regardless of prev.
//
// Complexity: O(len(path)).
func Reconstruct(prev map[core.NodeID]core.NodeID, start, end core.NodeID) (Path, bool) {
	if start == end {
		return Path{start}, true
	}

	path := Path{end}
	cur := end
	for cur != start {
		// A simple path visits each predecessor entry at most once.
		if len(path) > len(prev)+1 {
			return nil, false
		}
		p, ok := prev[cur]
		if !ok {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
