package frontier

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/pathfinder/core"
)

// Scan keeps the set of unsettled nodes and their best tentative distance.
// PopMin walks the whole set, so each extraction is O(V).
type Scan struct {
	unsettled *hashset.Set
	best      map[core.NodeID]uint64
}

// NewScan returns a Scan frontier seeded with ids at Infinity.
func NewScan(ids ...core.NodeID) *Scan {
	s := &Scan{
		unsettled: hashset.New(),
		best:      make(map[core.NodeID]uint64, len(ids)),
	}
	for _, id := range ids {
		s.unsettled.Add(id)
		s.best[id] = Infinity
	}

	return s
}

// Push records dist for id if it improves the stored distance, and (re)adds
// id to the unsettled set. A node already popped becomes unsettled again
// only through an explicit Push.
func (s *Scan) Push(id core.NodeID, dist uint64) {
	if cur, ok := s.best[id]; !ok || dist < cur || !s.unsettled.Contains(id) {
		s.best[id] = dist
	}
	s.unsettled.Add(id)
}

// PopMin removes the unsettled node with the smallest distance.
func (s *Scan) PopMin() (Item, bool) {
	if s.unsettled.Empty() {
		return Item{}, false
	}

	var (
		min   Item
		found bool
	)
	for _, v := range s.unsettled.Values() {
		id := v.(core.NodeID)
		d := s.best[id]
		if !found || d < min.Dist {
			min, found = Item{ID: id, Dist: d}, true
		}
	}
	s.unsettled.Remove(min.ID)

	return min, true
}

// Len returns the number of unsettled nodes.
func (s *Scan) Len() int { return s.unsettled.Size() }
