package frontier

import (
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/pathfinder/core"
)

// Heap is a binary min-heap of Items ordered by Dist.
// Duplicate ids are allowed; see the package doc for lazy deletion.
type Heap struct {
	h *binaryheap.Heap
}

// byDist orders Items by ascending distance.
func byDist(a, b interface{}) int {
	da, db := a.(Item).Dist, b.(Item).Dist
	switch {
	case da < db:
		return -1
	case da > db:
		return 1
	default:
		return 0
	}
}

// NewHeap returns an empty Heap.
func NewHeap() *Heap {
	return &Heap{h: binaryheap.NewWith(byDist)}
}

// Push inserts (id, dist). Complexity: O(log N).
func (q *Heap) Push(id core.NodeID, dist uint64) {
	q.h.Push(Item{ID: id, Dist: dist})
}

// PopMin removes the smallest-distance Item. Complexity: O(log N).
func (q *Heap) PopMin() (Item, bool) {
	v, ok := q.h.Pop()
	if !ok {
		return Item{}, false
	}

	return v.(Item), true
}

// Len returns the number of entries, stale ones included.
func (q *Heap) Len() int { return q.h.Size() }
