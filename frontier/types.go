package frontier

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/pathfinder/core"
)

// Infinity is the tentative distance of a node with no known path.
const Infinity uint64 = math.MaxUint64

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("frontier: unknown strategy")

// Item is a frontier entry: a node and the distance it was pushed with.
type Item struct {
	ID   core.NodeID
	Dist uint64
}

// Frontier is a min-priority structure over tentative distances.
type Frontier interface {
	// Push inserts id with the given tentative distance.
	Push(id core.NodeID, dist uint64)

	// PopMin removes and returns the entry with the smallest distance.
	// The boolean is false once the frontier is exhausted.
	PopMin() (Item, bool)

	// Len reports the number of entries still held, stale ones included.
	Len() int
}

// Strategy selects a Frontier implementation.
type Strategy int

const (
	// StrategyHeap selects the binary-heap frontier with lazy deletion.
	StrategyHeap Strategy = iota

	// StrategyScan selects the linear-scan frontier over the unsettled set.
	StrategyScan
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyHeap:
		return "heap"
	case StrategyScan:
		return "scan"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "heap" or "scan" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "heap":
		return StrategyHeap, nil
	case "scan":
		return StrategyScan, nil
	default:
		return StrategyHeap, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// New returns a fresh Frontier for strategy s.
//
// The Scan frontier is seeded with every id at Infinity so that extracting an
// Infinity entry tells the caller the rest of the graph is unreachable. The
// Heap frontier ignores ids and starts empty.
func New(s Strategy, ids []core.NodeID) Frontier {
	if s == StrategyScan {
		return NewScan(ids...)
	}

	return NewHeap()
}
