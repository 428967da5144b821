// File: types.go
// Role: Constructor contract, options and sentinel errors.

package builder

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/pathfinder/core"
)

var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")
)

// WeightFn produces an edge weight. It must be deterministic for a given
// RNG state; rng may be nil for non-stochastic builds.
type WeightFn func(rng *rand.Rand) core.Weight

// Constructor emits the nodes and edges of one topology.
type Constructor func(cfg config) ([]core.Node, []core.Edge, error)

// Option customizes Build.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	weightFn WeightFn
	firstID  core.NodeID
}

// id maps a zero-based index to a node id.
func (c config) id(i int) core.NodeID { return c.firstID + core.NodeID(i) }

func (c config) nodes(n int) []core.Node {
	nodes := make([]core.Node, n)
	for i := range nodes {
		nodes[i] = core.Node{ID: c.id(i)}
	}

	return nodes
}

func (c config) edge(i, j int) core.Edge {
	return core.Edge{A: c.id(i), B: c.id(j), Weight: c.weightFn(c.rng)}
}

// WithSeed attaches a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithWeightFn overrides the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) { c.weightFn = fn }
}

// WithFirstID sets the id of the first node.
func WithFirstID(id core.NodeID) Option {
	return func(c *config) { c.firstID = id }
}

// Build runs ctor with the resolved options and returns the frozen graph.
func Build(ctor Constructor, opts ...Option) (*core.Graph, error) {
	cfg := config{weightFn: ConstantWeight(1)}
	for _, opt := range opts {
		opt(&cfg)
	}
	nodes, edges, err := ctor(cfg)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(nodes, edges), nil
}
