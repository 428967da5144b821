// Package dijkstra_test validates the shortest-path engine under both
// frontier strategies: scenario graphs, disconnected components, degenerate
// queries, and brute-force optimality on random small graphs.
package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/frontier"
)

// scenarioGraph: 1-2(1) 1-3(3) 2-3(1) 3-4(2) 2-4(5) 4-5(1) 5-6(1) 1-6(10).
func scenarioGraph() *core.Graph {
	return core.NewGraph(
		core.NodesFromIDs(1, 2, 3, 4, 5, 6),
		[]core.Edge{
			{A: 1, B: 2, Weight: 1},
			{A: 1, B: 3, Weight: 3},
			{A: 2, B: 3, Weight: 1},
			{A: 3, B: 4, Weight: 2},
			{A: 2, B: 4, Weight: 5},
			{A: 4, B: 5, Weight: 1},
			{A: 5, B: 6, Weight: 1},
			{A: 1, B: 6, Weight: 10},
		},
	)
}

// EngineSuite exercises Dijkstra with a fixed frontier strategy.
type EngineSuite struct {
	suite.Suite
	strategy frontier.Strategy
	alg      *dijkstra.Dijkstra
}

func (s *EngineSuite) SetupTest() {
	s.alg = dijkstra.New(dijkstra.WithStrategy(s.strategy))
}

// TestScenario verifies the six-node fixture picks the 6-cost route over the direct 10-cost edge.
func (s *EngineSuite) TestScenario() {
	g := scenarioGraph()

	res := s.alg.Run(g, 1, 6)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), uint64(6), res.Distance)
	require.Equal(s.T(), dijkstra.Path{1, 2, 3, 4, 5, 6}, res.Path)
	require.True(s.T(), res.Path.Valid(g, 1, 6))

	cost, ok := res.Path.Cost(g)
	require.True(s.T(), ok)
	require.Equal(s.T(), res.Distance, cost)
}

// TestReverseDirection checks undirected traversal: 6→1 also costs 6.
func (s *EngineSuite) TestReverseDirection() {
	g := scenarioGraph()

	path, ok := s.alg.FindShortestPath(g, 6, 1)
	require.True(s.T(), ok)
	require.Equal(s.T(), dijkstra.Path{6, 5, 4, 3, 2, 1}, path)
}

func (s *EngineSuite) TestIsolatedNodes() {
	g := core.NewGraph(core.NodesFromIDs(1, 2), nil)

	path, ok := s.alg.FindShortestPath(g, 1, 2)
	require.False(s.T(), ok)
	require.Nil(s.T(), path)
}

func (s *EngineSuite) TestDisconnectedComponents() {
	g := core.NewGraph(
		core.NodesFromIDs(1, 2, 3, 10, 11),
		[]core.Edge{
			{A: 1, B: 2, Weight: 1},
			{A: 2, B: 3, Weight: 1},
			{A: 10, B: 11, Weight: 1},
		},
	)

	for _, q := range [][2]core.NodeID{{1, 11}, {11, 3}, {2, 10}} {
		res := s.alg.Run(g, q[0], q[1])
		require.False(s.T(), res.Found, "query %v", q)
		require.Equal(s.T(), dijkstra.Infinity, res.Distance)
	}

	res := s.alg.Run(g, 10, 11)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), dijkstra.Path{10, 11}, res.Path)
}

func (s *EngineSuite) TestStartEqualsEnd() {
	g := scenarioGraph()

	res := s.alg.Run(g, 4, 4)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), dijkstra.Path{4}, res.Path)
	require.Zero(s.T(), res.Distance)
}

func (s *EngineSuite) TestStartEqualsEndIsolated() {
	g := core.NewGraph(core.NodesFromIDs(7), nil)

	path, ok := s.alg.FindShortestPath(g, 7, 7)
	require.True(s.T(), ok)
	require.Equal(s.T(), dijkstra.Path{7}, path)
}

func (s *EngineSuite) TestMissingEndpoints() {
	g := scenarioGraph()

	for _, q := range [][2]core.NodeID{{0, 6}, {1, 99}, {42, 42}} {
		path, ok := s.alg.FindShortestPath(g, q[0], q[1])
		require.False(s.T(), ok, "query %v", q)
		require.Nil(s.T(), path)
	}
}

func (s *EngineSuite) TestNilGraph() {
	res := s.alg.Run(nil, 1, 2)
	require.False(s.T(), res.Found)
	require.Equal(s.T(), dijkstra.Infinity, res.Distance)
}

func (s *EngineSuite) TestParallelEdgesUseCheapest() {
	g := core.NewGraph(core.NodesFromIDs(1, 2), []core.Edge{
		{A: 1, B: 2, Weight: 8},
		{A: 2, B: 1, Weight: 3},
		{A: 1, B: 2, Weight: 5},
	})

	res := s.alg.Run(g, 1, 2)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), uint64(3), res.Distance)
}

func (s *EngineSuite) TestSelfLoopsIgnored() {
	g := core.NewGraph(core.NodesFromIDs(1, 2, 3), []core.Edge{
		{A: 1, B: 1, Weight: 0},
		{A: 1, B: 2, Weight: 4},
		{A: 2, B: 2, Weight: 1},
		{A: 2, B: 3, Weight: 4},
	})

	res := s.alg.Run(g, 1, 3)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), dijkstra.Path{1, 2, 3}, res.Path)
	require.Equal(s.T(), uint64(8), res.Distance)
}

func (s *EngineSuite) TestZeroWeightEdges() {
	g := core.NewGraph(core.NodesFromIDs(1, 2, 3), []core.Edge{
		{A: 1, B: 2, Weight: 0},
		{A: 2, B: 3, Weight: 0},
		{A: 1, B: 3, Weight: 1},
	})

	res := s.alg.Run(g, 1, 3)
	require.True(s.T(), res.Found)
	require.Zero(s.T(), res.Distance)
}

// TestHugeWeightsSaturate ensures d+w never wraps past Infinity.
func (s *EngineSuite) TestHugeWeightsSaturate() {
	big := dijkstra.Infinity - 1
	g := core.NewGraph(core.NodesFromIDs(1, 2, 3), []core.Edge{
		{A: 1, B: 2, Weight: big},
		{A: 2, B: 3, Weight: big},
	})

	res := s.alg.Run(g, 1, 2)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), big, res.Distance)

	// 1→3 would need 2*big, which saturates to Infinity: unreachable.
	res = s.alg.Run(g, 1, 3)
	require.False(s.T(), res.Found)
}

// TestEarlyStop checks the loop halts once the destination is extracted.
func (s *EngineSuite) TestEarlyStop() {
	// Chain 1-2-3-...-50 with unit weights; querying 1→2 must not settle the tail.
	var nodes []core.NodeID
	var edges []core.Edge
	for i := core.NodeID(1); i <= 50; i++ {
		nodes = append(nodes, i)
		if i > 1 {
			edges = append(edges, core.Edge{A: i - 1, B: i, Weight: 1})
		}
	}
	g := core.NewGraph(core.NodesFromIDs(nodes...), edges)

	var settled []core.NodeID
	alg := dijkstra.New(
		dijkstra.WithStrategy(s.strategy),
		dijkstra.WithOnSettle(func(id core.NodeID, _ uint64) { settled = append(settled, id) }),
	)
	res := alg.Run(g, 1, 2)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), []core.NodeID{1}, settled)
	require.Equal(s.T(), 1, res.Settled)
}

// TestSettleOrderMonotone checks settled distances never decrease.
func (s *EngineSuite) TestSettleOrderMonotone() {
	g := scenarioGraph()
	var last uint64
	alg := dijkstra.New(
		dijkstra.WithStrategy(s.strategy),
		dijkstra.WithOnSettle(func(_ core.NodeID, d uint64) {
			require.GreaterOrEqual(s.T(), d, last)
			last = d
		}),
	)
	_, ok := alg.FindShortestPath(g, 1, 6)
	require.True(s.T(), ok)
}

// TestBruteForce compares against exhaustive simple-path enumeration.
func (s *EngineSuite) TestBruteForce() {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		g := randomGraph(rng, 2+rng.Intn(6), rng.Intn(12), 9)
		ids := g.NodeIDs()
		start := ids[rng.Intn(len(ids))]
		end := ids[rng.Intn(len(ids))]

		want, reachable := bruteForce(g, start, end)
		res := s.alg.Run(g, start, end)

		msg := fmt.Sprintf("round %d: %d→%d edges=%v", round, start, end, g.Edges())
		require.Equal(s.T(), reachable, res.Found, msg)
		if !reachable {
			continue
		}
		require.Equal(s.T(), want, res.Distance, msg)
		require.True(s.T(), res.Path.Valid(g, start, end), msg)
		cost, _ := res.Path.Cost(g)
		require.Equal(s.T(), want, cost, msg)
	}
}

// TestRepeatable runs one query many times; distance and validity never change.
func (s *EngineSuite) TestRepeatable() {
	// Square with two equal-cost routes 1→4.
	g := core.NewGraph(core.NodesFromIDs(1, 2, 3, 4), []core.Edge{
		{A: 1, B: 2, Weight: 1},
		{A: 2, B: 4, Weight: 1},
		{A: 1, B: 3, Weight: 1},
		{A: 3, B: 4, Weight: 1},
	})
	for i := 0; i < 50; i++ {
		res := s.alg.Run(g, 1, 4)
		require.True(s.T(), res.Found)
		require.Equal(s.T(), uint64(2), res.Distance)
		require.True(s.T(), res.Path.Valid(g, 1, 4))
	}
}

func TestEngine_Heap(t *testing.T) {
	suite.Run(t, &EngineSuite{strategy: frontier.StrategyHeap})
}

func TestEngine_Scan(t *testing.T) {
	suite.Run(t, &EngineSuite{strategy: frontier.StrategyScan})
}

func TestStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	heap := dijkstra.New(dijkstra.WithStrategy(frontier.StrategyHeap))
	scan := dijkstra.New(dijkstra.WithStrategy(frontier.StrategyScan))

	for round := 0; round < 100; round++ {
		g := randomGraph(rng, 3+rng.Intn(15), rng.Intn(40), 20)
		ids := g.NodeIDs()
		start, end := ids[0], ids[len(ids)-1]

		a := heap.Run(g, start, end)
		b := scan.Run(g, start, end)
		assert.Equal(t, a.Found, b.Found, "round %d", round)
		assert.Equal(t, a.Distance, b.Distance, "round %d", round)
	}
}

func TestShortestPath_Default(t *testing.T) {
	path, ok := dijkstra.ShortestPath(scenarioGraph(), 1, 6)
	require.True(t, ok)
	require.Equal(t, dijkstra.Path{1, 2, 3, 4, 5, 6}, path)
}

func TestNew_Options(t *testing.T) {
	require.Equal(t, frontier.StrategyHeap, dijkstra.New().Options().Strategy)
	require.Nil(t, dijkstra.New(dijkstra.WithOnSettle(nil)).Options().OnSettle)
	require.Equal(t, frontier.StrategyScan,
		dijkstra.New(dijkstra.WithStrategy(frontier.StrategyScan)).Options().Strategy)
}

// Algorithm substitution: callers depend only on the interface.
func TestAlgorithmInterface(t *testing.T) {
	var alg dijkstra.Algorithm = dijkstra.New()
	_, ok := alg.FindShortestPath(scenarioGraph(), 2, 5)
	require.True(t, ok)
}
