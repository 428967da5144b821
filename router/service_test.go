package router

import (
	"bytes"
	"context"
	"errors"
	"math"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/frontier"
	"github.com/katalvlaran/pathfinder/loader"
	"github.com/katalvlaran/pathfinder/logging"
)

func scenario() *core.Graph {
	return core.NewGraph(
		core.NodesFromIDs(1, 2, 3, 4, 5, 6, 7),
		[]core.Edge{
			{A: 1, B: 2, Weight: 1}, {A: 1, B: 3, Weight: 3}, {A: 2, B: 3, Weight: 1},
			{A: 3, B: 4, Weight: 2}, {A: 2, B: 4, Weight: 5}, {A: 4, B: 5, Weight: 1},
			{A: 5, B: 6, Weight: 1}, {A: 1, B: 6, Weight: 10},
		},
	)
}

type RouterSuite struct {
	suite.Suite
	strategy frontier.Strategy
	svc      *Service
	logs     *bytes.Buffer
}

func (s *RouterSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	s.svc = New(
		WithStrategy(s.strategy),
		WithWorkers(3),
		WithLogger(logging.New("debug", "json", s.logs)),
	)
}

func (s *RouterSuite) TestRoute_Found() {
	found := testutil.ToFloat64(routeQueries.WithLabelValues(resultFound))

	ans := s.svc.Route(context.Background(), scenario(), Query{Start: 1, End: 6})
	s.Require().True(ans.Found)
	s.Equal(dijkstra.Path{1, 2, 3, 4, 5, 6}, ans.Path)
	s.Equal(uint64(6), ans.Distance)
	s.Positive(ans.Settled)
	_, err := uuid.Parse(ans.ID)
	s.NoError(err)

	s.Equal(found+1, testutil.ToFloat64(routeQueries.WithLabelValues(resultFound)))
	s.Contains(s.logs.String(), `"msg":"route_complete"`)
	s.Contains(s.logs.String(), ans.ID)
}

func (s *RouterSuite) TestRoute_NoPath() {
	noPath := testutil.ToFloat64(routeQueries.WithLabelValues(resultNoPath))

	ans := s.svc.Route(context.Background(), scenario(), Query{Start: 1, End: 7})
	s.False(ans.Found)
	s.Nil(ans.Path)
	s.Equal(dijkstra.Infinity, ans.Distance)

	ans = s.svc.Route(context.Background(), scenario(), Query{Start: 1, End: 99})
	s.False(ans.Found)

	s.Equal(noPath+2, testutil.ToFloat64(routeQueries.WithLabelValues(resultNoPath)))
}

func (s *RouterSuite) TestRoute_UniqueIDs() {
	g := scenario()
	a := s.svc.Route(context.Background(), g, Query{Start: 1, End: 2})
	b := s.svc.Route(context.Background(), g, Query{Start: 1, End: 2})
	s.NotEqual(a.ID, b.ID)
}

func (s *RouterSuite) TestBatch_PreservesOrder() {
	g := scenario()
	var qs []Query
	for end := core.NodeID(1); end <= 7; end++ {
		qs = append(qs, Query{Start: 1, End: end})
	}

	answers, err := s.svc.Batch(context.Background(), g, qs)
	s.Require().NoError(err)
	s.Require().Len(answers, len(qs))

	want := []uint64{0, 1, 2, 4, 5, 6, dijkstra.Infinity}
	for i, a := range answers {
		s.Equal(qs[i], a.Query)
		s.Equal(want[i], a.Distance, "end %d", qs[i].End)
	}
}

func (s *RouterSuite) TestBatch_Canceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.svc.Batch(ctx, scenario(), []Query{{Start: 1, End: 6}})
	s.ErrorIs(err, context.Canceled)
}

func (s *RouterSuite) TestVerifyAll_Fixtures() {
	docs, err := loader.LoadDir("../testdata/graphs")
	s.Require().NoError(err)

	ok := testutil.ToFloat64(verifyTotal.WithLabelValues(resultOK))
	results, err := s.svc.VerifyAll(context.Background(), docs)
	s.Require().NoError(err)
	s.Require().Len(results, len(docs))

	for i, v := range results {
		s.Equal(docs[i].Source, v.Source)
		s.True(v.OK, v.Source)
		if filepath.Base(v.Source) == "not_connected_graph.txt" {
			s.False(v.ExpectedValid)
			s.False(v.Answer.Found)
		} else {
			s.True(v.ExpectedValid, v.Source)
			s.Equal(v.ExpectedCost, v.Answer.Distance, v.Source)
		}
	}
	s.Equal(ok+float64(len(docs)), testutil.ToFloat64(verifyTotal.WithLabelValues(resultOK)))
}

func (s *RouterSuite) TestVerify_Mismatch() {
	g := scenario()
	doc := &loader.Document{Source: "detour", Graph: g, Expected: dijkstra.Path{1, 6}}

	mismatch := testutil.ToFloat64(verifyTotal.WithLabelValues(resultMismatch))
	v, err := s.svc.Verify(context.Background(), doc)
	s.Require().NoError(err)
	s.False(v.OK)
	s.True(v.ExpectedValid)
	s.Equal(uint64(10), v.ExpectedCost)
	s.Equal(uint64(6), v.Answer.Distance)
	s.Equal(mismatch+1, testutil.ToFloat64(verifyTotal.WithLabelValues(resultMismatch)))
	s.Contains(s.logs.String(), "verify_mismatch")
}

func (s *RouterSuite) TestVerify_InvalidExpectedButReachable() {
	// 1 and 4 are connected but not adjacent: the recorded path is no walk.
	doc := &loader.Document{Graph: scenario(), Expected: dijkstra.Path{1, 4}}

	v, err := s.svc.Verify(context.Background(), doc)
	s.Require().NoError(err)
	s.False(v.ExpectedValid)
	s.True(v.Answer.Found)
	s.False(v.OK)
}

func (s *RouterSuite) TestVerify_EmptyPath() {
	doc := &loader.Document{Source: "empty", Graph: scenario()}
	_, err := s.svc.Verify(context.Background(), doc)
	s.ErrorIs(err, loader.ErrEmptyPath)

	_, err = s.svc.VerifyAll(context.Background(), []*loader.Document{doc})
	s.ErrorIs(err, loader.ErrFormat)
}

func TestRouterSuite(t *testing.T) {
	for _, st := range []frontier.Strategy{frontier.StrategyHeap, frontier.StrategyScan} {
		t.Run(st.String(), func(t *testing.T) {
			suite.Run(t, &RouterSuite{strategy: st})
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	svc := New(WithWorkers(0), WithLogger(nil), WithTracer(nil))
	o := svc.Options()
	assert.Equal(t, frontier.StrategyHeap, o.Strategy)
	assert.Equal(t, 4, o.Workers)
	assert.NotNil(t, o.Logger)
	assert.NotNil(t, o.Tracer)
}

func TestRoute_Concurrent(t *testing.T) {
	svc := New(WithLogger(logging.Discard()))
	g := scenario()

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if a := svc.Route(context.Background(), g, Query{Start: 6, End: 1}); a.Distance != 6 {
				errs <- errors.New("unexpected distance")
			}
		}()
	}
	wg.Wait()
	close(errs)
	require.Empty(t, errs)
}

func TestRoute_ObservesHistograms(t *testing.T) {
	New(WithLogger(logging.Discard())).Route(context.Background(), scenario(), Query{Start: 1, End: 2})
	assert.Equal(t, 1, testutil.CollectAndCount(routeSettled))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(routeDuration), 1)
}

func TestQueryAttributes_FullIDRange(t *testing.T) {
	attrs := queryAttributes("q-1", Query{Start: math.MaxUint64, End: 1 << 63}, "scan")

	set := attribute.NewSet(attrs...)
	start, ok := set.Value("start")
	require.True(t, ok)
	assert.Equal(t, attribute.STRING, start.Type())
	assert.Equal(t, "18446744073709551615", start.AsString())

	end, ok := set.Value("end")
	require.True(t, ok)
	assert.Equal(t, "9223372036854775808", end.AsString())

	strategy, ok := set.Value("frontier")
	require.True(t, ok)
	assert.Equal(t, "scan", strategy.AsString())
}
