package router

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/loader"
)

// Service runs queries through one engine configuration. It is safe for
// concurrent use.
type Service struct {
	engine  *dijkstra.Dijkstra
	options Options
}

// New builds a Service from DefaultOptions plus opts.
func New(opts ...Option) *Service {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Service{
		engine:  dijkstra.New(dijkstra.WithStrategy(o.Strategy)),
		options: o,
	}
}

// Options returns the effective configuration.
func (s *Service) Options() Options { return s.options }

// Route answers q against g. Unknown endpoints and unreachable targets give
// an Answer with Found == false; Route never fails.
func (s *Service) Route(ctx context.Context, g *core.Graph, q Query) Answer {
	id := uuid.NewString()
	strategy := s.options.Strategy.String()

	_, span := s.options.Tracer.Start(ctx, "router.Route",
		trace.WithAttributes(queryAttributes(id, q, strategy)...),
	)
	defer span.End()

	log := s.options.Logger.With(slog.String("query_id", id))
	log.Debug("route_start",
		slog.Uint64("start", q.Start),
		slog.Uint64("end", q.End),
		slog.String("frontier", strategy),
	)

	began := time.Now()
	res := s.engine.Run(g, q.Start, q.End)
	elapsed := time.Since(began)

	ans := Answer{
		ID:       id,
		Query:    q,
		Path:     res.Path,
		Distance: res.Distance,
		Found:    res.Found,
		Settled:  res.Settled,
		Elapsed:  elapsed,
	}

	result := resultNoPath
	if ans.Found {
		result = resultFound
	}
	routeQueries.WithLabelValues(result).Inc()
	routeDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
	routeSettled.Observe(float64(ans.Settled))

	span.SetAttributes(
		attribute.Bool("found", ans.Found),
		attribute.Int("settled", ans.Settled),
		attribute.Int("hops", max(len(ans.Path)-1, 0)),
	)
	span.SetStatus(codes.Ok, result)

	log.Debug("route_complete",
		slog.String("result", result),
		slog.Int("settled", ans.Settled),
		slog.Duration("duration", elapsed),
	)

	return ans
}

// queryAttributes describes q on a span. Node ids are uint64, so they are
// recorded as decimal strings rather than wrapping into int64.
func queryAttributes(id string, q Query, strategy string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("query_id", id),
		attribute.String("start", strconv.FormatUint(q.Start, 10)),
		attribute.String("end", strconv.FormatUint(q.End, 10)),
		attribute.String("frontier", strategy),
	}
}

// Batch answers every query against g, at most Workers at a time. Answers
// keep the order of qs. It fails only when ctx is done.
func (s *Service) Batch(ctx context.Context, g *core.Graph, qs []Query) ([]Answer, error) {
	answers := make([]Answer, len(qs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.options.Workers)
	for i, q := range qs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			answers[i] = s.Route(ctx, g, q)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return answers, nil
}

// Verify runs the query implied by doc's expected path and compares the
// outcome. Paths may differ under ties; only costs are compared.
//
// Errors:
//   - loader.ErrEmptyPath if doc has no expected path.
func (s *Service) Verify(ctx context.Context, doc *loader.Document) (Verification, error) {
	start, end, err := loader.Endpoints(doc.Expected)
	if err != nil {
		return Verification{}, fmt.Errorf("%s: %w", doc.Source, err)
	}

	v := Verification{
		Source:   doc.Source,
		Answer:   s.Route(ctx, doc.Graph, Query{Start: start, End: end}),
		Expected: doc.Expected,
	}
	v.ExpectedValid = doc.Expected.Valid(doc.Graph, start, end)
	if v.ExpectedValid {
		v.ExpectedCost, _ = doc.Expected.Cost(doc.Graph)
		v.OK = v.Answer.Found && v.Answer.Distance == v.ExpectedCost
	} else {
		v.OK = !v.Answer.Found
	}

	result := resultOK
	if !v.OK {
		result = resultMismatch
		s.options.Logger.Warn("verify_mismatch",
			slog.String("source", v.Source),
			slog.String("expected", v.Expected.String()),
			slog.String("found", v.Answer.Path.String()),
			slog.Bool("expected_valid", v.ExpectedValid),
		)
	}
	verifyTotal.WithLabelValues(result).Inc()

	return v, nil
}

// VerifyAll verifies docs concurrently, at most Workers at a time. Results
// keep the order of docs. The first error cancels the remaining work.
func (s *Service) VerifyAll(ctx context.Context, docs []*loader.Document) ([]Verification, error) {
	out := make([]Verification, len(docs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.options.Workers)
	for i, doc := range docs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := s.Verify(ctx, doc)
			if err != nil {
				return err
			}
			out[i] = v

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
