package router

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/frontier"
)

// Query asks for the shortest path between two node ids.
type Query struct {
	Start core.NodeID
	End   core.NodeID
}

// Answer is the outcome of one Query.
type Answer struct {
	ID       string // uuid assigned by Route
	Query    Query
	Path     dijkstra.Path // nil when !Found
	Distance uint64        // Infinity when !Found
	Found    bool
	Settled  int
	Elapsed  time.Duration
}

// Verification compares an engine answer with the path recorded in a
// graph description.
type Verification struct {
	Source string
	Answer Answer

	// Expected is the recorded path. ExpectedCost is meaningful only when
	// ExpectedValid, i.e. the recorded path is a walk in the graph.
	Expected      dijkstra.Path
	ExpectedCost  uint64
	ExpectedValid bool

	// OK is true when a valid recorded path costs exactly Answer.Distance,
	// or when an invalid recorded path is matched by a no-path answer.
	OK bool
}

// Options configures a Service.
type Options struct {
	Strategy frontier.Strategy
	Workers  int
	Logger   *slog.Logger
	Tracer   trace.Tracer
}

// Option mutates Options.
type Option func(*Options)

// WithStrategy selects the frontier used by the engine.
func WithStrategy(s frontier.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithWorkers bounds concurrent queries in Batch and VerifyAll.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracer sets the tracer. nil is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// DefaultOptions returns heap frontier, 4 workers, slog.Default and the
// global otel tracer.
func DefaultOptions() Options {
	return Options{
		Strategy: frontier.StrategyHeap,
		Workers:  4,
		Logger:   slog.Default(),
		Tracer:   otel.Tracer("github.com/katalvlaran/pathfinder/router"),
	}
}
