package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/pathfinder/cli"
	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/loader"
	"github.com/katalvlaran/pathfinder/logging"
	"github.com/katalvlaran/pathfinder/render"
	"github.com/katalvlaran/pathfinder/router"
	"github.com/katalvlaran/pathfinder/store"
)

// dialGraph opens the database client used by -neo4j.
var dialGraph = func(ctx context.Context, opts store.Options) (store.Client, error) {
	return store.NewNeo4jClient(ctx, opts)
}

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, out, errOut io.Writer, args []string) error {
	env, err := config.Load()
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	opts, exit, err := cli.Parse(args, errOut, env)
	if err != nil {
		return err
	}
	if exit {
		return nil
	}

	logger := logging.New(opts.LogLevel, opts.LogFormat, errOut)
	if opts.MetricsAddr != "" {
		m, err := startMetrics(opts.MetricsAddr, logger)
		if err != nil {
			return &cli.ExitError{Code: 1, Message: fmt.Sprintf("pathfinder: %v", err)}
		}
		defer m.Close(context.WithoutCancel(ctx))
	}

	svc := router.New(
		router.WithStrategy(opts.Frontier),
		router.WithWorkers(opts.Workers),
		router.WithLogger(logger),
	)

	switch opts.Mode {
	case cli.ModeVerify:
		return runVerify(ctx, out, svc, opts.Files)
	case cli.ModeShell:
		return runShell(ctx, out, svc, opts.Files[0])
	case cli.ModeNeo4j:
		return runNeo4j(ctx, out, svc, opts, logger)
	default:
		return runFiles(ctx, out, svc, opts.Files)
	}
}

// runFiles prints, for each file, the graph, the recorded path and the
// engine's answer. The first unloadable file stops the run.
func runFiles(ctx context.Context, out io.Writer, svc *router.Service, files []string) error {
	for i, path := range files {
		doc, err := loader.LoadFile(path)
		if err != nil {
			return loadFailure(err)
		}
		start, end, err := loader.Endpoints(doc.Expected)
		if err != nil {
			return loadFailure(fmt.Errorf("%s: %w", path, err))
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := render.Graph(out, doc.Graph); err != nil {
			return err
		}
		if err := render.Expected(out, doc.Expected); err != nil {
			return err
		}
		ans := svc.Route(ctx, doc.Graph, router.Query{Start: start, End: end})
		if err := render.Result(out, start, end, ans.Path, ans.Found); err != nil {
			return err
		}
	}

	return nil
}

// runVerify loads every file first, then verifies them concurrently.
func runVerify(ctx context.Context, out io.Writer, svc *router.Service, files []string) error {
	docs := make([]*loader.Document, 0, len(files))
	for _, path := range files {
		doc, err := loader.LoadFile(path)
		if err != nil {
			return loadFailure(err)
		}
		docs = append(docs, doc)
	}

	results, err := svc.VerifyAll(ctx, docs)
	if err != nil {
		return loadFailure(err)
	}

	failed := 0
	for _, v := range results {
		switch {
		case v.OK && v.Answer.Found:
			fmt.Fprintf(out, "ok   %s: %s cost %d\n", v.Source, v.Answer.Path, v.Answer.Distance)
		case v.OK:
			fmt.Fprintf(out, "ok   %s: no path\n", v.Source)
		default:
			failed++
			fmt.Fprintf(out, "FAIL %s: recorded %s, found %s\n", v.Source, describeExpected(v), describeAnswer(v.Answer))
		}
	}
	if failed > 0 {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("verification failed: %d of %d", failed, len(results))}
	}

	return nil
}

func describeExpected(v router.Verification) string {
	if !v.ExpectedValid {
		return fmt.Sprintf("%s (not a path in the graph)", v.Expected)
	}

	return fmt.Sprintf("%s cost %d", v.Expected, v.ExpectedCost)
}

func describeAnswer(a router.Answer) string {
	if !a.Found {
		return "no path"
	}

	return fmt.Sprintf("%s cost %d", a.Path, a.Distance)
}

// runNeo4j answers a single query against a database snapshot.
func runNeo4j(ctx context.Context, out io.Writer, svc *router.Service, opts *cli.Options, logger *slog.Logger) error {
	client, err := dialGraph(ctx, store.Options{
		URI:            opts.Graph.URI,
		Database:       opts.Graph.Database,
		Username:       opts.Graph.Username,
		Password:       opts.Graph.Password,
		MaxConnections: opts.Graph.MaxConnections,
	})
	if err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("pathfinder: %v", err)}
	}
	defer client.Close(ctx)

	labels := store.DefaultLabels()
	labels.Node = opts.Graph.NodeLabel
	labels.Edge = opts.Graph.EdgeType

	g, err := store.Snapshot(ctx, client, labels)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("pathfinder: %v", err)}
	}
	logger.Info("snapshot loaded", slog.Int("nodes", g.Order()), slog.Int("edges", g.Size()))

	ans := svc.Route(ctx, g, router.Query{Start: opts.From, End: opts.To})

	return render.Result(out, opts.From, opts.To, ans.Path, ans.Found)
}

func loadFailure(err error) error {
	return &cli.ExitError{Code: 1, Message: fmt.Sprintf("pathfinder: %v", err)}
}
