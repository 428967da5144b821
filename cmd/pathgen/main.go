// Command pathgen writes generated graph descriptions whose recorded
// shortest path is computed by the engine, for use as pathfinder fixtures.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/cli"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/loader"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type params struct {
	topology   string
	n, m       int
	rows, cols int
	p          float64
	seed       int64
	minW, maxW uint64
	firstID    uint64
	output     string
}

func run(out, errOut io.Writer, args []string) error {
	fs := flag.NewFlagSet("pathgen", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var pr params
	fs.StringVar(&pr.topology, "topology", "grid", "Topology: path, cycle, star, complete, grid, sparse, random.")
	fs.IntVar(&pr.n, "n", 10, "Node count for path, cycle, star, complete, sparse and random.")
	fs.IntVar(&pr.m, "m", 20, "Edge count for random.")
	fs.IntVar(&pr.rows, "rows", 4, "Rows for grid.")
	fs.IntVar(&pr.cols, "cols", 4, "Columns for grid.")
	fs.Float64Var(&pr.p, "p", 0.3, "Edge probability for sparse.")
	fs.Int64Var(&pr.seed, "seed", 1, "RNG seed.")
	fs.Uint64Var(&pr.minW, "min-weight", 1, "Smallest edge weight.")
	fs.Uint64Var(&pr.maxW, "max-weight", 9, "Largest edge weight.")
	fs.Uint64Var(&pr.firstID, "first-id", 1, "Id of the first node.")
	fs.StringVar(&pr.output, "o", "", "Output file; stdout when empty.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	if pr.maxW < pr.minW {
		return &cli.ExitError{Code: 2, Message: "max-weight must not be below min-weight"}
	}

	doc, err := generate(pr)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: fmt.Sprintf("pathgen: %v", err)}
	}

	if pr.output == "" {
		return loader.Write(out, doc)
	}
	f, err := os.Create(pr.output)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("pathgen: %v", err)}
	}
	if err := loader.Write(f, doc); err != nil {
		f.Close()
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("pathgen: %v", err)}
	}

	return f.Close()
}

// generate builds the graph and records the shortest path from its first to
// its last node. Unreachable pairs record just the two endpoints.
func generate(pr params) (*loader.Document, error) {
	var ctor builder.Constructor
	switch pr.topology {
	case "path":
		ctor = builder.Path(pr.n)
	case "cycle":
		ctor = builder.Cycle(pr.n)
	case "star":
		ctor = builder.Star(pr.n)
	case "complete":
		ctor = builder.Complete(pr.n)
	case "grid":
		ctor = builder.Grid(pr.rows, pr.cols)
	case "sparse":
		ctor = builder.RandomSparse(pr.n, pr.p)
	case "random":
		ctor = builder.RandomEdges(pr.n, pr.m)
	default:
		return nil, fmt.Errorf("unknown topology %q", pr.topology)
	}

	g, err := builder.Build(ctor,
		builder.WithSeed(pr.seed),
		builder.WithFirstID(core.NodeID(pr.firstID)),
		builder.WithWeightFn(builder.UniformWeight(pr.minW, pr.maxW)),
	)
	if err != nil {
		return nil, err
	}

	ids := g.NodeIDs()
	start, end := ids[0], ids[len(ids)-1]
	expected, ok := dijkstra.ShortestPath(g, start, end)
	if !ok {
		expected = dijkstra.Path{start, end}
	}

	return &loader.Document{Graph: g, Expected: expected}, nil
}
