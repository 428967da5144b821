// Package cli parses pathfinder's command line on top of the environment
// configuration loaded by package config.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/frontier"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Mode is what the process does after parsing.
type Mode int

const (
	ModeRun    Mode = iota // load each file, print graph and result
	ModeVerify             // compare engine results with recorded paths
	ModeShell              // interactive queries over the first file
	ModeNeo4j              // one query over a database snapshot
)

// Options is the parsed command line merged with the environment.
type Options struct {
	Mode        Mode
	Files       []string
	From, To    core.NodeID
	Frontier    frontier.Strategy
	Workers     int
	LogLevel    string
	LogFormat   string
	MetricsAddr string // empty disables the metrics endpoint
	Graph       config.GraphConfig
}

// Parse processes command-line arguments. env supplies the defaults every
// flag overrides. It returns the options, a boolean indicating the program
// should exit cleanly (help was printed), or an *ExitError.
func Parse(args []string, output io.Writer, env config.Config) (*Options, bool, error) {
	fs := flag.NewFlagSet("pathfinder", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
pathfinder - shortest paths over weighted undirected graphs.

Usage:
  pathfinder [options] FILE [FILE...]
  pathfinder -neo4j -from ID -to ID [options]

Arguments:
  FILE
    Graph description: section text (# Nodes / # Edges / # ShortestPath)
    or HCL when the name ends in .hcl.

Options:
`)
		fs.PrintDefaults()
	}

	verify := fs.Bool("verify", false, "Check every file's recorded shortest path against the engine.")
	shell := fs.Bool("shell", false, "Open an interactive prompt over the first file's graph.")
	neo4j := fs.Bool("neo4j", false, "Read the graph from the database configured by GRAPH_* variables.")
	from := fs.Uint64("from", 0, "Start node id for -neo4j.")
	to := fs.Uint64("to", 0, "End node id for -neo4j.")
	strategy := fs.String("frontier", env.Engine.Frontier, "Priority frontier. Options: 'heap' or 'scan'.")
	workers := fs.Int("workers", env.Engine.Workers, "Concurrent queries in -verify mode.")
	logLevel := fs.String("log-level", env.Logging.Level, "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormat := fs.String("log-format", env.Logging.Format, "Log output format. Options: 'text' or 'json'.")
	metricsAddr := fs.String("metrics-addr", env.Metrics.Addr, "Serve Prometheus metrics on this address, e.g. ':9090'. Empty disables.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	opts := &Options{
		Files:       fs.Args(),
		From:        *from,
		To:          *to,
		Workers:     *workers,
		LogLevel:    strings.ToLower(*logLevel),
		LogFormat:   strings.ToLower(*logFormat),
		MetricsAddr: *metricsAddr,
		Graph:       env.Graph,
	}

	s, err := frontier.ParseStrategy(*strategy)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	opts.Frontier = s

	if opts.LogFormat != "text" && opts.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if opts.Workers < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must be positive"}
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	modes := 0
	for _, on := range []bool{*verify, *shell, *neo4j} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return nil, false, &ExitError{Code: 2, Message: "-verify, -shell and -neo4j are mutually exclusive"}
	}

	switch {
	case *neo4j:
		if !set["from"] || !set["to"] {
			return nil, false, &ExitError{Code: 2, Message: "-neo4j requires -from and -to"}
		}
		if len(opts.Files) > 0 {
			return nil, false, &ExitError{Code: 2, Message: "-neo4j does not take FILE arguments"}
		}
		opts.Mode = ModeNeo4j
		return opts, false, nil
	case *verify:
		opts.Mode = ModeVerify
	case *shell:
		opts.Mode = ModeShell
	}

	if len(opts.Files) == 0 {
		fs.Usage()
		return nil, false, &ExitError{Code: 1, Message: "Please provide a file name"}
	}

	return opts, false, nil
}
