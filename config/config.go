// Package config reads process configuration from environment variables.
// Command-line flags parsed by package cli take precedence over these values.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config aggregates application configuration values.
type Config struct {
	Logging LoggingConfig
	Engine  EngineConfig
	Graph   GraphConfig
	Metrics MetricsConfig
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

// EngineConfig selects how queries are executed.
type EngineConfig struct {
	Frontier string // heap|scan
	Workers  int    // concurrent queries in batch verification
}

// MetricsConfig controls the Prometheus scrape endpoint.
type MetricsConfig struct {
	Addr string // empty disables the endpoint
}

// GraphConfig describes connectivity to the graph database and the schema
// the snapshot is read from.
type GraphConfig struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
	NodeLabel      string
	EdgeType       string
}

const (
	defaultLoggingLevel     = "warn"
	defaultLoggingFormat    = "text"
	defaultFrontier         = "heap"
	defaultWorkers          = 4
	defaultGraphMaxSessions = 10
	defaultNodeLabel        = "Node"
	defaultEdgeType         = "EDGE"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:  valueOrDefault("PATHFINDER_LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("PATHFINDER_LOG_FORMAT", defaultLoggingFormat),
		},
		Engine: EngineConfig{
			Frontier: valueOrDefault("PATHFINDER_FRONTIER", defaultFrontier),
		},
		Graph: GraphConfig{
			URI:            os.Getenv("GRAPH_URI"),
			Database:       valueOrDefault("GRAPH_DATABASE", ""),
			Username:       os.Getenv("GRAPH_USERNAME"),
			Password:       os.Getenv("GRAPH_PASSWORD"),
			NodeLabel:      valueOrDefault("GRAPH_NODE_LABEL", defaultNodeLabel),
			EdgeType:       valueOrDefault("GRAPH_EDGE_TYPE", defaultEdgeType),
		},
		Metrics: MetricsConfig{
			Addr: os.Getenv("PATHFINDER_METRICS_ADDR"),
		},
	}

	workers, err := parsePositive("PATHFINDER_WORKERS", defaultWorkers)
	if err != nil {
		return Config{}, err
	}
	cfg.Engine.Workers = workers

	maxConns, err := parsePositive("GRAPH_MAX_CONNECTIONS", defaultGraphMaxSessions)
	if err != nil {
		return Config{}, err
	}
	cfg.Graph.MaxConnections = maxConns

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func parsePositive(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s value %q: %w", key, v, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %d", key, n)
	}

	return n, nil
}
