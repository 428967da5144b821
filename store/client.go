package store

import (
	"context"
	"errors"
)

// Client is the minimal contract Snapshot needs from a graph database.
type Client interface {
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result is a simplified representation of a query response.
type Result struct {
	Records []Record
}

// Record groups key-value pairs returned from the graph engine.
type Record map[string]any

// Options configures a Client implementation.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

var (
	// ErrMissingURI indicates the graph URI is not provided.
	ErrMissingURI = errors.New("store: graph URI is required")

	// ErrBadRecord indicates a record that cannot be turned into a node or edge.
	ErrBadRecord = errors.New("store: malformed record")

	// ErrBadLabel indicates a label, relationship type or property name that
	// is not a plain identifier.
	ErrBadLabel = errors.New("store: invalid label")
)
