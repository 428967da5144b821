package store

import (
	"context"
	"fmt"
	"regexp"

	"github.com/katalvlaran/pathfinder/core"
)

// Labels names the schema elements Snapshot reads.
type Labels struct {
	Node           string // node label, e.g. "Node"
	IDProperty     string // integer id property on nodes
	Edge           string // relationship type
	WeightProperty string // integer weight property on relationships
}

// DefaultLabels returns the schema used when nothing is configured.
func DefaultLabels() Labels {
	return Labels{
		Node:           "Node",
		IDProperty:     "id",
		Edge:           "EDGE",
		WeightProperty: "weight",
	}
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (l Labels) validate() error {
	for _, s := range []string{l.Node, l.IDProperty, l.Edge, l.WeightProperty} {
		if !identifier.MatchString(s) {
			return fmt.Errorf("%w: %q", ErrBadLabel, s)
		}
	}

	return nil
}

// NodesQuery returns the cypher statement that lists node ids.
func (l Labels) NodesQuery() string {
	return fmt.Sprintf("MATCH (n:%s) RETURN n.%s AS id ORDER BY id", l.Node, l.IDProperty)
}

// EdgesQuery returns the cypher statement that lists weighted relationships.
func (l Labels) EdgesQuery() string {
	return fmt.Sprintf(
		"MATCH (a:%[1]s)-[r:%[3]s]->(b:%[1]s) RETURN a.%[2]s AS a, b.%[2]s AS b, r.%[4]s AS weight",
		l.Node, l.IDProperty, l.Edge, l.WeightProperty,
	)
}

// Snapshot reads the whole graph described by labels through client.
//
// Errors:
//   - ErrBadLabel if a label is not a plain identifier.
//   - ErrBadRecord for missing, non-integer or negative values, and for
//     relationships whose endpoints were not returned by the node query.
//   - Client errors are wrapped with the failing step.
func Snapshot(ctx context.Context, client Client, labels Labels) (*core.Graph, error) {
	if err := labels.validate(); err != nil {
		return nil, err
	}

	res, err := client.ExecuteRead(ctx, labels.NodesQuery(), nil)
	if err != nil {
		return nil, fmt.Errorf("store: read nodes: %w", err)
	}
	nodes := make([]core.Node, 0, len(res.Records))
	declared := make(map[core.NodeID]struct{}, len(res.Records))
	for i, rec := range res.Records {
		id, err := field(rec, "id")
		if err != nil {
			return nil, fmt.Errorf("node record %d: %w", i, err)
		}
		nodes = append(nodes, core.Node{ID: id})
		declared[id] = struct{}{}
	}

	res, err = client.ExecuteRead(ctx, labels.EdgesQuery(), nil)
	if err != nil {
		return nil, fmt.Errorf("store: read edges: %w", err)
	}
	edges := make([]core.Edge, 0, len(res.Records))
	for i, rec := range res.Records {
		var e core.Edge
		if e.A, err = field(rec, "a"); err != nil {
			return nil, fmt.Errorf("edge record %d: %w", i, err)
		}
		if e.B, err = field(rec, "b"); err != nil {
			return nil, fmt.Errorf("edge record %d: %w", i, err)
		}
		if e.Weight, err = field(rec, "weight"); err != nil {
			return nil, fmt.Errorf("edge record %d: %w", i, err)
		}
		for _, id := range []core.NodeID{e.A, e.B} {
			if _, ok := declared[id]; !ok {
				return nil, fmt.Errorf("edge record %d: %w: unknown node %d", i, ErrBadRecord, id)
			}
		}
		edges = append(edges, e)
	}

	return core.NewGraph(nodes, edges), nil
}

// field extracts a non-negative integer. The Bolt driver returns int64 for
// integers; the other cases serve hand-built records.
func field(rec Record, key string) (uint64, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: missing %q", ErrBadRecord, key)
	}
	switch n := v.(type) {
	case int64:
		if n >= 0 {
			return uint64(n), nil
		}
	case int:
		if n >= 0 {
			return uint64(n), nil
		}
	case uint64:
		return n, nil
	}

	return 0, fmt.Errorf("%w: %q = %v (%T)", ErrBadRecord, key, v, v)
}
