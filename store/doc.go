// Package store reads graph snapshots out of a Neo4j-compatible database.
//
// The database is reached through the small Client contract so that callers
// and tests can substitute MemoryClient for a live Bolt connection.
// Snapshot issues two read queries, one for node ids and one for weighted
// relationships, and turns the records into an immutable core.Graph.
// Relationship direction is ignored: every relationship becomes one
// undirected edge.
package store
