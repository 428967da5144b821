// Package router answers shortest-path queries against loaded graphs.
//
// A Service wraps a dijkstra engine with the operational surface a long-lived
// process needs: every query gets a uuid, an OpenTelemetry span named
// "router.Route", structured slog records, and Prometheus metrics:
//
//	pathfinder_route_queries_total{result="found"|"no_path"}
//	pathfinder_route_duration_seconds{frontier}
//	pathfinder_route_settled_nodes
//	pathfinder_verify_total{result="ok"|"mismatch"}
//
// Batch and VerifyAll fan queries out over an errgroup bounded by the
// configured worker count. Graphs are immutable, so queries over the same
// graph never coordinate.
package router
