package router

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultFound    = "found"
	resultNoPath   = "no_path"
	resultOK       = "ok"
	resultMismatch = "mismatch"
)

var (
	routeQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathfinder_route_queries_total",
		Help: "Total shortest-path queries by result",
	}, []string{"result"})

	routeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathfinder_route_duration_seconds",
		Help:    "Shortest-path query duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
	}, []string{"frontier"})

	routeSettled = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathfinder_route_settled_nodes",
		Help:    "Nodes settled per shortest-path query",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	verifyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathfinder_verify_total",
		Help: "Verified graph descriptions by result",
	}, []string{"result"})
)
