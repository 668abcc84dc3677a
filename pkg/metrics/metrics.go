package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campnav_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campnav_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "path"},
	)

	// RouteQueriesTotal. outcome is one of found, no_path, unknown_node, invalid, error
	RouteQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campnav_route_queries_total",
			Help: "Total number of shortest path queries by outcome",
		},
		[]string{"outcome"},
	)

	RouteQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campnav_route_query_duration_seconds",
			Help:    "Duration of shortest path queries (snapping + search) in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 14),
		},
	)

	RouteCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campnav_route_cache_hits_total",
			Help: "Total number of shortest path queries answered from the route cache",
		},
	)

	NetworkSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "campnav_network_size",
			Help: "Size of the loaded road network",
		},
		[]string{"kind"}, // vertices, edges, segments, rejected_segments, named_points, components
	)
)
