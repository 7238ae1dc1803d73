// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by method and outcome",
		},
		[]string{"method", "status"}, // status: "ok", "error"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_request_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"method"},
	)

	RecommendationResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_results_returned",
			Help:    "Number of movies returned per recommendation request",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"method"},
	)

	RecommendationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Total number of recommendation responses served from cache",
		},
	)

	RecommendationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Total number of recommendation responses computed",
		},
	)

	// Graph Metrics
	GraphNodes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graph_nodes",
			Help: "Current number of graph nodes by kind",
		},
		[]string{"kind"}, // "user", "movie", "genre"
	)

	GraphEdges = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graph_edges",
			Help: "Current number of graph edges by type",
		},
		[]string{"type"}, // "rated", "prefers", "belongs_to"
	)

	GraphMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graph_mutations_total",
			Help: "Total number of graph mutations by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	// Snapshot Metrics
	SnapshotOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snapshot_operations_total",
			Help: "Total number of user snapshot operations",
		},
		[]string{"operation", "backend", "status"}, // operation: "save", "load"
	)

	SnapshotDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "snapshot_duration_seconds",
			Help:    "Duration of user snapshot operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "backend"},
	)

	SnapshotUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "snapshot_users",
			Help: "Number of users in the last saved or loaded snapshot",
		},
	)

	// Graph Export Metrics
	ExportOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graph_export_operations_total",
			Help: "Total number of graph export runs by target and outcome",
		},
		[]string{"target", "status"},
	)

	ExportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graph_export_duration_seconds",
			Help:    "Duration of graph export runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Genre Ranking Metrics
	GenreRankRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "genre_rank_requests_total",
			Help: "Total number of genre ranking requests",
		},
		[]string{"source"}, // "input", "defaults"
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordRecommendation records one recommendation request.
func RecordRecommendation(method string, duration time.Duration, results int, err error) {
	RecommendationRequests.WithLabelValues(method, status(err)).Inc()
	RecommendationDuration.WithLabelValues(method).Observe(duration.Seconds())
	if err == nil {
		RecommendationResults.WithLabelValues(method).Observe(float64(results))
	}
}

// RecordCacheLookup records a recommendation cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		RecommendationCacheHits.Inc()
	} else {
		RecommendationCacheMisses.Inc()
	}
}

// RecordGraphMutation records the outcome of a store mutation.
func RecordGraphMutation(operation string, err error) {
	GraphMutations.WithLabelValues(operation, status(err)).Inc()
}

// UpdateGraphGauges publishes node and edge counts.
func UpdateGraphGauges(nodes map[string]int, edges map[string]int) {
	for kind, n := range nodes {
		GraphNodes.WithLabelValues(kind).Set(float64(n))
	}
	for typ, n := range edges {
		GraphEdges.WithLabelValues(typ).Set(float64(n))
	}
}

// RecordSnapshot records a snapshot save or load.
func RecordSnapshot(operation, backend string, duration time.Duration, users int, err error) {
	SnapshotOperations.WithLabelValues(operation, backend, status(err)).Inc()
	SnapshotDuration.WithLabelValues(operation, backend).Observe(duration.Seconds())
	if err == nil {
		SnapshotUsers.Set(float64(users))
	}
}

// RecordExport records one graph export run.
func RecordExport(target string, duration time.Duration, err error) {
	ExportOperations.WithLabelValues(target, status(err)).Inc()
	ExportDuration.Observe(duration.Seconds())
}

// SetCircuitBreakerState publishes a breaker state (0=closed, 1=half-open, 2=open).
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordGenreRank records a genre ranking request.
func RecordGenreRank(usedDefaults bool) {
	source := "input"
	if usedDefaults {
		source = "defaults"
	}
	GenreRankRequests.WithLabelValues(source).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
