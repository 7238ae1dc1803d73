// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with the default registry through promauto and
exposed at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

Recommendations:
  - recommend_requests_total{method,status}
  - recommend_request_duration_seconds{method}
  - recommend_results_returned{method}
  - recommend_cache_hits_total, recommend_cache_misses_total

Graph:
  - graph_nodes{kind}, graph_edges{type}
  - graph_mutations_total{operation,status}

Persistence and export:
  - snapshot_operations_total{operation,backend,status}
  - snapshot_duration_seconds{operation,backend}, snapshot_users
  - graph_export_operations_total{target,status}, graph_export_duration_seconds
  - circuit_breaker_state{name}

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

# Usage

Components call the Record* helpers rather than touching collectors:

	start := time.Now()
	recs, err := strategy.Recommend(store, userID, limit)
	metrics.RecordRecommendation("hybrid", time.Since(start), len(recs), err)
*/
package metrics
