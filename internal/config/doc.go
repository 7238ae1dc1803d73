// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package config loads Cinegraph configuration with koanf v2.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables. Only mapped variables are read, so unrelated
// environment never leaks into the configuration.
//
// # Environment Variables
//
//	HTTP_HOST, HTTP_PORT                     server.host, server.port
//	HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT    server timeouts (Go durations)
//	LOG_LEVEL, LOG_FORMAT, LOG_CALLER        logging
//	CORS_ORIGINS                             comma-separated list
//	RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW   per-IP API rate limit
//	RECOMMEND_HYBRID_COLLABORATIVE_WEIGHT    hybrid blend
//	RECOMMEND_HYBRID_CONTENT_WEIGHT          hybrid blend
//	RECOMMEND_MAX_RESULTS                    cap on requested results
//	SNAPSHOT_BACKEND                         none, file or badger
//	SNAPSHOT_PATH, SNAPSHOT_INTERVAL         snapshot location and cadence
//	NEO4J_ENABLED, NEO4J_URI, NEO4J_USER     graph export
//
// # YAML
//
//	server:
//	  port: 8080
//	recommend:
//	  collaborative_weight: 0.7
//	  content_weight: 0.3
//	snapshot:
//	  backend: badger
//	  path: /data/cinegraph/badger
//
// Validation combines go-playground/validator struct tags (through the
// validation package) with cross-field checks, and reports problems using
// the environment variable or YAML key the operator would edit.
package config
