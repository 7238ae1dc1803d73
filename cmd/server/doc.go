// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package main is the entry point for the Cinegraph server.

Cinegraph keeps users, movies and genres in an in-memory graph and serves
collaborative, content-based and hybrid movie recommendations over HTTP.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("cinegraph")
	├── DataSupervisor ("data-layer")
	│   └── SnapshotService (periodic user snapshots)
	├── ExportSupervisor ("export-layer")
	│   └── ExportService (periodic Neo4j export, optional)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Startup order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Engine: graph store, strategies and response cache
 4. Snapshot store: file or BadgerDB, restored on start when configured
 5. Sample catalog and users (RECOMMEND_SAMPLE_DATA, RECOMMEND_SAMPLE_USERS)
 6. Neo4j exporter behind a circuit breaker (NEO4J_ENABLED)
 7. HTTP server and supervisor tree

# Configuration

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	HTTP_PORT=8080
	LOG_LEVEL=info                  # trace, debug, info, warn, error
	LOG_FORMAT=json                 # json or console

	RECOMMEND_HYBRID_COLLABORATIVE_WEIGHT=0.5
	RECOMMEND_HYBRID_CONTENT_WEIGHT=0.5

	SNAPSHOT_BACKEND=file           # none, file or badger
	SNAPSHOT_PATH=/data/cinegraph/users.json
	SNAPSHOT_INTERVAL=10m

	NEO4J_ENABLED=false
	NEO4J_URI=bolt://localhost:7687
	NEO4J_USER=neo4j
	NEO4J_PASSWORD=<password>

CONFIG_PATH points at a YAML file with the same keys.

# Signal Handling

On SIGINT or SIGTERM the server stops accepting connections, drains
in-flight requests for HTTP_SHUTDOWN_TIMEOUT, writes a final user snapshot
when SNAPSHOT_SAVE_ON_STOP is set and closes the snapshot store and the Neo4j
driver.

# Usage

	go run ./cmd/server

	curl localhost:8080/api/v1/recommendations/user1?method=hybrid&limit=5
*/
package main
