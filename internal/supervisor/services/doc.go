// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package services provides suture.Service wrappers for Cinegraph components.

Each wrapper implements suture's context-aware Serve pattern and
fmt.Stringer for event logs:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Configurable shutdown timeout for draining connections

Snapshots (SnapshotService):
  - Saves user data through the engine's snapshot store on an interval
  - Writes a final snapshot on shutdown when SaveOnStop is set

Graph Export (ExportService):
  - Periodically mirrors the graph into Neo4j
  - Relies on the circuit breaker in graphexport.Guarded to back off

Interval-driven services log failures and keep running; only the HTTP server
returns errors that make the supervisor restart it.
*/
package services
