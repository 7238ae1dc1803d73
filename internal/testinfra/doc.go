// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package testinfra starts real backing services in Docker for integration
// tests, using testcontainers-go.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/graphexport/...
//
// # Neo4j
//
//	neo, err := testinfra.NewNeo4jContainer(ctx)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	defer testinfra.CleanupContainer(t, neo)
//
//	exp, err := graphexport.NewNeo4jExporter(ctx, graphexport.Neo4jOptions{
//	    URI:      neo.BoltURI,
//	    Username: neo.Username,
//	    Password: neo.Password,
//	}, zerolog.Nop())
//
// Tests call SkipIfNoDocker first so they pass on machines without Docker.
package testinfra
