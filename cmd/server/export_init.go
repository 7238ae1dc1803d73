// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package main

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/graphexport"
	"github.com/tomtom215/cinegraph/internal/recommend"
	"github.com/tomtom215/cinegraph/internal/supervisor"
	"github.com/tomtom215/cinegraph/internal/supervisor/services"
)

// ExportComponents holds the Neo4j exporter and its breaker.
type ExportComponents struct {
	neo4j   *graphexport.Neo4jExporter
	Guarded *graphexport.Guarded
}

// Close releases the Neo4j driver.
func (c *ExportComponents) Close(ctx context.Context) error {
	return c.neo4j.Close(ctx)
}

// initExport connects to Neo4j and schedules periodic exports. It returns
// nil when export is disabled or the database is unreachable; the API keeps
// serving from the in-memory graph either way.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initExport(ctx context.Context, cfg *config.Config, engine *recommend.Engine, logger zerolog.Logger, tree *supervisor.SupervisorTree) *ExportComponents {
	if !cfg.Neo4j.Enabled {
		logger.Info().Msg("graph export disabled (NEO4J_ENABLED=false)")
		return nil
	}

	exporter, err := graphexport.NewNeo4jExporter(ctx, graphexport.Neo4jOptions{
		URI:         cfg.Neo4j.URI,
		Username:    cfg.Neo4j.Username,
		Password:    cfg.Neo4j.Password,
		Database:    cfg.Neo4j.Database,
		Timeout:     cfg.Neo4j.Timeout,
		MaxPoolSize: cfg.Neo4j.MaxPoolSize,
	}, logger)
	if err != nil {
		logger.Error().Err(err).Str("uri", cfg.Neo4j.URI).Msg("graph export unavailable")
		return nil
	}

	guarded := graphexport.NewGuarded(exporter, graphexport.DefaultBreakerSettings())
	tree.AddExportService(services.NewExportService(engine, guarded, services.ExportServiceConfig{
		Interval:        cfg.Neo4j.ExportInterval,
		ExportOnStartup: true,
	}, logger))
	logger.Info().
		Str("uri", cfg.Neo4j.URI).
		Dur("interval", cfg.Neo4j.ExportInterval).
		Msg("export service added to supervisor tree")

	return &ExportComponents{neo4j: exporter, Guarded: guarded}
}
