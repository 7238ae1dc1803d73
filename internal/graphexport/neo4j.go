// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graphexport

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
	"github.com/tomtom215/cinegraph/internal/recommend"
)

// TargetNeo4j labels Neo4j exports in logs and metrics.
const TargetNeo4j = "neo4j"

// Neo4jOptions configures the Neo4j connection.
type Neo4jOptions struct {
	URI         string
	Username    string
	Password    string
	Database    string
	Timeout     time.Duration
	MaxPoolSize int
}

// Neo4jExporter mirrors the graph into Neo4j as (:User), (:Movie) and
// (:Genre) nodes joined by RATED, PREFERS and BELONGS_TO relationships.
type Neo4jExporter struct {
	driver   neo4j.DriverWithContext
	database string
	logger   zerolog.Logger
}

// NewNeo4jExporter connects to Neo4j and verifies connectivity.
func NewNeo4jExporter(ctx context.Context, opts Neo4jOptions, logger zerolog.Logger) (*Neo4jExporter, error) {
	if opts.URI == "" {
		return nil, fmt.Errorf("neo4j: uri is required")
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	auth := neo4j.BasicAuth(opts.Username, opts.Password, "")
	driver, err := neo4j.NewDriverWithContext(opts.URI, auth, func(cfg *neo4j.Config) {
		if opts.MaxPoolSize > 0 {
			cfg.MaxConnectionPoolSize = opts.MaxPoolSize
		}
		cfg.SocketConnectTimeout = timeout
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j: init driver: %w", err)
	}

	verifyCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := driver.VerifyConnectivity(verifyCtx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4j: verify connectivity: %w", err)
	}

	return &Neo4jExporter{
		driver:   driver,
		database: opts.Database,
		logger:   logger.With().Str("component", "graphexport").Str("target", TargetNeo4j).Logger(),
	}, nil
}

// Name implements Exporter.
func (x *Neo4jExporter) Name() string { return TargetNeo4j }

// Close releases the driver.
func (x *Neo4jExporter) Close(ctx context.Context) error {
	return x.driver.Close(ctx)
}

var schemaStatements = []string{
	`CREATE CONSTRAINT cinegraph_user_id IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE`,
	`CREATE CONSTRAINT cinegraph_movie_id IF NOT EXISTS FOR (m:Movie) REQUIRE m.id IS UNIQUE`,
	`CREATE CONSTRAINT cinegraph_genre_id IF NOT EXISTS FOR (g:Genre) REQUIRE g.id IS UNIQUE`,
}

// upserts run in order: nodes first so relationships can MATCH them.
var upserts = []struct {
	name  string
	rows  func(Rows) []map[string]any
	query string
}{
	{"genres", func(r Rows) []map[string]any { return r.Genres }, `
UNWIND $rows AS r
MERGE (g:Genre {id: r.id})
SET g.name = r.name, g.synced_at = $synced_at`},
	{"movies", func(r Rows) []map[string]any { return r.Movies }, `
UNWIND $rows AS r
MERGE (m:Movie {id: r.id})
SET m.title = r.title, m.genre = r.genre, m.rating = r.rating,
    m.year = r.year, m.synced_at = $synced_at`},
	{"users", func(r Rows) []map[string]any { return r.Users }, `
UNWIND $rows AS r
MERGE (u:User {id: r.id})
SET u.name = r.name, u.synced_at = $synced_at`},
	{"rated", func(r Rows) []map[string]any { return r.Rated }, `
UNWIND $rows AS r
MATCH (u:User {id: r.user_id})
MATCH (m:Movie {id: r.movie_id})
MERGE (u)-[e:RATED]->(m)
SET e.rating = r.rating, e.synced_at = $synced_at`},
	{"prefers", func(r Rows) []map[string]any { return r.Prefers }, `
UNWIND $rows AS r
MATCH (u:User {id: r.user_id})
MATCH (g:Genre {id: r.genre_id})
MERGE (u)-[e:PREFERS]->(g)
SET e.count = r.count, e.synced_at = $synced_at`},
	{"belongs_to", func(r Rows) []map[string]any { return r.BelongsTo }, `
UNWIND $rows AS r
MATCH (m:Movie {id: r.movie_id})
MATCH (g:Genre {id: r.genre_id})
MERGE (m)-[e:BELONGS_TO]->(g)
SET e.synced_at = $synced_at`},
}

// Anything not stamped by the current run no longer exists locally.
var pruneStatements = []string{
	`MATCH (:User)-[e:RATED|PREFERS]->() WHERE e.synced_at <> $synced_at DELETE e`,
	`MATCH (:Movie)-[e:BELONGS_TO]->(:Genre) WHERE e.synced_at <> $synced_at DELETE e`,
	`MATCH (n) WHERE (n:User OR n:Movie OR n:Genre) AND n.synced_at <> $synced_at DETACH DELETE n`,
}

// Export replaces the Neo4j copy of the graph with dump in one write
// transaction. Schema constraints are created best-effort beforehand.
func (x *Neo4jExporter) Export(ctx context.Context, dump recommend.GraphDump) error {
	start := time.Now()
	rows := BuildRows(dump)
	syncedAt := start.UTC().Format(time.RFC3339Nano)

	session := x.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: x.database,
	})
	defer session.Close(ctx)

	for _, stmt := range schemaStatements {
		res, err := session.Run(ctx, stmt, nil)
		if err == nil {
			_, err = res.Consume(ctx)
		}
		if err != nil {
			x.logger.Warn().Err(err).Msg("neo4j schema init failed (continuing)")
		}
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		for _, u := range upserts {
			batch := u.rows(rows)
			if len(batch) == 0 {
				continue
			}
			if err := run(ctx, tx, u.query, map[string]any{"rows": batch, "synced_at": syncedAt}); err != nil {
				return nil, fmt.Errorf("upsert %s: %w", u.name, err)
			}
		}
		for _, stmt := range pruneStatements {
			if err := run(ctx, tx, stmt, map[string]any{"synced_at": syncedAt}); err != nil {
				return nil, fmt.Errorf("prune: %w", err)
			}
		}
		return nil, nil
	})

	metrics.RecordExport(TargetNeo4j, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("neo4j export: %w", err)
	}

	logging.Ctx(ctx).Info().
		Str("component", "graphexport").
		Int("users", len(rows.Users)).
		Int("movies", len(rows.Movies)).
		Int("genres", len(rows.Genres)).
		Int("records", rows.Len()).
		Dur("duration", time.Since(start)).
		Msg("graph exported to neo4j")
	return nil
}

func run(ctx context.Context, tx neo4j.ManagedTransaction, query string, params map[string]any) error {
	res, err := tx.Run(ctx, query, params)
	if err != nil {
		return err
	}
	_, err = res.Consume(ctx)
	return err
}
