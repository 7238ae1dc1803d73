// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/recommend"
)

// GraphSource produces a consistent copy of the graph.
// Satisfied by *recommend.Engine.
type GraphSource interface {
	Dump() recommend.GraphDump
}

// GraphExporter writes a graph copy to an external database.
// Satisfied by *graphexport.Guarded.
type GraphExporter interface {
	Name() string
	Export(ctx context.Context, dump recommend.GraphDump) error
}

// ExportServiceConfig controls the export schedule.
type ExportServiceConfig struct {
	// Interval between exports. Default: 5m
	Interval time.Duration

	// ExportOnStartup runs one export as soon as the service starts.
	ExportOnStartup bool

	// Timeout bounds a single export. Default: 1m
	Timeout time.Duration
}

// ExportService mirrors the graph into an external database on a schedule.
// Export failures are logged; the circuit breaker in the exporter decides
// whether the next attempt reaches the database at all.
type ExportService struct {
	source   GraphSource
	exporter GraphExporter
	config   ExportServiceConfig
	logger   zerolog.Logger
	name     string
}

// NewExportService creates an export service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewExportService(source GraphSource, exporter GraphExporter, cfg ExportServiceConfig, logger zerolog.Logger) *ExportService {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}
	return &ExportService{
		source:   source,
		exporter: exporter,
		config:   cfg,
		logger:   logger.With().Str("service", "export").Str("target", exporter.Name()).Logger(),
		name:     "export-" + exporter.Name(),
	}
}

// Serve implements suture.Service.
func (s *ExportService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Bool("export_on_startup", s.config.ExportOnStartup).
		Msg("export service starting")

	if s.config.ExportOnStartup {
		s.export(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("export service stopped")
			return ctx.Err()

		case <-ticker.C:
			s.export(ctx)
		}
	}
}

func (s *ExportService) export(ctx context.Context) {
	exportCtx, cancel := context.WithTimeout(logging.ContextWithLogger(ctx, s.logger), s.config.Timeout)
	defer cancel()

	start := time.Now()
	dump := s.source.Dump()
	if err := s.exporter.Export(exportCtx, dump); err != nil {
		s.logger.Warn().Err(err).Msg("graph export failed")
		return
	}
	s.logger.Debug().
		Int("users", len(dump.Users)).
		Int("movies", len(dump.Movies)).
		Dur("duration", time.Since(start)).
		Msg("graph export complete")
}

// String returns the service name for logging.
func (s *ExportService) String() string {
	return s.name
}
