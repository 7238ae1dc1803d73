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
)

// UserDataSaver persists the user part of the graph.
// Satisfied by *recommend.Engine.
type UserDataSaver interface {
	SaveUserData(ctx context.Context) error
}

// SnapshotServiceConfig controls when snapshots are written.
type SnapshotServiceConfig struct {
	// Interval between periodic saves. Zero disables periodic saving.
	Interval time.Duration

	// SaveOnStop writes a final snapshot when the service is stopped.
	SaveOnStop bool

	// Timeout bounds a single save. Default: 1m
	Timeout time.Duration
}

// SnapshotService saves user snapshots on a schedule and on shutdown.
// A failed save is logged and retried on the next tick; it never
// restarts the service.
type SnapshotService struct {
	saver  UserDataSaver
	config SnapshotServiceConfig
	logger zerolog.Logger
	name   string
}

// NewSnapshotService creates a snapshot service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSnapshotService(saver UserDataSaver, cfg SnapshotServiceConfig, logger zerolog.Logger) *SnapshotService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}
	return &SnapshotService{
		saver:  saver,
		config: cfg,
		logger: logger.With().Str("service", "snapshot").Logger(),
		name:   "snapshot-service",
	}
}

// Serve implements suture.Service.
func (s *SnapshotService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.config.Interval).
		Bool("save_on_stop", s.config.SaveOnStop).
		Msg("snapshot service starting")

	// A nil channel never fires, which leaves only shutdown saving.
	var tick <-chan time.Time
	if s.config.Interval > 0 {
		ticker := time.NewTicker(s.config.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			if s.config.SaveOnStop {
				// The parent context is gone; the final save gets its own.
				stopCtx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
				s.save(stopCtx, "shutdown")
				cancel()
			}
			s.logger.Info().Msg("snapshot service stopped")
			return ctx.Err()

		case <-tick:
			saveCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
			s.save(saveCtx, "scheduled")
			cancel()
		}
	}
}

func (s *SnapshotService) save(ctx context.Context, reason string) {
	if err := s.saver.SaveUserData(logging.ContextWithLogger(ctx, s.logger)); err != nil {
		s.logger.Warn().Err(err).Str("reason", reason).Msg("snapshot save failed")
	}
}

// String returns the service name for logging.
func (s *SnapshotService) String() string {
	return s.name
}
