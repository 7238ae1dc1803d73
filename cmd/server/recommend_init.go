// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinegraph/internal/config"
	"github.com/tomtom215/cinegraph/internal/recommend"
	"github.com/tomtom215/cinegraph/internal/recommend/algorithms"
	"github.com/tomtom215/cinegraph/internal/snapshot"
	"github.com/tomtom215/cinegraph/internal/supervisor"
	"github.com/tomtom215/cinegraph/internal/supervisor/services"
)

// RecommendComponents holds the engine and its optional snapshot store.
type RecommendComponents struct {
	Engine   *recommend.Engine
	Snapshot snapshot.Store
}

// Close releases the snapshot store, if any.
func (c *RecommendComponents) Close() error {
	if c.Snapshot == nil {
		return nil
	}
	return c.Snapshot.Close()
}

// initRecommend builds the engine, seeds the demo data and restores the
// last user snapshot.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(ctx context.Context, cfg *config.Config, logger zerolog.Logger, tree *supervisor.SupervisorTree) (*RecommendComponents, error) {
	engineCfg := buildEngineConfig(cfg)
	logger.Info().
		Float64("collaborative_weight", engineCfg.Weights.Collaborative).
		Float64("content_weight", engineCfg.Weights.ContentBased).
		Int("neighborhood_depth", engineCfg.Collaborative.NeighborhoodDepth).
		Bool("cache_enabled", engineCfg.Cache.Enabled).
		Msg("initializing recommendation engine")

	engine, err := recommend.NewEngine(engineCfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	rc := &RecommendComponents{Engine: engine}

	// Loading a snapshot replaces the whole graph, so the catalog is
	// seeded afterwards and restored ratings reattach to it.
	restored := false
	if cfg.Snapshot.Enabled() {
		store, err := snapshot.Open(snapshot.Options{
			Backend: cfg.Snapshot.Backend,
			Path:    cfg.Snapshot.Path,
		})
		if err != nil {
			return nil, fmt.Errorf("open snapshot store: %w", err)
		}
		rc.Snapshot = store
		engine.SetSnapshotStore(store)

		if cfg.Snapshot.LoadOnStart {
			if err := engine.LoadUserData(ctx); err != nil {
				logger.Warn().Err(err).Msg("user snapshot not restored")
			} else {
				restored = engine.Stats().Users > 0
			}
		}
	} else {
		logger.Info().Msg("user snapshots disabled (SNAPSHOT_BACKEND=none)")
	}

	if cfg.Recommend.SampleData {
		if err := recommend.SeedSampleCatalog(engine); err != nil {
			_ = rc.Close()
			return nil, err
		}
		logger.Info().Msg("sample catalog seeded")
	}
	if !restored {
		if err := seedUsers(cfg, engine, logger); err != nil {
			_ = rc.Close()
			return nil, err
		}
	}

	if rc.Snapshot != nil {
		tree.AddDataService(services.NewSnapshotService(engine, services.SnapshotServiceConfig{
			Interval:   cfg.Snapshot.Interval,
			SaveOnStop: cfg.Snapshot.SaveOnStop,
		}, logger))
		logger.Info().
			Str("backend", rc.Snapshot.Name()).
			Str("path", cfg.Snapshot.Path).
			Dur("interval", cfg.Snapshot.Interval).
			Bool("restored", restored).
			Msg("snapshot service added to supervisor tree")
	}

	return rc, nil
}

// seedUsers adds the demo users when both demo switches are on.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func seedUsers(cfg *config.Config, engine *recommend.Engine, logger zerolog.Logger) error {
	if !cfg.Recommend.SampleData || !cfg.Recommend.SampleUsers {
		return nil
	}
	if err := recommend.SeedSampleUsers(engine); err != nil {
		return err
	}
	logger.Info().Msg("sample users seeded")
	return nil
}

// buildEngineConfig creates the engine configuration from app config.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	return &recommend.Config{
		Weights: algorithms.Weights{
			Collaborative: cfg.Recommend.CollaborativeWeight,
			ContentBased:  cfg.Recommend.ContentWeight,
		},
		Collaborative: algorithms.CollaborativeConfig{
			NeighborhoodDepth: cfg.Recommend.NeighborhoodDepth,
			SimilarityFloor:   cfg.Recommend.SimilarityFloor,
		},
		Limits: recommend.LimitsConfig{
			DefaultResults:        cfg.Recommend.DefaultResults,
			MaxResults:            cfg.Recommend.MaxResults,
			SimilarUsersThreshold: cfg.Recommend.SimilarUsersThreshold,
		},
		Cache: recommend.CacheConfig{
			Enabled:    cfg.Recommend.CacheEnabled,
			TTL:        cfg.Recommend.CacheTTL,
			MaxEntries: cfg.Recommend.CacheMaxEntries,
		},
	}
}
