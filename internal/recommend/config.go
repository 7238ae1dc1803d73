// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/cinegraph/internal/recommend/algorithms"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights are the hybrid blend coefficients. They are not normalized
	// and may be negative.
	Weights algorithms.Weights `json:"weights"`

	// Collaborative controls neighbor selection for collaborative filtering.
	Collaborative algorithms.CollaborativeConfig `json:"collaborative"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`

	// Cache contains response caching parameters.
	Cache CacheConfig `json:"cache"`
}

// LimitsConfig bounds request sizes.
type LimitsConfig struct {
	// DefaultResults is used by callers that do not pass a limit.
	// Default: 10.
	DefaultResults int `json:"default_results"`

	// MaxResults caps any requested limit.
	// Default: 100.
	MaxResults int `json:"max_results"`

	// SimilarUsersThreshold is the default FindSimilarUsers threshold.
	// Default: 0.5.
	SimilarUsersThreshold float64 `json:"similar_users_threshold"`
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	// Enabled controls whether recommendation responses are cached.
	// Default: true.
	Enabled bool `json:"enabled"`

	// TTL is the cache entry time-to-live.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// MaxEntries is the maximum number of cached responses.
	// Default: 1024.
	MaxEntries int `json:"max_entries"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights:       algorithms.DefaultWeights(),
		Collaborative: algorithms.DefaultCollaborativeConfig(),
		Limits: LimitsConfig{
			DefaultResults:        10,
			MaxResults:            100,
			SimilarUsersThreshold: 0.5,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        5 * time.Minute,
			MaxEntries: 1024,
		},
	}
}

// Validate checks the configuration for errors. Hybrid weights are accepted
// as given.
func (c *Config) Validate() error {
	if c.Collaborative.NeighborhoodDepth < 0 {
		return fmt.Errorf("collaborative.neighborhood_depth must be non-negative, got %d", c.Collaborative.NeighborhoodDepth)
	}
	if c.Collaborative.SimilarityFloor < 0 || c.Collaborative.SimilarityFloor > 1 {
		return fmt.Errorf("collaborative.similarity_floor must be in [0, 1], got %f", c.Collaborative.SimilarityFloor)
	}

	if c.Limits.DefaultResults < 1 {
		return fmt.Errorf("limits.default_results must be positive, got %d", c.Limits.DefaultResults)
	}
	if c.Limits.MaxResults < c.Limits.DefaultResults {
		return fmt.Errorf("limits.max_results must be >= limits.default_results, got %d < %d",
			c.Limits.MaxResults, c.Limits.DefaultResults)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	clone := *c
	return &clone
}
