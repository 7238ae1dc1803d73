// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Loading order (koanf v2):
//  1. Defaults from defaultConfig
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/cinegraph/config.yaml)
//  3. Environment variables, mapped explicitly in envTransformFunc
//
// Config is immutable after Load and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Snapshot  SnapshotConfig  `koanf:"snapshot"`
	Neo4j     Neo4jConfig     `koanf:"neo4j"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production"`
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is trace, debug, info, warn, error, fatal, panic or disabled.
	Level string `koanf:"level"`

	// Format is json (production) or console (development).
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller adds file:line to every entry.
	Caller bool `koanf:"caller"`
}

// SecurityConfig holds the HTTP protections in front of the API.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins" validate:"min=1"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	MaxBodyBytes      int64         `koanf:"max_body_bytes" validate:"min=1024"`
}

// RecommendConfig holds engine tuning.
type RecommendConfig struct {
	// CollaborativeWeight and ContentWeight are the hybrid blend
	// coefficients. Any values are accepted, including negative ones.
	CollaborativeWeight float64 `koanf:"collaborative_weight"`
	ContentWeight       float64 `koanf:"content_weight"`

	// NeighborhoodDepth bounds the BFS used to find collaborative
	// neighbors. 0 means unbounded.
	NeighborhoodDepth int `koanf:"neighborhood_depth" validate:"gte=0"`

	// SimilarityFloor drops neighbors at or below this similarity.
	SimilarityFloor float64 `koanf:"similarity_floor" validate:"gte=0,lte=1"`

	DefaultResults        int     `koanf:"default_results" validate:"min=1"`
	MaxResults            int     `koanf:"max_results" validate:"gtefield=DefaultResults"`
	SimilarUsersThreshold float64 `koanf:"similar_users_threshold" validate:"gte=0,lte=1"`

	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl" validate:"gte=0"`
	CacheMaxEntries int           `koanf:"cache_max_entries" validate:"gte=0"`

	// SampleData seeds the demo catalog at startup. SampleUsers also adds
	// the demo users unless a snapshot is loaded.
	SampleData  bool `koanf:"sample_data"`
	SampleUsers bool `koanf:"sample_users"`
}

// Snapshot backends.
const (
	SnapshotNone   = "none"
	SnapshotFile   = "file"
	SnapshotBadger = "badger"
)

// SnapshotConfig controls user-data persistence.
type SnapshotConfig struct {
	Backend string `koanf:"backend" validate:"oneof=none file badger"`

	// Path is the JSON file for the file backend and the database
	// directory for badger.
	Path string `koanf:"path"`

	// Interval between periodic saves. 0 disables them.
	Interval time.Duration `koanf:"interval" validate:"gte=0"`

	LoadOnStart bool `koanf:"load_on_start"`
	SaveOnStop  bool `koanf:"save_on_stop"`
}

// Enabled reports whether a backend is configured.
func (s SnapshotConfig) Enabled() bool {
	return s.Backend != "" && s.Backend != SnapshotNone
}

// Neo4jConfig controls the optional graph export.
type Neo4jConfig struct {
	Enabled        bool          `koanf:"enabled"`
	URI            string        `koanf:"uri"`
	Username       string        `koanf:"username"`
	Password       string        `koanf:"password"`
	Database       string        `koanf:"database"`
	ExportInterval time.Duration `koanf:"export_interval" validate:"gt=0"`
	Timeout        time.Duration `koanf:"timeout" validate:"gt=0"`
	MaxPoolSize    int           `koanf:"max_pool_size" validate:"min=1"`
}
