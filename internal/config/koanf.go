// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinegraph/config.yaml",
	"/etc/cinegraph/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			MaxBodyBytes:    1 << 20,
		},
		Recommend: RecommendConfig{
			CollaborativeWeight:   0.5,
			ContentWeight:         0.5,
			NeighborhoodDepth:     2,
			SimilarityFloor:       0,
			DefaultResults:        10,
			MaxResults:            100,
			SimilarUsersThreshold: 0.5,
			CacheEnabled:          true,
			CacheTTL:              5 * time.Minute,
			CacheMaxEntries:       1024,
			SampleData:            true,
			SampleUsers:           true,
		},
		Snapshot: SnapshotConfig{
			Backend:     SnapshotFile,
			Path:        "/data/cinegraph/users.json",
			Interval:    10 * time.Minute,
			LoadOnStart: true,
			SaveOnStop:  true,
		},
		Neo4j: Neo4jConfig{
			Enabled:        false,
			URI:            "bolt://localhost:7687",
			Username:       "neo4j",
			ExportInterval: 5 * time.Minute,
			Timeout:        10 * time.Second,
			MaxPoolSize:    10,
		},
	}
}

// Load reads defaults, the optional YAML file and environment variables,
// then validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns "" when no file exists, which is not an error.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths accept comma-separated strings from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to config keys.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"max_body_bytes":      "security.max_body_bytes",

	"recommend_hybrid_collaborative_weight": "recommend.collaborative_weight",
	"recommend_hybrid_content_weight":       "recommend.content_weight",
	"recommend_neighborhood_depth":          "recommend.neighborhood_depth",
	"recommend_similarity_floor":            "recommend.similarity_floor",
	"recommend_default_results":             "recommend.default_results",
	"recommend_max_results":                 "recommend.max_results",
	"recommend_similar_users_threshold":     "recommend.similar_users_threshold",
	"recommend_cache_enabled":               "recommend.cache_enabled",
	"recommend_cache_ttl":                   "recommend.cache_ttl",
	"recommend_cache_max_entries":           "recommend.cache_max_entries",
	"recommend_sample_data":                 "recommend.sample_data",
	"recommend_sample_users":                "recommend.sample_users",

	"snapshot_backend":       "snapshot.backend",
	"snapshot_path":          "snapshot.path",
	"snapshot_interval":      "snapshot.interval",
	"snapshot_load_on_start": "snapshot.load_on_start",
	"snapshot_save_on_stop":  "snapshot.save_on_stop",

	"neo4j_enabled":         "neo4j.enabled",
	"neo4j_uri":             "neo4j.uri",
	"neo4j_user":            "neo4j.username",
	"neo4j_password":        "neo4j.password",
	"neo4j_database":        "neo4j.database",
	"neo4j_export_interval": "neo4j.export_interval",
	"neo4j_timeout":         "neo4j.timeout",
	"neo4j_max_pool_size":   "neo4j.max_pool_size",
}

// envTransformFunc returns "" for unmapped keys so koanf skips them.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
