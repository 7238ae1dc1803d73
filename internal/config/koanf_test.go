// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolate points the loader at an empty directory so a stray config.yaml in
// the working tree cannot affect the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv(ConfigPathEnvVar, "")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
	if cfg.Recommend.CollaborativeWeight != 0.5 || cfg.Recommend.ContentWeight != 0.5 {
		t.Errorf("Recommend weights = %v/%v, want 0.5/0.5",
			cfg.Recommend.CollaborativeWeight, cfg.Recommend.ContentWeight)
	}
	if cfg.Recommend.MaxResults != 100 {
		t.Errorf("Recommend.MaxResults = %d, want 100", cfg.Recommend.MaxResults)
	}
	if cfg.Snapshot.Backend != SnapshotFile {
		t.Errorf("Snapshot.Backend = %q, want %q", cfg.Snapshot.Backend, SnapshotFile)
	}
	if cfg.Neo4j.Enabled {
		t.Error("Neo4j.Enabled should be false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RECOMMEND_HYBRID_COLLABORATIVE_WEIGHT", "recommend.collaborative_weight"},
		{"RECOMMEND_HYBRID_CONTENT_WEIGHT", "recommend.content_weight"},
		{"SNAPSHOT_BACKEND", "snapshot.backend"},
		{"NEO4J_USER", "neo4j.username"},
		{"neo4j_uri", "neo4j.uri"},
		{"PATH", ""},
		{"HOME", ""},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolate(t)

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}

	writeFile(t, filepath.Join(dir, "config.yaml"), "server:\n  port: 9000\n")
	if got := findConfigFile(); got != "config.yaml" {
		t.Errorf("findConfigFile() = %q, want config.yaml", got)
	}

	custom := filepath.Join(dir, "custom.yaml")
	writeFile(t, custom, "server:\n  port: 9001\n")
	t.Setenv(ConfigPathEnvVar, custom)
	if got := findConfigFile(); got != custom {
		t.Errorf("findConfigFile() = %q, want %q", got, custom)
	}

	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	if got := findConfigFile(); got != "config.yaml" {
		t.Errorf("findConfigFile() with missing CONFIG_PATH = %q, want fallback config.yaml", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, defaultConfig()) {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_EnvVars(t *testing.T) {
	isolate(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("RECOMMEND_HYBRID_COLLABORATIVE_WEIGHT", "0.8")
	t.Setenv("RECOMMEND_HYBRID_CONTENT_WEIGHT", "-0.2")
	t.Setenv("RECOMMEND_CACHE_TTL", "90s")
	t.Setenv("SNAPSHOT_BACKEND", "badger")
	t.Setenv("SNAPSHOT_PATH", "/tmp/cinegraph-badger")
	t.Setenv("DISABLE_RATE_LIMIT", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	wantOrigins := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, wantOrigins) {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("Security.RateLimitDisabled = false, want true")
	}
	if cfg.Recommend.CollaborativeWeight != 0.8 {
		t.Errorf("CollaborativeWeight = %v, want 0.8", cfg.Recommend.CollaborativeWeight)
	}
	if cfg.Recommend.ContentWeight != -0.2 {
		t.Errorf("ContentWeight = %v, want -0.2", cfg.Recommend.ContentWeight)
	}
	if cfg.Recommend.CacheTTL != 90*time.Second {
		t.Errorf("CacheTTL = %v, want 90s", cfg.Recommend.CacheTTL)
	}
	if cfg.Snapshot.Backend != SnapshotBadger || cfg.Snapshot.Path != "/tmp/cinegraph-badger" {
		t.Errorf("Snapshot = %+v, want badger at /tmp/cinegraph-badger", cfg.Snapshot)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cinegraph.yaml")
	writeFile(t, path, `
server:
  port: 7070
recommend:
  collaborative_weight: 0.7
  content_weight: 0.3
  max_results: 25
snapshot:
  backend: none
neo4j:
  enabled: true
  uri: neo4j+s://graph.example.com:7687
  password: secret
  export_interval: 1m
`)
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Recommend.CollaborativeWeight != 0.7 || cfg.Recommend.ContentWeight != 0.3 {
		t.Errorf("weights = %v/%v, want 0.7/0.3",
			cfg.Recommend.CollaborativeWeight, cfg.Recommend.ContentWeight)
	}
	if cfg.Recommend.MaxResults != 25 {
		t.Errorf("MaxResults = %d, want 25", cfg.Recommend.MaxResults)
	}
	if cfg.Snapshot.Enabled() {
		t.Error("Snapshot.Enabled() = true, want false")
	}
	if !cfg.Neo4j.Enabled || cfg.Neo4j.ExportInterval != time.Minute {
		t.Errorf("Neo4j = %+v, want enabled with 1m interval", cfg.Neo4j)
	}
	// Unset keys keep their defaults.
	if cfg.Neo4j.Username != "neo4j" {
		t.Errorf("Neo4j.Username = %q, want neo4j", cfg.Neo4j.Username)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cinegraph.yaml")
	writeFile(t, path, "server:\n  port: 7070\nlogging:\n  level: warn\n")
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "6060")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 6060 {
		t.Errorf("Server.Port = %d, want 6060 from env", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn from file", cfg.Logging.Level)
	}
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		errMsg string
	}{
		{
			name:   "port out of range",
			env:    map[string]string{"HTTP_PORT": "70000"},
			errMsg: "server.port",
		},
		{
			name:   "bad log level",
			env:    map[string]string{"LOG_LEVEL": "loud"},
			errMsg: "LOG_LEVEL",
		},
		{
			name:   "unknown snapshot backend",
			env:    map[string]string{"SNAPSHOT_BACKEND": "s3"},
			errMsg: "snapshot.backend",
		},
		{
			name:   "snapshot without path",
			env:    map[string]string{"SNAPSHOT_PATH": ""},
			errMsg: "SNAPSHOT_PATH",
		},
		{
			name:   "max below default results",
			env:    map[string]string{"RECOMMEND_MAX_RESULTS": "5"},
			errMsg: "recommend.max_results",
		},
		{
			name:   "similarity floor above one",
			env:    map[string]string{"RECOMMEND_SIMILARITY_FLOOR": "1.5"},
			errMsg: "recommend.similarity_floor",
		},
		{
			name:   "neo4j bad scheme",
			env:    map[string]string{"NEO4J_ENABLED": "true", "NEO4J_URI": "http://localhost:7474"},
			errMsg: "NEO4J_URI",
		},
		{
			name:   "neo4j without user",
			env:    map[string]string{"NEO4J_ENABLED": "true", "NEO4J_USER": ""},
			errMsg: "NEO4J_USER",
		},
		{
			name: "neo4j valid",
			env:  map[string]string{"NEO4J_ENABLED": "true", "NEO4J_URI": "bolt://db:7687"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("Load() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Load() expected error containing %q, got nil", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Load() error = %v, want it to contain %q", err, tt.errMsg)
			}
		})
	}
}
