// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"testing"
)

func TestServerConfig_Addr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"", 9000, ":9000"},
		{"::1", 8080, "[::1]:8080"},
	}
	for _, tt := range tests {
		s := ServerConfig{Host: tt.host, Port: tt.port}
		if got := s.Addr(); got != tt.want {
			t.Errorf("Addr(%q, %d) = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestSnapshotConfig_Enabled(t *testing.T) {
	tests := []struct {
		backend string
		want    bool
	}{
		{"", false},
		{SnapshotNone, false},
		{SnapshotFile, true},
		{SnapshotBadger, true},
	}
	for _, tt := range tests {
		if got := (SnapshotConfig{Backend: tt.backend}).Enabled(); got != tt.want {
			t.Errorf("Enabled(%q) = %v, want %v", tt.backend, got, tt.want)
		}
	}
}

func TestValidateNeo4jURI(t *testing.T) {
	tests := []struct {
		uri     string
		wantErr bool
	}{
		{"bolt://localhost:7687", false},
		{"neo4j://cluster.example.com", false},
		{"neo4j+s://abc.databases.neo4j.io", false},
		{"bolt+ssc://10.0.0.1:7687", false},
		{"http://localhost:7474", true},
		{"bolt://", true},
		{"localhost:7687", true},
		{"://bad", true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			err := validateNeo4jURI(tt.uri)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateNeo4jURI(%q) error = %v, wantErr %v", tt.uri, err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative weights accepted", func(c *Config) {
			c.Recommend.CollaborativeWeight = -1
			c.Recommend.ContentWeight = 3
		}, false},
		{"no cors origins", func(c *Config) { c.Security.CORSOrigins = nil }, true},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"bad environment", func(c *Config) { c.Server.Environment = "qa" }, true},
		{"negative depth", func(c *Config) { c.Recommend.NeighborhoodDepth = -1 }, true},
		{"snapshot none ignores path", func(c *Config) {
			c.Snapshot.Backend = SnapshotNone
			c.Snapshot.Path = ""
		}, false},
		{"tiny body limit", func(c *Config) { c.Security.MaxBodyBytes = 10 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
