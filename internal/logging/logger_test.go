// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// withGlobal swaps the global logger for one writing to a buffer.
func withGlobal(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	prevLogger, prevLevel := Logger(), zerolog.GlobalLevel()
	t.Cleanup(func() {
		SetLogger(prevLogger)
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	Init(Config{Level: level, Format: "json", Output: &buf})
	return &buf
}

func decode(t *testing.T, line []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(line, &m); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return m
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" || cfg.Caller {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestInit_JSON(t *testing.T) {
	buf := withGlobal(t, "debug")

	Info().Str("user_id", "u1").Msg("rating added")

	m := decode(t, buf.Bytes())
	if m["message"] != "rating added" || m["user_id"] != "u1" || m["level"] != "info" {
		t.Errorf("entry = %v", m)
	}
	if _, ok := m["time"]; !ok {
		t.Error("entry has no time field")
	}
}

func TestInit_LevelFilters(t *testing.T) {
	buf := withGlobal(t, "warn")

	Debug().Msg("hidden")
	Info().Msg("hidden")
	Warn().Msg("shown")
	Err(errors.New("boom")).Msg("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if m := decode(t, []byte(lines[1])); m["error"] != "boom" {
		t.Errorf("error field = %v, want boom", m["error"])
	}
}

func TestInit_Console(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})
	Info().Msg("hello console")

	if !strings.Contains(buf.String(), "hello console") {
		t.Errorf("output = %q", buf.String())
	}
	if strings.HasPrefix(buf.String(), "{") {
		t.Error("console output should not be JSON")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  zerolog.Level
		valid bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{" INFO ", zerolog.InfoLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"disabled", zerolog.Disabled, true},
		{"verbose", zerolog.InfoLevel, false},
		{"", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if got := ValidLevel(tt.in); got != tt.valid {
				t.Errorf("ValidLevel(%q) = %v, want %v", tt.in, got, tt.valid)
			}
		})
	}
}

func TestSetLevelString(t *testing.T) {
	prev := GetLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	SetLevelString("error")
	if GetLevel() != zerolog.ErrorLevel {
		t.Errorf("GetLevel() = %v, want error", GetLevel())
	}
}

func TestNewTestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)
	logger.Info().Msg("captured")

	if m := decode(t, buf.Bytes()); m["message"] != "captured" {
		t.Errorf("entry = %v", m)
	}
}
