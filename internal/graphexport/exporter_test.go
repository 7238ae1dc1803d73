// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graphexport

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinegraph/internal/recommend"
)

type stubExporter struct {
	calls atomic.Int32
	err   error
}

func (s *stubExporter) Name() string { return "stub" }

func (s *stubExporter) Export(context.Context, recommend.GraphDump) error {
	s.calls.Add(1)
	return s.err
}

func TestGuarded_PassesThrough(t *testing.T) {
	stub := &stubExporter{}
	g := NewGuarded(stub, DefaultBreakerSettings())

	if err := g.Export(context.Background(), recommend.GraphDump{}); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if stub.calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", stub.calls.Load())
	}
	if g.Name() != "stub" {
		t.Errorf("Name() = %q, want stub", g.Name())
	}
}

func TestGuarded_OpensAfterConsecutiveFailures(t *testing.T) {
	boom := errors.New("connection refused")
	stub := &stubExporter{err: boom}
	g := NewGuarded(stub, BreakerSettings{
		MaxRequests:         1,
		Timeout:             time.Hour,
		ConsecutiveFailures: 2,
	})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := g.Export(ctx, recommend.GraphDump{}); !errors.Is(err, boom) {
			t.Fatalf("Export() #%d error = %v, want %v", i, err, boom)
		}
	}
	if g.State() != gobreaker.StateOpen {
		t.Fatalf("State() = %v, want open", g.State())
	}

	err := g.Export(ctx, recommend.GraphDump{})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Export() while open error = %v, want ErrOpenState", err)
	}
	if stub.calls.Load() != 2 {
		t.Errorf("calls = %d, want 2 (open breaker must not call through)", stub.calls.Load())
	}
}

func TestNewNeo4jExporter_RequiresURI(t *testing.T) {
	if _, err := NewNeo4jExporter(context.Background(), Neo4jOptions{}, zerolog.Nop()); err == nil {
		t.Error("NewNeo4jExporter() error = nil, want error")
	}
}
