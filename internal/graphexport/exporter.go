// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package graphexport mirrors the in-memory recommendation graph into an
// external graph database for ad-hoc querying and visualization. The
// in-memory store stays authoritative; exports are one-way.
package graphexport

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
	"github.com/tomtom215/cinegraph/internal/recommend"
)

// Exporter writes a full graph dump to an external system.
type Exporter interface {
	Name() string
	Export(ctx context.Context, dump recommend.GraphDump) error
}

// BreakerSettings tunes the circuit breaker around an exporter.
type BreakerSettings struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval after which closed-state counts reset.
	Interval time.Duration
	// Timeout before an open breaker turns half-open.
	Timeout time.Duration
	// ConsecutiveFailures that trip the breaker.
	ConsecutiveFailures uint32
}

// DefaultBreakerSettings suits a periodic export.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:         1,
		Interval:            5 * time.Minute,
		Timeout:             time.Minute,
		ConsecutiveFailures: 3,
	}
}

// Guarded wraps an Exporter with a circuit breaker so an unreachable
// database is not hammered on every export tick.
type Guarded struct {
	next Exporter
	cb   *gobreaker.CircuitBreaker[struct{}]
	name string
}

// NewGuarded wraps next.
func NewGuarded(next Exporter, settings BreakerSettings) *Guarded {
	name := "export-" + next.Name()
	trip := settings.ConsecutiveFailures
	if trip == 0 {
		trip = DefaultBreakerSettings().ConsecutiveFailures
	}

	metrics.SetCircuitBreakerState(name, stateValue(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= trip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state transition")
			metrics.SetCircuitBreakerState(name, stateValue(to))
		},
	})

	return &Guarded{next: next, cb: cb, name: name}
}

// Name implements Exporter.
func (g *Guarded) Name() string { return g.next.Name() }

// State reports the breaker state.
func (g *Guarded) State() gobreaker.State { return g.cb.State() }

// Export runs the wrapped export unless the breaker is open. A rejected call
// returns gobreaker.ErrOpenState or gobreaker.ErrTooManyRequests.
func (g *Guarded) Export(ctx context.Context, dump recommend.GraphDump) error {
	_, err := g.cb.Execute(func() (struct{}, error) {
		return struct{}{}, g.next.Export(ctx, dump)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.RecordExport(g.next.Name(), 0, err)
		logging.Ctx(ctx).Warn().Err(err).Str("breaker", g.name).Msg("export rejected")
	}
	return err
}

func stateValue(s gobreaker.State) int {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
