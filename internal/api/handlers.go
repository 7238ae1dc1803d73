// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinegraph/internal/recommend"
)

// ExportStatus reports the health of the graph export. graphexport.Guarded
// implements it.
type ExportStatus interface {
	Name() string
	State() gobreaker.State
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: health endpoint
//   - handlers_recommend.go: recommendations, weights and graph queries
//   - handlers_graph.go: node and edge creation
//   - handlers_snapshot.go: snapshot save and load
//   - handlers_genrerank.go: genre ranking
type Handler struct {
	engine          *recommend.Engine
	snapshotBackend string
	export          ExportStatus
	startTime       time.Time
}

// HandlerOption configures optional Handler dependencies.
type HandlerOption func(*Handler)

// WithSnapshotBackend names the snapshot backend reported by /health.
func WithSnapshotBackend(name string) HandlerOption {
	return func(h *Handler) { h.snapshotBackend = name }
}

// WithExportStatus adds the export circuit breaker to /health.
func WithExportStatus(s ExportStatus) HandlerOption {
	return func(h *Handler) { h.export = s }
}

// NewHandler creates the API handler around an engine.
//
//	handler := api.NewHandler(engine, api.WithSnapshotBackend("file"))
//	router := api.NewRouter(handler, api.NewChiMiddleware(nil))
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(engine *recommend.Engine, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:    engine,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
