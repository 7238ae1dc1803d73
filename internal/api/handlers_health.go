// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinegraph/internal/graph"
)

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	Status    string        `json:"status"`
	Uptime    float64       `json:"uptime_seconds"`
	Graph     graph.Stats   `json:"graph"`
	Snapshot  string        `json:"snapshot_backend,omitempty"`
	Export    *ExportHealth `json:"export,omitempty"`
	CheckedAt time.Time     `json:"checked_at"`
}

// ExportHealth reports the export target and its breaker state.
type ExportHealth struct {
	Target       string `json:"target"`
	BreakerState string `json:"breaker_state"`
}

// Health handles GET /api/v1/health.
//
// The service is "healthy" while it can answer; an open export breaker only
// degrades it, since recommendations do not depend on the export.
//
// @Summary Get service health
// @Description Returns uptime, graph size, the snapshot backend and the export breaker state. An open breaker reports "degraded".
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Health status"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "healthy",
		Uptime:    time.Since(h.startTime).Seconds(),
		Graph:     h.engine.Stats(),
		Snapshot:  h.snapshotBackend,
		CheckedAt: time.Now().UTC(),
	}

	if h.export != nil {
		state := h.export.State()
		status.Export = &ExportHealth{
			Target:       h.export.Name(),
			BreakerState: state.String(),
		}
		if state == gobreaker.StateOpen {
			status.Status = "degraded"
		}
	}

	NewResponseWriter(w, r).Success(status)
}
