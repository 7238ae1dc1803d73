// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"
)

// SaveSnapshot handles POST /api/v1/snapshot/save.
//
// @Summary Save a user snapshot
// @Tags Snapshot
// @Success 204 "Snapshot written"
// @Failure 503 {object} APIResponse "No snapshot backend configured"
// @Failure 500 {object} APIResponse "Snapshot write failed"
// @Router /api/v1/snapshot/save [post]
func (h *Handler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.SaveUserData(r.Context()); err != nil {
		respondErr(w, r, err)
		return
	}
	NewResponseWriter(w, r).NoContent()
}

// LoadSnapshot handles POST /api/v1/snapshot/load. The graph is replaced by
// the snapshot's users; movies and genres must be added again afterwards.
//
// @Summary Load a user snapshot
// @Tags Snapshot
// @Success 204 "Snapshot restored"
// @Failure 503 {object} APIResponse "No snapshot backend configured"
// @Failure 500 {object} APIResponse "Snapshot read failed"
// @Router /api/v1/snapshot/load [post]
func (h *Handler) LoadSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.LoadUserData(r.Context()); err != nil {
		respondErr(w, r, err)
		return
	}
	NewResponseWriter(w, r).NoContent()
}
