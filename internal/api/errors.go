// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/cinegraph/internal/graph"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/recommend"
	"github.com/tomtom215/cinegraph/internal/validation"
)

// errorStatus maps an engine error to its HTTP status and code.
func errorStatus(err error) (int, string) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, ErrCodeValidationFailed
	case errors.Is(err, graph.ErrNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, graph.ErrDuplicateID):
		return http.StatusConflict, ErrCodeConflict
	case errors.Is(err, graph.ErrInvalidArgument):
		return http.StatusBadRequest, ErrCodeInvalidArgument
	case errors.Is(err, recommend.ErrNoSnapshotStore):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// respondErr writes err with its mapped status. Internal errors are logged
// and their text withheld from the client.
func respondErr(w http.ResponseWriter, r *http.Request, err error) {
	rw := NewResponseWriter(w, r)

	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	status, code := errorStatus(err)
	if status == http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().Err(err).
			Str("path", r.URL.Path).
			Msg("API request failed")
		rw.InternalError("internal server error")
		return
	}
	rw.Error(status, code, err.Error())
}
