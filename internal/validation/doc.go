// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package validation wraps go-playground/validator v10 with a shared
// instance, a custom entityid rule and messages keyed by the names callers
// use (json tags for request bodies, koanf tags for configuration).
//
//	type addRatingRequest struct {
//	    MovieID string `json:"movie_id" validate:"entityid"`
//	    Rating  int    `json:"rating" validate:"min=1,max=5"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
//	    return
//	}
//
// Domain rules that need graph state (does the movie exist, is the genre
// known) stay in the graph package; this package only checks shape.
package validation
