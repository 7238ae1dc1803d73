// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinegraph/internal/genrerank"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
)

// decodeRankRequest reads a genre ranking request. An empty body is an
// empty request, which ranks to the defaults.
func decodeRankRequest(r *http.Request) (genrerank.Request, error) {
	var req genrerank.Request
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		return req, err
	}
	return req, nil
}

// RankGenres handles POST /api/v1/genres/rank and returns the full analysis.
//
// @Summary Rank genres
// @Description Ranks genres from a watchlist and user preferences and returns the full analysis. An empty request ranks to the default genres.
// @Tags Genres
// @Accept json
// @Produce json
// @Param request body genrerank.Request false "Watchlist and users"
// @Success 200 {object} APIResponse{data=genrerank.Result} "Ranking analysis"
// @Failure 400 {object} APIResponse "Malformed JSON"
// @Router /api/v1/genres/rank [post]
func (h *Handler) RankGenres(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRankRequest(r)
	if err != nil {
		respondDecodeErr(w, r, err)
		return
	}

	result := genrerank.Rank(req)
	metrics.RecordGenreRank(result.Fallback)
	NewResponseWriter(w, r).Success(result)
}

// LegacyRecommend handles POST /recommend. It answers with a bare JSON array
// of genre names, most relevant first, for pre-v1 clients. A malformed body
// gets a plain-text 400.
//
// @Summary Rank genres (legacy)
// @Description Same ranking as /api/v1/genres/rank, answered as a bare array of genre names without the envelope.
// @Tags Genres
// @Accept json
// @Produce json,plain
// @Param request body genrerank.Request false "Watchlist and users"
// @Success 200 {array} string "Genre names, most relevant first"
// @Failure 400 {string} string "Invalid JSON"
// @Router /recommend [post]
func (h *Handler) LegacyRecommend(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRankRequest(r)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		if _, werr := w.Write([]byte("Invalid JSON")); werr != nil {
			logging.Ctx(r.Context()).Debug().Err(werr).Msg("Failed to write text response")
		}
		return
	}

	result := genrerank.Rank(req)
	metrics.RecordGenreRank(result.Fallback)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	writeRaw(w, r, result.OrderedGenres)
}

func writeRaw(w http.ResponseWriter, r *http.Request, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
	}
}
