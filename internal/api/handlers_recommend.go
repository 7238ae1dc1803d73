// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinegraph/internal/graph"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/recommend"
)

// defaultMethod is used when ?method= is absent.
const defaultMethod = recommend.MethodHybrid

// RecommendationsResponse is the body of GET /api/v1/recommendations/{userID}.
// Limit is the limit after capping at the configured maximum.
type RecommendationsResponse struct {
	UserID          string                     `json:"user_id"`
	Method          string                     `json:"method"`
	Limit           int                        `json:"limit"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

// PathResponse is the body of GET /api/v1/users/{userID}/path/{movieID}.
type PathResponse struct {
	UserID  string          `json:"user_id"`
	MovieID string          `json:"movie_id"`
	Hops    int             `json:"hops"`
	Path    []graph.NodeRef `json:"path"`
}

// GetRecommendations handles GET /api/v1/recommendations/{userID}.
//
// Query parameters:
//   - method: collaborative, content or hybrid (default hybrid)
//   - limit: positive result count, capped at the configured maximum
//     (default from configuration)
//
// @Summary Get movie recommendations
// @Description Ranks movies the user has not rated with the selected strategy. Results are ordered by score, then movie id.
// @Tags Recommendations
// @Produce json
// @Param userID path string true "User ID"
// @Param method query string false "Strategy" Enums(collaborative, content, hybrid) default(hybrid)
// @Param limit query int false "Maximum results, capped at the configured maximum"
// @Success 200 {object} APIResponse{data=RecommendationsResponse} "Recommendations"
// @Failure 400 {object} APIResponse "Unknown method or invalid limit"
// @Failure 404 {object} APIResponse "User not found"
// @Router /api/v1/recommendations/{userID} [get]
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	method := r.URL.Query().Get("method")
	if method == "" {
		method = defaultMethod.String()
	}
	limit, err := intParam(r, "limit", h.engine.Config().Limits.DefaultResults)
	if err != nil {
		NewResponseWriter(w, r).BadRequest(err.Error())
		return
	}

	recs, err := h.engine.GetRecommendations(r.Context(), userID, method, limit)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	if recs == nil {
		recs = []recommend.Recommendation{}
	}

	NewResponseWriter(w, r).List(RecommendationsResponse{
		UserID:          userID,
		Method:          method,
		Limit:           h.engine.EffectiveLimit(limit),
		Recommendations: recs,
	}, len(recs))
}

// GetSimilarUsers handles GET /api/v1/users/{userID}/similar?threshold=.
// The default threshold comes from configuration.
//
// @Summary Find similar users
// @Description Returns users whose cosine similarity to the given user is at least the threshold, most similar first.
// @Tags Recommendations
// @Produce json
// @Param userID path string true "User ID"
// @Param threshold query number false "Minimum similarity in [0,1]"
// @Success 200 {object} APIResponse{data=[]graph.SimilarUser} "Similar users"
// @Failure 400 {object} APIResponse "Invalid threshold"
// @Failure 404 {object} APIResponse "User not found"
// @Router /api/v1/users/{userID}/similar [get]
func (h *Handler) GetSimilarUsers(w http.ResponseWriter, r *http.Request) {
	threshold, err := floatParam(r, "threshold", h.engine.Config().Limits.SimilarUsersThreshold)
	if err != nil {
		NewResponseWriter(w, r).BadRequest(err.Error())
		return
	}
	query := SimilarUsersQuery{Threshold: threshold}
	if !validateRequest(w, r, &query) {
		return
	}

	similar, err := h.engine.FindSimilarUsers(chi.URLParam(r, "userID"), query.Threshold)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	NewResponseWriter(w, r).List(similar, len(similar))
}

// GetRecommendationPath handles GET /api/v1/users/{userID}/path/{movieID}.
// It explains a recommendation as the shortest chain of graph edges.
//
// @Summary Explain a recommendation
// @Description Returns the shortest chain of graph edges from the user to the movie.
// @Tags Recommendations
// @Produce json
// @Param userID path string true "User ID"
// @Param movieID path string true "Movie ID"
// @Success 200 {object} APIResponse{data=PathResponse} "Path from user to movie"
// @Failure 404 {object} APIResponse "User, movie or path not found"
// @Router /api/v1/users/{userID}/path/{movieID} [get]
func (h *Handler) GetRecommendationPath(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	movieID := chi.URLParam(r, "movieID")

	path, err := h.engine.RecommendationPath(userID, movieID)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	NewResponseWriter(w, r).Success(PathResponse{
		UserID:  userID,
		MovieID: movieID,
		Hops:    len(path) - 1,
		Path:    path,
	})
}

// GetUserAnalysis handles GET /api/v1/users/{userID}/analysis.
//
// @Summary Analyze a user
// @Description Summarizes the user's ratings, genres, favorite movies and most similar users.
// @Tags Reports
// @Produce json,plain
// @Param userID path string true "User ID"
// @Param format query string false "Set to text for a plain-text rendering" Enums(text)
// @Success 200 {object} APIResponse{data=recommend.UserAnalysis} "User analysis"
// @Failure 404 {object} APIResponse "User not found"
// @Router /api/v1/users/{userID}/analysis [get]
func (h *Handler) GetUserAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.engine.AnalyzeUserBehavior(chi.URLParam(r, "userID"))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	if wantsText(r) {
		writeText(w, r, analysis.String())
		return
	}
	NewResponseWriter(w, r).Success(analysis)
}

// GetSystemReport handles GET /api/v1/report. ?format=text returns the
// human-readable rendering.
//
// @Summary Get the system report
// @Tags Reports
// @Produce json,plain
// @Param format query string false "Set to text for a plain-text rendering" Enums(text)
// @Success 200 {object} APIResponse{data=recommend.SystemReport} "System report"
// @Router /api/v1/report [get]
func (h *Handler) GetSystemReport(w http.ResponseWriter, r *http.Request) {
	report := h.engine.GenerateSystemReport()
	if wantsText(r) {
		writeText(w, r, report.String())
		return
	}
	NewResponseWriter(w, r).Success(report)
}

// GetTopMovies handles GET /api/v1/movies/top?count=&genre=.
//
// @Summary Get top rated movies
// @Description Returns movies ordered by aggregate rating. With genre set, only movies of that genre are returned.
// @Tags Recommendations
// @Produce json
// @Param count query int false "Number of movies (1-1000)"
// @Param genre query string false "Genre ID filter"
// @Success 200 {object} APIResponse{data=[]graph.Movie} "Movies"
// @Failure 400 {object} APIResponse "Invalid count"
// @Failure 404 {object} APIResponse "Genre not found"
// @Router /api/v1/movies/top [get]
func (h *Handler) GetTopMovies(w http.ResponseWriter, r *http.Request) {
	count, err := intParam(r, "count", h.engine.Config().Limits.DefaultResults)
	if err != nil {
		NewResponseWriter(w, r).BadRequest(err.Error())
		return
	}
	query := TopMoviesQuery{Count: count, Genre: r.URL.Query().Get("genre")}
	if !validateRequest(w, r, &query) {
		return
	}

	var movies []graph.Movie
	if query.Genre != "" {
		movies, err = h.engine.PopularMoviesByGenre(query.Genre, query.Count)
	} else {
		movies, err = h.engine.TopRatedMovies(query.Count)
	}
	if err != nil {
		respondErr(w, r, err)
		return
	}
	NewResponseWriter(w, r).List(movies, len(movies))
}

// GetWeights handles GET /api/v1/weights.
//
// @Summary Get hybrid weights
// @Tags Recommendations
// @Produce json
// @Success 200 {object} APIResponse{data=recommend.Weights} "Current weights"
// @Router /api/v1/weights [get]
func (h *Handler) GetWeights(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.engine.Weights())
}

// SetWeights handles PUT /api/v1/weights.
//
// @Summary Set hybrid weights
// @Description Replaces the collaborative and content-based weights of the hybrid strategy. Values are not range checked.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body WeightsRequest true "New weights"
// @Success 200 {object} APIResponse{data=recommend.Weights} "Weights in effect"
// @Failure 400 {object} APIResponse "Missing weight"
// @Router /api/v1/weights [put]
func (h *Handler) SetWeights(w http.ResponseWriter, r *http.Request) {
	var req WeightsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	h.engine.SetWeights(*req.Collaborative, *req.ContentBased)
	logging.Ctx(r.Context()).Info().
		Float64("collaborative", *req.Collaborative).
		Float64("content_based", *req.ContentBased).
		Msg("Hybrid weights changed via API")

	NewResponseWriter(w, r).Success(h.engine.Weights())
}

func wantsText(r *http.Request) bool {
	return r.URL.Query().Get("format") == "text"
}

func writeText(w http.ResponseWriter, r *http.Request, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write text response")
	}
}
