// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinegraph/internal/logging"
)

// CreateUser handles POST /api/v1/users.
//
// @Summary Create a user
// @Description Adds a user node with optional preferred genres. Each listed genre adds a prefers edge.
// @Tags Graph
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User to create"
// @Success 201 {object} APIResponse{data=graph.User} "User created"
// @Failure 400 {object} APIResponse "Invalid body or unknown genre"
// @Failure 409 {object} APIResponse "User id already exists"
// @Router /api/v1/users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.PreferredGenres == nil {
		req.PreferredGenres = []string{}
	}

	if err := h.engine.AddUser(req.ID, req.Name, req.PreferredGenres); err != nil {
		respondErr(w, r, err)
		return
	}

	user, err := h.engine.User(req.ID)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Debug().Str("user_id", req.ID).Msg("User created")
	NewResponseWriter(w, r).Created(user)
}

// CreateMovie handles POST /api/v1/movies.
//
// @Summary Create a movie
// @Description Adds a movie node and its belongs_to edge to the genre.
// @Tags Graph
// @Accept json
// @Produce json
// @Param request body CreateMovieRequest true "Movie to create"
// @Success 201 {object} APIResponse{data=graph.Movie} "Movie created"
// @Failure 400 {object} APIResponse "Invalid body"
// @Failure 404 {object} APIResponse "Genre not found"
// @Failure 409 {object} APIResponse "Movie id already exists"
// @Router /api/v1/movies [post]
func (h *Handler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req CreateMovieRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.engine.AddMovie(req.ID, req.Title, req.Genre, req.Rating, req.Year); err != nil {
		respondErr(w, r, err)
		return
	}

	movie, err := h.engine.Movie(req.ID)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Debug().Str("movie_id", req.ID).Msg("Movie created")
	NewResponseWriter(w, r).Created(movie)
}

// CreateGenre handles POST /api/v1/genres.
//
// @Summary Create a genre
// @Tags Graph
// @Accept json
// @Produce json
// @Param request body CreateGenreRequest true "Genre to create"
// @Success 201 {object} APIResponse{data=CreateGenreRequest} "Genre created"
// @Failure 400 {object} APIResponse "Invalid body"
// @Failure 409 {object} APIResponse "Genre id already exists"
// @Router /api/v1/genres [post]
func (h *Handler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req CreateGenreRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.engine.AddGenre(req.ID, req.Name); err != nil {
		respondErr(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Debug().Str("genre_id", req.ID).Msg("Genre created")
	NewResponseWriter(w, r).Created(req)
}

// ListGenres handles GET /api/v1/genres.
//
// @Summary List genres
// @Tags Graph
// @Produce json
// @Success 200 {object} APIResponse{data=[]graph.Genre} "Genres ordered by id"
// @Router /api/v1/genres [get]
func (h *Handler) ListGenres(w http.ResponseWriter, r *http.Request) {
	genres := h.engine.Genres()
	NewResponseWriter(w, r).List(genres, len(genres))
}

// GetUser handles GET /api/v1/users/{userID}.
//
// @Summary Get a user
// @Tags Graph
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} APIResponse{data=graph.User} "User with ratings and preferences"
// @Failure 404 {object} APIResponse "User not found"
// @Router /api/v1/users/{userID} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.engine.User(chi.URLParam(r, "userID"))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(user)
}

// GetMovie handles GET /api/v1/movies/{movieID}.
//
// @Summary Get a movie
// @Tags Graph
// @Produce json
// @Param movieID path string true "Movie ID"
// @Success 200 {object} APIResponse{data=graph.Movie} "Movie"
// @Failure 404 {object} APIResponse "Movie not found"
// @Router /api/v1/movies/{movieID} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.engine.Movie(chi.URLParam(r, "movieID"))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(movie)
}

// AddRating handles POST /api/v1/users/{userID}/ratings.
//
// @Summary Rate a movie
// @Description Adds or replaces the user's rating of a movie. Ratings are integers from 1 to 5.
// @Tags Graph
// @Accept json
// @Param userID path string true "User ID"
// @Param request body RatingRequest true "Rating"
// @Success 204 "Rating stored"
// @Failure 400 {object} APIResponse "Rating out of range"
// @Failure 404 {object} APIResponse "User or movie not found"
// @Router /api/v1/users/{userID}/ratings [post]
func (h *Handler) AddRating(w http.ResponseWriter, r *http.Request) {
	var req RatingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.engine.AddUserRating(chi.URLParam(r, "userID"), req.MovieID, req.Rating); err != nil {
		respondErr(w, r, err)
		return
	}
	NewResponseWriter(w, r).NoContent()
}

// AddPreferences handles POST /api/v1/users/{userID}/preferences. Genres are
// appended to the user's existing preferences; on error none are added.
//
// @Summary Add preferred genres
// @Description Appends genres to the user's preferences. Nothing is added when any genre is unknown.
// @Tags Graph
// @Accept json
// @Param userID path string true "User ID"
// @Param request body PreferencesRequest true "Genres to add"
// @Success 204 "Preferences updated"
// @Failure 400 {object} APIResponse "Invalid body"
// @Failure 404 {object} APIResponse "User or genre not found"
// @Router /api/v1/users/{userID}/preferences [post]
func (h *Handler) AddPreferences(w http.ResponseWriter, r *http.Request) {
	var req PreferencesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.engine.UpdateUserPreferences(chi.URLParam(r, "userID"), req.Genres); err != nil {
		respondErr(w, r, err)
		return
	}
	NewResponseWriter(w, r).NoContent()
}
