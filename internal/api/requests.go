// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

// Request bodies and query parameters, validated with go-playground/validator
// through the validation package. Field names in validation errors are the
// json names below.
//
// Tags used:
//   - entityid: 1-128 printable characters, no surrounding whitespace
//   - min,max / gte,lte: numeric or length bounds
//   - oneof: value must be one of the listed options
//   - dive: apply the following rules to each element

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	ID              string   `json:"id" validate:"entityid"`
	Name            string   `json:"name" validate:"required,max=256"`
	PreferredGenres []string `json:"preferred_genres" validate:"max=64,dive,entityid"`
}

// CreateMovieRequest is the body of POST /api/v1/movies.
type CreateMovieRequest struct {
	ID     string  `json:"id" validate:"entityid"`
	Title  string  `json:"title" validate:"required,max=512"`
	Genre  string  `json:"genre" validate:"entityid"`
	Rating float64 `json:"rating" validate:"gte=0,lte=10"`
	Year   int     `json:"year" validate:"gte=1870,lte=2200"`
}

// CreateGenreRequest is the body of POST /api/v1/genres.
type CreateGenreRequest struct {
	ID   string `json:"id" validate:"entityid"`
	Name string `json:"name" validate:"required,max=128"`
}

// RatingRequest is the body of POST /api/v1/users/{userID}/ratings. The
// rating range itself is enforced by the graph so the error wording stays
// the same for API and library callers.
type RatingRequest struct {
	MovieID string `json:"movie_id" validate:"entityid"`
	Rating  int    `json:"rating"`
}

// PreferencesRequest is the body of POST /api/v1/users/{userID}/preferences.
type PreferencesRequest struct {
	Genres []string `json:"genres" validate:"min=1,max=64,dive,entityid"`
}

// WeightsRequest is the body of PUT /api/v1/weights. Both weights are
// required; any finite value is accepted, including negatives.
type WeightsRequest struct {
	Collaborative *float64 `json:"collaborative" validate:"required"`
	ContentBased  *float64 `json:"content_based" validate:"required"`
}

// SimilarUsersQuery holds the query of GET /api/v1/users/{userID}/similar.
type SimilarUsersQuery struct {
	Threshold float64 `json:"threshold" validate:"gte=0,lte=1"`
}

// TopMoviesQuery holds the query of GET /api/v1/movies/top.
type TopMoviesQuery struct {
	Count int    `json:"count" validate:"min=1,max=1000"`
	Genre string `json:"genre" validate:"omitempty,entityid"`
}
