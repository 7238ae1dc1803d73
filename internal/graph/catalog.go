// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	"cmp"
	"slices"
)

// TopRatedMovies returns up to count movies with the highest aggregate
// rating, ties broken by id.
func (s *Store) TopRatedMovies(count int) ([]Movie, error) {
	if count <= 0 {
		return nil, InvalidArgument("count", "must be positive, got %d", count)
	}
	return topByRating(s.Movies(), count), nil
}

// PopularMoviesByGenre is TopRatedMovies restricted to one genre.
func (s *Store) PopularMoviesByGenre(genreID string, count int) ([]Movie, error) {
	if !s.HasGenre(genreID) {
		return nil, notFound(KindGenre, genreID)
	}
	if count <= 0 {
		return nil, InvalidArgument("count", "must be positive, got %d", count)
	}

	var movies []Movie
	for _, id := range s.movieOrder {
		if m := s.movies[id]; m.Genre == genreID {
			movies = append(movies, *m)
		}
	}
	return topByRating(movies, count), nil
}

func topByRating(movies []Movie, count int) []Movie {
	slices.SortFunc(movies, func(a, b Movie) int {
		if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if len(movies) > count {
		movies = movies[:count]
	}
	if movies == nil {
		movies = []Movie{}
	}
	return movies
}
