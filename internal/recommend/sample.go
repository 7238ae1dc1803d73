// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import "fmt"

type sampleMovie struct {
	id, title, genre string
	rating           float64
	year             int
}

type sampleUser struct {
	id, name string
	genres   []string
	ratings  map[string]int
}

var sampleGenres = [][2]string{
	{"action", "Action"},
	{"drama", "Drama"},
	{"comedy", "Comedy"},
	{"thriller", "Thriller"},
	{"scifi", "Sci-Fi"},
	{"romance", "Romance"},
}

var sampleMovies = []sampleMovie{
	{"m01", "The Dark Knight", "action", 4.8, 2008},
	{"m02", "Mad Max: Fury Road", "action", 4.4, 2015},
	{"m03", "Die Hard", "action", 4.3, 1988},
	{"m04", "The Shawshank Redemption", "drama", 4.9, 1994},
	{"m05", "Forrest Gump", "drama", 4.6, 1994},
	{"m06", "The Godfather", "drama", 4.8, 1972},
	{"m07", "Superbad", "comedy", 3.9, 2007},
	{"m08", "The Grand Budapest Hotel", "comedy", 4.2, 2014},
	{"m09", "Groundhog Day", "comedy", 4.1, 1993},
	{"m10", "Se7en", "thriller", 4.5, 1995},
	{"m11", "Gone Girl", "thriller", 4.1, 2014},
	{"m12", "Inception", "scifi", 4.7, 2010},
	{"m13", "The Matrix", "scifi", 4.6, 1999},
	{"m14", "Interstellar", "scifi", 4.6, 2014},
	{"m15", "Before Sunrise", "romance", 4.0, 1995},
	{"m16", "La La Land", "romance", 4.0, 2016},
}

var sampleUsers = []sampleUser{
	{"user1", "Alice", []string{"action", "scifi"}, map[string]int{"m01": 5, "m12": 5, "m13": 4, "m03": 4}},
	{"user2", "Bob", []string{"drama", "thriller"}, map[string]int{"m04": 5, "m06": 5, "m10": 4, "m01": 4}},
	{"user3", "Carol", []string{"comedy", "romance"}, map[string]int{"m07": 4, "m09": 5, "m15": 4, "m05": 3}},
	{"user4", "Dave", []string{"scifi", "action"}, map[string]int{"m12": 5, "m14": 5, "m01": 5, "m02": 4}},
	{"user5", "Eve", []string{"thriller", "drama"}, map[string]int{"m10": 5, "m11": 4, "m04": 4, "m12": 3}},
}

// SeedSampleCatalog adds the demo genres and movies.
func SeedSampleCatalog(e *Engine) error {
	for _, g := range sampleGenres {
		if err := e.AddGenre(g[0], g[1]); err != nil {
			return fmt.Errorf("seed genre %s: %w", g[0], err)
		}
	}
	for _, m := range sampleMovies {
		if err := e.AddMovie(m.id, m.title, m.genre, m.rating, m.year); err != nil {
			return fmt.Errorf("seed movie %s: %w", m.id, err)
		}
	}
	return nil
}

// SeedSampleUsers adds the demo users and their ratings. The catalog must be
// seeded first.
func SeedSampleUsers(e *Engine) error {
	for _, u := range sampleUsers {
		if err := e.AddUser(u.id, u.name, u.genres); err != nil {
			return fmt.Errorf("seed user %s: %w", u.id, err)
		}
		for movieID, r := range u.ratings {
			if err := e.AddUserRating(u.id, movieID, r); err != nil {
				return fmt.Errorf("seed rating %s/%s: %w", u.id, movieID, err)
			}
		}
	}
	return nil
}
