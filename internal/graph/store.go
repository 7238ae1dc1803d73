// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import "slices"

// Store owns every node and edge of the recommendation graph.
//
// Nodes are kept in per-namespace maps plus an insertion-order slice so that
// bulk reads and walks are deterministic. Edges live in adjacency lists keyed
// by their source node.
type Store struct {
	users  map[string]*User
	movies map[string]*Movie
	genres map[string]*Genre

	userOrder  []string
	movieOrder []string
	genreOrder []string

	adj map[NodeRef][]Edge
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:  make(map[string]*User),
		movies: make(map[string]*Movie),
		genres: make(map[string]*Genre),
		adj:    make(map[NodeRef][]Edge),
	}
}

// AddUser inserts a user with an ordered genre preference list. A prefers
// edge is created for every listed genre that exists; unknown genres are kept
// in the list without an edge and are attached if the genre is added later.
func (s *Store) AddUser(id, name string, preferredGenres []string) error {
	if id == "" {
		return InvalidArgument("user id", "must not be empty")
	}
	if _, ok := s.users[id]; ok {
		return duplicate(KindUser, id)
	}

	u := &User{
		ID:              id,
		Name:            name,
		PreferredGenres: append([]string(nil), preferredGenres...),
		Ratings:         make(map[string]int),
	}
	s.users[id] = u
	s.userOrder = append(s.userOrder, id)

	for _, g := range u.PreferredGenres {
		if _, ok := s.genres[g]; ok {
			s.appendEdge(UserRef(id), GenreRef(g), 1, EdgePrefers)
		}
	}
	return nil
}

// AddMovie inserts a movie. The belongs_to edge is created when the genre
// exists. Ratings restored from a snapshot that reference this movie are
// attached as rated edges.
func (s *Store) AddMovie(id, title, genre string, rating float64, year int) error {
	if id == "" {
		return InvalidArgument("movie id", "must not be empty")
	}
	if _, ok := s.movies[id]; ok {
		return duplicate(KindMovie, id)
	}

	s.movies[id] = &Movie{ID: id, Title: title, Genre: genre, Rating: rating, Year: year}
	s.movieOrder = append(s.movieOrder, id)

	if _, ok := s.genres[genre]; ok {
		s.appendEdge(MovieRef(id), GenreRef(genre), 1, EdgeBelongsTo)
	}
	for _, uid := range s.userOrder {
		if r, ok := s.users[uid].Ratings[id]; ok {
			s.appendEdge(UserRef(uid), MovieRef(id), float64(r), EdgeRated)
		}
	}
	return nil
}

// AddGenre inserts a genre and attaches any prefers and belongs_to edges
// that were waiting for it.
func (s *Store) AddGenre(id, name string) error {
	if id == "" {
		return InvalidArgument("genre id", "must not be empty")
	}
	if _, ok := s.genres[id]; ok {
		return duplicate(KindGenre, id)
	}

	s.genres[id] = &Genre{ID: id, Name: name}
	s.genreOrder = append(s.genreOrder, id)

	for _, uid := range s.userOrder {
		for _, g := range s.users[uid].PreferredGenres {
			if g == id {
				s.appendEdge(UserRef(uid), GenreRef(id), 1, EdgePrefers)
			}
		}
	}
	for _, mid := range s.movieOrder {
		if s.movies[mid].Genre == id {
			s.appendEdge(MovieRef(mid), GenreRef(id), 1, EdgeBelongsTo)
		}
	}
	return nil
}

// AddRating records or replaces a user's rating of a movie. The rated edge
// and the rating map entry are always updated together.
func (s *Store) AddRating(userID, movieID string, rating int) error {
	u, ok := s.users[userID]
	if !ok {
		return notFound(KindUser, userID)
	}
	if _, ok := s.movies[movieID]; !ok {
		return notFound(KindMovie, movieID)
	}
	if rating < MinRating || rating > MaxRating {
		return InvalidArgument("rating", "%d outside [%d, %d]", rating, MinRating, MaxRating)
	}

	u.Ratings[movieID] = rating

	from, to := UserRef(userID), MovieRef(movieID)
	edges := s.adj[from]
	for i := range edges {
		if edges[i].Type == EdgeRated && edges[i].To == to {
			edges[i].Weight = float64(rating)
			return nil
		}
	}
	s.appendEdge(from, to, float64(rating), EdgeRated)
	return nil
}

// AddGenrePreference appends a genre to the end of a user's preference list
// and creates the matching prefers edge. Repeats are allowed.
func (s *Store) AddGenrePreference(userID, genreID string) error {
	u, ok := s.users[userID]
	if !ok {
		return notFound(KindUser, userID)
	}
	if _, ok := s.genres[genreID]; !ok {
		return notFound(KindGenre, genreID)
	}

	u.PreferredGenres = append(u.PreferredGenres, genreID)
	s.appendEdge(UserRef(userID), GenreRef(genreID), 1, EdgePrefers)
	return nil
}

func (s *Store) appendEdge(from, to NodeRef, weight float64, typ EdgeType) {
	s.adj[from] = append(s.adj[from], Edge{From: from, To: to, Weight: weight, Type: typ})
}

// User returns a copy of the user with the given id.
func (s *Store) User(id string) (User, error) {
	u, ok := s.users[id]
	if !ok {
		return User{}, notFound(KindUser, id)
	}
	return u.clone(), nil
}

// Movie returns the movie with the given id.
func (s *Store) Movie(id string) (Movie, error) {
	m, ok := s.movies[id]
	if !ok {
		return Movie{}, notFound(KindMovie, id)
	}
	return *m, nil
}

// Genre returns the genre with the given id.
func (s *Store) Genre(id string) (Genre, error) {
	g, ok := s.genres[id]
	if !ok {
		return Genre{}, notFound(KindGenre, id)
	}
	return *g, nil
}

// HasUser reports whether a user exists.
func (s *Store) HasUser(id string) bool {
	_, ok := s.users[id]
	return ok
}

// HasMovie reports whether a movie exists.
func (s *Store) HasMovie(id string) bool {
	_, ok := s.movies[id]
	return ok
}

// HasGenre reports whether a genre exists.
func (s *Store) HasGenre(id string) bool {
	_, ok := s.genres[id]
	return ok
}

// Users returns copies of all users in insertion order.
func (s *Store) Users() []User {
	out := make([]User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id].clone())
	}
	return out
}

// UserIDs returns all user ids in insertion order.
func (s *Store) UserIDs() []string {
	return slices.Clone(s.userOrder)
}

// Movies returns all movies in insertion order.
func (s *Store) Movies() []Movie {
	out := make([]Movie, 0, len(s.movieOrder))
	for _, id := range s.movieOrder {
		out = append(out, *s.movies[id])
	}
	return out
}

// Genres returns all genres in insertion order.
func (s *Store) Genres() []Genre {
	out := make([]Genre, 0, len(s.genreOrder))
	for _, id := range s.genreOrder {
		out = append(out, *s.genres[id])
	}
	return out
}

// Edges returns a copy of the outgoing edges of a node.
func (s *Store) Edges(from NodeRef) []Edge {
	return slices.Clone(s.adj[from])
}

// AllEdges returns every edge: users' outgoing edges in user insertion order,
// then movies' outgoing edges in movie insertion order.
func (s *Store) AllEdges() []Edge {
	var out []Edge
	for _, id := range s.userOrder {
		out = append(out, s.adj[UserRef(id)]...)
	}
	for _, id := range s.movieOrder {
		out = append(out, s.adj[MovieRef(id)]...)
	}
	return out
}

// Ratings returns a copy of a user's rating map.
func (s *Store) Ratings(userID string) (map[string]int, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, notFound(KindUser, userID)
	}
	return u.clone().Ratings, nil
}

// Stats counts nodes per namespace and edges per type.
func (s *Store) Stats() Stats {
	st := Stats{
		Users:  len(s.users),
		Movies: len(s.movies),
		Genres: len(s.genres),
		Edges:  make(map[EdgeType]int, len(EdgeTypes)),
	}
	for _, t := range EdgeTypes {
		st.Edges[t] = 0
	}
	for _, edges := range s.adj {
		for _, e := range edges {
			st.Edges[e.Type]++
			st.TotalEdges++
		}
	}
	return st
}
