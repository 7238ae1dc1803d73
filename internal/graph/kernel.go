// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	"cmp"
	"math"
	"slices"
)

// CommonMovies returns the ids of movies rated by both users, sorted.
func (s *Store) CommonMovies(userA, userB string) ([]string, error) {
	a, ok := s.users[userA]
	if !ok {
		return nil, notFound(KindUser, userA)
	}
	b, ok := s.users[userB]
	if !ok {
		return nil, notFound(KindUser, userB)
	}
	return commonMovies(a, b), nil
}

func commonMovies(a, b *User) []string {
	small, large := a.Ratings, b.Ratings
	if len(small) > len(large) {
		small, large = large, small
	}
	out := make([]string, 0, len(small))
	for id := range small {
		if _, ok := large[id]; ok {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

// UserSimilarity computes the cosine similarity of two users' ratings over
// the movies both have rated. It is symmetric, lies in [0, 1] and is 0 when
// the users share no rated movie.
func (s *Store) UserSimilarity(userA, userB string) (float64, error) {
	a, ok := s.users[userA]
	if !ok {
		return 0, notFound(KindUser, userA)
	}
	b, ok := s.users[userB]
	if !ok {
		return 0, notFound(KindUser, userB)
	}
	return cosine(a, b), nil
}

func cosine(a, b *User) float64 {
	common := commonMovies(a, b)
	if len(common) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for _, id := range common {
		ra, rb := float64(a.Ratings[id]), float64(b.Ratings[id])
		dot += ra * rb
		normA += ra * ra
		normB += rb * rb
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Clamp floating point drift for identical vectors.
	return math.Min(1, math.Max(0, sim))
}

// FindSimilarUsers returns every other user whose similarity to userID is at
// least threshold, most similar first with ties broken by id.
func (s *Store) FindSimilarUsers(userID string, threshold float64) ([]SimilarUser, error) {
	u, ok := s.users[userID]
	if !ok {
		return nil, notFound(KindUser, userID)
	}

	out := []SimilarUser{}
	for _, id := range s.userOrder {
		if id == userID {
			continue
		}
		if sim := cosine(u, s.users[id]); sim >= threshold {
			out = append(out, SimilarUser{UserID: id, Similarity: sim})
		}
	}
	slices.SortFunc(out, func(a, b SimilarUser) int {
		if c := cmp.Compare(b.Similarity, a.Similarity); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})
	return out, nil
}

// Traverse walks the graph breadth-first from start and returns every node
// reached within maxDepth hops, in first-discovery order. The start node is
// included at depth 0. A negative maxDepth removes the bound; the visited
// set alone guarantees termination.
//
// The walk follows outgoing edges and the incoming edges of movie and genre
// nodes, so "user -> rated movie -> other raters" is reachable in two hops.
func (s *Store) Traverse(start NodeRef, maxDepth int) ([]NodeRef, error) {
	if !s.exists(start) {
		return nil, notFound(start.Kind, start.ID)
	}

	type item struct {
		ref   NodeRef
		depth int
	}

	visited := map[NodeRef]struct{}{start: {}}
	order := []NodeRef{start}
	queue := []item{{ref: start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if maxDepth >= 0 && cur.depth >= maxDepth {
			continue
		}
		for _, next := range s.neighbors(cur.ref) {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			order = append(order, next)
			queue = append(queue, item{ref: next, depth: cur.depth + 1})
		}
	}
	return order, nil
}

// neighbors lists the nodes adjacent to ref: targets of outgoing edges first,
// then sources of incoming edges found by scanning users and movies in
// insertion order.
func (s *Store) neighbors(ref NodeRef) []NodeRef {
	var out []NodeRef
	for _, e := range s.adj[ref] {
		out = append(out, e.To)
	}
	if ref.Kind == KindUser {
		return out
	}

	for _, uid := range s.userOrder {
		for _, e := range s.adj[UserRef(uid)] {
			if e.To == ref {
				out = append(out, e.From)
			}
		}
	}
	if ref.Kind == KindGenre {
		for _, mid := range s.movieOrder {
			for _, e := range s.adj[MovieRef(mid)] {
				if e.To == ref {
					out = append(out, e.From)
				}
			}
		}
	}
	return out
}

func (s *Store) exists(ref NodeRef) bool {
	switch ref.Kind {
	case KindUser:
		return s.HasUser(ref.ID)
	case KindMovie:
		return s.HasMovie(ref.ID)
	case KindGenre:
		return s.HasGenre(ref.ID)
	default:
		return false
	}
}
