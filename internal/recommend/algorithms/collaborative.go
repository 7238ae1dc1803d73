// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package algorithms

import "github.com/tomtom215/cinegraph/internal/graph"

// CollaborativeConfig controls how neighbors are selected.
type CollaborativeConfig struct {
	// NeighborhoodDepth bounds the graph walk used to find candidate
	// neighbors. Two hops reach users who rated a movie the target rated.
	// Zero or a negative value removes the bound.
	NeighborhoodDepth int

	// SimilarityFloor is the exclusive lower bound on neighbor similarity.
	SimilarityFloor float64
}

// DefaultCollaborativeConfig returns the standard two-hop neighborhood with
// a zero similarity floor.
func DefaultCollaborativeConfig() CollaborativeConfig {
	return CollaborativeConfig{
		NeighborhoodDepth: 2,
		SimilarityFloor:   0,
	}
}

// Collaborative implements user-based collaborative filtering over the graph.
//
// For target user u and candidate movie m:
//
//	score(u, m) = sum over similar users v who rated m of sim(u, v) * r(v, m)
//
// where v ranges over users reached by the bounded walk whose cosine
// similarity to u is strictly above the floor.
type Collaborative struct {
	baseStrategy
	config CollaborativeConfig
}

// NewCollaborative creates a collaborative strategy.
func NewCollaborative(cfg CollaborativeConfig) *Collaborative {
	return &Collaborative{
		baseStrategy: baseStrategy{name: "collaborative"},
		config:       cfg,
	}
}

// Recommend implements Strategy.
func (c *Collaborative) Recommend(store *graph.Store, userID string, limit int) ([]Recommendation, error) {
	user, err := prepare(store, userID, limit)
	if err != nil {
		return nil, err
	}
	return rank(store, c.scores(store, user), limit), nil
}

// Neighbors returns the users reached by the bounded walk whose similarity
// to userID exceeds the floor, in walk order.
func (c *Collaborative) Neighbors(store *graph.Store, userID string) ([]graph.SimilarUser, error) {
	depth := c.config.NeighborhoodDepth
	if depth <= 0 {
		depth = -1
	}

	reached, err := store.Traverse(graph.UserRef(userID), depth)
	if err != nil {
		return nil, err
	}

	var out []graph.SimilarUser
	for _, ref := range reached {
		if ref.Kind != graph.KindUser || ref.ID == userID {
			continue
		}
		sim, err := store.UserSimilarity(userID, ref.ID)
		if err != nil {
			return nil, err
		}
		if sim > c.config.SimilarityFloor {
			out = append(out, graph.SimilarUser{UserID: ref.ID, Similarity: sim})
		}
	}
	return out, nil
}

func (c *Collaborative) scores(store *graph.Store, user graph.User) map[string]float64 {
	scores := make(map[string]float64)

	neighbors, err := c.Neighbors(store, user.ID)
	if err != nil {
		return scores
	}

	for _, n := range neighbors {
		ratings, err := store.Ratings(n.UserID)
		if err != nil {
			continue
		}
		for movieID, r := range ratings {
			if _, rated := user.Ratings[movieID]; rated || !store.HasMovie(movieID) {
				continue
			}
			scores[movieID] += n.Similarity * float64(r)
		}
	}
	return scores
}
