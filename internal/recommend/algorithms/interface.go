// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package algorithms

import (
	"cmp"
	"slices"

	"github.com/tomtom215/cinegraph/internal/graph"
)

// Strategy produces a ranked list of movies for one user.
type Strategy interface {
	// Name returns the strategy identifier used in logs and metrics.
	Name() string

	// Recommend returns at most limit unrated movies, best first.
	// It fails with graph.ErrInvalidArgument when limit <= 0 and with
	// graph.ErrNotFound when the user does not exist.
	Recommend(store *graph.Store, userID string, limit int) ([]Recommendation, error)
}

// Recommendation is a movie with the score that ranked it.
type Recommendation struct {
	graph.Movie
	Score float64 `json:"score"`
}

// scorer is implemented by strategies whose raw scores can be blended.
type scorer interface {
	scores(store *graph.Store, user graph.User) map[string]float64
}

// baseStrategy carries the name shared by every strategy.
type baseStrategy struct {
	name string
}

// Name returns the strategy identifier.
func (b baseStrategy) Name() string {
	return b.name
}

// prepare validates the common arguments and loads the target user.
func prepare(store *graph.Store, userID string, limit int) (graph.User, error) {
	if limit <= 0 {
		return graph.User{}, graph.InvalidArgument("max results", "must be positive, got %d", limit)
	}
	return store.User(userID)
}

// rank turns a score map into an ordered, truncated recommendation list.
// Ids that are not movies in the store are dropped.
func rank(store *graph.Store, scores map[string]float64, limit int) []Recommendation {
	out := make([]Recommendation, 0, len(scores))
	for id, score := range scores {
		m, err := store.Movie(id)
		if err != nil {
			continue
		}
		out = append(out, Recommendation{Movie: m, Score: score})
	}

	slices.SortFunc(out, compareRecommendations)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func compareRecommendations(a, b Recommendation) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// scaleByMax divides every score by the largest one. A map whose maximum is
// not positive scales to all zeros so that it contributes nothing to a blend.
func scaleByMax(scores map[string]float64) map[string]float64 {
	var maxScore float64
	for _, s := range scores {
		maxScore = max(maxScore, s)
	}

	scaled := make(map[string]float64, len(scores))
	for id, s := range scores {
		if maxScore > 0 {
			scaled[id] = s / maxScore
		} else {
			scaled[id] = 0
		}
	}
	return scaled
}
