// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package algorithms

import "github.com/tomtom215/cinegraph/internal/graph"

// Content ranks movies by how well their genre matches the user's ordered
// genre preferences.
//
// The preference at position i (0-based) contributes 1/(i+1) to its genre,
// so earlier entries weigh more and repeated entries accumulate. Only genres
// present in the store count.
//
// Every unrated movie is a candidate, including those that match no
// preferred genre. They score zero and sort after the matches by aggregate
// rating, so a user without preferences gets the unrated catalog ordered by
// rating. The result is empty only when the user has rated every movie.
type Content struct {
	baseStrategy
}

// NewContent creates a content-based strategy.
func NewContent() *Content {
	return &Content{baseStrategy: baseStrategy{name: "content"}}
}

// Recommend implements Strategy.
func (c *Content) Recommend(store *graph.Store, userID string, limit int) ([]Recommendation, error) {
	user, err := prepare(store, userID, limit)
	if err != nil {
		return nil, err
	}
	return rank(store, c.scores(store, user), limit), nil
}

// GenreWeights returns the per-genre affinity derived from a preference list.
func GenreWeights(store *graph.Store, preferred []string) map[string]float64 {
	weights := make(map[string]float64)
	for i, g := range preferred {
		if !store.HasGenre(g) {
			continue
		}
		weights[g] += 1 / float64(i+1)
	}
	return weights
}

func (c *Content) scores(store *graph.Store, user graph.User) map[string]float64 {
	weights := GenreWeights(store, user.PreferredGenres)

	scores := make(map[string]float64)
	for _, m := range store.Movies() {
		if _, rated := user.Ratings[m.ID]; rated {
			continue
		}
		scores[m.ID] = weights[m.Genre]
	}
	return scores
}
