// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package algorithms

import "github.com/tomtom215/cinegraph/internal/graph"

// Weights are the blend coefficients of the hybrid strategy. They are used
// as given: no normalization and no range check.
type Weights struct {
	Collaborative float64 `json:"collaborative"`
	ContentBased  float64 `json:"content_based"`
}

// DefaultWeights gives both strategies equal say.
func DefaultWeights() Weights {
	return Weights{Collaborative: 0.5, ContentBased: 0.5}
}

// Hybrid blends collaborative and content scores:
//
//	score(m) = w_c * collab(m) / max(collab) + w_t * content(m) / max(content)
//
// over the union of both candidate sets. A strategy whose maximum is zero
// contributes nothing.
type Hybrid struct {
	baseStrategy
	collaborative scorer
	content       scorer
	weights       Weights
}

// NewHybrid creates a hybrid strategy over the given components.
func NewHybrid(collaborative *Collaborative, content *Content, w Weights) *Hybrid {
	return &Hybrid{
		baseStrategy:  baseStrategy{name: "hybrid"},
		collaborative: collaborative,
		content:       content,
		weights:       w,
	}
}

// SetWeights replaces the blend coefficients.
func (h *Hybrid) SetWeights(w Weights) {
	h.weights = w
}

// Weights returns the current blend coefficients.
func (h *Hybrid) Weights() Weights {
	return h.weights
}

// Recommend implements Strategy.
func (h *Hybrid) Recommend(store *graph.Store, userID string, limit int) ([]Recommendation, error) {
	user, err := prepare(store, userID, limit)
	if err != nil {
		return nil, err
	}
	return rank(store, h.scores(store, user), limit), nil
}

func (h *Hybrid) scores(store *graph.Store, user graph.User) map[string]float64 {
	collab := scaleByMax(h.collaborative.scores(store, user))
	content := scaleByMax(h.content.scores(store, user))

	blended := make(map[string]float64, len(content))
	for id, s := range collab {
		blended[id] += h.weights.Collaborative * s
	}
	for id, s := range content {
		blended[id] += h.weights.ContentBased * s
	}
	return blended
}
