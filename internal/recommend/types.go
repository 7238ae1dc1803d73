// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"context"

	"github.com/tomtom215/cinegraph/internal/graph"
	"github.com/tomtom215/cinegraph/internal/recommend/algorithms"
)

// Method selects a recommendation strategy.
type Method string

const (
	// MethodCollaborative recommends what similar users rated.
	MethodCollaborative Method = "collaborative"
	// MethodContent recommends movies in the user's preferred genres.
	MethodContent Method = "content"
	// MethodHybrid blends the two with the engine's weights.
	MethodHybrid Method = "hybrid"
)

// Methods lists every supported method.
var Methods = []Method{MethodCollaborative, MethodContent, MethodHybrid}

// ParseMethod validates a method selector. Matching is exact: "Hybrid" and
// " hybrid" are rejected.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	switch m {
	case MethodCollaborative, MethodContent, MethodHybrid:
		return m, nil
	default:
		return "", graph.InvalidArgument("method", "unknown method %q", s)
	}
}

// String returns the method selector.
func (m Method) String() string {
	return string(m)
}

// Recommendation is a ranked movie with its score.
type Recommendation = algorithms.Recommendation

// Weights are the hybrid blend coefficients.
type Weights = algorithms.Weights

// SnapshotStore persists the user half of the graph. Implementations live
// in the snapshot package.
type SnapshotStore interface {
	// Name identifies the backend in logs and metrics.
	Name() string

	// SaveUsers replaces the stored snapshot with records.
	SaveUsers(ctx context.Context, records []graph.UserRecord) error

	// LoadUsers returns the stored snapshot. A store that has never been
	// written returns an empty slice and no error.
	LoadUsers(ctx context.Context) ([]graph.UserRecord, error)
}

// GraphDump is a point-in-time copy of the whole graph, used by exporters.
type GraphDump struct {
	Users  []graph.User  `json:"users"`
	Movies []graph.Movie `json:"movies"`
	Genres []graph.Genre `json:"genres"`
	Edges  []graph.Edge  `json:"edges"`
}
