// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package graph holds the in-memory recommendation graph.
//
// # Model
//
// The graph has three node namespaces (users, movies and genres) and three
// directed edge types:
//
//   - rated: user -> movie, weight is the 1-5 rating
//   - prefers: user -> genre, weight 1
//   - belongs_to: movie -> genre, weight 1
//
// Edges are kept in adjacency lists keyed by the source node. The reverse
// direction is never materialized; walks that need incoming edges scan the
// adjacency lists of users and movies in insertion order.
//
// # Kernel
//
// On top of the store the package provides the similarity and traversal
// kernel used by the recommendation strategies:
//
//   - CommonMovies: movies rated by both users
//   - UserSimilarity: cosine similarity over common ratings
//   - Traverse: breadth-first walk bounded by depth
//   - RecommendationPath: shortest user -> movie connection
//
// # Thread Safety
//
// Store is not safe for concurrent use. Callers that share a store across
// goroutines (see recommend.Engine) must serialize access themselves.
package graph
