// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package algorithms implements the recommendation strategies that run over
// a graph.Store.
//
// # Strategies
//
//   - Collaborative: movies rated by users similar to the target, found by a
//     bounded walk of the graph
//   - Content: movies whose genre matches the target's ranked preferences
//   - Hybrid: weighted blend of the two, each scaled by its own maximum
//
// All strategies share the same ordering: score descending, then aggregate
// movie rating descending, then movie id ascending. Movies the user has
// already rated are never returned.
//
// # Thread Safety
//
// Strategies hold only configuration and read the store they are given.
// They do not lock; the caller must prevent concurrent mutation of the store
// for the duration of a call.
package algorithms
