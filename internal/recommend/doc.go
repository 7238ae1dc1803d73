// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package recommend implements the movie recommendation engine.
//
// # Architecture
//
// The Engine owns a graph.Store of users, movies and genres and answers
// queries with one of three strategies from the algorithms package:
//
//   - collaborative: movies rated by users with similar ratings
//   - content: movies in the user's ranked preferred genres
//   - hybrid: a weighted blend of the two
//
// Every strategy excludes movies the user already rated and orders results
// by score, then aggregate movie rating, then movie id, so identical graph
// state always yields identical output.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	_ = recommend.SeedSampleCatalog(engine)
//
//	_ = engine.AddUser("u1", "Alice", []string{"scifi", "action"})
//	_ = engine.AddUserRating("u1", "m12", 5)
//
//	recs, err := engine.GetRecommendations(ctx, "u1", "hybrid", 10)
//
// # Persistence
//
// SaveUserData and LoadUserData move the user half of the graph (ids, names,
// ordered preferences and ratings) through a SnapshotStore. Loading replaces
// the store wholesale; the movie and genre catalog must be re-seeded, and
// restored ratings and preferences attach to it as it is added.
//
// # Thread Safety
//
// The engine is safe for concurrent use. Mutations, weight changes and
// snapshot loads acquire an exclusive lock, while queries and reports use a
// shared lock. Cached responses are dropped on every mutation.
package recommend
