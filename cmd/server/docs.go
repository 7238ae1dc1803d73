// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package main provides the Cinegraph HTTP server
//
// @title Cinegraph API
// @version 1.0
// @description Graph-based movie recommendations over users, movies and genres.
// @description
// @description ## Strategies
// @description
// @description - **collaborative**: movies rated by users with similar ratings (cosine similarity)
// @description - **content**: movies in the user's preferred genres
// @description - **hybrid**: weighted blend of the two (default)
// @description
// @description ## Error Responses
// @description
// @description All /api/v1 error responses follow this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "user u9: not found"
// @description   },
// @description   "meta": {
// @description     "request_id": "8f2c...",
// @description     "timestamp": "2026-01-01T12:00:00Z",
// @description     "duration_ms": 0
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/cinegraph/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks
//
// @tag.name Graph
// @tag.description Users, movies, genres, ratings and preferences
//
// @tag.name Recommendations
// @tag.description Recommendation strategies, similar users and explanation paths
//
// @tag.name Reports
// @tag.description Read-only user and system analysis
//
// @tag.name Genres
// @tag.description Watchlist-based genre ranking
//
// @tag.name Snapshot
// @tag.description Saving and restoring user data
package main
