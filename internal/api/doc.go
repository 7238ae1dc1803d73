// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package api provides the HTTP REST API for Cinegraph.

Routes are served by chi (see Router.SetupChi). Every /api/v1 response uses
the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "error": {"code": "NOT_FOUND", "message": "..."},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 0}
	}

Endpoints:

	GET  /api/v1/health
	GET  /api/v1/recommendations/{userID}?method=&limit=
	POST /api/v1/users                         201
	GET  /api/v1/users/{userID}
	POST /api/v1/users/{userID}/ratings        204
	POST /api/v1/users/{userID}/preferences    204
	GET  /api/v1/users/{userID}/similar?threshold=
	GET  /api/v1/users/{userID}/path/{movieID}
	GET  /api/v1/users/{userID}/analysis
	POST /api/v1/movies                        201
	GET  /api/v1/movies/top?count=&genre=
	GET  /api/v1/movies/{movieID}
	GET  /api/v1/genres
	POST /api/v1/genres                        201
	POST /api/v1/genres/rank
	GET  /api/v1/weights
	PUT  /api/v1/weights
	GET  /api/v1/report
	POST /api/v1/snapshot/save                 204
	POST /api/v1/snapshot/load                 204
	POST /recommend                            bare JSON array, 400 "Invalid JSON"
	GET  /metrics                              Prometheus
	GET  /swagger/*                            Swagger UI and doc.json

Handlers carry swag annotations. The OpenAPI document in the docs package
is regenerated with:

	swag init -g cmd/server/docs.go -o docs

Error mapping:

	graph.ErrNotFound              404 NOT_FOUND
	graph.ErrDuplicateID           409 CONFLICT
	graph.ErrInvalidArgument       400 INVALID_ARGUMENT
	validation failures            400 VALIDATION_ERROR
	recommend.ErrNoSnapshotStore   503 SERVICE_UNAVAILABLE
	anything else                  500 INTERNAL_ERROR

Request bodies are decoded with goccy/go-json (unknown fields rejected) and
validated with go-playground/validator through the validation package.
*/
package api
