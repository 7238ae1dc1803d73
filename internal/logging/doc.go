// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package logging is the zerolog setup shared by every Cinegraph component.
//
// Production output is one JSON object per line; console output is for local
// development. Configure it once at startup:
//
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
//
// Components take a child logger with a component field:
//
//	logger := logging.WithComponent("recommend")
//
// Request-scoped code logs through Ctx, which adds the request_id set by the
// HTTP middleware:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("load failed")
//
// The slog adapter bridges zerolog to libraries that require log/slog, in
// particular sutureslog for the supervisor tree.
package logging
