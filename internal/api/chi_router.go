// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/cinegraph/internal/middleware"
)

// defaultMaxBodyBytes applies when RouterOptions.MaxBodyBytes is zero.
const defaultMaxBodyBytes = 1 << 20

// Router wires handlers and middleware into a chi.Mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	maxBodyBytes  int64
}

// NewRouter creates a router. A nil mw uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
		maxBodyBytes:  defaultMaxBodyBytes,
	}
}

// WithMaxBodyBytes overrides the request body limit.
func (router *Router) WithMaxBodyBytes(n int64) *Router {
	if n > 0 {
		router.maxBodyBytes = n
	}
	return router
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)        // X-Request-ID into the logging context
	r.Use(chimiddleware.RealIP)        // Client IP from X-Forwarded-For for rate limiting
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(middleware.AccessLog)        // One log line per request
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(chimiddleware.Compress(5, "application/json", "text/plain"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("no route for " + r.Method + " " + r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	// ========================
	// Health & Observability
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// ========================
	// Legacy genre ranking
	// ========================
	r.With(
		router.chiMiddleware.RateLimit(),
		middleware.PrometheusMetrics,
		MaxBodySize(router.maxBodyBytes),
	).Post("/recommend", router.handler.LegacyRecommend)

	// ========================
	// Core API
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(MaxBodySize(router.maxBodyBytes))

		r.Get("/recommendations/{userID}", router.handler.GetRecommendations)

		r.Get("/weights", router.handler.GetWeights)
		r.Put("/weights", router.handler.SetWeights)

		r.Get("/report", router.handler.GetSystemReport)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", router.handler.CreateUser)
			r.Route("/{userID}", func(r chi.Router) {
				r.Get("/", router.handler.GetUser)
				r.Post("/ratings", router.handler.AddRating)
				r.Post("/preferences", router.handler.AddPreferences)
				r.Get("/similar", router.handler.GetSimilarUsers)
				r.Get("/path/{movieID}", router.handler.GetRecommendationPath)
				r.Get("/analysis", router.handler.GetUserAnalysis)
			})
		})

		r.Route("/movies", func(r chi.Router) {
			r.Post("/", router.handler.CreateMovie)
			r.Get("/top", router.handler.GetTopMovies)
			r.Get("/{movieID}", router.handler.GetMovie)
		})

		r.Route("/genres", func(r chi.Router) {
			r.Get("/", router.handler.ListGenres)
			r.Post("/", router.handler.CreateGenre)
			r.Post("/rank", router.handler.RankGenres)
		})

		r.Route("/snapshot", func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitSnapshot())
			r.Post("/save", router.handler.SaveSnapshot)
			r.Post("/load", router.handler.LoadSnapshot)
		})
	})

	return r
}
