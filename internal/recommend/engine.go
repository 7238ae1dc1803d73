// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinegraph/internal/cache"
	"github.com/tomtom215/cinegraph/internal/graph"
	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/metrics"
	"github.com/tomtom215/cinegraph/internal/recommend/algorithms"
)

// ErrNoSnapshotStore is returned by SaveUserData and LoadUserData when no
// SnapshotStore has been configured.
var ErrNoSnapshotStore = errors.New("no snapshot store configured")

// Engine is the façade over the graph store and the recommendation
// strategies. It is safe for concurrent use: mutations and snapshot loads
// take an exclusive lock, queries a shared one.
type Engine struct {
	config *Config
	logger zerolog.Logger

	// mu guards store and the hybrid weights.
	mu    sync.RWMutex
	store *graph.Store

	collaborative *algorithms.Collaborative
	content       *algorithms.Content
	hybrid        *algorithms.Hybrid

	// responses memoizes recommendation lists until the next mutation.
	// Nil when caching is disabled.
	responses *cache.LRUCache[[]Recommendation]

	snapshots SnapshotStore
}

// NewEngine creates an engine over an empty graph.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg = cfg.Clone()

	collaborative := algorithms.NewCollaborative(cfg.Collaborative)
	content := algorithms.NewContent()

	e := &Engine{
		config:        cfg,
		logger:        logger.With().Str("component", "recommend").Logger(),
		store:         graph.NewStore(),
		collaborative: collaborative,
		content:       content,
		hybrid:        algorithms.NewHybrid(collaborative, content, cfg.Weights),
	}
	if cfg.Cache.Enabled {
		e.responses = cache.NewLRUCache[[]Recommendation](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// SetSnapshotStore configures where SaveUserData and LoadUserData read and
// write. It must be called before the engine is shared.
func (e *Engine) SetSnapshotStore(s SnapshotStore) {
	e.snapshots = s
}

// Config returns a copy of the engine configuration with the current weights.
func (e *Engine) Config() *Config {
	e.mu.RLock()
	defer e.mu.RUnlock()

	cfg := e.config.Clone()
	cfg.Weights = e.hybrid.Weights()
	return cfg
}

// ========== Queries ==========

// GetRecommendations returns at most maxResults unrated movies for a user,
// ranked by the named method. Requests above the configured maximum are
// capped to it.
func (e *Engine) GetRecommendations(ctx context.Context, userID, method string, maxResults int) ([]Recommendation, error) {
	start := time.Now()

	m, err := ParseMethod(method)
	if err != nil {
		metrics.RecordRecommendation("invalid", time.Since(start), 0, err)
		return nil, err
	}
	maxResults = e.EffectiveLimit(maxResults)

	logger := e.requestLogger(ctx, userID, m)

	e.mu.RLock()
	defer e.mu.RUnlock()

	key := cacheKey(userID, m, maxResults)
	if recs, ok := e.cached(key); ok {
		logger.Debug().Msg("cache hit")
		metrics.RecordRecommendation(m.String(), time.Since(start), len(recs), nil)
		return recs, nil
	}

	recs, err := e.strategy(m).Recommend(e.store, userID, maxResults)
	metrics.RecordRecommendation(m.String(), time.Since(start), len(recs), err)
	if err != nil {
		logger.Debug().Err(err).Msg("recommendation rejected")
		return nil, err
	}

	if e.responses != nil {
		e.responses.Add(key, cloneRecommendations(recs))
	}

	logger.Debug().
		Int("limit", maxResults).
		Int("returned", len(recs)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return recs, nil
}

func (e *Engine) strategy(m Method) algorithms.Strategy {
	switch m {
	case MethodCollaborative:
		return e.collaborative
	case MethodContent:
		return e.content
	default:
		return e.hybrid
	}
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) requestLogger(ctx context.Context, userID string, m Method) zerolog.Logger {
	c := e.logger.With().
		Str("user_id", userID).
		Str("method", m.String())
	if id := logging.RequestIDFromContext(ctx); id != "" {
		c = c.Str("request_id", id)
	}
	return c.Logger()
}

// EffectiveLimit returns the result count GetRecommendations works with for
// a requested maxResults.
func (e *Engine) EffectiveLimit(maxResults int) int {
	return min(maxResults, e.config.Limits.MaxResults)
}

// snapshotLogger is the engine logger with the snapshot backend and the
// request id from ctx.
func (e *Engine) snapshotLogger(ctx context.Context) zerolog.Logger {
	c := e.logger.With().Str("backend", e.snapshots.Name())
	if id := logging.RequestIDFromContext(ctx); id != "" {
		c = c.Str("request_id", id)
	}
	return c.Logger()
}

// FindSimilarUsers returns users whose similarity to userID is at least
// threshold, most similar first.
func (e *Engine) FindSimilarUsers(userID string, threshold float64) ([]graph.SimilarUser, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.FindSimilarUsers(userID, threshold)
}

// RecommendationPath returns the shortest user-to-movie connection.
func (e *Engine) RecommendationPath(userID, movieID string) ([]graph.NodeRef, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.RecommendationPath(userID, movieID)
}

// TopRatedMovies returns the catalog's highest rated movies.
func (e *Engine) TopRatedMovies(count int) ([]graph.Movie, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.TopRatedMovies(count)
}

// PopularMoviesByGenre returns the highest rated movies of one genre.
func (e *Engine) PopularMoviesByGenre(genreID string, count int) ([]graph.Movie, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.PopularMoviesByGenre(genreID, count)
}

// User returns a copy of one user.
func (e *Engine) User(id string) (graph.User, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.User(id)
}

// Movie returns one movie.
func (e *Engine) Movie(id string) (graph.Movie, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Movie(id)
}

// Genres returns every genre in insertion order.
func (e *Engine) Genres() []graph.Genre {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Genres()
}

// Stats returns node and edge counts.
func (e *Engine) Stats() graph.Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Stats()
}

// Dump copies the whole graph for export.
func (e *Engine) Dump() GraphDump {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return GraphDump{
		Users:  e.store.Users(),
		Movies: e.store.Movies(),
		Genres: e.store.Genres(),
		Edges:  e.store.AllEdges(),
	}
}

// ========== Mutations ==========

// AddUser inserts a user. Unknown genres in the preference list are kept
// without an edge.
func (e *Engine) AddUser(id, name string, preferredGenres []string) error {
	return e.mutate("add_user", func(s *graph.Store) error {
		return s.AddUser(id, name, preferredGenres)
	})
}

// AddMovie inserts a movie into the catalog.
func (e *Engine) AddMovie(id, title, genre string, rating float64, year int) error {
	return e.mutate("add_movie", func(s *graph.Store) error {
		return s.AddMovie(id, title, genre, rating, year)
	})
}

// AddGenre inserts a genre into the catalog.
func (e *Engine) AddGenre(id, name string) error {
	return e.mutate("add_genre", func(s *graph.Store) error {
		return s.AddGenre(id, name)
	})
}

// AddUserRating records or replaces a rating.
func (e *Engine) AddUserRating(userID, movieID string, rating int) error {
	return e.mutate("add_rating", func(s *graph.Store) error {
		return s.AddRating(userID, movieID, rating)
	})
}

// UpdateUserPreferences appends each genre to the user's preference list in
// order. Every id is checked first, so either all genres are appended or
// none is.
func (e *Engine) UpdateUserPreferences(userID string, genres []string) error {
	return e.mutate("update_preferences", func(s *graph.Store) error {
		if _, err := s.User(userID); err != nil {
			return err
		}
		for _, g := range genres {
			if _, err := s.Genre(g); err != nil {
				return err
			}
		}
		for _, g := range genres {
			if err := s.AddGenrePreference(userID, g); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetWeights replaces the hybrid blend coefficients. Any values are
// accepted, including negative ones.
func (e *Engine) SetWeights(collaborative, contentBased float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.hybrid.SetWeights(Weights{Collaborative: collaborative, ContentBased: contentBased})
	e.invalidate()

	e.logger.Info().
		Float64("collaborative", collaborative).
		Float64("content_based", contentBased).
		Msg("hybrid weights updated")
}

// Weights returns the current hybrid blend coefficients.
func (e *Engine) Weights() Weights {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hybrid.Weights()
}

// mutate runs fn under the write lock and invalidates cached responses when
// it succeeds.
func (e *Engine) mutate(operation string, fn func(*graph.Store) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	err := fn(e.store)
	metrics.RecordGraphMutation(operation, err)
	if err != nil {
		return err
	}

	e.invalidate()
	publishStats(e.store.Stats())
	return nil
}

// invalidate drops every cached response. Must be called with mu held.
func (e *Engine) invalidate() {
	if e.responses != nil {
		e.responses.Clear()
	}
}

// ========== Snapshots ==========

// SaveUserData writes every user (id, name, preferences, ratings) to the
// configured SnapshotStore.
func (e *Engine) SaveUserData(ctx context.Context) error {
	if e.snapshots == nil {
		return ErrNoSnapshotStore
	}
	start := time.Now()

	e.mu.RLock()
	records := e.store.UserRecords()
	e.mu.RUnlock()

	err := e.snapshots.SaveUsers(ctx, records)
	metrics.RecordSnapshot("save", e.snapshots.Name(), time.Since(start), len(records), err)
	if err != nil {
		return fmt.Errorf("save users to %s: %w", e.snapshots.Name(), err)
	}

	logger := e.snapshotLogger(ctx)
	logger.Info().
		Int("users", len(records)).
		Dur("duration", time.Since(start)).
		Msg("user snapshot saved")
	return nil
}

// LoadUserData replaces the whole graph with the users from the configured
// SnapshotStore. Movies and genres are not part of a snapshot and must be
// added again; ratings and preferences referring to them are reattached
// when they are. An invalid snapshot leaves the current graph untouched.
func (e *Engine) LoadUserData(ctx context.Context) error {
	if e.snapshots == nil {
		return ErrNoSnapshotStore
	}
	start := time.Now()

	records, err := e.snapshots.LoadUsers(ctx)
	if err == nil {
		var store *graph.Store
		if store, err = graph.NewStoreFromRecords(records); err == nil {
			e.mu.Lock()
			e.store = store
			e.invalidate()
			publishStats(store.Stats())
			e.mu.Unlock()
		}
	}

	metrics.RecordSnapshot("load", e.snapshots.Name(), time.Since(start), len(records), err)
	if err != nil {
		return fmt.Errorf("load users from %s: %w", e.snapshots.Name(), err)
	}

	logger := e.snapshotLogger(ctx)
	logger.Info().
		Int("users", len(records)).
		Dur("duration", time.Since(start)).
		Msg("user snapshot loaded")
	return nil
}

// ========== Helpers ==========

func cacheKey(userID string, m Method, limit int) string {
	return userID + "\x00" + m.String() + "\x00" + strconv.Itoa(limit)
}

// cached returns a copy of a cached response so callers may modify it.
func (e *Engine) cached(key string) ([]Recommendation, bool) {
	if e.responses == nil {
		return nil, false
	}
	recs, ok := e.responses.Get(key)
	metrics.RecordCacheLookup(ok)
	if !ok {
		return nil, false
	}
	return cloneRecommendations(recs), true
}

func cloneRecommendations(recs []Recommendation) []Recommendation {
	out := make([]Recommendation, len(recs))
	copy(out, recs)
	return out
}

func publishStats(st graph.Stats) {
	edges := make(map[string]int, len(st.Edges))
	for typ, n := range st.Edges {
		edges[string(typ)] = n
	}
	metrics.UpdateGraphGauges(map[string]int{
		graph.KindUser.String():  st.Users,
		graph.KindMovie.String(): st.Movies,
		graph.KindGenre.String(): st.Genres,
	}, edges)
}
