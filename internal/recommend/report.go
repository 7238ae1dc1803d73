// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package recommend

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/tomtom215/cinegraph/internal/graph"
)

// reportTopN bounds every ranked list in the diagnostic reports.
const reportTopN = 5

// GenreCount is a genre with an occurrence count.
type GenreCount struct {
	GenreID string `json:"genre_id"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
}

// RatedMovie is a movie with one user's rating of it.
type RatedMovie struct {
	graph.Movie
	UserRating int `json:"user_rating"`
}

// MovieActivity is a movie with how often and how well users rated it.
type MovieActivity struct {
	graph.Movie
	Ratings       int     `json:"ratings"`
	AverageRating float64 `json:"average_user_rating"`
}

// UserAnalysis summarizes one user's behavior.
type UserAnalysis struct {
	UserID             string              `json:"user_id"`
	Name               string              `json:"name"`
	RatingsCount       int                 `json:"ratings_count"`
	AverageRating      float64             `json:"average_rating"`
	RatingDistribution map[int]int         `json:"rating_distribution"`
	PreferredGenres    []string            `json:"preferred_genres"`
	RatedGenres        []GenreCount        `json:"rated_genres"`
	FavoriteMovies     []RatedMovie        `json:"favorite_movies"`
	SimilarUsers       []graph.SimilarUser `json:"similar_users"`
}

// SystemReport summarizes the whole graph.
type SystemReport struct {
	GeneratedAt           time.Time       `json:"generated_at"`
	Stats                 graph.Stats     `json:"stats"`
	Weights               Weights         `json:"weights"`
	AverageRatingsPerUser float64         `json:"average_ratings_per_user"`
	AverageUserRating     float64         `json:"average_user_rating"`
	MostRatedMovies       []MovieActivity `json:"most_rated_movies"`
	MostPreferredGenres   []GenreCount    `json:"most_preferred_genres"`
	TopRatedMovies        []graph.Movie   `json:"top_rated_movies"`
}

// AnalyzeUserBehavior summarizes a user's ratings and preferences. It has no
// side effects.
func (e *Engine) AnalyzeUserBehavior(userID string) (*UserAnalysis, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	u, err := e.store.User(userID)
	if err != nil {
		return nil, err
	}

	a := &UserAnalysis{
		UserID:             u.ID,
		Name:               u.Name,
		RatingsCount:       len(u.Ratings),
		RatingDistribution: make(map[int]int, graph.MaxRating),
		PreferredGenres:    u.PreferredGenres,
		FavoriteMovies:     []RatedMovie{},
	}
	for r := graph.MinRating; r <= graph.MaxRating; r++ {
		a.RatingDistribution[r] = 0
	}

	genreCounts := make(map[string]int)
	var sum int
	for movieID, r := range u.Ratings {
		sum += r
		a.RatingDistribution[r]++

		m, err := e.store.Movie(movieID)
		if err != nil {
			// Restored rating whose movie is not in the catalog yet.
			continue
		}
		a.FavoriteMovies = append(a.FavoriteMovies, RatedMovie{Movie: m, UserRating: r})
		if m.Genre != "" {
			genreCounts[m.Genre]++
		}
	}
	if a.RatingsCount > 0 {
		a.AverageRating = float64(sum) / float64(a.RatingsCount)
	}

	slices.SortFunc(a.FavoriteMovies, func(x, y RatedMovie) int {
		if c := cmp.Compare(y.UserRating, x.UserRating); c != 0 {
			return c
		}
		return cmp.Compare(x.ID, y.ID)
	})
	a.FavoriteMovies = truncate(a.FavoriteMovies, reportTopN)
	a.RatedGenres = truncate(e.rankGenres(genreCounts), reportTopN)

	similar, err := e.store.FindSimilarUsers(userID, 0)
	if err != nil {
		return nil, err
	}
	a.SimilarUsers = []graph.SimilarUser{}
	for _, s := range similar {
		if s.Similarity > 0 {
			a.SimilarUsers = append(a.SimilarUsers, s)
		}
	}
	a.SimilarUsers = truncate(a.SimilarUsers, 3)

	return a, nil
}

// GenerateSystemReport summarizes the graph. It has no side effects.
func (e *Engine) GenerateSystemReport() *SystemReport {
	e.mu.RLock()
	defer e.mu.RUnlock()

	r := &SystemReport{
		GeneratedAt: time.Now().UTC(),
		Stats:       e.store.Stats(),
		Weights:     e.hybrid.Weights(),
	}

	type tally struct {
		count int
		sum   int
	}
	movieTally := make(map[string]*tally)
	genrePrefs := make(map[string]int)
	var ratings, ratingSum int

	users := e.store.Users()
	for _, u := range users {
		for movieID, v := range u.Ratings {
			ratings++
			ratingSum += v
			if !e.store.HasMovie(movieID) {
				continue
			}
			t := movieTally[movieID]
			if t == nil {
				t = &tally{}
				movieTally[movieID] = t
			}
			t.count++
			t.sum += v
		}
		for _, g := range u.PreferredGenres {
			if e.store.HasGenre(g) {
				genrePrefs[g]++
			}
		}
	}

	if len(users) > 0 {
		r.AverageRatingsPerUser = float64(ratings) / float64(len(users))
	}
	if ratings > 0 {
		r.AverageUserRating = float64(ratingSum) / float64(ratings)
	}

	r.MostRatedMovies = make([]MovieActivity, 0, len(movieTally))
	for movieID, t := range movieTally {
		m, _ := e.store.Movie(movieID)
		r.MostRatedMovies = append(r.MostRatedMovies, MovieActivity{
			Movie:         m,
			Ratings:       t.count,
			AverageRating: float64(t.sum) / float64(t.count),
		})
	}
	slices.SortFunc(r.MostRatedMovies, func(x, y MovieActivity) int {
		if c := cmp.Compare(y.Ratings, x.Ratings); c != 0 {
			return c
		}
		if c := cmp.Compare(y.AverageRating, x.AverageRating); c != 0 {
			return c
		}
		return cmp.Compare(x.ID, y.ID)
	})
	r.MostRatedMovies = truncate(r.MostRatedMovies, reportTopN)
	r.MostPreferredGenres = truncate(e.rankGenres(genrePrefs), reportTopN)

	r.TopRatedMovies, _ = e.store.TopRatedMovies(reportTopN)

	return r
}

// rankGenres orders genre counts by count descending, then id.
func (e *Engine) rankGenres(counts map[string]int) []GenreCount {
	out := make([]GenreCount, 0, len(counts))
	for id, n := range counts {
		gc := GenreCount{GenreID: id, Name: id, Count: n}
		if g, err := e.store.Genre(id); err == nil {
			gc.Name = g.Name
		}
		out = append(out, gc)
	}
	slices.SortFunc(out, func(x, y GenreCount) int {
		if c := cmp.Compare(y.Count, x.Count); c != 0 {
			return c
		}
		return cmp.Compare(x.GenreID, y.GenreID)
	})
	return out
}

func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// String renders the analysis for humans.
func (a *UserAnalysis) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "User %s (%s)\n", a.Name, a.UserID)
	fmt.Fprintf(&b, "  ratings: %d, average %.2f\n", a.RatingsCount, a.AverageRating)

	b.WriteString("  distribution:")
	for r := graph.MinRating; r <= graph.MaxRating; r++ {
		fmt.Fprintf(&b, " %d:%d", r, a.RatingDistribution[r])
	}
	b.WriteString("\n")

	if len(a.PreferredGenres) > 0 {
		fmt.Fprintf(&b, "  preferred genres: %s\n", strings.Join(a.PreferredGenres, ", "))
	}
	if len(a.RatedGenres) > 0 {
		b.WriteString("  most rated genres:\n")
		for _, g := range a.RatedGenres {
			fmt.Fprintf(&b, "    %s: %d\n", g.Name, g.Count)
		}
	}
	if len(a.FavoriteMovies) > 0 {
		b.WriteString("  favorite movies:\n")
		for _, m := range a.FavoriteMovies {
			fmt.Fprintf(&b, "    %s (%d): %d\n", m.Title, m.Year, m.UserRating)
		}
	}
	if len(a.SimilarUsers) > 0 {
		b.WriteString("  similar users:\n")
		for _, s := range a.SimilarUsers {
			fmt.Fprintf(&b, "    %s: %.3f\n", s.UserID, s.Similarity)
		}
	}
	return b.String()
}

// String renders the report for humans.
func (r *SystemReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "System report (%s)\n", r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "  nodes: %d users, %d movies, %d genres\n", r.Stats.Users, r.Stats.Movies, r.Stats.Genres)
	fmt.Fprintf(&b, "  edges: %d total", r.Stats.TotalEdges)
	for _, t := range graph.EdgeTypes {
		fmt.Fprintf(&b, ", %d %s", r.Stats.Edges[t], t)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  hybrid weights: collaborative %.2f, content %.2f\n",
		r.Weights.Collaborative, r.Weights.ContentBased)
	fmt.Fprintf(&b, "  ratings per user: %.2f, average rating: %.2f\n",
		r.AverageRatingsPerUser, r.AverageUserRating)

	if len(r.MostRatedMovies) > 0 {
		b.WriteString("  most rated movies:\n")
		for _, m := range r.MostRatedMovies {
			fmt.Fprintf(&b, "    %s: %d ratings, average %.2f\n", m.Title, m.Ratings, m.AverageRating)
		}
	}
	if len(r.MostPreferredGenres) > 0 {
		b.WriteString("  most preferred genres:\n")
		for _, g := range r.MostPreferredGenres {
			fmt.Fprintf(&b, "    %s: %d\n", g.Name, g.Count)
		}
	}
	if len(r.TopRatedMovies) > 0 {
		b.WriteString("  top rated movies:\n")
		for _, m := range r.TopRatedMovies {
			fmt.Fprintf(&b, "    %s (%d): %.1f\n", m.Title, m.Year, m.Rating)
		}
	}
	return b.String()
}
