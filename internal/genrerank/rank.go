// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

// Package genrerank orders genres by how closely their popularity tracks the
// most popular genre in a watchlist.
//
// Every pair of observed genres is joined by an edge of weight
// 1 + |count(a) - count(b)|, so genres with similar frequencies sit close
// together. Shortest distances from the most frequent genre are computed
// with Dijkstra's algorithm over the binary min-heap from internal/cache.
package genrerank

import (
	"cmp"
	"math"
	"slices"

	"github.com/tomtom215/cinegraph/internal/cache"
)

// DefaultGenres is returned when the input mentions no genre at all.
var DefaultGenres = []string{"Action", "Drama", "Comedy", "Thriller", "Sci-Fi"}

// WatchlistEntry is a movie on a watchlist.
type WatchlistEntry struct {
	Title  string   `json:"title,omitempty"`
	Genres []string `json:"genres"`
}

// Preferences holds a user's declared favorites.
type Preferences struct {
	Movies string `json:"movies,omitempty"`
}

// User is a viewer whose preferred movie genre counts once.
type User struct {
	Name        string      `json:"name,omitempty"`
	Preferences Preferences `json:"preferences"`
}

// Request is the ranking input.
type Request struct {
	Watchlist []WatchlistEntry `json:"watchlist"`
	Users     []User           `json:"users"`
}

// Edge is an undirected genre pair.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// Result is the full ranking analysis.
type Result struct {
	Source        string             `json:"source"`
	OrderedGenres []string           `json:"ordered_genres"`
	GenreCounts   map[string]int     `json:"genre_counts"`
	Distances     map[string]float64 `json:"distances"`
	Scores        map[string]float64 `json:"scores"`
	Edges         []Edge             `json:"edges"`
	Fallback      bool               `json:"fallback"`
}

// CountGenres tallies genre mentions. Empty genre names are ignored.
func CountGenres(req Request) map[string]int {
	counts := make(map[string]int)
	for _, entry := range req.Watchlist {
		for _, g := range entry.Genres {
			if g != "" {
				counts[g]++
			}
		}
	}
	for _, u := range req.Users {
		if g := u.Preferences.Movies; g != "" {
			counts[g]++
		}
	}
	return counts
}

// Rank analyzes the request. With no genre mentions it returns
// DefaultGenres in order with Fallback set and empty maps.
func Rank(req Request) *Result {
	counts := CountGenres(req)
	if len(counts) == 0 {
		return &Result{
			OrderedGenres: slices.Clone(DefaultGenres),
			GenreCounts:   map[string]int{},
			Distances:     map[string]float64{},
			Scores:        map[string]float64{},
			Edges:         []Edge{},
			Fallback:      true,
		}
	}

	genres := make([]string, 0, len(counts))
	for g := range counts {
		genres = append(genres, g)
	}
	slices.Sort(genres)

	source := mostFrequent(genres, counts)
	dist := shortestDistances(genres, counts, source)

	ordered := slices.Clone(genres)
	slices.SortStableFunc(ordered, func(a, b string) int {
		return cmp.Compare(dist[a], dist[b])
	})

	scores := make(map[string]float64, len(genres))
	for _, g := range genres {
		scores[g] = round2(float64(counts[g]) / (1 + dist[g]))
	}

	return &Result{
		Source:        source,
		OrderedGenres: ordered,
		GenreCounts:   counts,
		Distances:     dist,
		Scores:        scores,
		Edges:         edges(genres, counts),
		Fallback:      false,
	}
}

// Order returns only the ordered genre names.
func Order(req Request) []string {
	return Rank(req).OrderedGenres
}

// mostFrequent expects genres sorted by name so the first maximum wins ties.
func mostFrequent(genres []string, counts map[string]int) string {
	best := genres[0]
	for _, g := range genres[1:] {
		if counts[g] > counts[best] {
			best = g
		}
	}
	return best
}

func weight(counts map[string]int, a, b string) int {
	d := counts[a] - counts[b]
	if d < 0 {
		d = -d
	}
	return 1 + d
}

// shortestDistances runs Dijkstra over the complete genre graph.
func shortestDistances(genres []string, counts map[string]int, source string) map[string]float64 {
	dist := make(map[string]float64, len(genres))
	for _, g := range genres {
		dist[g] = math.Inf(1)
	}
	dist[source] = 0

	done := make(map[string]bool, len(genres))
	pq := cache.NewMinHeap[struct{}](0)
	pq.Push(source, struct{}{}, 0)

	for pq.Len() > 0 {
		cur := pq.Pop()
		if done[cur.Key] {
			continue
		}
		done[cur.Key] = true

		for _, next := range genres {
			if next == cur.Key || done[next] {
				continue
			}
			alt := dist[cur.Key] + float64(weight(counts, cur.Key, next))
			if alt < dist[next] {
				dist[next] = alt
				pq.Push(next, struct{}{}, alt)
			}
		}
	}
	return dist
}

// edges lists each unordered pair once, lexically smaller genre first.
func edges(genres []string, counts map[string]int) []Edge {
	out := make([]Edge, 0, len(genres)*(len(genres)-1)/2)
	for i, a := range genres {
		for _, b := range genres[i+1:] {
			out = append(out, Edge{From: a, To: b, Weight: weight(counts, a, b)})
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
