// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package genrerank

import (
	"maps"
	"slices"
	"testing"
)

func watch(genres ...string) WatchlistEntry {
	return WatchlistEntry{Genres: genres}
}

func TestRank_Empty(t *testing.T) {
	for name, req := range map[string]Request{
		"no input":       {},
		"blank genres":   {Watchlist: []WatchlistEntry{watch("", "")}},
		"no preferences": {Users: []User{{Name: "ann"}}},
	} {
		t.Run(name, func(t *testing.T) {
			r := Rank(req)
			if !r.Fallback {
				t.Error("Fallback = false, want true")
			}
			if !slices.Equal(r.OrderedGenres, DefaultGenres) {
				t.Errorf("OrderedGenres = %v, want %v", r.OrderedGenres, DefaultGenres)
			}
			if len(r.Edges) != 0 || len(r.GenreCounts) != 0 {
				t.Errorf("expected empty analysis, got %+v", r)
			}
		})
	}
}

func TestRank_FallbackIsACopy(t *testing.T) {
	r := Rank(Request{})
	r.OrderedGenres[0] = "Western"
	if DefaultGenres[0] != "Action" {
		t.Errorf("DefaultGenres[0] = %q, want Action", DefaultGenres[0])
	}
}

func TestRank(t *testing.T) {
	req := Request{
		Watchlist: []WatchlistEntry{
			watch("Action", "Comedy"),
			watch("Action"),
			watch("Drama", "Comedy"),
		},
		Users: []User{{Preferences: Preferences{Movies: "Action"}}},
	}

	r := Rank(req)

	wantCounts := map[string]int{"Action": 3, "Comedy": 2, "Drama": 1}
	if !maps.Equal(r.GenreCounts, wantCounts) {
		t.Errorf("GenreCounts = %v, want %v", r.GenreCounts, wantCounts)
	}
	if r.Source != "Action" {
		t.Errorf("Source = %q, want Action", r.Source)
	}

	// Action-Comedy 2, Action-Drama 3, Comedy-Drama 2.
	wantDist := map[string]float64{"Action": 0, "Comedy": 2, "Drama": 3}
	if !maps.Equal(r.Distances, wantDist) {
		t.Errorf("Distances = %v, want %v", r.Distances, wantDist)
	}
	if want := []string{"Action", "Comedy", "Drama"}; !slices.Equal(r.OrderedGenres, want) {
		t.Errorf("OrderedGenres = %v, want %v", r.OrderedGenres, want)
	}

	wantScores := map[string]float64{"Action": 3, "Comedy": 0.67, "Drama": 0.25}
	if !maps.Equal(r.Scores, wantScores) {
		t.Errorf("Scores = %v, want %v", r.Scores, wantScores)
	}

	wantEdges := []Edge{
		{From: "Action", To: "Comedy", Weight: 2},
		{From: "Action", To: "Drama", Weight: 3},
		{From: "Comedy", To: "Drama", Weight: 2},
	}
	if !slices.Equal(r.Edges, wantEdges) {
		t.Errorf("Edges = %v, want %v", r.Edges, wantEdges)
	}
}

func TestRank_ShortestPaths(t *testing.T) {
	// A-C costs 5 directly and 6 through B.
	req := Request{Watchlist: []WatchlistEntry{
		watch("A"), watch("A"), watch("A"), watch("A"), watch("A"),
		watch("B"), watch("B", "C"), watch("B"),
	}}
	r := Rank(req)

	want := map[string]float64{"A": 0, "B": 3, "C": 5}
	if !maps.Equal(r.Distances, want) {
		t.Errorf("Distances = %v, want %v", r.Distances, want)
	}
}

func TestRank_Ties(t *testing.T) {
	req := Request{Watchlist: []WatchlistEntry{watch("Horror", "Comedy", "Drama")}}
	r := Rank(req)

	if r.Source != "Comedy" {
		t.Errorf("Source = %q, want Comedy", r.Source)
	}
	if want := []string{"Comedy", "Drama", "Horror"}; !slices.Equal(r.OrderedGenres, want) {
		t.Errorf("OrderedGenres = %v, want %v", r.OrderedGenres, want)
	}
	for _, g := range []string{"Drama", "Horror"} {
		if r.Distances[g] != 1 {
			t.Errorf("Distances[%s] = %v, want 1", g, r.Distances[g])
		}
	}
}

func TestOrder_SingleGenre(t *testing.T) {
	got := Order(Request{Users: []User{{Preferences: Preferences{Movies: "Noir"}}}})
	if !slices.Equal(got, []string{"Noir"}) {
		t.Errorf("Order() = %v, want [Noir]", got)
	}
}
