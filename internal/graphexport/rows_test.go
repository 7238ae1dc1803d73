// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graphexport

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinegraph/internal/recommend"
)

func testDump(t *testing.T) recommend.GraphDump {
	t.Helper()
	e, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	steps := []error{
		e.AddGenre("drama", "Drama"),
		e.AddGenre("comedy", "Comedy"),
		e.AddMovie("m1", "One", "drama", 4.5, 2001),
		e.AddMovie("m2", "Two", "comedy", 3.5, 2002),
		e.AddUser("u1", "Ann", []string{"drama", "drama", "comedy"}),
		e.AddUserRating("u1", "m1", 5),
		e.AddUserRating("u1", "m2", 2),
		e.AddUserRating("u1", "m2", 3),
	}
	for i, err := range steps {
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	return e.Dump()
}

func TestBuildRows(t *testing.T) {
	rows := BuildRows(testDump(t))

	if len(rows.Genres) != 2 || len(rows.Movies) != 2 || len(rows.Users) != 1 {
		t.Fatalf("nodes = %d/%d/%d, want 2/2/1", len(rows.Genres), len(rows.Movies), len(rows.Users))
	}
	if got := rows.Movies[0]["year"]; got != int64(2001) {
		t.Errorf("movie year = %#v, want int64(2001)", got)
	}

	if len(rows.Rated) != 2 {
		t.Fatalf("len(Rated) = %d, want 2", len(rows.Rated))
	}
	for _, r := range rows.Rated {
		if r["movie_id"] == "m2" && r["rating"] != int64(3) {
			t.Errorf("m2 rating = %v, want latest rating 3", r["rating"])
		}
	}

	if len(rows.Prefers) != 2 {
		t.Fatalf("len(Prefers) = %d, want 2", len(rows.Prefers))
	}
	if rows.Prefers[0]["genre_id"] != "drama" || rows.Prefers[0]["count"] != int64(2) {
		t.Errorf("Prefers[0] = %v, want drama x2", rows.Prefers[0])
	}
	if rows.Prefers[1]["count"] != int64(1) {
		t.Errorf("Prefers[1] = %v, want count 1", rows.Prefers[1])
	}

	if len(rows.BelongsTo) != 2 {
		t.Errorf("len(BelongsTo) = %d, want 2", len(rows.BelongsTo))
	}
	if rows.Len() != 11 {
		t.Errorf("Len() = %d, want 11", rows.Len())
	}
}

func TestBuildRows_Empty(t *testing.T) {
	rows := BuildRows(recommend.GraphDump{})
	if rows.Len() != 0 {
		t.Errorf("Len() = %d, want 0", rows.Len())
	}
	if rows.Rated == nil || rows.Prefers == nil || rows.BelongsTo == nil {
		t.Error("relationship rows must be non-nil for UNWIND")
	}
}
