// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	"errors"
	"maps"
	"slices"
	"testing"
)

func TestNewStoreFromRecords_RoundTrip(t *testing.T) {
	src := newRatedStore(t)
	mustNoErr(t, src.AddGenrePreference("u1", "g2"))

	records := src.UserRecords()
	dst, err := NewStoreFromRecords(records)
	mustNoErr(t, err)

	if got := dst.UserIDs(); !slices.Equal(got, []string{"u1", "u2", "u3"}) {
		t.Errorf("UserIDs() = %v, want [u1 u2 u3]", got)
	}
	for _, want := range src.Users() {
		got, err := dst.User(want.ID)
		mustNoErr(t, err)
		if got.Name != want.Name {
			t.Errorf("%s Name = %q, want %q", want.ID, got.Name, want.Name)
		}
		if !slices.Equal(got.PreferredGenres, want.PreferredGenres) {
			t.Errorf("%s PreferredGenres = %v, want %v", want.ID, got.PreferredGenres, want.PreferredGenres)
		}
		if !maps.Equal(got.Ratings, want.Ratings) {
			t.Errorf("%s Ratings = %v, want %v", want.ID, got.Ratings, want.Ratings)
		}
	}

	// The restored store holds users only, so no edge can exist yet.
	if st := dst.Stats(); st.Movies != 0 || st.Genres != 0 || st.TotalEdges != 0 {
		t.Errorf("Stats() = %+v, want users only and no edges", st)
	}
}

func TestNewStoreFromRecords_AttachesCatalogLater(t *testing.T) {
	dst, err := NewStoreFromRecords([]UserRecord{
		{ID: "u1", Name: "Ann", PreferredGenres: []string{"g1", "g1"}, Ratings: map[string]int{"m1": 4}},
	})
	mustNoErr(t, err)

	mustNoErr(t, dst.AddGenre("g1", "Action"))
	mustNoErr(t, dst.AddMovie("m1", "Heat", "g1", 4.5, 1995))

	st := dst.Stats()
	if st.Edges[EdgePrefers] != 2 {
		t.Errorf("prefers = %d, want 2", st.Edges[EdgePrefers])
	}
	if st.Edges[EdgeRated] != 1 {
		t.Errorf("rated = %d, want 1", st.Edges[EdgeRated])
	}
	if st.Edges[EdgeBelongsTo] != 1 {
		t.Errorf("belongs_to = %d, want 1", st.Edges[EdgeBelongsTo])
	}

	// Re-rating after the attach still updates in place.
	mustNoErr(t, dst.AddRating("u1", "m1", 2))
	if got := dst.Stats().Edges[EdgeRated]; got != 1 {
		t.Errorf("rated after re-rate = %d, want 1", got)
	}
}

func TestNewStoreFromRecords_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		records []UserRecord
		wantErr error
	}{
		{
			name:    "duplicate id",
			records: []UserRecord{{ID: "u1"}, {ID: "u1"}},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "empty id",
			records: []UserRecord{{ID: ""}},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "rating out of range",
			records: []UserRecord{{ID: "u1", Ratings: map[string]int{"m1": 9}}},
			wantErr: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStoreFromRecords(tt.records)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if s != nil {
				t.Error("store should be nil on error")
			}
		})
	}
}
