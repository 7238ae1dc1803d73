// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package algorithms

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/tomtom215/cinegraph/internal/graph"
)

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func ids(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

// newStore builds a catalog with three genres and six movies:
//
//	action: a1 (4.0), a2 (3.5)
//	drama:  d1 (4.0), d2 (4.8)
//	comedy: c1 (4.0), c2 (3.0)
func newStore(t *testing.T) *graph.Store {
	t.Helper()
	s := graph.NewStore()
	mustNoErr(t, s.AddGenre("action", "Action"))
	mustNoErr(t, s.AddGenre("drama", "Drama"))
	mustNoErr(t, s.AddGenre("comedy", "Comedy"))
	mustNoErr(t, s.AddMovie("a1", "Heat", "action", 4.0, 1995))
	mustNoErr(t, s.AddMovie("a2", "Ronin", "action", 3.5, 1998))
	mustNoErr(t, s.AddMovie("d1", "Magnolia", "drama", 4.0, 1999))
	mustNoErr(t, s.AddMovie("d2", "Amadeus", "drama", 4.8, 1984))
	mustNoErr(t, s.AddMovie("c1", "Airplane!", "comedy", 4.0, 1980))
	mustNoErr(t, s.AddMovie("c2", "Spaceballs", "comedy", 3.0, 1987))
	return s
}

func TestCollaborative_RecommendsFromSimilarUsers(t *testing.T) {
	// Users with no genre data, only ratings.
	s := graph.NewStore()
	mustNoErr(t, s.AddMovie("M1", "One", "", 3, 2000))
	mustNoErr(t, s.AddMovie("M2", "Two", "", 3, 2000))
	mustNoErr(t, s.AddMovie("M3", "Three", "", 3, 2000))
	mustNoErr(t, s.AddUser("U1", "Ann", nil))
	mustNoErr(t, s.AddUser("U2", "Bob", nil))
	mustNoErr(t, s.AddRating("U1", "M1", 5))
	mustNoErr(t, s.AddRating("U1", "M2", 3))
	mustNoErr(t, s.AddRating("U2", "M1", 4))
	mustNoErr(t, s.AddRating("U2", "M3", 5))

	common, err := s.CommonMovies("U1", "U2")
	mustNoErr(t, err)
	if !slices.Equal(common, []string{"M1"}) {
		t.Errorf("CommonMovies = %v, want [M1]", common)
	}
	if sim, _ := s.UserSimilarity("U1", "U2"); sim <= 0 {
		t.Errorf("UserSimilarity = %v, want > 0", sim)
	}

	recs, err := NewCollaborative(DefaultCollaborativeConfig()).Recommend(s, "U1", 10)
	mustNoErr(t, err)
	if got := ids(recs); !slices.Equal(got, []string{"M3"}) {
		t.Errorf("Recommend(U1) = %v, want [M3]", got)
	}
	// Single common movie: similarity is exactly 1, score = 1 * 5.
	if math.Abs(recs[0].Score-5) > 1e-9 {
		t.Errorf("score = %v, want 5", recs[0].Score)
	}
}

func TestCollaborative_ScoresAndTieBreaks(t *testing.T) {
	s := newStore(t)
	for _, id := range []string{"u1", "u2", "u3", "u4"} {
		mustNoErr(t, s.AddUser(id, id, nil))
	}
	mustNoErr(t, s.AddRating("u1", "a1", 5))
	// u2 and u3 agree perfectly with u1 on a1 (similarity 1).
	mustNoErr(t, s.AddRating("u2", "a1", 4))
	mustNoErr(t, s.AddRating("u2", "d1", 3))
	mustNoErr(t, s.AddRating("u2", "c1", 3))
	mustNoErr(t, s.AddRating("u3", "a1", 2))
	mustNoErr(t, s.AddRating("u3", "d1", 2))
	mustNoErr(t, s.AddRating("u3", "d2", 5))
	// u4 shares nothing with u1.
	mustNoErr(t, s.AddRating("u4", "c2", 5))

	recs, err := NewCollaborative(DefaultCollaborativeConfig()).Recommend(s, "u1", 10)
	mustNoErr(t, err)

	// d1 = 3+2 = 5, d2 = 5, c1 = 3. d1 and d2 tie on score; d2 has the
	// higher aggregate rating.
	want := []string{"d2", "d1", "c1"}
	if got := ids(recs); !slices.Equal(got, want) {
		t.Errorf("Recommend(u1) = %v, want %v", got, want)
	}
}

func TestCollaborative_SimilarityFloor(t *testing.T) {
	s := newStore(t)
	mustNoErr(t, s.AddUser("u1", "Ann", nil))
	mustNoErr(t, s.AddUser("u2", "Bob", nil))
	mustNoErr(t, s.AddRating("u1", "a1", 5))
	mustNoErr(t, s.AddRating("u2", "a1", 1))
	mustNoErr(t, s.AddRating("u2", "d1", 5))

	// Similarity over a single common movie is 1, so a floor of 1 excludes
	// the only neighbor.
	strict := NewCollaborative(CollaborativeConfig{NeighborhoodDepth: 2, SimilarityFloor: 1})
	recs, err := strict.Recommend(s, "u1", 5)
	mustNoErr(t, err)
	if len(recs) != 0 {
		t.Errorf("Recommend() = %v, want empty", ids(recs))
	}
	if recs == nil {
		t.Error("Recommend() returned nil, want empty slice")
	}
}

func TestContent_RanksByPreferenceOrder(t *testing.T) {
	s := newStore(t)
	mustNoErr(t, s.AddUser("u1", "Ann", []string{"action", "drama"}))
	mustNoErr(t, s.AddRating("u1", "a2", 4))

	recs, err := NewContent().Recommend(s, "u1", 10)
	mustNoErr(t, err)

	// action weighs 1, drama 1/2, comedy 0. Comedy movies stay eligible.
	want := []string{"a1", "d2", "d1", "c1", "c2"}
	if got := ids(recs); !slices.Equal(got, want) {
		t.Errorf("Recommend(u1) = %v, want %v", got, want)
	}
}

func TestContent_ActionAboveComedyAtEqualRating(t *testing.T) {
	s := newStore(t)
	mustNoErr(t, s.AddUser("u1", "Ann", []string{"action", "drama"}))

	recs, err := NewContent().Recommend(s, "u1", 10)
	mustNoErr(t, err)

	pos := func(id string) int { return slices.Index(ids(recs), id) }
	// a1 and c1 share a 4.0 aggregate rating.
	if pos("a1") < 0 || pos("c1") < 0 || pos("a1") > pos("c1") {
		t.Errorf("order = %v, want a1 before c1", ids(recs))
	}
}

func TestContent_ZeroScoreCandidates(t *testing.T) {
	s := newStore(t)
	mustNoErr(t, s.AddUser("u1", "Ann", nil))
	mustNoErr(t, s.AddUser("u2", "Bob", []string{"drama"}))
	for _, id := range []string{"a1", "a2", "d1", "d2", "c1", "c2"} {
		mustNoErr(t, s.AddRating("u2", id, 3))
	}

	recs, err := NewContent().Recommend(s, "u1", 10)
	mustNoErr(t, err)
	// No preferences: every movie scores zero and ties break on rating, then id.
	if got, want := ids(recs), []string{"d2", "a1", "c1", "d1", "a2", "c2"}; !slices.Equal(got, want) {
		t.Errorf("Recommend(u1) = %v, want %v", got, want)
	}
	for _, r := range recs {
		if r.Score != 0 {
			t.Errorf("%s score = %v, want 0", r.ID, r.Score)
		}
	}

	recs, err = NewContent().Recommend(s, "u2", 10)
	mustNoErr(t, err)
	if len(recs) != 0 {
		t.Errorf("Recommend(u2) = %v, want empty when every movie is rated", ids(recs))
	}
}

func TestContent_RepeatedAndMissingGenres(t *testing.T) {
	s := newStore(t)
	mustNoErr(t, s.AddUser("u1", "Ann", []string{"horror", "comedy", "drama", "comedy"}))

	w := GenreWeights(s, []string{"horror", "comedy", "drama", "comedy"})
	if got, want := w["comedy"], 1.0/2+1.0/4; math.Abs(got-want) > 1e-9 {
		t.Errorf("comedy weight = %v, want %v", got, want)
	}
	if _, ok := w["horror"]; ok {
		t.Error("missing genre should carry no weight")
	}

	recs, err := NewContent().Recommend(s, "u1", 2)
	mustNoErr(t, err)
	if got, want := ids(recs), []string{"c1", "c2"}; !slices.Equal(got, want) {
		t.Errorf("Recommend(u1, 2) = %v, want %v", got, want)
	}
}

func TestHybrid_Blend(t *testing.T) {
	s := newStore(t)
	mustNoErr(t, s.AddUser("u1", "Ann", []string{"comedy"}))
	mustNoErr(t, s.AddUser("u2", "Bob", nil))
	mustNoErr(t, s.AddRating("u1", "a1", 5))
	mustNoErr(t, s.AddRating("u2", "a1", 5))
	mustNoErr(t, s.AddRating("u2", "d1", 4))

	collab := NewCollaborative(DefaultCollaborativeConfig())
	content := NewContent()

	tests := []struct {
		name    string
		weights Weights
		first   string
	}{
		{"collaborative only", Weights{Collaborative: 1, ContentBased: 0}, "d1"},
		{"content only", Weights{Collaborative: 0, ContentBased: 1}, "c1"},
		{"negative content inverts", Weights{Collaborative: 0, ContentBased: -1}, "d2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHybrid(collab, content, tt.weights)
			recs, err := h.Recommend(s, "u1", 10)
			mustNoErr(t, err)
			if len(recs) == 0 || recs[0].ID != tt.first {
				t.Errorf("first = %v, want %s", ids(recs), tt.first)
			}
			if slices.Contains(ids(recs), "a1") {
				t.Error("rated movie a1 recommended")
			}
		})
	}

	h := NewHybrid(collab, content, DefaultWeights())
	recs, err := h.Recommend(s, "u1", 10)
	mustNoErr(t, err)
	// d1 and c1 both score 0.5 and share a 4.0 rating, so id decides.
	if got := ids(recs)[:2]; !slices.Equal(got, []string{"c1", "d1"}) {
		t.Errorf("top two = %v, want [c1 d1]", got)
	}
}

func TestStrategies_CommonContract(t *testing.T) {
	s := newStore(t)
	mustNoErr(t, s.AddUser("u1", "Ann", []string{"drama"}))
	mustNoErr(t, s.AddUser("u2", "Bob", nil))
	mustNoErr(t, s.AddRating("u1", "d1", 4))
	mustNoErr(t, s.AddRating("u2", "d1", 4))
	mustNoErr(t, s.AddRating("u2", "a1", 3))

	collab := NewCollaborative(DefaultCollaborativeConfig())
	content := NewContent()
	strategies := []Strategy{collab, content, NewHybrid(collab, content, DefaultWeights())}

	for _, st := range strategies {
		t.Run(st.Name(), func(t *testing.T) {
			if _, err := st.Recommend(s, "u1", 0); !errors.Is(err, graph.ErrInvalidArgument) {
				t.Errorf("limit 0 err = %v, want ErrInvalidArgument", err)
			}
			if _, err := st.Recommend(s, "ghost", 3); !errors.Is(err, graph.ErrNotFound) {
				t.Errorf("unknown user err = %v, want ErrNotFound", err)
			}

			first, err := st.Recommend(s, "u1", 3)
			mustNoErr(t, err)
			if len(first) > 3 {
				t.Errorf("len = %d, want <= 3", len(first))
			}
			if slices.Contains(ids(first), "d1") {
				t.Error("rated movie d1 recommended")
			}

			second, err := st.Recommend(s, "u1", 3)
			mustNoErr(t, err)
			if !slices.Equal(ids(first), ids(second)) {
				t.Errorf("non-deterministic: %v then %v", ids(first), ids(second))
			}
		})
	}
}
