// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package snapshot

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinegraph/internal/graph"
	"github.com/tomtom215/cinegraph/internal/recommend"
)

func sampleRecords() []graph.UserRecord {
	return []graph.UserRecord{
		{ID: "zed", Name: "Zed", PreferredGenres: []string{"drama", "drama"}, Ratings: map[string]int{"m1": 5, "m9": 1}},
		{ID: "amy", Name: "Amy", PreferredGenres: []string{}, Ratings: map[string]int{}},
		{ID: "bo", Name: "Bo", PreferredGenres: []string{"comedy"}, Ratings: map[string]int{"m2": 3}},
	}
}

func equalRecords(t *testing.T, got, want []graph.UserRecord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID || g.Name != w.Name {
			t.Errorf("[%d] = %s/%s, want %s/%s", i, g.ID, g.Name, w.ID, w.Name)
		}
		if len(g.PreferredGenres) != len(w.PreferredGenres) || !slices.Equal(g.PreferredGenres, w.PreferredGenres) {
			t.Errorf("[%d] PreferredGenres = %v, want %v", i, g.PreferredGenres, w.PreferredGenres)
		}
		if len(g.Ratings) != len(w.Ratings) || !maps.Equal(g.Ratings, w.Ratings) {
			t.Errorf("[%d] Ratings = %v, want %v", i, g.Ratings, w.Ratings)
		}
	}
}

func openBackends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	file, err := Open(Options{Backend: BackendFile, Path: filepath.Join(dir, "snap", "users.json")})
	if err != nil {
		t.Fatalf("Open(file) error = %v", err)
	}
	bdb, err := Open(Options{Backend: BackendBadger, Path: filepath.Join(dir, "badger")})
	if err != nil {
		t.Fatalf("Open(badger) error = %v", err)
	}
	t.Cleanup(func() {
		if err := bdb.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	return map[string]Store{BackendFile: file, BackendBadger: bdb}
}

func TestStores(t *testing.T) {
	ctx := context.Background()

	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if store.Name() != name {
				t.Errorf("Name() = %q, want %q", store.Name(), name)
			}

			empty, err := store.LoadUsers(ctx)
			if err != nil {
				t.Fatalf("LoadUsers() on fresh store error = %v", err)
			}
			if empty == nil || len(empty) != 0 {
				t.Errorf("LoadUsers() on fresh store = %#v, want empty slice", empty)
			}

			want := sampleRecords()
			if err := store.SaveUsers(ctx, want); err != nil {
				t.Fatalf("SaveUsers() error = %v", err)
			}
			got, err := store.LoadUsers(ctx)
			if err != nil {
				t.Fatalf("LoadUsers() error = %v", err)
			}
			equalRecords(t, got, want)

			// A smaller snapshot fully replaces the larger one.
			if err := store.SaveUsers(ctx, want[2:]); err != nil {
				t.Fatalf("second SaveUsers() error = %v", err)
			}
			got, err = store.LoadUsers(ctx)
			if err != nil {
				t.Fatalf("second LoadUsers() error = %v", err)
			}
			equalRecords(t, got, want[2:])

			if err := store.SaveUsers(ctx, nil); err != nil {
				t.Fatalf("SaveUsers(nil) error = %v", err)
			}
			got, _ = store.LoadUsers(ctx)
			if len(got) != 0 {
				t.Errorf("LoadUsers() after empty save = %v", got)
			}
		})
	}
}

func TestStores_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.SaveUsers(ctx, sampleRecords()); err == nil {
				t.Error("SaveUsers() error = nil, want context error")
			}
			if _, err := store.LoadUsers(ctx); err == nil {
				t.Error("LoadUsers() error = nil, want context error")
			}
		})
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileStore(path).LoadUsers(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode snapshot") {
		t.Errorf("err = %v, want decode error", err)
	}
}

func TestFileStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "users.json"))
	for i := 0; i < 3; i++ {
		if err := store.SaveUsers(context.Background(), sampleRecords()); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "users.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir contents = %v, want [users.json]", names)
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"default backend is file", Options{Path: "x.json"}, false},
		{"missing path", Options{Backend: BackendFile}, true},
		{"unknown backend", Options{Backend: "s3", Path: "x"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && s.Name() != BackendFile {
				t.Errorf("Name() = %q, want file", s.Name())
			}
		})
	}
}

func TestEngineRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, store := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			src, err := recommend.NewEngine(nil, zerolog.Nop())
			if err != nil {
				t.Fatal(err)
			}
			if err := recommend.SeedSampleCatalog(src); err != nil {
				t.Fatal(err)
			}
			if err := recommend.SeedSampleUsers(src); err != nil {
				t.Fatal(err)
			}
			src.SetSnapshotStore(store)
			if err := src.SaveUserData(ctx); err != nil {
				t.Fatalf("SaveUserData() error = %v", err)
			}

			dst, err := recommend.NewEngine(nil, zerolog.Nop())
			if err != nil {
				t.Fatal(err)
			}
			dst.SetSnapshotStore(store)
			if err := dst.LoadUserData(ctx); err != nil {
				t.Fatalf("LoadUserData() error = %v", err)
			}
			if err := recommend.SeedSampleCatalog(dst); err != nil {
				t.Fatal(err)
			}

			if s, d := src.Stats(), dst.Stats(); s.TotalEdges != d.TotalEdges || s.Users != d.Users {
				t.Errorf("Stats() after round trip = %+v, want %+v", d, s)
			}

			want, _ := src.GetRecommendations(ctx, "user2", "hybrid", 5)
			got, err := dst.GetRecommendations(ctx, "user2", "hybrid", 5)
			if err != nil {
				t.Fatal(err)
			}
			for i := range want {
				if got[i].ID != want[i].ID {
					t.Errorf("recommendation[%d] = %s, want %s", i, got[i].ID, want[i].ID)
				}
			}
		})
	}
}
