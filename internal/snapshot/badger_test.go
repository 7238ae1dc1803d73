// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package snapshot

import (
	"context"
	"fmt"
	"testing"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/cinegraph/internal/graph"
)

// openSmallBadger opens an in-memory database whose transactions fill up
// after roughly a thousand user records.
func openSmallBadger(t *testing.T) (*badger.DB, *BadgerStore) {
	t.Helper()
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithMemTableSize(1 << 20).
		WithValueThreshold(1 << 10).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("badger.Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db, NewBadgerStore(db)
}

func countKeys(t *testing.T, db *badger.DB, prefix string) int {
	t.Helper()
	var n int
	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	return n
}

func manyRecords(n int) []graph.UserRecord {
	out := make([]graph.UserRecord, n)
	for i := range out {
		out[i] = graph.UserRecord{
			ID:              fmt.Sprintf("u%05d", i),
			Name:            fmt.Sprintf("User %d", i),
			PreferredGenres: []string{"drama", "comedy"},
			Ratings:         map[string]int{"m1": 1 + i%5, "m2": 5 - i%5},
		}
	}
	return out
}

func TestBadgerStore_LargeSnapshot(t *testing.T) {
	db, store := openSmallBadger(t)
	ctx := context.Background()

	large := manyRecords(5000)
	if err := store.SaveUsers(ctx, large); err != nil {
		t.Fatalf("SaveUsers(5000) error = %v", err)
	}
	got, err := store.LoadUsers(ctx)
	if err != nil {
		t.Fatalf("LoadUsers() error = %v", err)
	}
	if len(got) != len(large) {
		t.Fatalf("LoadUsers() returned %d users, want %d", len(got), len(large))
	}
	if got[0].ID != "u00000" || got[4999].ID != "u04999" {
		t.Errorf("order = %s .. %s, want u00000 .. u04999", got[0].ID, got[4999].ID)
	}

	small := sampleRecords()
	if err := store.SaveUsers(ctx, small); err != nil {
		t.Fatalf("SaveUsers(small) error = %v", err)
	}
	got, err = store.LoadUsers(ctx)
	if err != nil {
		t.Fatalf("LoadUsers() error = %v", err)
	}
	equalRecords(t, got, small)

	if n := countKeys(t, db, userKeyPrefix); n != len(small) {
		t.Errorf("user keys = %d, want %d after the previous generation is removed", n, len(small))
	}
}

func TestBadgerStore_IncompleteSaveIgnored(t *testing.T) {
	db, store := openSmallBadger(t)
	ctx := context.Background()

	first := sampleRecords()
	if err := store.SaveUsers(ctx, first); err != nil {
		t.Fatalf("SaveUsers() error = %v", err)
	}

	// Records of a save that stopped before switching generations.
	err := db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(2, 7), []byte("not json"))
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := store.LoadUsers(ctx)
	if err != nil {
		t.Fatalf("LoadUsers() error = %v", err)
	}
	equalRecords(t, got, first)

	second := first[:1]
	if err := store.SaveUsers(ctx, second); err != nil {
		t.Fatalf("second SaveUsers() error = %v", err)
	}
	got, err = store.LoadUsers(ctx)
	if err != nil {
		t.Fatalf("LoadUsers() after second save error = %v", err)
	}
	equalRecords(t, got, second)
	if n := countKeys(t, db, userKeyPrefix); n != len(second) {
		t.Errorf("user keys = %d, want %d", n, len(second))
	}
}

func TestBadgerStore_EmptyDatabase(t *testing.T) {
	_, store := openSmallBadger(t)
	got, err := store.LoadUsers(context.Background())
	if err != nil {
		t.Fatalf("LoadUsers() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("LoadUsers() = %v, want empty non-nil slice", got)
	}
}
