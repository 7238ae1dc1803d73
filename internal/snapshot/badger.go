// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinegraph/internal/graph"
)

// Each save writes a new generation of user records and then moves the
// generation pointer in one small transaction. Loads read the generation the
// pointer names, so a save that fails halfway leaves the previous snapshot
// intact. Keys carry a zero-padded position so badger's sorted iteration
// returns users in insertion order.
const (
	userKeyPrefix = "user:"
	generationKey = "meta:generation"
)

func generationPrefix(gen uint64) []byte {
	return []byte(fmt.Sprintf("%s%010d:", userKeyPrefix, gen))
}

func userKey(gen uint64, pos int) []byte {
	return []byte(fmt.Sprintf("%s%010d:%010d", userKeyPrefix, gen, pos))
}

// BadgerStore keeps one record per user in BadgerDB.
type BadgerStore struct {
	db     *badger.DB
	ownsDB bool
}

// NewBadgerStore wraps an already open database. Close leaves it open.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// OpenBadgerStore opens (or creates) a database at dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // badger's own logger is too chatty

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for snapshots: %w", err)
	}
	return &BadgerStore{db: db, ownsDB: true}, nil
}

// Name implements recommend.SnapshotStore.
func (s *BadgerStore) Name() string { return BackendBadger }

// SaveUsers writes records as a new generation and makes it current. The
// records are spread over as many transactions as badger needs, so the
// snapshot size is not bound by the per-transaction limit.
func (s *BadgerStore) SaveUsers(ctx context.Context, records []graph.UserRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	values := make([][]byte, len(records))
	for i, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal user %s: %w", rec.ID, err)
		}
		values[i] = data
	}

	current, err := s.currentGeneration()
	if err != nil {
		return err
	}
	next := current + 1

	// Leftovers of an earlier failed save may share the next generation.
	if err := s.deleteGenerationsExcept(current); err != nil {
		return fmt.Errorf("remove incomplete snapshot: %w", err)
	}

	w := newTxnWriter(s.db)
	defer w.discard()
	for i, data := range values {
		key := userKey(next, i)
		if err := w.apply(func(txn *badger.Txn) error { return txn.Set(key, data) }); err != nil {
			return fmt.Errorf("set user %s: %w", records[i].ID, err)
		}
		if i%1000 == 999 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
	if err := w.commit(); err != nil {
		return fmt.Errorf("commit users: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(generationKey), []byte(strconv.FormatUint(next, 10)))
	})
	if err != nil {
		return fmt.Errorf("switch snapshot generation: %w", err)
	}

	// The new snapshot is already current. Stale generations that survive a
	// failed cleanup are never read and are removed by the next save.
	_ = s.deleteGenerationsExcept(next)
	return nil
}

// LoadUsers returns the users of the current generation in their saved order.
func (s *BadgerStore) LoadUsers(ctx context.Context) ([]graph.UserRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := []graph.UserRecord{}
	err := s.db.View(func(txn *badger.Txn) error {
		gen, err := readGeneration(txn)
		if err != nil || gen == 0 {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := generationPrefix(gen)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var rec graph.UserRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return fmt.Errorf("decode %s: %w", item.Key(), err)
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return records, nil
}

func (s *BadgerStore) currentGeneration() (uint64, error) {
	var gen uint64
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		gen, err = readGeneration(txn)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("read snapshot generation: %w", err)
	}
	return gen, nil
}

// readGeneration returns the current generation, or 0 before the first save.
func readGeneration(txn *badger.Txn) (uint64, error) {
	item, err := txn.Get([]byte(generationKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var gen uint64
	err = item.Value(func(val []byte) error {
		var perr error
		gen, perr = strconv.ParseUint(string(val), 10, 64)
		return perr
	})
	return gen, err
}

// deleteGenerationsExcept removes every user record outside generation keep.
func (s *BadgerStore) deleteGenerationsExcept(keep uint64) error {
	var stale [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(userKeyPrefix)
		keepPrefix := generationPrefix(keep)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if !bytes.HasPrefix(it.Item().Key(), keepPrefix) {
				stale = append(stale, it.Item().KeyCopy(nil))
			}
		}
		return nil
	})
	if err != nil || len(stale) == 0 {
		return err
	}

	w := newTxnWriter(s.db)
	defer w.discard()
	for _, key := range stale {
		if err := w.apply(func(txn *badger.Txn) error { return txn.Delete(key) }); err != nil {
			return err
		}
	}
	return w.commit()
}

// txnWriter applies writes in a read-write transaction and commits it early
// whenever badger reports it full.
type txnWriter struct {
	db  *badger.DB
	txn *badger.Txn
}

func newTxnWriter(db *badger.DB) *txnWriter {
	return &txnWriter{db: db}
}

func (w *txnWriter) apply(op func(*badger.Txn) error) error {
	if w.txn == nil {
		w.txn = w.db.NewTransaction(true)
	}
	err := op(w.txn)
	if !errors.Is(err, badger.ErrTxnTooBig) {
		return err
	}
	if err := w.commit(); err != nil {
		return err
	}
	w.txn = w.db.NewTransaction(true)
	return op(w.txn)
}

func (w *txnWriter) commit() error {
	if w.txn == nil {
		return nil
	}
	err := w.txn.Commit()
	w.txn = nil
	return err
}

func (w *txnWriter) discard() {
	if w.txn != nil {
		w.txn.Discard()
		w.txn = nil
	}
}

// Close closes the database if this store opened it.
func (s *BadgerStore) Close() error {
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}
