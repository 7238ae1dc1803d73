// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinegraph/internal/graph"
)

// formatVersion is written into every file snapshot.
const formatVersion = 1

// document is the on-disk file layout.
type document struct {
	Version int                `json:"version"`
	SavedAt time.Time          `json:"saved_at"`
	Users   []graph.UserRecord `json:"users"`
}

// FileStore keeps the snapshot in one JSON file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store writing to path. Parent directories are
// created on the first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Name implements recommend.SnapshotStore.
func (s *FileStore) Name() string { return BackendFile }

// Path returns the snapshot file location.
func (s *FileStore) Path() string { return s.path }

// SaveUsers writes records to a temporary file next to the target and
// renames it into place, so readers never observe a partial snapshot.
func (s *FileStore) SaveUsers(ctx context.Context, records []graph.UserRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []graph.UserRecord{}
	}

	data, err := json.MarshalIndent(document{
		Version: formatVersion,
		SavedAt: time.Now().UTC(),
		Users:   records,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename snapshot: %w", err)
	}
	return nil
}

// LoadUsers reads the snapshot. A missing file yields an empty slice.
func (s *FileStore) LoadUsers(ctx context.Context) ([]graph.UserRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	data, err := os.ReadFile(s.path)
	s.mu.Unlock()

	if errors.Is(err, fs.ErrNotExist) {
		return []graph.UserRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", s.path, err)
	}
	if doc.Version > formatVersion {
		return nil, fmt.Errorf("snapshot %s has unsupported version %d", s.path, doc.Version)
	}
	if doc.Users == nil {
		doc.Users = []graph.UserRecord{}
	}
	return doc.Users, nil
}

// Close implements Store. FileStore holds no open handles.
func (s *FileStore) Close() error { return nil }
