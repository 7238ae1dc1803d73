// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package snapshot

import (
	"fmt"
	"io"

	"github.com/tomtom215/cinegraph/internal/recommend"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

// Store is a SnapshotStore that may hold resources.
type Store interface {
	recommend.SnapshotStore
	io.Closer
}

// Options selects and locates a backend.
type Options struct {
	// Backend is BackendFile or BackendBadger.
	Backend string

	// Path is the JSON file for BackendFile and the database directory
	// for BackendBadger.
	Path string
}

// Open builds the configured backend.
func Open(opts Options) (Store, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("snapshot path is required")
	}
	switch opts.Backend {
	case BackendFile, "":
		return NewFileStore(opts.Path), nil
	case BackendBadger:
		return OpenBadgerStore(opts.Path)
	default:
		return nil, fmt.Errorf("unknown snapshot backend %q", opts.Backend)
	}
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*BadgerStore)(nil)
)
