// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package snapshot persists the user half of the recommendation graph.

Two backends implement recommend.SnapshotStore:

  - FileStore writes a single JSON document, replacing it atomically through
    a temporary file and rename.
  - BadgerStore keeps one key per user in an embedded BadgerDB, replacing the
    whole set inside one transaction.

Both preserve the order users were added in, so a restored graph iterates
users exactly as the saved one did. Movies and genres are never stored;
they belong to the catalog and are re-seeded after a load.

Use Open to build the backend named in configuration:

	store, err := snapshot.Open(snapshot.Options{Backend: "badger", Path: "/data/snapshot"})
	if err != nil {
		return err
	}
	defer store.Close()
	engine.SetSnapshotStore(store)
*/
package snapshot
