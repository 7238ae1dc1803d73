// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	"fmt"
	"maps"
)

// UserRecords exports every user in insertion order for persistence.
func (s *Store) UserRecords() []UserRecord {
	out := make([]UserRecord, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		u := s.users[id]
		out = append(out, UserRecord{
			ID:              u.ID,
			Name:            u.Name,
			PreferredGenres: append([]string(nil), u.PreferredGenres...),
			Ratings:         maps.Clone(u.Ratings),
		})
	}
	return out
}

// NewStoreFromRecords builds a store that contains only the given users.
//
// Rating and preference entries are restored exactly. Their edges stay
// dormant until the referenced movie or genre is added, so a catalog can be
// loaded after the users without breaking the no-dangling-edge invariant.
// The whole input is validated before anything is built.
func NewStoreFromRecords(records []UserRecord) (*Store, error) {
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return nil, InvalidArgument("user id", "record %d has an empty id", i)
		}
		if _, ok := seen[rec.ID]; ok {
			return nil, duplicate(KindUser, rec.ID)
		}
		seen[rec.ID] = struct{}{}
		for movieID, r := range rec.Ratings {
			if r < MinRating || r > MaxRating {
				return nil, InvalidArgument("rating",
					"user %q movie %q: %d outside [%d, %d]", rec.ID, movieID, r, MinRating, MaxRating)
			}
		}
	}

	s := NewStore()
	for _, rec := range records {
		if err := s.AddUser(rec.ID, rec.Name, rec.PreferredGenres); err != nil {
			return nil, fmt.Errorf("restore user %s: %w", rec.ID, err)
		}
		for movieID, r := range rec.Ratings {
			s.users[rec.ID].Ratings[movieID] = r
		}
	}
	return s, nil
}
