// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graphexport

import (
	"github.com/tomtom215/cinegraph/internal/graph"
	"github.com/tomtom215/cinegraph/internal/recommend"
)

// Rows is a graph dump flattened into Cypher UNWIND parameters.
type Rows struct {
	Genres    []map[string]any
	Movies    []map[string]any
	Users     []map[string]any
	Rated     []map[string]any
	Prefers   []map[string]any
	BelongsTo []map[string]any
}

// Len returns the number of nodes and relationships.
func (r Rows) Len() int {
	return len(r.Genres) + len(r.Movies) + len(r.Users) +
		len(r.Rated) + len(r.Prefers) + len(r.BelongsTo)
}

// BuildRows converts a dump into UNWIND rows. Repeated prefers edges
// collapse into one row whose count is the number of repeats, since a
// relationship is merged once per user and genre.
func BuildRows(dump recommend.GraphDump) Rows {
	rows := Rows{
		Genres:    make([]map[string]any, 0, len(dump.Genres)),
		Movies:    make([]map[string]any, 0, len(dump.Movies)),
		Users:     make([]map[string]any, 0, len(dump.Users)),
		Rated:     []map[string]any{},
		Prefers:   []map[string]any{},
		BelongsTo: []map[string]any{},
	}

	for _, g := range dump.Genres {
		rows.Genres = append(rows.Genres, map[string]any{
			"id":   g.ID,
			"name": g.Name,
		})
	}
	for _, m := range dump.Movies {
		rows.Movies = append(rows.Movies, map[string]any{
			"id":     m.ID,
			"title":  m.Title,
			"genre":  m.Genre,
			"rating": m.Rating,
			"year":   int64(m.Year),
		})
	}
	for _, u := range dump.Users {
		rows.Users = append(rows.Users, map[string]any{
			"id":   u.ID,
			"name": u.Name,
		})
	}

	prefIndex := make(map[[2]string]map[string]any)
	for _, e := range dump.Edges {
		switch e.Type {
		case graph.EdgeRated:
			rows.Rated = append(rows.Rated, map[string]any{
				"user_id":  e.From.ID,
				"movie_id": e.To.ID,
				"rating":   int64(e.Weight),
			})
		case graph.EdgePrefers:
			key := [2]string{e.From.ID, e.To.ID}
			if row, ok := prefIndex[key]; ok {
				row["count"] = row["count"].(int64) + 1
				continue
			}
			row := map[string]any{
				"user_id":  e.From.ID,
				"genre_id": e.To.ID,
				"count":    int64(1),
			}
			prefIndex[key] = row
			rows.Prefers = append(rows.Prefers, row)
		case graph.EdgeBelongsTo:
			rows.BelongsTo = append(rows.BelongsTo, map[string]any{
				"movie_id": e.From.ID,
				"genre_id": e.To.ID,
			})
		}
	}
	return rows
}
