// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

import (
	"fmt"
	"maps"
)

// Rating bounds for the rated edge type.
const (
	MinRating = 1
	MaxRating = 5
)

// NodeKind identifies the namespace a node id belongs to.
type NodeKind uint8

const (
	// KindUser is the user namespace.
	KindUser NodeKind = iota + 1
	// KindMovie is the movie namespace.
	KindMovie
	// KindGenre is the genre namespace.
	KindGenre
)

// String returns the lowercase kind name.
func (k NodeKind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindMovie:
		return "movie"
	case KindGenre:
		return "genre"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name written by MarshalText.
func (k *NodeKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "user":
		*k = KindUser
	case "movie":
		*k = KindMovie
	case "genre":
		*k = KindGenre
	default:
		return fmt.Errorf("unknown node kind %q", text)
	}
	return nil
}

// NodeRef addresses a node across namespaces. Ids are only unique within
// their kind, so the kind is part of the key.
type NodeRef struct {
	Kind NodeKind `json:"kind" swaggertype:"string" enums:"user,movie,genre"`
	ID   string   `json:"id"`
}

// UserRef returns the NodeRef of a user id.
func UserRef(id string) NodeRef { return NodeRef{Kind: KindUser, ID: id} }

// MovieRef returns the NodeRef of a movie id.
func MovieRef(id string) NodeRef { return NodeRef{Kind: KindMovie, ID: id} }

// GenreRef returns the NodeRef of a genre id.
func GenreRef(id string) NodeRef { return NodeRef{Kind: KindGenre, ID: id} }

func (r NodeRef) String() string {
	return r.Kind.String() + ":" + r.ID
}

// EdgeType labels the relationship an edge represents.
type EdgeType string

const (
	EdgeRated     EdgeType = "rated"
	EdgePrefers   EdgeType = "prefers"
	EdgeBelongsTo EdgeType = "belongs_to"
)

// EdgeTypes lists every edge type in reporting order.
var EdgeTypes = []EdgeType{EdgeRated, EdgePrefers, EdgeBelongsTo}

// Edge is a directed, weighted, typed connection between two nodes.
type Edge struct {
	From   NodeRef  `json:"from"`
	To     NodeRef  `json:"to"`
	Weight float64  `json:"weight"`
	Type   EdgeType `json:"type"`
}

// User is a person who rates movies and prefers genres.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// PreferredGenres is ordered by rank, most preferred first. Entries may
	// repeat and may name genres that are not in the store.
	PreferredGenres []string `json:"preferred_genres"`

	// Ratings maps movie id to a rating in [MinRating, MaxRating].
	Ratings map[string]int `json:"ratings"`
}

func (u *User) clone() User {
	out := *u
	out.PreferredGenres = append([]string(nil), u.PreferredGenres...)
	out.Ratings = maps.Clone(u.Ratings)
	if out.Ratings == nil {
		out.Ratings = map[string]int{}
	}
	return out
}

// Movie is immutable once added.
type Movie struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Genre string `json:"genre"`

	// Rating is the externally supplied aggregate rating. It is used only
	// for tie-breaking and catalog rankings.
	Rating float64 `json:"rating"`
	Year   int     `json:"year"`
}

// Genre is a named movie category.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserRecord is the persisted form of a user. Movies and genres are not part
// of a snapshot; they are re-established from the catalog.
type UserRecord struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	PreferredGenres []string       `json:"preferred_genres"`
	Ratings         map[string]int `json:"ratings"`
}

// Stats summarizes the size of a store.
type Stats struct {
	Users      int              `json:"users"`
	Movies     int              `json:"movies"`
	Genres     int              `json:"genres"`
	Edges      map[EdgeType]int `json:"edges"`
	TotalEdges int              `json:"total_edges"`
}

// SimilarUser pairs a user id with its similarity to a reference user.
type SimilarUser struct {
	UserID     string  `json:"user_id"`
	Similarity float64 `json:"similarity"`
}
