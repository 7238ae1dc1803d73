// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package graph

// RecommendationPath returns the shortest chain of nodes connecting a user to
// a movie, both ends included. The walk uses the same neighborhood as
// Traverse. An empty path with a nil error means the movie is unreachable.
func (s *Store) RecommendationPath(userID, movieID string) ([]NodeRef, error) {
	if !s.HasUser(userID) {
		return nil, notFound(KindUser, userID)
	}
	if !s.HasMovie(movieID) {
		return nil, notFound(KindMovie, movieID)
	}

	start, goal := UserRef(userID), MovieRef(movieID)
	parent := map[NodeRef]NodeRef{start: start}
	queue := []NodeRef{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return reconstruct(parent, start, goal), nil
		}
		for _, next := range s.neighbors(cur) {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = cur
			queue = append(queue, next)
		}
	}
	return []NodeRef{}, nil
}

func reconstruct(parent map[NodeRef]NodeRef, start, goal NodeRef) []NodeRef {
	var path []NodeRef
	for cur := goal; ; cur = parent[cur] {
		path = append(path, cur)
		if cur == start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
