// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

/*
Package cache provides the in-memory data structures shared by the
recommendation engine and the genre ranker.

# Overview

  - LRUCache: thread-safe least-recently-used cache with TTL expiration,
    used to memoize recommendation responses between graph mutations
  - MinHeap: indexed binary min-heap keyed by a float priority with
    decrease-key support, used as the priority queue of Dijkstra's
    shortest-path search

# Usage Example

	responses := cache.NewLRUCache[[]Recommendation](1024, 5*time.Minute)
	responses.Add("u1|hybrid|10", recs)
	if recs, ok := responses.Get("u1|hybrid|10"); ok {
	    return recs
	}

	pq := cache.NewMinHeap[string](0)
	pq.Push("Drama", "Drama", 0)
	for pq.Len() > 0 {
	    entry := pq.Pop()
	    // relax neighbors with pq.Push(key, value, newDistance)
	}

# Thread Safety

Both structures guard their state with a sync.RWMutex and are safe for
concurrent use.
*/
package cache
