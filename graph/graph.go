// Package graph: thread-safe Graph method implementations.
//
// Mutations and queries share a single sync.RWMutex; edge insertion is O(1)
// amortized and every query returns either a scalar or a defensive copy, so
// callers can never alias internal state.
package graph

import "sort"

// AddEdge inserts an undirected edge between u and v with the given weight.
//
// Endpoints are normalized so the stored Edge has U ≤ V lexicographically.
// Duplicate edges between the same unordered pair are accepted and kept as
// independent edges (see package doc for the matching policy).
//
// Returns ErrEmptyVertexID if either endpoint is empty,
// ErrSelfLoop if u == v.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight float64) error {
	// 1. Validate endpoints before taking the lock.
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrSelfLoop
	}
	// 2. Normalize orientation: smaller endpoint first.
	if v < u {
		u, v = v, u
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3. Extend the edge list and the derived vertex set.
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: weight})
	g.vertices[u] = struct{}{}
	g.vertices[v] = struct{}{}

	return nil
}

// Edges returns a copy of the edge list in insertion order.
//
// The copy is safe to sort or mutate; the graph is unaffected.
// Complexity: O(E) time and space.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// HasVertex reports whether some edge references the given vertex ID.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// VertexCount returns the number of distinct vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges, counting parallel edges separately.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
