// Package graph defines the minimal edge-list model the matching engines
// operate on: an undirected, weighted Graph built once by the caller and
// treated as read-only afterwards.
//
// Model
//
//   - Edge is an immutable (U, V, Weight) triple. The graph is undirected:
//     AddEdge normalizes endpoints so that U ≤ V lexicographically, which
//     makes (u,v,w) and (v,u,w) literally the same Edge value.
//   - The vertex set is derived — a vertex exists exactly when some edge
//     references it. There is no standalone vertex entity.
//   - Edges() preserves insertion order. That order is load-bearing: the
//     exhaustive engine indexes bitmask bits by it, and the greedy engine
//     breaks weight ties by it.
//
// Policies
//
//   - Self-loops are rejected with ErrSelfLoop at insertion time; the
//     engines never see one.
//   - Parallel edges between the same unordered pair are accepted. They are
//     independent edges, each individually eligible for a matching, though
//     the disjointness rule keeps any two of them out of the same matching.
//   - Weights are arbitrary float64 values; zero and negative weights are
//     legal and never special-cased here.
//
// Concurrency
//
// All methods take an internal sync.RWMutex, so a graph may be assembled
// from several goroutines. The matching engines only call read methods and
// never mutate the graph.
package graph
