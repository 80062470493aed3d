// Package graph declares the Edge and Graph types, sentinel errors, and the
// NewGraph constructor. Method implementations live in graph.go.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyVertexID indicates an empty string was passed as an endpoint.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrSelfLoop indicates an edge whose two endpoints are the same vertex.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")
)

// Edge is an undirected weighted connection between two vertices.
//
// Edges are stored normalized: U is the lexicographically smaller endpoint.
// Two Edge values describing the same unordered pair and weight therefore
// compare equal with ==.
type Edge struct {
	// U is the lexicographically smaller endpoint ID.
	U string

	// V is the lexicographically larger endpoint ID.
	V string

	// Weight is the edge weight; any float64 is legal, including zero
	// and negative values.
	Weight float64
}

// Graph is an undirected, weighted edge-list graph.
//
// The edge slice preserves insertion order; the vertex set is the union of
// edge endpoints. A zero-value Graph is not usable — construct with NewGraph.
type Graph struct {
	mu sync.RWMutex

	// edges in insertion order; never reordered after insertion.
	edges []Edge

	// vertices derives the vertex set from edge endpoints.
	vertices map[string]struct{}
}

// NewGraph creates an empty undirected weighted graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]struct{}),
	}
}
