// Package graphio: JSON save/load for graph instances.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/maxmatch/graph"
)

// ErrNilGraph indicates a nil *graph.Graph was passed to Save.
var ErrNilGraph = errors.New("graphio: nil graph")

// Position is an optional 2D coordinate attached to a vertex ID.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// document is the on-disk JSON shape; see the package doc for an example.
type document struct {
	NumVertices int                 `json:"num_vertices"`
	NumEdges    int                 `json:"num_edges"`
	Vertices    map[string]Position `json:"vertices"`
	Edges       []edgeRecord        `json:"edges"`
}

type edgeRecord struct {
	U      string  `json:"u"`
	V      string  `json:"v"`
	Weight float64 `json:"weight"`
}

// Save writes g as an indented JSON document. pos attaches coordinates to
// vertex IDs and may be nil; unknown IDs in pos are ignored. Edge order in
// the document is the graph's insertion order; weights are rounded to two
// decimals.
//
// Returns ErrNilGraph, or a wrapped encoding error.
// Complexity: O(V + E).
func Save(w io.Writer, g *graph.Graph, pos map[string]Position) error {
	if g == nil {
		return ErrNilGraph
	}

	doc := document{
		NumVertices: g.VertexCount(),
		NumEdges:    g.EdgeCount(),
		Vertices:    make(map[string]Position),
		Edges:       make([]edgeRecord, 0, g.EdgeCount()),
	}
	for _, id := range g.Vertices() {
		if p, ok := pos[id]; ok {
			doc.Vertices[id] = p
		}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edgeRecord{
			U:      e.U,
			V:      e.V,
			Weight: math.Round(e.Weight*100) / 100,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return nil
}

// Load reads a JSON document and rebuilds the graph, preserving the
// document's edge order as insertion order.
//
// Returns a wrapped decode error for malformed JSON, or a wrapped
// graph.AddEdge error (ErrSelfLoop, ErrEmptyVertexID) for structurally
// invalid edges — branch with errors.Is either way.
// Complexity: O(V + E).
func Load(r io.Reader) (*graph.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	g := graph.NewGraph()
	for i, e := range doc.Edges {
		if err := g.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: edge %d (%q,%q): %w", i, e.U, e.V, err)
		}
	}

	return g, nil
}

// LoadPositions reads a JSON document and returns only its vertex
// positions, for callers that re-save or plot graphs.
func LoadPositions(r io.Reader) (map[string]Position, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decode: %w", err)
	}

	return doc.Vertices, nil
}

// SaveFile is Save against a file path, creating or truncating the file.
func SaveFile(path string, g *graph.Graph, pos map[string]Position) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	defer f.Close()

	return Save(f, g, pos)
}

// LoadFile is Load against a file path.
func LoadFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
