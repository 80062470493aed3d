// SPDX-License-Identifier: MIT
//
// geometric.go — the RandomGeometric constructor: seeded point placement,
// Euclidean candidate edges, density-controlled selection.

package builder

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/maxmatch/graph"
)

// Point is an integer coordinate on the XOY plane. Point k is the position
// of the vertex with ID strconv.Itoa(k).
type Point struct {
	X int
	Y int
}

// EuclideanDistance returns the straight-line distance between two points.
// Complexity: O(1).
func EuclideanDistance(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// RandomGeometric builds an undirected weighted graph from n random points.
//
// Steps:
//  1. Validate: n ≥ 2, density ∈ [0,1], a seeded RNG present.
//  2. Place n points in the coordinate box by rejection sampling, keeping
//     every pair at least minDistance apart.
//  3. Enumerate all n·(n−1)/2 candidate edges, weight = Euclidean distance.
//  4. Shuffle candidates with the RNG and keep ⌊maxEdges·density⌋ of them;
//     insertion order of the kept edges is the shuffled order.
//
// Returns the graph, the placed points (index k ↔ vertex ID "k"), or:
//   - ErrTooFewVertices  : n < 2.
//   - ErrInvalidDensity  : density outside [0,1].
//   - ErrNeedRandSource  : no WithSeed/WithRand option was given.
//   - ErrPlacementFailed : spacing constraint unsatisfiable within the
//     attempts budget (wrapped with the failing vertex index).
//
// Determinism: identical n, density and options ⇒ identical graph.
// Complexity: O(n · maxAttempts) placement worst case + O(n²) edges.
func RandomGeometric(n int, density float64, opts ...Option) (*graph.Graph, []Point, error) {
	// 1. Validate parameters before any work.
	if n < 2 {
		return nil, nil, fmt.Errorf("RandomGeometric: n=%d: %w", n, ErrTooFewVertices)
	}
	if density < 0 || density > 1 {
		return nil, nil, fmt.Errorf("RandomGeometric: density=%v: %w", density, ErrInvalidDensity)
	}
	cfg := newGeomConfig(opts...)
	if cfg.rng == nil {
		return nil, nil, fmt.Errorf("RandomGeometric: %w", ErrNeedRandSource)
	}

	// 2. Place points with rejection sampling.
	points, err := placePoints(n, cfg)
	if err != nil {
		return nil, nil, err
	}

	// 3. Enumerate all candidate edges in index order (i < j).
	type candidate struct {
		i, j   int
		weight float64
	}
	candidates := make([]candidate, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			candidates = append(candidates, candidate{
				i:      i,
				j:      j,
				weight: EuclideanDistance(points[i], points[j]),
			})
		}
	}

	// 4. Seeded shuffle, then keep the density share of the maximum.
	cfg.rng.Shuffle(len(candidates), func(a, b int) {
		candidates[a], candidates[b] = candidates[b], candidates[a]
	})
	keep := int(float64(len(candidates)) * density)

	g := graph.NewGraph()
	for _, c := range candidates[:keep] {
		// Endpoints differ by construction, so AddEdge cannot fail.
		_ = g.AddEdge(strconv.Itoa(c.i), strconv.Itoa(c.j), c.weight)
	}

	return g, points, nil
}

// placePoints samples n points in the configured box, each at least
// cfg.minDistance from all earlier points, within cfg.maxAttempts tries per
// point.
func placePoints(n int, cfg geomConfig) ([]Point, error) {
	span := cfg.maxCoord - cfg.minCoord + 1
	points := make([]Point, 0, n)

	for i := 0; i < n; i++ {
		placed := false
		for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
			p := Point{
				X: cfg.minCoord + cfg.rng.Intn(span),
				Y: cfg.minCoord + cfg.rng.Intn(span),
			}
			if tooClose(p, points, cfg.minDistance) {
				continue
			}
			points = append(points, p)
			placed = true
			break
		}
		if !placed {
			return nil, fmt.Errorf("RandomGeometric: vertex %d after %d attempts: %w",
				i, cfg.maxAttempts, ErrPlacementFailed)
		}
	}

	return points, nil
}

// tooClose reports whether p violates the spacing constraint against any
// already placed point.
func tooClose(p Point, placed []Point, minDistance float64) bool {
	for _, q := range placed {
		if EuclideanDistance(p, q) < minDistance {
			return true
		}
	}

	return false
}
