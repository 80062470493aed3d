// Package matching provides the greedy maximum-weight matching heuristic:
// one descending-weight pass with a used-vertex set. Fast, deterministic,
// always valid — and free to be suboptimal.
package matching

import (
	"sort"

	"github.com/katalvlaran/maxmatch/graph"
)

// Greedy computes a valid (possibly suboptimal) matching heuristically.
//
// Steps:
//  1. Snapshot the edge list and stable-sort it by descending weight
//     (sort.SliceStable keeps insertion order for equal weights, so the
//     result is deterministic and reproducible).
//  2. Walk the sorted list once with a used-vertex set: take an edge iff
//     neither endpoint has been used, then mark both endpoints used.
//  3. Return the selected edges, in selection order, with their total weight.
//
// The result is always a valid matching — including for the empty graph
// (empty matching, weight 0) — but carries no optimality guarantee.
//
// Error Conditions:
//   - ErrNilGraph : g is nil. No other failure modes exist.
//
// Complexity: O(m log m) time dominated by the sort, O(n) auxiliary space
// for the used-vertex set.
func Greedy(g *graph.Graph) (Result, error) {
	// 1. Validate input.
	if g == nil {
		return Result{}, ErrNilGraph
	}

	// 2. Snapshot and stable-sort by descending weight. Edges() already
	//    returns a private copy, so sorting in place is safe.
	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight > edges[j].Weight
	})

	// 3. Single conflict-checked pass.
	used := make(map[string]struct{}, g.VertexCount())
	picked := make([]graph.Edge, 0, len(edges)/2+1)
	var total float64
	for _, e := range edges {
		if _, taken := used[e.U]; taken {
			continue
		}
		if _, taken := used[e.V]; taken {
			continue
		}
		picked = append(picked, e)
		used[e.U] = struct{}{}
		used[e.V] = struct{}{}
		total += e.Weight
	}

	return Result{Edges: picked, Weight: total}, nil
}
