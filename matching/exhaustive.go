// Package matching provides the exhaustive maximum-weight matching engine.
// It enumerates every edge subset of an undirected weighted graph.Graph and
// is guaranteed optimal — at exponential cost, by design.
package matching

import "github.com/katalvlaran/maxmatch/graph"

const (
	// maskBits is the widest edge list a uint64 subset mask can index.
	maskBits = 63

	// cancelStride controls how often the Cancel hook is polled: once every
	// cancelStride bitmask iterations (a power of two, tested with &).
	cancelStride = 1024
)

// Exhaustive computes a maximum-weight matching by brute force.
//
// Every subset of the edge list is identified by a bitmask over edge
// indices 0..m-1 (bit i = edge at insertion index i) and enumerated in
// ascending mask order from 0 to 2^m−1. Valid subsets replace the running
// best only on strictly greater weight:
//   - the first-encountered subset wins weight ties, i.e. the result is the
//     tied subset with the smallest bitmask value — observable, documented,
//     and relied on by tests;
//   - the search starts from the empty matching at weight 0, so graphs with
//     only non-positive weights return the empty matching. This weight-0
//     floor is intentional (quality ratios downstream assume it), even
//     though it is not literally the maximum over non-empty subsets.
//
// Error Conditions:
//   - ErrNilGraph     : g is nil.
//   - ErrTooManyEdges : more than 63 edges — the subset mask cannot index them.
//
// Steps:
//  1. Snapshot the edge list; m = len(edges).
//  2. Reject m > maskBits (uint64 mask width).
//  3. For mask = 0..2^m−1: materialize the subset of edges whose bit is
//     set, run IsValidMatching, keep it if strictly heavier than the best.
//  4. Return the best matching and its weight.
//
// Complexity: O(2^m · m) time, O(m) auxiliary space per subset (not retained).
func Exhaustive(g *graph.Graph) (Result, error) {
	return exhaustive(g, nil)
}

// exhaustive is the shared engine body; cancel may be nil. Compute routes
// Options.Cancel here so that callers of the plain Exhaustive never pay for
// or observe cancellation.
func exhaustive(g *graph.Graph, cancel func() bool) (Result, error) {
	// 1. Validate input.
	if g == nil {
		return Result{}, ErrNilGraph
	}

	// 2. Snapshot edges once; insertion order defines bit indices.
	edges := g.Edges()
	m := len(edges)
	if m > maskBits {
		return Result{}, ErrTooManyEdges
	}

	// 3. The empty matching at weight 0 is the baseline floor. Mask 0
	//    produces it again during the loop but cannot beat it (strict >).
	best := Result{Edges: []graph.Edge{}, Weight: 0}

	// Scratch subset reused across iterations to avoid 2^m allocations.
	subset := make([]graph.Edge, 0, m)

	limit := uint64(1) << uint(m)
	for mask := uint64(0); mask < limit; mask++ {
		// Cooperative cancellation between iterations, polled sparsely.
		if cancel != nil && mask&(cancelStride-1) == 0 && cancel() {
			return Result{}, ErrCanceled
		}

		// Materialize the subset for this mask in edge-index order.
		subset = subset[:0]
		for i := 0; i < m; i++ {
			if mask&(uint64(1)<<uint(i)) != 0 {
				subset = append(subset, edges[i])
			}
		}

		// Keep only valid matchings that strictly beat the running best;
		// ties resolve to the earlier (smaller) mask already held.
		if !IsValidMatching(subset) {
			continue
		}
		if w := TotalWeight(subset); w > best.Weight {
			best.Weight = w
			best.Edges = append([]graph.Edge(nil), subset...)
		}
	}

	// 4. Best is optimal over all 2^m subsets (subject to the weight-0 floor).
	return best, nil
}
