// Package matching: the matching validator — two pure helper functions both
// engines (and external checkers) are built on.
package matching

import "github.com/katalvlaran/maxmatch/graph"

// IsValidMatching reports whether no vertex occurs in more than one edge of
// subset. The empty subset is a valid matching.
//
// The check walks the subset once with a seen-vertex set and returns false
// on the first repeated vertex. A parallel edge duplicating an earlier
// edge's endpoints fails here like any other conflict.
//
// Complexity: O(k) time and space, k = len(subset).
func IsValidMatching(subset []graph.Edge) bool {
	// Two map slots per edge in the best case.
	seen := make(map[string]struct{}, 2*len(subset))
	for _, e := range subset {
		if _, dup := seen[e.U]; dup {
			return false
		}
		if _, dup := seen[e.V]; dup {
			return false
		}
		seen[e.U] = struct{}{}
		seen[e.V] = struct{}{}
	}

	return true
}

// TotalWeight returns the sum of the subset's edge weights; 0 for the empty
// subset. It does not require subset to be a valid matching.
//
// Complexity: O(k) time, O(1) space.
func TotalWeight(subset []graph.Edge) float64 {
	var total float64
	for _, e := range subset {
		total += e.Weight
	}

	return total
}
