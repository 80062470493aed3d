// Package matching provides two contrasting maximum-weight matching engines
// over a graph.Graph, plus the validator both are built on.
//
// What & Why
//
//   - What is a matching?
//     A set of edges in which no two edges share a vertex. The maximum-weight
//     matching is the matching whose total edge weight is largest.
//
//   - Why two engines?
//     Exhaustive search is guaranteed optimal but deliberately exponential;
//     the greedy heuristic trades that guarantee for an O(m log m) single
//     pass. Running both on the same graph quantifies exactly what the
//     heuristic gives up — see the experiment package.
//
// Engines Provided
//
//   - Exhaustive(g) (Result, error)
//
//   - Strategy: enumerate every subset of the edge list with a uint64
//     bitmask, ascending from 0 to 2^m−1, where bit i corresponds to the
//     edge at insertion index i. Each subset is checked with
//     IsValidMatching; a valid subset replaces the running best only on
//     strictly greater weight, so the first (smallest-bitmask) subset wins
//     ties. This tie-break is part of the contract and is deterministic.
//
//   - Floor: the best starts as the empty matching at weight 0. A graph
//     with only non-positive weights therefore yields the empty matching,
//     never a negative-weight one. This weight-0 floor is intentional and
//     downstream quality ratios depend on it; do not "fix" it to a maximum
//     over non-empty subsets.
//
//   - Complexity: O(2^m · m) time, O(m) auxiliary space. The practical
//     ceiling is ~20–25 edges; the engine imposes no cap below the
//     representational limit of the mask (ErrTooManyEdges above 63 edges).
//
//   - Greedy(g) (Result, error)
//
//   - Strategy: stable-sort the edges by descending weight (ties keep
//     insertion order), then take each edge whose endpoints are both still
//     unused. One pass, no backtracking, no optimality guarantee — but the
//     result is always a valid matching.
//
//   - Complexity: O(m log m) time, O(n) auxiliary space.
//
// Comparator contract
//
// Compute(g, opts) dispatches to either engine by Options.Method and is the
// narrow boundary an external harness programs against: both engines take
// the same read-only graph and return an independent Result whose Weight
// always equals the recomputed sum of its Edges.
//
// Edge-case policies
//
//   - Empty graph: both engines return the empty matching at weight 0.
//   - Duplicate parallel edges: treated as independent edges. Each copy is
//     individually eligible, and the disjointness check keeps any two copies
//     out of the same matching since they share both endpoints.
//   - Cancellation: Options.Cancel, when set, is polled between bitmask
//     iterations by the exhaustive engine; ErrCanceled reports an abort.
//     This is an extension point for callers, not a timeout.
//
// Determinism: both engines are pure functions of the edge list; invoking
// either twice on an unmodified graph returns identical results.
package matching
