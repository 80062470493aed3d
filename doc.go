// Package maxmatch is a compact toolkit for the maximum-weight matching
// problem on small undirected weighted graphs — an exact engine, a fast
// heuristic, and everything needed to measure one against the other.
//
// 🚀 What is maxmatch?
//
//	A deterministic, thread-safe-to-build library that brings together:
//		• graph/      — minimal edge-list Graph: insertion-ordered edges, derived vertices
//		• matching/   — the two engines plus the matching validator:
//		                Exhaustive (bitmask over all 2^m edge subsets, guaranteed optimal)
//		                Greedy     (stable descending sort, one conflict-checked pass)
//		• builder/    — seeded random geometric graph generator (2D points, Euclidean weights)
//		• graphio/    — JSON persistence for graph instances
//		• experiment/ — side-by-side harness: quality %, speedup, summary reports
//
// ✨ Why maxmatch?
//
//   - Deterministic – same graph in, bitwise-identical matching out, every time
//   - Honest about cost – exhaustive search is deliberately O(2^m·m); the harness
//     skips it past a configurable edge ceiling instead of pretending to scale
//   - Small API – plain functions over an immutable graph view, sentinel errors,
//     functional options
//
// Quick ASCII example:
//
//	    1────10────2
//	    │          │
//	    6          5
//	    │          │
//	    4────8─────3
//
//	Exhaustive and Greedy both pick {1–2 (10), 3–4 (8)} here, total 18;
//	on adversarial graphs Greedy settles for less, and experiment/ tells
//	you exactly how much less.
//
// The cmd/matchbench CLI wraps generation, experiment runs and reports.
// Dive into each package's doc.go for contracts, complexity and edge cases.
//
//	go get github.com/katalvlaran/maxmatch
package maxmatch
