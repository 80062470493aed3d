// Package experiment runs both matching engines side by side and measures
// what the greedy heuristic gives up for its speed.
//
// A single Run takes one graph, times the greedy engine, and — when the
// edge count is at or below the configured ceiling (default 20, because
// exhaustive search is O(2^m·m)) — times the exhaustive engine too. The
// resulting Comparison carries each engine's matching, weight and elapsed
// time plus two derived figures:
//
//   - Quality: greedy weight as a percentage of the exhaustive optimum
//     (100 when the optimum is 0, per the engines' weight-0 floor).
//   - Speedup: exhaustive elapsed time over greedy elapsed time.
//
// Above the ceiling the exhaustive side is marked skipped rather than
// attempted; the ceiling is the harness's knob, never the engine's.
//
// Batch runs are described by a YAML suite file:
//
//	graphs:
//	  - testdata/graph_n*.json
//	max_exhaustive_edges: 20
//
// RunSuite expands the globs, loads each graph through graphio, runs the
// comparison, and Summarize/WriteReport turn the records into the usual
// fixed-width report (average quality, average speedup, optimal-hit count).
//
// Timing and ratios live here on purpose: the engines themselves are pure
// and never measure anything.
package experiment
