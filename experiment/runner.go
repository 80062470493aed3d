// Package experiment: the single-graph comparison runner.
package experiment

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/matching"
)

// Run executes the greedy engine, and — when the graph's edge count is at
// or below the configured ceiling — the exhaustive engine, timing both and
// deriving quality and speedup.
//
// Error Conditions:
//   - matching.ErrNilGraph : g is nil.
//   - any error surfaced by the engines (ErrTooManyEdges cannot occur below
//     the default ceiling, but a caller-raised ceiling can reach it).
//
// Complexity: greedy O(m log m); exhaustive O(2^m · m) when run.
func Run(g *graph.Graph, opts ...Option) (*Comparison, error) {
	cfg := newConfig(opts...)

	// Greedy always runs; it also validates g for us.
	start := time.Now()
	gr, err := matching.Greedy(g)
	if err != nil {
		return nil, err
	}
	greedyRun := &EngineRun{
		Matching: gr.Edges,
		Weight:   gr.Weight,
		Elapsed:  time.Since(start),
	}

	cmp := &Comparison{
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Greedy:   greedyRun,
	}

	log := cfg.logger.WithFields(logrus.Fields{
		"vertices": cmp.Vertices,
		"edges":    cmp.Edges,
	})

	// Exhaustive only below the ceiling; skipping is a result, not an error.
	if cmp.Edges > cfg.maxExhaustiveEdges {
		log.WithField("ceiling", cfg.maxExhaustiveEdges).
			Debug("exhaustive search skipped: too many edges")

		return cmp, nil
	}

	start = time.Now()
	ex, err := matching.Exhaustive(g)
	if err != nil {
		return nil, err
	}
	cmp.Exhaustive = &EngineRun{
		Matching: ex.Edges,
		Weight:   ex.Weight,
		Elapsed:  time.Since(start),
	}

	cmp.Quality = quality(gr.Weight, ex.Weight)
	if greedyRun.Elapsed > 0 {
		cmp.Speedup = float64(cmp.Exhaustive.Elapsed) / float64(greedyRun.Elapsed)
	}

	log.WithFields(logrus.Fields{
		"exhaustive_weight": ex.Weight,
		"greedy_weight":     gr.Weight,
		"quality_pct":       cmp.Quality,
	}).Debug("comparison complete")

	return cmp, nil
}

// quality expresses greedy as a percentage of the exhaustive optimum.
// A zero optimum means the floor was hit on both sides: 100%.
func quality(greedy, exhaustive float64) float64 {
	if exhaustive == 0 {
		return 100
	}

	return greedy / exhaustive * 100
}
