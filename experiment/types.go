// Package experiment defines the harness configuration and result types.
package experiment

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/maxmatch/graph"
)

// ErrEmptySuite indicates a suite whose graph patterns matched no files.
var ErrEmptySuite = errors.New("experiment: suite matched no graph files")

// DefaultMaxExhaustiveEdges is the edge ceiling above which a Run skips the
// exhaustive engine. Twenty edges means 2^20 subsets — about the largest
// instance worth waiting for in a batch.
const DefaultMaxExhaustiveEdges = 20

// EngineRun captures one engine invocation: the matching it produced, its
// total weight, and the wall-clock time it took.
type EngineRun struct {
	Matching []graph.Edge
	Weight   float64
	Elapsed  time.Duration
}

// Comparison is the outcome of running both engines on one graph.
//
// Exhaustive is nil when the edge count exceeded the configured ceiling;
// Quality and Speedup are only meaningful when it is non-nil.
type Comparison struct {
	// Vertices and Edges describe the input graph.
	Vertices int
	Edges    int

	// Exhaustive is the exact engine's run, nil when skipped.
	Exhaustive *EngineRun

	// Greedy is the heuristic's run; always present.
	Greedy *EngineRun

	// Quality is greedy weight as a percentage of the exhaustive optimum;
	// 100 when the optimum is 0 (weight-0 floor).
	Quality float64

	// Speedup is exhaustive elapsed over greedy elapsed.
	Speedup float64
}

// ExhaustiveSkipped reports whether the exact engine was skipped for size.
func (c *Comparison) ExhaustiveSkipped() bool {
	return c.Exhaustive == nil
}

// Optimal reports whether greedy matched the exhaustive optimum (within a
// hair of floating-point noise). False when exhaustive was skipped.
func (c *Comparison) Optimal() bool {
	return c.Exhaustive != nil && c.Quality >= 99.9
}

// Record ties a Comparison back to the file it was loaded from.
type Record struct {
	File       string
	Comparison *Comparison
}

// config aggregates harness knobs; resolved from functional options.
type config struct {
	maxExhaustiveEdges int
	logger             *logrus.Logger
}

// Option configures a Run or RunSuite invocation.
type Option func(*config)

// WithMaxExhaustiveEdges returns an Option that sets the edge ceiling for
// the exhaustive engine. Panics unless n >= 0; 0 disables the exact engine
// entirely.
func WithMaxExhaustiveEdges(n int) Option {
	if n < 0 {
		panic("experiment: WithMaxExhaustiveEdges requires n >= 0")
	}

	return func(cfg *config) {
		cfg.maxExhaustiveEdges = n
	}
}

// WithLogger returns an Option that installs a caller-owned logrus logger.
// Panics if l is nil.
func WithLogger(l *logrus.Logger) Option {
	if l == nil {
		panic("experiment: WithLogger(nil)")
	}

	return func(cfg *config) {
		cfg.logger = l
	}
}

// newConfig resolves defaults, then applies options in order.
func newConfig(opts ...Option) config {
	cfg := config{
		maxExhaustiveEdges: DefaultMaxExhaustiveEdges,
		logger:             logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
