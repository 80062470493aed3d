// SPDX-License-Identifier: MIT
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - geomConfig is the single source of truth for all generator knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newGeomConfig applies options in order (later overrides earlier).

package builder

import "math/rand"

// Deterministic defaults (named, no magic numbers). The coordinate box and
// spacing match the geometry the experiment suites were calibrated on.
const (
	defaultMinCoord    = 1     // inclusive lower coordinate bound
	defaultMaxCoord    = 500   // inclusive upper coordinate bound
	defaultMinDistance = 10.0  // minimum pairwise point distance
	defaultMaxAttempts = 10000 // rejection-sampling budget per vertex
)

// geomConfig aggregates all knobs used by RandomGeometric.
// It is passed by value (immutable to callers once resolved).
type geomConfig struct {
	// rng drives every stochastic choice; nil means "not seeded" and is
	// rejected at generation time with ErrNeedRandSource.
	rng *rand.Rand

	// Coordinate box, inclusive on both ends.
	minCoord int
	maxCoord int

	// Minimum Euclidean distance between any two placed points.
	minDistance float64

	// Rejection-sampling budget per vertex before ErrPlacementFailed.
	maxAttempts int
}

// Option configures the generator. All Option functions modify the pointed
// geomConfig; invalid values panic in the constructor (programmer error).
type Option func(*geomConfig)

// WithSeed returns an Option that installs a fresh rand.Rand seeded with
// seed. Same seed (and same other options) ⇒ identical graph.
func WithSeed(seed int64) Option {
	return func(cfg *geomConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand returns an Option that installs a caller-owned RNG.
// Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(cfg *geomConfig) {
		cfg.rng = r
	}
}

// WithCoordRange returns an Option that sets the inclusive coordinate box
// [min, max] for both axes. Panics unless min < max.
func WithCoordRange(min, max int) Option {
	if min >= max {
		panic("builder: WithCoordRange requires min < max")
	}

	return func(cfg *geomConfig) {
		cfg.minCoord = min
		cfg.maxCoord = max
	}
}

// WithMinDistance returns an Option that sets the minimum pairwise point
// distance. Panics if d is negative; 0 disables the spacing constraint.
func WithMinDistance(d float64) Option {
	if d < 0 {
		panic("builder: WithMinDistance requires d >= 0")
	}

	return func(cfg *geomConfig) {
		cfg.minDistance = d
	}
}

// WithMaxAttempts returns an Option that sets the per-vertex rejection
// sampling budget. Panics unless n > 0.
func WithMaxAttempts(n int) Option {
	if n <= 0 {
		panic("builder: WithMaxAttempts requires n > 0")
	}

	return func(cfg *geomConfig) {
		cfg.maxAttempts = n
	}
}

// newGeomConfig constructs a config with deterministic defaults and applies
// all options in order; last-wins semantics.
// Complexity: O(len(opts)) time, O(1) space.
func newGeomConfig(opts ...Option) geomConfig {
	cfg := geomConfig{
		rng:         nil, // must be supplied explicitly for reproducibility
		minCoord:    defaultMinCoord,
		maxCoord:    defaultMaxCoord,
		minDistance: defaultMinDistance,
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
