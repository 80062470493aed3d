// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Generation code wraps sentinels with context via %w; sentinels are
//     never stringified with parameters at definition site.
//   - Invalid option values panic in the WithX constructor, not here.

package builder

import "errors"

// ErrTooFewVertices indicates n is below the minimum for a geometric graph
// (at least two points are needed before any edge can exist).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* fix n */ }.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrInvalidDensity indicates an edge density outside the closed interval
// [0,1].
// Usage: if errors.Is(err, ErrInvalidDensity) { /* clamp or reject */ }.
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrNeedRandSource indicates that generation was requested without a
// seeded RNG; set WithSeed or WithRand so results are reproducible.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply a seed */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrPlacementFailed indicates vertex placement exhausted maxAttempts
// without finding a point that honors the minimum pairwise distance —
// the coordinate box is too small for the requested n.
// Usage: if errors.Is(err, ErrPlacementFailed) { /* widen box or drop n */ }.
var ErrPlacementFailed = errors.New("builder: vertex placement failed")
