// SPDX-License-Identifier: MIT
//
// Package builder generates deterministic random test graphs for the
// matching engines: n points on the integer XOY plane, edges weighted by
// Euclidean distance, edge count controlled by a density in [0,1].
//
// Determinism is the whole point. Every stochastic choice flows through a
// caller-seeded *rand.Rand (WithSeed / WithRand), so the same inputs and
// options always reproduce the same graph — experiment suites and golden
// tests depend on that.
//
// Construction pipeline (RandomGeometric):
//
//  1. Place n vertices as integer points in [minCoord, maxCoord]², rejecting
//     any candidate closer than minDistance to an already placed point.
//     Placement gives up after maxAttempts rejections per vertex
//     (ErrPlacementFailed) — a dense request in a small box cannot succeed.
//  2. Enumerate all n·(n−1)/2 candidate edges, weighted by the Euclidean
//     distance between their endpoints.
//  3. Shuffle the candidates with the seeded RNG and keep
//     ⌊maxEdges·density⌋ of them.
//
// Vertex IDs are decimal strings "0", "1", ... matching point indices, so a
// graph's edge (i, j) can always be traced back to its coordinates.
//
// Error policy: sentinel errors only, branch with errors.Is; invalid option
// values panic inside the WithX constructor (programmer error), never at
// generation time.
package builder
