// Package matching defines configuration options, sentinel errors and the
// Result type shared by both engines. It supports selecting between the
// exhaustive and greedy engines via Options.
package matching

import (
	"errors"

	"github.com/katalvlaran/maxmatch/graph"
)

// ErrNilGraph indicates that a nil *graph.Graph was passed to an engine.
var ErrNilGraph = errors.New("matching: nil graph")

// ErrTooManyEdges indicates the edge count exceeds the 63-edge width of the
// subset bitmask used by exhaustive search. This is the representational
// limit of the enumeration, not a tunable cap; graphs that large are far
// beyond the engine's practical ceiling anyway.
var ErrTooManyEdges = errors.New("matching: edge count exceeds bitmask width")

// ErrCanceled indicates the exhaustive search was aborted by Options.Cancel
// before the full subset range was enumerated.
var ErrCanceled = errors.New("matching: search canceled")

// ErrUnknownMethod indicates Options.Method named neither engine.
var ErrUnknownMethod = errors.New("matching: unknown method")

// MethodExhaustive selects the exact engine (bitmask subset enumeration).
const MethodExhaustive = "exhaustive"

// MethodGreedy selects the heuristic engine (descending-weight single pass).
const MethodGreedy = "greedy"

// Result is the outcome of one engine invocation.
//
// Invariant: Weight equals the sum of Edges weights, checkable with
// TotalWeight(Result.Edges). Edges is non-nil even when empty and is owned
// by the caller; engines never retain it.
type Result struct {
	// Edges is the matching: pairwise vertex-disjoint edges, in the order
	// the engine selected them.
	Edges []graph.Edge

	// Weight is the total weight of Edges.
	Weight float64
}

// Options configures Compute: which engine to run and, for the exhaustive
// engine, an optional cooperative cancellation hook.
// Use DefaultOptions() to get a default setup (greedy).
//
// Fields:
//
//	Method string      — MethodExhaustive or MethodGreedy.
//	Cancel func() bool — polled periodically by exhaustive search; a true
//	                     return aborts the search with ErrCanceled.
//	                     Ignored by the greedy engine. May be nil.
//
// See: matching.Exhaustive, matching.Greedy.
type Options struct {
	// Method to use: MethodExhaustive or MethodGreedy.
	Method string

	// Cancel, when non-nil, lets the caller abort a long exhaustive run.
	Cancel func() bool
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the engine Method.
// Allowed values: MethodExhaustive, MethodGreedy.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithCancel returns an Option that installs a cooperative cancellation
// check for the exhaustive engine. Greedy ignores it.
func WithCancel(cancel func() bool) Option {
	return func(opts *Options) {
		opts.Cancel = cancel
	}
}

// DefaultOptions returns Options initialized for the greedy engine:
//
//	– Method = MethodGreedy (safe for any edge count)
//	– Cancel = nil
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Method: MethodGreedy,
		Cancel: nil,
	}
}

// Compute selects and runs a matching engine based on opts.Method.
//
//	– If opts.Method == MethodExhaustive: runs exhaustive search,
//	  honoring opts.Cancel.
//	– If opts.Method == MethodGreedy:     calls Greedy(g).
//	– Otherwise:                          returns ErrUnknownMethod.
//
// Returns:
//
//	Result — the matching and its total weight.
//	error  — non-nil if computation cannot proceed.
//
// Note: this is optional scaffolding — Exhaustive and Greedy can still be
// called directly.
func Compute(g *graph.Graph, opts Options) (Result, error) {
	// Dispatch by method name.
	switch opts.Method {
	case MethodExhaustive:
		return exhaustive(g, opts.Cancel)
	case MethodGreedy:
		return Greedy(g)
	default:
		// Unknown method name.
		return Result{}, ErrUnknownMethod
	}
}
