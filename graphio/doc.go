// Package graphio persists graph instances as JSON documents so generated
// experiment inputs survive between runs and stay inspectable by hand.
//
// Document shape:
//
//	{
//	  "num_vertices": 4,
//	  "num_edges": 2,
//	  "vertices": { "0": {"x": 17, "y": 210}, ... },
//	  "edges":    [ {"u": "0", "v": "3", "weight": 192.61}, ... ]
//	}
//
// vertices carries optional 2D positions (the builder's point layout);
// a document without positions is perfectly loadable — the matching
// engines never look at coordinates. Edge order in the document is the
// graph's insertion order, and Load preserves it, so a round-tripped graph
// produces bitwise-identical engine results.
//
// Weights are rounded to two decimals on save, matching the precision the
// experiment record format has always used.
package graphio
