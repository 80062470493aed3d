package matching_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/maxmatch/graph"
	"github.com/katalvlaran/maxmatch/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSquare constructs the 4-cycle 1—2(10), 2—3(5), 3—4(8), 1—4(6).
// Its maximum-weight matching is {1—2, 3—4} with total weight 18, and the
// greedy pass happens to find the same pair.
func buildSquare() *graph.Graph {
	g := graph.NewGraph()
	_ = g.AddEdge("1", "2", 10)
	_ = g.AddEdge("2", "3", 5)
	_ = g.AddEdge("3", "4", 8)
	_ = g.AddEdge("1", "4", 6)

	return g
}

// buildGreedyTrap constructs the adversarial graph 1—2(100), 1—3(99),
// 2—4(98), 3—4(50). The optimum is {1—3, 2—4} = 197; greedy grabs 1—2
// first, blocking both 99 and 98, and settles for {1—2, 3—4} = 150.
func buildGreedyTrap() *graph.Graph {
	g := graph.NewGraph()
	_ = g.AddEdge("1", "2", 100)
	_ = g.AddEdge("1", "3", 99)
	_ = g.AddEdge("2", "4", 98)
	_ = g.AddEdge("3", "4", 50)

	return g
}

// TestExhaustive_Square: on the 4-cycle the optimum is the
// weight-18 disjoint pair {1—2, 3—4}.
func TestExhaustive_Square(t *testing.T) {
	res, err := matching.Exhaustive(buildSquare())
	require.NoError(t, err)

	assert.InDelta(t, 18.0, res.Weight, 1e-9)
	assert.Equal(t, []graph.Edge{edge("1", "2", 10), edge("3", "4", 8)}, res.Edges)
	assert.True(t, matching.IsValidMatching(res.Edges))
}

// TestGreedy_Square: greedy sorts 10,8,6,5 descending and picks the two
// non-conflicting heaviest edges — optimal on this graph.
func TestGreedy_Square(t *testing.T) {
	res, err := matching.Greedy(buildSquare())
	require.NoError(t, err)

	assert.InDelta(t, 18.0, res.Weight, 1e-9)
	assert.Equal(t, []graph.Edge{edge("1", "2", 10), edge("3", "4", 8)}, res.Edges)
}

// TestGreedy_Suboptimal: on the trap graph, greedy's first pick blocks
// the true optimum and it finishes at 150 of 197 (76.14%).
func TestGreedy_Suboptimal(t *testing.T) {
	g := buildGreedyTrap()

	ex, err := matching.Exhaustive(g)
	require.NoError(t, err)
	assert.InDelta(t, 197.0, ex.Weight, 1e-9)
	assert.Equal(t, []graph.Edge{edge("1", "3", 99), edge("2", "4", 98)}, ex.Edges)

	gr, err := matching.Greedy(g)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, gr.Weight, 1e-9)
	assert.Equal(t, []graph.Edge{edge("1", "2", 100), edge("3", "4", 50)}, gr.Edges)
	assert.True(t, matching.IsValidMatching(gr.Edges))
}

// TestEmptyGraph: with zero edges both engines return the empty
// matching at weight 0, with a non-nil edge slice.
func TestEmptyGraph(t *testing.T) {
	g := graph.NewGraph()

	ex, err := matching.Exhaustive(g)
	require.NoError(t, err)
	assert.NotNil(t, ex.Edges)
	assert.Empty(t, ex.Edges)
	assert.Zero(t, ex.Weight)

	gr, err := matching.Greedy(g)
	require.NoError(t, err)
	assert.NotNil(t, gr.Edges)
	assert.Empty(t, gr.Edges)
	assert.Zero(t, gr.Weight)
}

// TestExhaustive_NegativeFloor: with only negative
// weights the empty matching is the weight-0 floor — never a negative
// singleton.
func TestExhaustive_NegativeFloor(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge("1", "2", -3)
	_ = g.AddEdge("3", "4", -0.5)

	res, err := matching.Exhaustive(g)
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.Weight)

	// Greedy does not share the floor: it takes any non-conflicting edge
	// regardless of sign, and its result must still be a valid matching.
	gr, err := matching.Greedy(g)
	require.NoError(t, err)
	assert.True(t, matching.IsValidMatching(gr.Edges))
	assert.InDelta(t, matching.TotalWeight(gr.Edges), gr.Weight, 1e-9)
}

// TestSingleEdge: the one-edge boundary — both engines return that edge.
func TestSingleEdge(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 7))
	want := []graph.Edge{edge("A", "B", 7)}

	ex, err := matching.Exhaustive(g)
	require.NoError(t, err)
	assert.Equal(t, want, ex.Edges)
	assert.InDelta(t, 7.0, ex.Weight, 1e-9)

	gr, err := matching.Greedy(g)
	require.NoError(t, err)
	assert.Equal(t, want, gr.Edges)
	assert.InDelta(t, 7.0, gr.Weight, 1e-9)
}

// TestExhaustive_TieBreak: when two subsets tie in weight, the one with the
// smaller bitmask under edge insertion order wins. Edges A—B and A—C both
// weigh 5 and conflict, so masks 0b01 and 0b10 tie; the earlier edge wins.
func TestExhaustive_TieBreak(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge("A", "B", 5)
	_ = g.AddEdge("A", "C", 5)

	res, err := matching.Exhaustive(g)
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{edge("A", "B", 5)}, res.Edges)
	assert.InDelta(t, 5.0, res.Weight, 1e-9)
}

// TestGreedy_StableTies: equal weights keep insertion order, so greedy's
// pick between two conflicting weight-5 edges is the first-inserted one.
func TestGreedy_StableTies(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge("A", "C", 5) // inserted first; must win the tie
	_ = g.AddEdge("A", "B", 5)

	res, err := matching.Greedy(g)
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{edge("A", "C", 5)}, res.Edges)
}

// TestDuplicateParallelEdges: copies of the same unordered pair are
// independent edges, but at most one copy fits any matching. The heavier
// copy plus the disjoint edge is the optimum.
func TestDuplicateParallelEdges(t *testing.T) {
	g := graph.NewGraph()
	_ = g.AddEdge("A", "B", 3)
	_ = g.AddEdge("A", "B", 9)
	_ = g.AddEdge("C", "D", 1)

	res, err := matching.Exhaustive(g)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, res.Weight, 1e-9)
	assert.Equal(t, []graph.Edge{edge("A", "B", 9), edge("C", "D", 1)}, res.Edges)
}

// TestDeterminism: invoking either engine twice on an unmodified graph
// returns identical results.
func TestDeterminism(t *testing.T) {
	g := buildGreedyTrap()

	ex1, err := matching.Exhaustive(g)
	require.NoError(t, err)
	ex2, err := matching.Exhaustive(g)
	require.NoError(t, err)
	assert.Equal(t, ex1, ex2)

	gr1, err := matching.Greedy(g)
	require.NoError(t, err)
	gr2, err := matching.Greedy(g)
	require.NoError(t, err)
	assert.Equal(t, gr1, gr2)
}

// TestExhaustive_MatchesGreedyOrBetter: on a batch of fixed fixtures the
// exact engine never loses to the heuristic, and every result is internally
// consistent (Weight == recomputed sum) and a valid matching.
func TestExhaustive_MatchesGreedyOrBetter(t *testing.T) {
	fixtures := []*graph.Graph{
		buildSquare(),
		buildGreedyTrap(),
		buildTriangle(),
		buildK4(),
		buildPath6(),
	}
	for i, g := range fixtures {
		ex, err := matching.Exhaustive(g)
		require.NoError(t, err, "fixture %d", i)
		gr, err := matching.Greedy(g)
		require.NoError(t, err, "fixture %d", i)

		assert.GreaterOrEqual(t, ex.Weight, gr.Weight, "fixture %d", i)
		assert.True(t, matching.IsValidMatching(ex.Edges), "fixture %d", i)
		assert.True(t, matching.IsValidMatching(gr.Edges), "fixture %d", i)
		assert.InDelta(t, matching.TotalWeight(ex.Edges), ex.Weight, 1e-9, "fixture %d", i)
		assert.InDelta(t, matching.TotalWeight(gr.Edges), gr.Weight, 1e-9, "fixture %d", i)
	}
}

// buildTriangle: A—B(5), B—C(7), A—C(6). Any matching holds one edge;
// the optimum is B—C at 7.
func buildTriangle() *graph.Graph {
	g := graph.NewGraph()
	_ = g.AddEdge("A", "B", 5)
	_ = g.AddEdge("B", "C", 7)
	_ = g.AddEdge("A", "C", 6)

	return g
}

// buildK4: complete graph on 4 vertices; optimum pairs 1—2(8) with 3—4(10)
// for 18, and greedy finds the same pairing.
func buildK4() *graph.Graph {
	g := graph.NewGraph()
	_ = g.AddEdge("1", "2", 8)
	_ = g.AddEdge("1", "3", 5)
	_ = g.AddEdge("1", "4", 9)
	_ = g.AddEdge("2", "3", 7)
	_ = g.AddEdge("2", "4", 6)
	_ = g.AddEdge("3", "4", 10)

	return g
}

// buildPath6: path 1—2(3)—3(8)—4(5)—5(7)—6(4); optimum {2—3, 4—5} = 15.
func buildPath6() *graph.Graph {
	g := graph.NewGraph()
	_ = g.AddEdge("1", "2", 3)
	_ = g.AddEdge("2", "3", 8)
	_ = g.AddEdge("3", "4", 5)
	_ = g.AddEdge("4", "5", 7)
	_ = g.AddEdge("5", "6", 4)

	return g
}

// TestExhaustive_Triangle pins the single-edge optimum of the triangle.
func TestExhaustive_Triangle(t *testing.T) {
	res, err := matching.Exhaustive(buildTriangle())
	require.NoError(t, err)
	assert.InDelta(t, 7.0, res.Weight, 1e-9)
	assert.Equal(t, []graph.Edge{edge("B", "C", 7)}, res.Edges)
}

// TestExhaustive_Path6 pins the two-edge optimum of the path graph.
func TestExhaustive_Path6(t *testing.T) {
	res, err := matching.Exhaustive(buildPath6())
	require.NoError(t, err)
	assert.InDelta(t, 15.0, res.Weight, 1e-9)
}

// TestNilGraph: both engines and the dispatcher reject a nil graph.
func TestNilGraph(t *testing.T) {
	_, err := matching.Exhaustive(nil)
	assert.ErrorIs(t, err, matching.ErrNilGraph)

	_, err = matching.Greedy(nil)
	assert.ErrorIs(t, err, matching.ErrNilGraph)

	_, err = matching.Compute(nil, matching.DefaultOptions())
	assert.ErrorIs(t, err, matching.ErrNilGraph)
}

// TestExhaustive_TooManyEdges: 64 disjoint edges exceed the uint64 subset
// mask and are rejected up front, before any enumeration.
func TestExhaustive_TooManyEdges(t *testing.T) {
	g := graph.NewGraph()
	for i := 0; i < 64; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("a%02d", i), fmt.Sprintf("b%02d", i), 1))
	}

	_, err := matching.Exhaustive(g)
	assert.ErrorIs(t, err, matching.ErrTooManyEdges)
}

// TestCompute_Dispatch: Options select the engine; unknown methods fail
// with ErrUnknownMethod; DefaultOptions runs greedy.
func TestCompute_Dispatch(t *testing.T) {
	g := buildGreedyTrap()

	ex, err := matching.Compute(g, matching.Options{Method: matching.MethodExhaustive})
	require.NoError(t, err)
	assert.InDelta(t, 197.0, ex.Weight, 1e-9)

	gr, err := matching.Compute(g, matching.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 150.0, gr.Weight, 1e-9)

	_, err = matching.Compute(g, matching.Options{Method: "blossom"})
	assert.ErrorIs(t, err, matching.ErrUnknownMethod)
}

// TestCompute_Cancel: a Cancel hook that fires immediately aborts the
// exhaustive search with ErrCanceled; greedy ignores the hook entirely.
func TestCompute_Cancel(t *testing.T) {
	g := buildSquare()

	opts := matching.DefaultOptions()
	matching.WithMethod(matching.MethodExhaustive)(&opts)
	matching.WithCancel(func() bool { return true })(&opts)

	_, err := matching.Compute(g, opts)
	assert.ErrorIs(t, err, matching.ErrCanceled)

	matching.WithMethod(matching.MethodGreedy)(&opts)
	res, err := matching.Compute(g, opts)
	require.NoError(t, err)
	assert.InDelta(t, 18.0, res.Weight, 1e-9)
}
