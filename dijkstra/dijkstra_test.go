// Package dijkstra_test contains unit tests for the Dijkstra
// implementation: validation, basic correctness, path reconstruction,
// MaxDistance, InfEdgeThreshold, and edge cases such as single-vertex
// graphs, zero-weight edges, and unreachable vertices.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/dijkstra"
	"github.com/katalvlaran/algokit/graph"
)

// buildSpecGraph constructs the reference scenario: vertices {0,1,2,3},
// edges (0,1,4), (0,2,1), (2,1,1), (1,3,1), (2,3,5).
// Shortest distances from 0 are [0, 2, 1, 3].
func buildSpecGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(2, 3, 5))

	return g
}

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)

	_, _, err = dijkstra.Dijkstra(g, 2)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	_, _, err = dijkstra.Dijkstra(g, -1)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, -5)) // poisoned edge

	_, _, err = dijkstra.Dijkstra(g, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_BadOptionPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1)(nil) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(nil) })
}

// ------------------------------------------------------------------------
// 2. Basic functionality.
// ------------------------------------------------------------------------

func TestDijkstra_SpecScenario(t *testing.T) {
	g := buildSpecGraph(t)

	dist, prev, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 1, 3}, dist)
	// prev is nil when ReturnPath is not requested.
	assert.Nil(t, prev)
}

func TestDijkstra_SourceDistanceZero(t *testing.T) {
	g := buildSpecGraph(t)

	for source := 0; source < 4; source++ {
		dist, _, err := dijkstra.Dijkstra(g, source)
		require.NoError(t, err)
		assert.Equal(t, int64(0), dist[source], "source %d", source)
	}
}

func TestDijkstra_ReturnPath(t *testing.T) {
	g := buildSpecGraph(t)

	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 1, 3}, dist)

	// Shortest path to 3 is 0→2→1→3.
	assert.Equal(t, -1, prev[0])
	assert.Equal(t, 2, prev[1])
	assert.Equal(t, 0, prev[2])
	assert.Equal(t, 1, prev[3])
}

func TestDijkstra_UnreachableKeepInf(t *testing.T) {
	// 0→1, vertex 2 is unreachable.
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 7))

	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Inf, dist[2])
	assert.Equal(t, -1, prev[2])
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	// Zero weights are legal and propagate the source distance.
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, dist)
}

func TestDijkstra_LazyDeletionPicksShorterPath(t *testing.T) {
	// 0→1 (10) is enqueued first, then relaxations through 0→2→1 (3)
	// push a duplicate entry for 1; the stale one must be skipped.
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(2, 1, 2))

	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist[1])
}

func TestDijkstra_SingleVertex(t *testing.T) {
	g, err := graph.New(1)
	require.NoError(t, err)

	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, dist)
}

func TestDijkstra_SelfLoopIgnoredForDistance(t *testing.T) {
	// A self-loop can never shorten a path.
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, 3))
	require.NoError(t, g.AddEdge(0, 1, 2))

	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2}, dist)
}

// ------------------------------------------------------------------------
// 3. Options: MaxDistance and InfEdgeThreshold.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceCutsExploration(t *testing.T) {
	// Chain 0→1→2→3 with unit weights; cap at 2 leaves 3 unreached.
	g, err := graph.New(4)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}

	dist, _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist[2])
	assert.Equal(t, dijkstra.Inf, dist[3])
}

func TestDijkstra_InfEdgeThresholdWalls(t *testing.T) {
	// The direct 0→1 edge (weight 100) is a wall; the detour wins.
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 100))
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(2, 1, 5))

	dist, _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithInfEdgeThreshold(100))
	require.NoError(t, err)
	assert.Equal(t, int64(10), dist[1])
}

// ------------------------------------------------------------------------
// 4. Cross-check against a plain Bellman-Ford reference on a fixed graph.
// ------------------------------------------------------------------------

func TestDijkstra_MatchesBellmanFordReference(t *testing.T) {
	// Deterministic medium graph: 8 vertices, mixed weights.
	type edge struct {
		from, to int
		w        int64
	}
	edges := []edge{
		{0, 1, 3}, {0, 2, 8}, {1, 3, 4}, {2, 3, 1}, {3, 4, 7},
		{1, 4, 20}, {4, 5, 2}, {2, 5, 30}, {5, 6, 1}, {0, 6, 50},
		{6, 7, 5}, {3, 7, 19},
	}
	g, err := graph.New(8)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}

	// Bellman-Ford reference.
	ref := make([]int64, 8)
	for i := range ref {
		ref[i] = dijkstra.Inf
	}
	ref[0] = 0
	for iter := 0; iter < 8; iter++ {
		for _, e := range edges {
			if ref[e.from] != dijkstra.Inf && ref[e.from]+e.w < ref[e.to] {
				ref[e.to] = ref[e.from] + e.w
			}
		}
	}

	dist, _, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, ref, dist)
}
