// Package dfs_test contains unit tests for depth-first traversal:
// validation errors, pre-order discovery, reachability coverage,
// hooks, depth limits, filtering, and cancellation.
package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/dfs"
	"github.com/katalvlaran/algokit/graph"
)

// buildBranchy constructs 0→{1,4}, 1→{2,3} with an isolated vertex 5.
func buildBranchy(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(6)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(0, 4, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(1, 3, 0))

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartOutOfRange(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)

	_, err = dfs.DFS(g, 3)
	assert.ErrorIs(t, err, dfs.ErrStartOutOfRange)

	_, err = dfs.DFS(g, -1)
	assert.ErrorIs(t, err, dfs.ErrStartOutOfRange)
}

func TestDFS_PreOrderDiscovery(t *testing.T) {
	// Depth-first descent follows the first edge to exhaustion before
	// backtracking: 0, 1, 2, 3, 4.
	g := buildBranchy(t)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, []int{-1, 0, 1, 1, 0, -1}, res.Parent)
	assert.Equal(t, []int{0, 1, 2, 2, 1, -1}, res.Depth)
}

func TestDFS_VisitsExactlyReachableSet(t *testing.T) {
	g := buildBranchy(t)
	require.NoError(t, g.AddEdge(5, 0, 0)) // 5→0 does not make 5 reachable

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)

	seen := make(map[int]int)
	for _, v := range res.Order {
		seen[v]++
	}
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1, 4: 1}, seen)
	assert.False(t, res.Visited[5])
}

func TestDFS_CycleTerminates(t *testing.T) {
	// 0→1→2→0: the visited set must break the cycle.
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 0, 0))

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestDFS_HookOrdering(t *testing.T) {
	// OnExit fires post-order: children exit before their parent.
	g := buildBranchy(t)

	var exits []int
	_, err := dfs.DFS(g, 0, dfs.WithOnExit(func(v int) error {
		exits = append(exits, v)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 1, 4, 0}, exits)
}

func TestDFS_OnVisitErrorAborts(t *testing.T) {
	g := buildBranchy(t)
	boom := errors.New("boom")

	_, err := dfs.DFS(g, 0, dfs.WithOnVisit(func(v int) error {
		if v == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildBranchy(t)

	// Depth 1 visits the start and its direct neighbors only.
	res, err := dfs.DFS(g, 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4}, res.Order)

	// Depth 0 visits only the start vertex.
	res, err = dfs.DFS(g, 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Order)
}

func TestDFS_FilterNeighborAndDiagnostics(t *testing.T) {
	g := buildBranchy(t)

	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(v int) bool {
		return v != 1
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_ContextCancellation(t *testing.T) {
	g := buildBranchy(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
