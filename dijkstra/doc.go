// Package dijkstra computes single-source shortest paths on weighted
// directed graphs with non-negative edge weights.
//
// 🚀 What is Dijkstra?
//
//	The classic greedy shortest-path algorithm: vertices are finalized in
//	increasing order of distance from the source, driven by a min-heap
//	priority queue with lazy deletion of stale entries.
//
// ✨ Key features:
//   - dist slice indexed by vertex; unreachable vertices hold Inf
//   - optional predecessor slice for path reconstruction (WithReturnPath)
//   - exploration cap (WithMaxDistance) and impassable-edge threshold
//     (WithInfEdgeThreshold)
//   - fail-fast negative-weight detection (ErrNegativeWeight) instead of
//     silently wrong distances
//   - saturating relaxation arithmetic around the Inf sentinel
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/algokit/dijkstra"
//
//	g, _ := graph.New(4)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(0, 2, 1)
//	_ = g.AddEdge(2, 1, 1)
//	_ = g.AddEdge(1, 3, 1)
//
//	dist, prev, err := dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
//	// dist == [0 2 1 3], prev[3] == 1
//
// Performance:
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E)
//
// See examples in example_test.go.
package dijkstra
