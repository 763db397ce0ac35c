// Package algokit is your in-memory playground for classic data
// structures and algorithms — ordered trees, weighted graphs, sorting,
// and dynamic programming, all as small composable packages.
//
// 🚀 What is algokit?
//
//	A compact, pure-Go toolkit that brings together:
//		• Ordered tree: generic binary search tree with in-order iteration
//		• Graph core: dense integer-indexed, weighted, directed adjacency lists
//		• Traversals: BFS, DFS with hooks, depth limits and cancellation
//		• Shortest paths: Dijkstra with lazy-deletion min-heap
//		• Sorting: in-place quicksort, stable mergesort (generic + comparator forms)
//		• Dynamic programming: LCS, Levenshtein edit distance, 0/1 knapsack
//
// ✨ Why choose algokit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit contracts – typed sentinel errors instead of silent undefined behavior
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – add custom hooks (OnVisit, OnEnqueue…) for custom logic
//
// Everything is organized into independent subpackages; none of them
// depends on another except the traversal packages, which operate on
// graph.Graph:
//
//	bst/      — generic binary search tree (Insert, Contains, InOrder)
//	graph/    — weighted directed graph over dense vertex indices
//	bfs/      — breadth-first traversal & unweighted shortest hops
//	dfs/      — depth-first traversal with pre/post hooks
//	dijkstra/ — single-source shortest paths (non-negative weights)
//	sorting/  — quicksort & mergesort over ordered or compared elements
//	dp/       — longest common subsequence, edit distance, knapsack
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a four-vertex square; dijkstra.Dijkstra(g, 0) yields the cheapest
//	distance to every corner.
//
// All packages are synchronous and allocation-owned: each call receives
// owned or borrowed input and returns an owned result. Mutating calls
// (Insert, AddEdge) require exclusive access; synchronize externally if
// you share a structure across goroutines.
//
//	go get github.com/katalvlaran/algokit
package algokit
