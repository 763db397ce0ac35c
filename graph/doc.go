// Package graph defines the central Graph and Edge types used by the
// traversal and shortest-path packages (bfs, dfs, dijkstra).
//
// 🚀 What is graph?
//
//	A minimal weighted, directed, adjacency-list graph over a fixed set
//	of vertices identified by dense integer indices 0..VertexCount()-1.
//	The graph is built once via repeated AddEdge calls and then queried;
//	edges are never removed.
//
// ✨ Key properties:
//
//   - Directed edges with int64 weights (zero, positive, or negative —
//     individual algorithms declare their own weight preconditions)
//   - Bounds-checked mutation: out-of-range vertex indices are rejected
//     with ErrVertexOutOfRange instead of corrupting adjacency state
//   - Owned results: OutEdges returns a fresh copy, never internal state
//
// Concurrency:
//
//	Graph carries no internal locking. Callers must guarantee exclusive
//	access during AddEdge and may read concurrently only while no
//	mutation is in flight.
//
// Errors:
//
//	ErrBadVertexCount   — New called with a non-positive vertex count.
//	ErrVertexOutOfRange — an edge endpoint or queried vertex lies outside
//	                      0..VertexCount()-1.
package graph
