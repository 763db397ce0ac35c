// Package bfs provides breadth-first search over a graph.Graph,
// returning unweighted shortest-path depths, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence (discovery order)
//   - Depth: per-vertex distance (edges) from start, -1 if unreached
//   - Parent: per-vertex predecessor in the BFS tree, -1 for the root and unreached
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and level layering.
//   - Each vertex is enqueued at most once; repeats never appear in Order.
//
// Determinism
//
//	graph.OutEdges returns edges in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth, Parent, visited set)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // handle ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, or hook errors
//	}
//
//	// With functional options:
//	result, err := bfs.BFS(
//	    g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 7 }),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrStartOutOfRange if the start index is outside 0..VertexCount()-1.
//   - ErrOptionViolation if an invalid Option was supplied (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
