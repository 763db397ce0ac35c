// Package dfs implements depth-first search over a graph.Graph,
// with cancellation, pre- and post-order hooks, depth and neighbor limits,
// and diagnostics.
//
// Key features:
//   - DFS(g, start, opts...): recursive depth-first descent from a start vertex
//   - Order records vertices in visitation (pre-)order: a vertex appears
//     the moment it is first discovered
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Recursion depth:
//
//	The descent recurses as deep as the longest simple path explored, so
//	the host call stack bounds the graph depth this package can handle.
//	For adversarially deep graphs, an explicit-stack iterative form is
//	the known mitigation; the recursive form is kept for its natural
//	neighbor ordering.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata slices.
//
// Options:
//
//   - WithContext(ctx)       allows cancellation via context.Context.
//   - WithOnVisit(fn)        pre-order hook on vertex discovery; error aborts traversal.
//   - WithOnExit(fn)         post-order hook after exploring descendants.
//   - WithMaxDepth(limit)    stops recursion beyond given depth (>=0).
//   - WithFilterNeighbor(fn) filters neighbor indices; return false to skip.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartOutOfRange     if start lies outside 0..VertexCount()-1.
//   - context.Canceled       if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
