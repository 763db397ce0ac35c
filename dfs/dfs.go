// This file implements the recursive DFS descent: validation, walker
// state, and the traverse step honoring hooks, limits, and cancellation.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/algokit/graph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *graph.Graph // underlying graph
	opts  Options      // traversal options
	res   *Result      // result collector
}

// DFS performs depth-first search on graph g starting from start.
// Vertices are recorded in Result.Order the moment they are discovered
// (pre-order). Returns Result or an error if aborted by context or hook.
func DFS(g *graph.Graph, start int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Verify start index
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start=%d, vertices=%d", ErrStartOutOfRange, start, g.VertexCount())
	}

	// 4. Initialize result with capacity hints
	n := g.VertexCount()
	res := &Result{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse from the start vertex
	if err := walker.traverse(start, 0); err != nil {
		return res, err
	}

	// 6. Expose diagnostics
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse visits vertex v at the given depth, recursing to neighbors.
// It honors context cancellation, depth limit, hooks, and filtering.
func (w *dfsWalker) traverse(v, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited, record depth and discovery order (pre-order)
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Order = append(w.res.Order, v)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4. Fetch neighbors once
	edges, err := w.graph.OutEdges(v)
	if err != nil {
		return fmt.Errorf("dfs: OutEdges(%d): %w", v, err)
	}

	// 5. Explore each neighbor in insertion order
	for _, e := range edges {
		// Neighbor filtering
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.To) {
			w.opts.SkippedNeighbors++
			continue
		}

		// Depth limit: do not descend past MaxDepth
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}

		// Recurse on unvisited
		if !w.res.Visited[e.To] {
			w.res.Parent[e.To] = v
			if err = w.traverse(e.To, depth+1); err != nil {
				return err
			}
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	return nil
}
