// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted graphs over dense integer vertex indices.
//
// Dijkstra computes the minimum-cost path from a single source vertex to
// all other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap
// priority queue, relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(V + E)) detects negative weights and fails fast.
//   - Any edge with weight ≥ InfEdgeThreshold is treated as an impassable “wall”.
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - “Lazy” decrease-key strategy: shorter paths push duplicate heap
//     entries; stale entries are skipped at pop time via the visited set.
//   - Relaxation uses saturating addition so arithmetic near the Inf
//     sentinel cannot wrap around.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/algokit/graph"
)

// Dijkstra computes shortest distances from source to every vertex of
// the weighted directed graph g. It accepts functional options to
// customize behavior (ReturnPath, MaxDistance, InfEdgeThreshold).
//
// Returns:
//
//   - dist: slice indexed by vertex; minimum distance from source, or
//     Inf for unreachable vertices.
//   - prev: predecessor slice if ReturnPath is set (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u;
//     prev[source] == -1, and prev[v] == -1 for unreachable v.
//   - err:  error if inputs are invalid or a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie within 0..VertexCount()-1 (ErrSourceOutOfRange).
//  3. No edge in g may have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *graph.Graph, source int, opts ...Option) ([]int64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Validate source lies in range
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source=%d, vertices=%d", ErrSourceOutOfRange, source, g.VertexCount())
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast.
	V := g.VertexCount()
	var u int
	for u = 0; u < V; u++ {
		edges, _ := g.OutEdges(u)
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	// 5) Prepare data structures for the algorithm.
	//    dist holds the current best-known distance from source per vertex.
	dist := make([]int64, V)

	//    If ReturnPath, allocate prev to track predecessors; nil otherwise.
	var prev []int
	if cfg.ReturnPath {
		prev = make([]int, V)
	}

	//    visited marks whether a vertex's shortest distance is finalized.
	visited := make([]bool, V)

	//    Initialize a priority queue (min-heap) of (vertex, distance) pairs.
	pq := make(nodePQ, 0, V)

	// 6) Initialize runner with all slices and the heap.
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    dist,
		prev:    prev,
		visited: visited,
		pq:      pq,
	}

	// 7) Initialize algorithm state and run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.Graph // The input graph; read-only within Dijkstra.
	options Options      // Configuration options (thresholds, etc.).
	source  int          // Source vertex index.
	dist    []int64      // Vertex index → current best distance from source.
	prev    []int        // Vertex index → predecessor on the shortest path.
	visited []bool       // Tracks whether a vertex's distance is finalized.
	pq      nodePQ       // Min-heap of *nodeItem for the lazy priority queue.
}

// init sets up initial distances, predecessors, and pushes source=0
// into the heap.
func (r *runner) init() {
	// 1) dist[v] = Inf for all vertices; prev[v] = -1 when allocated.
	for v := range r.dist {
		r.dist[v] = Inf
		if r.prev != nil {
			r.prev[v] = -1 // no predecessor yet
		}
	}

	// 2) Distance to the source is zero.
	r.dist[r.source] = 0

	// 3) heap.Init ensures the internal heap invariants hold.
	heap.Init(&r.pq)

	// 4) Push the source vertex with distance 0 onto the heap.
	heap.Push(&r.pq, &nodeItem{v: r.source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly
// extracts the vertex with the minimum distance from the source and
// relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	var u int
	var d int64
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.v
		d = item.dist

		// 2) Skip stale heap entries for already-finalized vertices
		//    (lazy deletion).
		if r.visited[u] {
			continue
		}

		// 3) If this distance exceeds MaxDistance, stop exploring further.
		//    u is not marked visited, as it is never relaxed.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Mark u as visited. Its shortest distance d is now final.
		r.visited[u] = true

		// 5) Relax all outgoing edges from u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from vertex u and attempts to improve
// distances to its neighbors. It respects InfEdgeThreshold and ignores
// any edge with weight ≥ that threshold (treating it as impassable).
// If a shorter path to neighbor v is found (newDist < dist[v]), dist[v]
// and prev[v] are updated and a new heap entry is pushed.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) error {
	// 1) Retrieve the outgoing edges of u, in insertion order.
	edges, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	// 2) For each edge u → v, attempt relaxation.
	var v int
	var w, newDist int64
	for _, e := range edges {
		v = e.To
		w = e.Weight

		// Skip any edge marked impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// Safety check: though the pre-scan rejects negative weights,
		// double-check nonetheless.
		if w < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, v, w)
		}

		// Candidate distance source → … → u → v, saturating at Inf.
		newDist = saturatingAdd(r.dist[u], w)

		// Skip neighbors beyond the exploration cap.
		if newDist > r.options.MaxDistance {
			continue
		}

		// Only strictly shorter paths update state; "<" avoids pushing
		// duplicates when distances are equal.
		if newDist >= r.dist[v] {
			continue
		}

		// A strictly shorter path to v was found.
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}

		// Push the updated distance for v onto the heap.
		// This is the lazy-decrease-key pattern: old entries remain and
		// are ignored later when popped if visited[v] is already true.
		heap.Push(&r.pq, &nodeItem{v: v, dist: newDist})
	}

	return nil
}

// saturatingAdd returns a+b, clamping at Inf instead of overflowing.
func saturatingAdd(a, b int64) int64 {
	if a > Inf-b {
		return Inf
	}

	return a + b
}

// nodeItem represents a vertex and its current distance from the source.
// It is stored in the priority queue to order vertices by increasing distance.
type nodeItem struct {
	v    int   // vertex index
	dist int64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by
// nodeItem.dist ascending. Under the lazy-decrease-key approach, finding
// a shorter distance to an existing vertex pushes a fresh *nodeItem; the
// outdated entry remains but is ignored when popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
