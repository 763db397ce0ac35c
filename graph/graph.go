// This file declares Edge, Graph, the sentinel errors, and the New
// constructor, together with the query methods used by the algorithm
// packages.
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrBadVertexCount indicates New was called with vertexCount <= 0.
	ErrBadVertexCount = errors.New("graph: vertex count must be positive")

	// ErrVertexOutOfRange indicates a vertex index outside 0..VertexCount()-1.
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")
)

// Edge represents a directed connection to a destination vertex.
//
// To is the destination vertex index; Weight is the cost of traversing
// the edge. Weights may be zero, positive, or negative — algorithms
// that cannot handle negative weights (dijkstra) validate on entry.
type Edge struct {
	// To is the destination vertex index.
	To int

	// Weight is the cost of the edge.
	Weight int64
}

// Graph is an adjacency-list directed graph over a fixed vertex count.
//
// Vertices are dense integer indices 0..vertexCount-1 and exist from
// construction; only edges are added incrementally. The zero value is
// not usable — construct with New.
//
// Graph is not internally synchronized: AddEdge requires exclusive
// access, concurrent reads are safe only while no mutation is in flight.
type Graph struct {
	// vertexCount is the fixed number of vertices.
	vertexCount int

	// edgeCount tracks the total number of edges added.
	edgeCount int

	// adjacency maps a source vertex to its ordered outgoing edges.
	adjacency map[int][]Edge
}

// New creates an empty Graph with vertexCount vertices and no edges.
// Returns ErrBadVertexCount if vertexCount <= 0.
// Complexity: O(1).
func New(vertexCount int) (*Graph, error) {
	if vertexCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadVertexCount, vertexCount)
	}

	return &Graph{
		vertexCount: vertexCount,
		adjacency:   make(map[int][]Edge),
	}, nil
}

// VertexCount returns the fixed number of vertices in the graph.
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the total number of edges added so far.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// HasVertex reports whether v is a valid vertex index for this graph.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.vertexCount }

// AddEdge appends a directed edge from → to with the given weight to
// from's adjacency list. Insertion order is preserved.
//
// Returns ErrVertexOutOfRange if either endpoint lies outside
// 0..VertexCount()-1. The weight is not validated here; see the
// dijkstra package for its non-negative weight requirement.
// Complexity: amortized O(1).
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: from=%d, vertices=%d", ErrVertexOutOfRange, from, g.vertexCount)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: to=%d, vertices=%d", ErrVertexOutOfRange, to, g.vertexCount)
	}

	g.adjacency[from] = append(g.adjacency[from], Edge{To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// OutEdges returns a copy of the outgoing edges of u, in insertion
// order. Returns ErrVertexOutOfRange if u is not a valid vertex.
// The caller owns the returned slice.
// Complexity: O(deg(u)).
func (g *Graph) OutEdges(u int) ([]Edge, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("%w: vertex=%d, vertices=%d", ErrVertexOutOfRange, u, g.vertexCount)
	}

	edges := g.adjacency[u]
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// OutDegree returns the number of outgoing edges of u.
// Returns ErrVertexOutOfRange if u is not a valid vertex.
func (g *Graph) OutDegree(u int) (int, error) {
	if !g.HasVertex(u) {
		return 0, fmt.Errorf("%w: vertex=%d, vertices=%d", ErrVertexOutOfRange, u, g.vertexCount)
	}

	return len(g.adjacency[u]), nil
}
