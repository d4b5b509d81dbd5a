// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Handles are assigned sequentially in insertion order and never reused.
//   - Vertices() returns vertices in handle order.
//
// Concurrency:
//   - Vertex sequence protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (one empty bucket per vertex).
package core

import "fmt"

// AddVertex appends v to the vertex sequence and returns its handle.
//
// Implementation:
//   - Stage 1: Under muVert write lock, append v; its handle is the old length.
//   - Stage 2: Under muEdgeAdj write lock, append an empty adjacency bucket
//     so edge methods can index adjacency by handle without bounds checks.
//
// Behavior highlights:
//   - No validation and no deduplication: equal values get distinct handles.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(v Vertex) int {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	idx := len(g.vertices)
	g.vertices = append(g.vertices, v)

	g.muEdgeAdj.Lock()
	g.adjacency = append(g.adjacency, nil)
	g.muEdgeAdj.Unlock()

	return idx
}

// VertexCount returns the number of vertices added so far.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// VertexAt returns the vertex stored under handle idx.
//
// Errors:
//   - ErrVertexOutOfRange: if idx < 0 or idx ≥ VertexCount().
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) VertexAt(idx int) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if idx < 0 || idx >= len(g.vertices) {
		return Vertex{}, fmt.Errorf("%w: %d (count %d)", ErrVertexOutOfRange, idx, len(g.vertices))
	}

	return g.vertices[idx], nil
}

// IndexOf returns the first handle whose vertex equals v attribute by
// attribute, or NotFound.
//
// Complexity:
//   - Time O(V), Space O(1).
//
// Notes:
//   - Algorithms work on handles; IndexOf is for resolving values supplied
//     from outside (e.g. a Vertex the caller kept from an earlier lookup).
func (g *Graph) IndexOf(v Vertex) int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	for i := range g.vertices {
		if g.vertices[i] == v {
			return i
		}
	}

	return NotFound
}

// HasVertex reports whether idx is a valid handle.
func (g *Graph) HasVertex(idx int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return idx >= 0 && idx < len(g.vertices)
}

// Vertices returns a copy of the vertex sequence in handle order.
//
// Complexity:
//   - Time O(V), Space O(V).
func (g *Graph) Vertices() []Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}
