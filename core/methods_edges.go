// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeBetween/HasEdge/Distance/
//       OutEdges/Edges/EdgeCount.
// Determinism:
//   - Edges() and OutEdges() return edges in insertion order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock (after reading endpoints under muVert).
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"

	"github.com/MarkSixtyFour/class-djikstra/geo"
)

// AddEdge appends a directed edge from → to and returns its edge index.
// The weight is geo.Distance between the two endpoint coordinates.
//
// Steps:
//  1. Read both endpoints under muVert (ErrVertexOutOfRange if invalid).
//  2. Compute the weight outside any lock.
//  3. Lock muEdgeAdj, append to the catalog and to adjacency[from].
//
// Self-loops and duplicate pairs are accepted as-is.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) (int, error) {
	g.muVert.RLock()
	n := len(g.vertices)
	if from < 0 || from >= n || to < 0 || to >= n {
		g.muVert.RUnlock()
		return -1, fmt.Errorf("%w: edge %d→%d (count %d)", ErrVertexOutOfRange, from, to, n)
	}
	src, dst := g.vertices[from], g.vertices[to]
	g.muVert.RUnlock()

	w := geo.Distance(src.Latitude, src.Longitude, dst.Latitude, dst.Longitude)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: w})
	g.adjacency[from] = append(g.adjacency[from], eid)

	return eid, nil
}

// AddEdgeBetween resolves both vertices by value with IndexOf and adds the
// directed edge between them.
//
// Errors:
//   - ErrVertexNotFound: if either value is absent from the graph.
func (g *Graph) AddEdgeBetween(from, to Vertex) (int, error) {
	fi := g.IndexOf(from)
	if fi == NotFound {
		return -1, fmt.Errorf("%w: %s", ErrVertexNotFound, from.Label)
	}
	ti := g.IndexOf(to)
	if ti == NotFound {
		return -1, fmt.Errorf("%w: %s", ErrVertexNotFound, to.Label)
	}

	return g.AddEdge(fi, ti)
}

// HasEdge reports whether at least one stored edge goes from → to.
// Invalid handles simply report false.
//
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	_, ok := g.firstEdge(from, to)

	return ok
}

// Distance returns the weight of the edge from → to, or +Inf when the
// graph has no such edge.
//
// Complexity: O(deg(from)).
func (g *Graph) Distance(from, to int) float64 {
	if w, ok := g.firstEdge(from, to); ok {
		return w
	}

	return math.Inf(1)
}

// firstEdge scans adjacency[from] for the first edge ending at to.
func (g *Graph) firstEdge(from, to int) (float64, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if from < 0 || from >= len(g.adjacency) {
		return 0, false
	}
	for _, eid := range g.adjacency[from] {
		if e := g.edges[eid]; e.To == to {
			return e.Weight, true
		}
	}

	return 0, false
}

// OutEdges returns a copy of the edges leaving u, in insertion order.
// An invalid handle yields an empty slice.
//
// Complexity: Time O(deg(u)), Space O(deg(u)).
func (g *Graph) OutEdges(u int) []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if u < 0 || u >= len(g.adjacency) {
		return nil
	}
	out := make([]Edge, 0, len(g.adjacency[u]))
	for _, eid := range g.adjacency[u] {
		out = append(out, g.edges[eid])
	}

	return out
}

// Edges returns a copy of the edge catalog in insertion order.
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges, duplicates included.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
