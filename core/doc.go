// Package core provides the street-map Graph: an ordered, indexable vertex
// sequence plus a collection of directed edges whose weights are derived
// from vertex coordinates.
//
// The Graph G = (V, E) has the following shape:
//
//   - Vertices are immutable values (Latitude, Longitude, Height, Label).
//     AddVertex appends and returns the vertex handle, which is its
//     position in insertion order. Handles are the identity used by every
//     algorithm; value equality exists only for IndexOf lookups.
//   - Edges are directed (From → To). Weight is never supplied by callers:
//     AddEdge computes it with geo.Distance from the endpoint coordinates.
//     A bidirectional street is two Edge records, one per direction.
//   - Duplicate edges and self-loops are stored as given. Distance reports
//     the weight of the first matching edge, which is identical for every
//     duplicate because weights are deterministic in the coordinates.
//   - Outgoing adjacency is kept per vertex (edge indices in insertion
//     order) so relaxation does not rescan the whole edge catalog.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v Vertex) int                 // O(1) amortized
//	VertexCount() int                       // O(1)
//	VertexAt(i int) (Vertex, error)         // O(1)
//	IndexOf(v Vertex) int                   // O(V), NotFound if absent
//
//	// Edge lifecycle
//	AddEdge(from, to int) (int, error)      // O(1) amortized
//	AddEdgeBetween(from, to Vertex) (int, error)
//	HasEdge(from, to int) bool              // O(deg(from))
//	Distance(from, to int) float64          // O(deg(from)), +Inf if no edge
//	OutEdges(u int) []Edge                  // O(deg(u))
//
// Errors:
//
//	ErrVertexOutOfRange - handle is negative or ≥ VertexCount().
//	ErrVertexNotFound   - vertex value is not present in the graph.
//
// Concurrency:
//
// muVert guards the vertex sequence, muEdgeAdj guards the edge catalog and
// adjacency. Lock order is always muVert → muEdgeAdj. A Graph is built once
// and then shared read-only; concurrent queries each keep their own state.
package core
