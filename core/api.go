// File: api.go
// Role: Thin read-only facade: graph statistics snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Locking model is defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	VertexCount int // vertices in the sequence
	EdgeCount   int // directed edge records, duplicates included

	SelfLoops int // edges with From == To
	Isolated  int // vertices with no incoming and no outgoing edge

	MaxOutDegree int     // largest len(OutEdges(u))
	TotalWeight  float64 // sum of all edge weights, km
}

// Stats produces a snapshot of vertex/edge counts used for load diagnostics.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot the vertex count, release.
//   - Stage 2: Acquire muEdgeAdj.RLock, scan edges and adjacency once, release.
//
// Behavior highlights:
//   - Never holds both locks at the same time.
//
// Complexity:
//   - Time O(V+E), Space O(V) for the touched-vertex marks.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{VertexCount: len(g.vertices)}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats.EdgeCount = len(g.edges)
	touched := make([]bool, len(g.adjacency))
	for _, e := range g.edges {
		if e.From == e.To {
			stats.SelfLoops++
		}
		stats.TotalWeight += e.Weight
		touched[e.From] = true
		touched[e.To] = true
	}
	for u, bucket := range g.adjacency {
		if len(bucket) > stats.MaxOutDegree {
			stats.MaxOutDegree = len(bucket)
		}
		if !touched[u] {
			stats.Isolated++
		}
	}

	return &stats
}
