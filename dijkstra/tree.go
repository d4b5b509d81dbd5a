package dijkstra

import (
	"fmt"
	"math"

	"github.com/MarkSixtyFour/class-djikstra/core"
)

// Tree is the result of one Run: shortest distances and predecessors from
// a single source. A Tree is immutable and safe for concurrent reads.
type Tree struct {
	g       *core.Graph
	source  int
	dist    []float64
	prev    []int
	settled []bool
	stopped bool
}

// Source returns the handle the tree is rooted at.
func (t *Tree) Source() int { return t.source }

// Dist returns the shortest distance from the source to v in kilometers,
// or +Inf when v is unreachable or not a valid handle.
func (t *Tree) Dist(v int) float64 {
	if v < 0 || v >= len(t.dist) {
		return math.Inf(1)
	}

	return t.dist[v]
}

// Prev returns the predecessor of v on its shortest route. ok is false for
// the source, for unreachable vertices and for invalid handles.
func (t *Tree) Prev(v int) (int, bool) {
	if v < 0 || v >= len(t.prev) || t.prev[v] == NoPrev {
		return NoPrev, false
	}

	return t.prev[v], true
}

// Reachable reports whether v has a finite distance from the source.
func (t *Tree) Reachable(v int) bool {
	return !math.IsInf(t.Dist(v), 1)
}

// PathTo rebuilds the shortest route from the source to dst.
//
// Steps:
//  1. Validate dst (ErrVertexNotFound) and, after an early stop, that it
//     was settled (ErrNotSettled).
//  2. dst == source: one-vertex path, no hops, Total 0.
//  3. dist[dst] == +Inf: ErrUnreachable.
//  4. Walk prev from dst until NoPrev, then reverse into source order.
//  5. Read each hop weight from the graph and sum into Total.
//
// Complexity: O(L · deg) where L is the path length.
func (t *Tree) PathTo(dst int) (*Path, error) {
	if dst < 0 || dst >= len(t.dist) {
		return nil, fmt.Errorf("%w: destination %d", ErrVertexNotFound, dst)
	}
	if t.stopped && !t.settled[dst] {
		return nil, fmt.Errorf("%w: %d", ErrNotSettled, dst)
	}
	if dst != t.source && !t.Reachable(dst) {
		return nil, t.unreachable(dst)
	}

	// Backtrack dst → source.
	var rev []int
	for cur := dst; cur != NoPrev; cur = t.prev[cur] {
		rev = append(rev, cur)
	}

	p := &Path{
		Indices:  make([]int, len(rev)),
		Vertices: make([]core.Vertex, len(rev)),
		Hops:     make([]float64, 0, len(rev)-1),
	}
	for i, idx := range rev {
		j := len(rev) - 1 - i
		v, err := t.g.VertexAt(idx)
		if err != nil {
			return nil, err
		}
		p.Indices[j] = idx
		p.Vertices[j] = v
	}
	for i := 0; i+1 < len(p.Indices); i++ {
		d := t.g.Distance(p.Indices[i], p.Indices[i+1])
		p.Hops = append(p.Hops, d)
		p.Total += d
	}

	return p, nil
}

// unreachable builds an ErrUnreachable that names both endpoints.
func (t *Tree) unreachable(dst int) error {
	from, _ := t.g.VertexAt(t.source)
	to, _ := t.g.VertexAt(dst)

	return fmt.Errorf("%w: %s (%d) → %s (%d)", ErrUnreachable, from.Label, t.source, to.Label, dst)
}
