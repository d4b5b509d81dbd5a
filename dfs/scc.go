package dfs

import (
	"sort"

	"github.com/MarkSixtyFour/class-djikstra/core"
)

// StronglyConnected partitions g into strongly connected components: sets
// of intersections where every member can reach every other one.
//
// Implementation (Kosaraju):
//   - Pass 1: full DFS on g, recording post-order finish times.
//   - Pass 2: DFS on the transposed graph in reverse finish order; each
//     tree found is one component.
//
// Each component is sorted by handle and components are ordered by their
// smallest handle, so the output is deterministic.
//
// Complexity: O(V + E) time, O(V + E) memory.
func StronglyConnected(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	first, err := walk(n, successors(g), 0, fullTraversal())
	if err != nil {
		return nil, err
	}

	// Transpose once; the graph is not touched again.
	rev := make([][]int, n)
	for _, e := range g.Edges() {
		rev[e.To] = append(rev[e.To], e.From)
	}

	// Pass 2 shares one walker, so Visited spans every tree and each
	// vertex lands in exactly one component.
	var comps [][]int
	opts := DefaultOptions()
	opts.OnVisit = func(v int) error {
		comps[len(comps)-1] = append(comps[len(comps)-1], v)
		return nil
	}
	second := newWalker(n, func(u int) []int { return rev[u] }, opts)
	for i := len(first.Order) - 1; i >= 0; i-- {
		root := first.Order[i]
		if second.res.Visited[root] {
			continue
		}
		comps = append(comps, nil)
		if err := second.traverse(root, 0); err != nil {
			return nil, err
		}
		sort.Ints(comps[len(comps)-1])
	}

	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps, nil
}

func fullTraversal() DFSOptions {
	o := DefaultOptions()
	o.FullTraversal = true

	return o
}
