package dfs

import (
	"fmt"

	"github.com/MarkSixtyFour/class-djikstra/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	next func(u int) []int // successors of u
	opts DFSOptions        // traversal options
	res  *DFSResult        // result collector
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every vertex, start is then only validated when the graph is non-empty;
// otherwise it explores only what start reaches.
// Returns the partial DFSResult alongside an error if aborted by context or hook.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	return walk(g.VertexCount(), successors(g), start, dopts)
}

// successors adapts g's adjacency to a handle-only view.
func successors(g *core.Graph) func(u int) []int {
	return func(u int) []int {
		out := g.OutEdges(u)
		ids := make([]int, len(out))
		for i, e := range out {
			ids[i] = e.To
		}

		return ids
	}
}

// newWalker prepares a traversal over n vertices whose successors come from next.
func newWalker(n int, next func(u int) []int, opts DFSOptions) *dfsWalker {
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = Unvisited
		res.Parent[i] = Unvisited
	}

	return &dfsWalker{next: next, opts: opts, res: res}
}

// walk runs a single-source or forest traversal.
func walk(n int, next func(u int) []int, start int, opts DFSOptions) (*DFSResult, error) {
	w := newWalker(n, next, opts)

	if opts.FullTraversal {
		for v := 0; v < n; v++ {
			if !w.res.Visited[v] {
				if err := w.traverse(v, 0); err != nil {
					return w.res, err
				}
			}
		}

		return w.res, nil
	}

	return w.res, w.traverse(start, 0)
}

// traverse visits vertex u at the given depth, recursing to its successors.
func (w *dfsWalker) traverse(u, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[u] = true
	w.res.Depth[u] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(u); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", u, err)
		}
	}

	// 4. Explore each successor; self-loops and parallel streets add nothing
	for _, v := range w.next(u) {
		if v == u || w.res.Visited[v] {
			continue
		}
		w.res.Parent[v] = u
		if err := w.traverse(v, depth+1); err != nil {
			return err
		}
	}

	// 5. Record finish order
	w.res.Order = append(w.res.Order, u)

	return nil
}
