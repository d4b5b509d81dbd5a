// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/MarkSixtyFour/class-djikstra/core"
)

// queueItem pairs a vertex handle with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// Reachable returns the handles reachable from start (start included), in
// BFS visit order.
func Reachable(g *core.Graph, start int) ([]int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// enqueue marks v seen at depth d, records its parent and queues it.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors follows every outgoing edge of item, applying the
// filter and MaxDepth, and enqueues each unseen head.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, e := range w.graph.OutEdges(item.v) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.v, e.To) {
			continue
		}
		if w.res.Depth[e.To] == Unreached {
			w.enqueue(e.To, nextDepth, item.v)
		}
	}

	return nil
}
