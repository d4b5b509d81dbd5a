package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/MarkSixtyFour/class-djikstra/core"
)

// Run computes the shortest-path tree rooted at source.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a valid handle (ErrVertexNotFound).
//  3. Strategy must be known (ErrBadStrategy).
//  4. No edge may carry a negative or NaN weight (ErrBadWeight).
//
// Complexity:
//
//   - StrategyScan: Time O(V² + E), Space O(V).
//   - StrategyHeap: Time O((V + E) log V), Space O(V + E).
func Run(g *core.Graph, source int, opts ...Option) (*Tree, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	if cfg.Strategy != StrategyScan && cfg.Strategy != StrategyHeap {
		return nil, fmt.Errorf("%w: %d", ErrBadStrategy, cfg.Strategy)
	}

	// 3) Pre-scan weights. Weights come from geo.Distance and are never
	//    negative, but a NaN coordinate would poison every comparison.
	for _, e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%v", ErrBadWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Initialize per-query state.
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	r.init(source)

	// 5) Main loop.
	if cfg.Strategy == StrategyHeap {
		r.processHeap()
	} else {
		r.processScan()
	}

	return &Tree{
		g:       g,
		source:  source,
		dist:    r.dist,
		prev:    r.prev,
		settled: r.visited,
		stopped: r.stopped,
	}, nil
}

// ShortestPath runs Dijkstra from src and returns the route to dst.
//
// Errors:
//   - ErrVertexNotFound if src or dst is not a valid handle.
//   - ErrUnreachable if dst cannot be reached from src.
//   - any error from Run.
func ShortestPath(g *core.Graph, src, dst int, opts ...Option) (*Path, error) {
	if g != nil && !g.HasVertex(dst) {
		return nil, fmt.Errorf("%w: destination %d", ErrVertexNotFound, dst)
	}
	// Target goes first so callers can still override it.
	all := append([]Option{WithTarget(dst)}, opts...)
	t, err := Run(g, src, all...)
	if err != nil {
		return nil, err
	}

	return t.PathTo(dst)
}

// ShortestPathBetween resolves from and to by value with core.Graph.IndexOf
// and delegates to ShortestPath.
func ShortestPathBetween(g *core.Graph, from, to core.Vertex, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	src := g.IndexOf(from)
	if src == core.NotFound {
		return nil, fmt.Errorf("%w: %s: %w", ErrVertexNotFound, from.Label, core.ErrVertexNotFound)
	}
	dst := g.IndexOf(to)
	if dst == core.NotFound {
		return nil, fmt.Errorf("%w: %s: %w", ErrVertexNotFound, to.Label, core.ErrVertexNotFound)
	}

	return ShortestPath(g, src, dst, opts...)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // read-only within Dijkstra
	options Options
	source  int
	dist    []float64 // handle → best known distance from the source
	prev    []int     // handle → predecessor handle, NoPrev if none
	visited []bool    // handle → distance finalized
	stopped bool      // loop ended early at options.Target
}

// init sets dist to +Inf, prev to NoPrev, and dist[source] to zero.
func (r *runner) init(source int) {
	inf := math.Inf(1)
	for i := range r.dist {
		r.dist[i] = inf
		r.prev[i] = NoPrev
	}
	r.source = source
	r.dist[source] = 0
}

// processScan repeatedly selects the unvisited vertex with the minimum
// finite distance by linear scan.
func (r *runner) processScan() {
	for {
		u := NoPrev
		best := math.Inf(1)
		for v, d := range r.dist {
			// Strict < keeps the lowest handle on ties and skips +Inf.
			if !r.visited[v] && d < best {
				u, best = v, d
			}
		}
		// Every remaining vertex is unreachable; relaxing them is a no-op.
		if u == NoPrev {
			return
		}
		if r.settle(u) {
			return
		}
	}
}

// processHeap is the lazy decrease-key variant of processScan.
func (r *runner) processHeap() {
	pq := make(nodePQ, 0, len(r.dist))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: r.source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if r.settle(item.id, func(v int, d float64) {
			heap.Push(&pq, &nodeItem{id: v, dist: d})
		}) {
			return
		}
	}
}

// settle marks u visited and relaxes its outgoing edges. onImprove, if
// given, is called for every neighbour whose distance dropped. It reports
// whether the run should stop because u is the early-stop target.
func (r *runner) settle(u int, onImprove ...func(v int, d float64)) bool {
	r.visited[u] = true
	if r.options.StopAtTarget && u == r.options.Target {
		r.stopped = true
		return true
	}

	for _, e := range r.g.OutEdges(u) {
		v := e.To
		if r.visited[v] {
			continue
		}
		alt := r.dist[u] + e.Weight
		if alt >= r.dist[v] {
			continue
		}
		r.dist[v] = alt
		r.prev[v] = u
		for _, f := range onImprove {
			f(v, alt)
		}
	}

	return false
}

// nodeItem is a heap entry: a vertex handle and its distance at push time.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by handle.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
