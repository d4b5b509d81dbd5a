// Package bfs provides breadth-first search over a street-map core.Graph.
//
// BFS follows directed edges only (From → To), visiting vertices in
// increasing hop count from a start handle. It ignores edge weights and is
// used to answer "which intersections can be reached at all" cheaply,
// before or instead of a weighted Dijkstra run:
//
//	res, err := bfs.BFS(g, start)
//	if err != nil { ... }
//	if !res.Reachable(dest) {
//	    // dijkstra.ShortestPath would report ErrUnreachable
//	}
//
// Options:
//
//	WithContext(ctx)          cancellation, checked once per dequeue and per neighbor.
//	WithMaxDepth(d)           do not enqueue vertices deeper than d hops (0 = unlimited).
//	WithFilterNeighbor(fn)    skip the edge curr→nbr when fn returns false.
//	WithOnVisit(fn)           hook whose error aborts the search.
//
// Errors:
//
//	ErrGraphNil            nil graph.
//	ErrStartVertexNotFound start handle out of range.
//	ErrOptionViolation     invalid option (e.g. negative depth).
//
// Complexity: O(V + E) time, O(V) space.
package bfs
