// Package dijkstra computes shortest street routes on a core.Graph.
//
// Overview:
//
//   - Run computes a shortest-path tree from one source handle: dist[v] is
//     the minimum total kilometers from the source, prev[v] the handle that
//     precedes v on one such route (NoPrev for the source and for vertices
//     that were never reached).
//   - Tree.PathTo rebuilds the route to a destination by following prev
//     from the destination back to the source, then reading every hop
//     weight from the graph with core.Graph.Distance.
//   - ShortestPath and ShortestPathBetween wrap Run + PathTo for a single
//     source/destination query, by handle or by vertex value.
//
// Main loop:
//
//  1. dist = +Inf everywhere except dist[source] = 0; prev = NoPrev.
//  2. Select the unvisited vertex u with minimum finite dist[u]. When no
//     unvisited vertex has a finite distance the rest are unreachable and
//     the loop ends.
//  3. Mark u visited and relax every outgoing edge u→v with v unvisited:
//     alt = dist[u] + w(u,v); if alt < dist[v] { dist[v] = alt; prev[v] = u }.
//
// Strategies:
//
//   - StrategyScan (default): step 2 is a linear scan, O(V²) overall.
//   - StrategyHeap: step 2 pops a lazy decrease-key min-heap, O((V+E) log V).
//
// Both strategies break selection ties by lowest handle, so they settle
// vertices in the same order and produce identical trees.
//
// Unreachable destinations:
//
// A destination that was never relaxed has no predecessor, which would
// otherwise look like a one-vertex path identical to source == destination.
// PathTo reports ErrUnreachable for it instead; source == destination is a
// valid one-vertex path with Total == 0.
//
// Thread safety:
//
//   - Run never mutates the graph. Each call owns its dist/prev/visited
//     state, so many queries may share one loaded graph concurrently.
package dijkstra
