// Package dfs implements depth-first search over a core.Graph of street
// intersections and, on top of it, strongly connected components.
//
// What:
//
//   - DFS: explores as far as possible along each one-way or two-way street
//     before backtracking. Supports:
//   - A pre-order hook
//   - Cancellation via context.Context
//   - Forest traversal over every vertex (WithFullTraversal)
//   - StronglyConnected: groups intersections that can all reach each other
//     (Kosaraju, two DFS passes). A map with more than one component has
//     one-way traps: routes into a component that never come back.
//
// Key Types & Constants:
//
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, the pre-order hook, FullTraversal
//   - DFSResult: post-order, Depth, Parent and Visited, indexed by handle
//   - Unvisited: Depth/Parent sentinel
//
// Complexity:
//
//   - DFS: O(V + E) time, O(V) memory
//   - StronglyConnected: O(V + E) time, O(V + E) memory for the transpose
//
// Errors:
//
//   - ErrGraphNil if the graph is nil
//   - ErrStartVertexNotFound if the start handle is out of range
//   - ctx.Err() if cancelled
//   - any error returned by the hook
package dfs
