package dfs

import (
	"context"
	"errors"
)

// Unvisited marks Depth and Parent entries of vertices DFS never reached.
const Unvisited = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or
	// StronglyConnected.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start handle is out of range.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// FullTraversal runs DFS from every unvisited vertex in handle order.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-order hook
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		OnVisit:       nil,
		FullTraversal: false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithFullTraversal returns an Option that enables forest traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal. Slices are
// indexed by vertex handle.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Depth is the tree depth of each visited vertex, Unvisited otherwise.
	Depth []int

	// Parent is the vertex each vertex was discovered from. Roots and
	// unvisited vertices hold Unvisited.
	Parent []int

	// Visited flags which vertices were reached during the traversal.
	Visited []bool
}
