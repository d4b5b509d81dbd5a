// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on street-map graphs.
//
// Options:
//
//	– Strategy:     how the next vertex is selected (StrategyScan, StrategyHeap).
//	– Target:       destination handle used by StopAtTarget.
//	– StopAtTarget: stop the main loop once Target is settled.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if a source/destination handle or value is not in the graph.
//	– ErrUnreachable    if the destination has no finite distance from the source.
//	– ErrNotSettled     if a path is requested for a vertex an early stop never settled.
//	– ErrBadWeight      if a negative or NaN edge weight is detected in the graph.
//	– ErrBadStrategy    if Options.Strategy is not a known strategy.
package dijkstra

import (
	"errors"

	"github.com/MarkSixtyFour/class-djikstra/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates a source or destination that is not part
	// of the graph (handle out of range, or value absent).
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnreachable indicates that the destination cannot be reached from
	// the source. It is distinct from source == destination, which yields
	// a one-vertex path of length zero.
	ErrUnreachable = errors.New("dijkstra: destination unreachable from source")

	// ErrNotSettled indicates that the run stopped early at its target and
	// never finalized the requested vertex.
	ErrNotSettled = errors.New("dijkstra: vertex not settled by early-stopped run")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("dijkstra: invalid edge weight encountered")

	// ErrBadStrategy indicates an unknown selection strategy.
	ErrBadStrategy = errors.New("dijkstra: unknown strategy")
)

// NoPrev marks a vertex without predecessor: the source itself, or a vertex
// that was never relaxed. It is never a valid handle.
const NoPrev = -1

// Strategy selects how the main loop picks the next vertex to settle.
type Strategy int

const (
	// StrategyScan scans every unvisited vertex for the minimum distance:
	// O(V²) overall. Ties go to the lowest handle.
	StrategyScan Strategy = iota

	// StrategyHeap uses a binary min-heap with lazy decrease-key:
	// O((V + E) log V). Ties go to the lowest handle.
	StrategyHeap
)

// String returns the lower-case strategy name used in configuration.
func (s Strategy) String() string {
	switch s {
	case StrategyScan:
		return "scan"
	case StrategyHeap:
		return "heap"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a configuration name ("scan", "heap") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "scan":
		return StrategyScan, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return StrategyScan, ErrBadStrategy
	}
}

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Strategy     Strategy // vertex selection strategy
	Target       int      // destination handle, NoPrev when unset
	StopAtTarget bool     // stop once Target is settled
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithStrategy sets the vertex selection strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithTarget records the destination handle. On its own it changes
// nothing; combine with WithStopAtTarget to end the run early.
func WithTarget(dst int) Option {
	return func(o *Options) {
		o.Target = dst
	}
}

// WithStopAtTarget ends the main loop as soon as Target is settled.
// Distances of vertices settled before that point are final; every other
// vertex reports ErrNotSettled from PathTo.
func WithStopAtTarget() Option {
	return func(o *Options) {
		o.StopAtTarget = true
	}
}

// DefaultOptions returns the defaults: full scan, no target, no early stop.
func DefaultOptions() Options {
	return Options{
		Strategy:     StrategyScan,
		Target:       NoPrev,
		StopAtTarget: false,
	}
}

// Path is one shortest path, ordered source → destination.
type Path struct {
	// Indices are the vertex handles along the path (len ≥ 1).
	Indices []int

	// Vertices parallels Indices.
	Vertices []core.Vertex

	// Hops[i] is the edge weight between Vertices[i] and Vertices[i+1].
	Hops []float64

	// Total is the sum of Hops, in kilometers.
	Total float64
}

// Source returns the first vertex of the path.
func (p *Path) Source() core.Vertex { return p.Vertices[0] }

// Destination returns the last vertex of the path.
func (p *Path) Destination() core.Vertex { return p.Vertices[len(p.Vertices)-1] }

// HopCount returns the number of edges on the path.
func (p *Path) HopCount() int { return len(p.Hops) }
