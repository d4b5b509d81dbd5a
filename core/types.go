// Package core defines the central Graph, Vertex, and Edge types.
//
// This file declares Vertex, Edge, Graph, GraphOption, the sentinel
// errors, and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// NotFound is the handle returned by IndexOf when no vertex matches.
const NotFound = -1

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a handle outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrVertexNotFound indicates a vertex value that is not in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Vertex is an intersection on the street map.
//
// Two vertices are the same value iff all four attributes are equal, which
// is exactly Go's == on this struct.
type Vertex struct {
	// Latitude in degrees.
	Latitude float64

	// Longitude in degrees.
	Longitude float64

	// Height above sea level. Informational only.
	Height float32

	// Label is the street name shown in directions.
	Label string
}

// String renders the vertex the way it appears in logs.
func (v Vertex) String() string {
	return fmt.Sprintf("[Vertex] latitude: %v, longitude: %v, height: %v, street: %s",
		v.Latitude, v.Longitude, v.Height, v.Label)
}

// Edge is a directed, weighted connection between two vertex handles.
type Edge struct {
	// From is the source vertex handle.
	From int

	// To is the destination vertex handle.
	To int

	// Weight is the geo.Distance between the endpoints, in kilometers.
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity preallocates room for v vertices and e edges.
// Negative values are ignored.
func WithCapacity(v, e int) GraphOption {
	return func(g *Graph) {
		if v > 0 {
			g.vertices = make([]Vertex, 0, v)
			g.adjacency = make([][]int, 0, v)
		}
		if e > 0 {
			g.edges = make([]Edge, 0, e)
		}
	}
}

// Graph is the in-memory street map.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	vertices []Vertex // handle → vertex, insertion order
	edges    []Edge   // edge index → edge, insertion order

	// adjacency[from] lists indices into edges whose From == from.
	adjacency [][]int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus any preallocation requested through options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
