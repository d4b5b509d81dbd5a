package mapfile

import (
	"fmt"

	"github.com/MarkSixtyFour/class-djikstra/core"
)

// Build creates a core.Graph from m. Vertex handles follow record order; a
// TwoWay record adds two directed edges.
//
// Errors:
//   - core.ErrVertexOutOfRange for an edge endpoint outside the vertex list.
//   - ErrBadDirection for a direction other than OneWay or TwoWay.
//
// On error no graph is returned, so callers never see dangling endpoints.
func (m *Map) Build() (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(m.Vertices), 2*len(m.Edges)))
	for _, v := range m.Vertices {
		g.AddVertex(core.Vertex{
			Latitude:  v.Latitude,
			Longitude: v.Longitude,
			Height:    v.Height,
			Label:     v.Label,
		})
	}

	for i, e := range m.Edges {
		if e.Direction != OneWay && e.Direction != TwoWay {
			return nil, fmt.Errorf("%w: edge %d has direction %d", ErrBadDirection, i, e.Direction)
		}
		if _, err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("mapfile: edge %d: %w", i, err)
		}
		if e.Direction == TwoWay {
			if _, err := g.AddEdge(e.To, e.From); err != nil {
				return nil, fmt.Errorf("mapfile: edge %d: %w", i, err)
			}
		}
	}

	return g, nil
}
