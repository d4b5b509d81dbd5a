package builder

import (
	"fmt"

	"github.com/MarkSixtyFour/class-djikstra/core"
	"github.com/MarkSixtyFour/class-djikstra/mapfile"
)

// Constructor appends vertices, edges or queries to m.
type Constructor func(m *mapfile.Map, cfg builderConfig) error

// BuildMap resolves bopts once and applies every constructor in order.
func BuildMap(bopts []BuilderOption, cons ...Constructor) (*mapfile.Map, error) {
	cfg := newBuilderConfig(bopts...)
	m := &mapfile.Map{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMap: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMap: %w", err)
		}
	}

	return m, nil
}

// BuildGraph is BuildMap followed by (*mapfile.Map).Build.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	m, err := BuildMap(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := m.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// addVertex appends a vertex record numbered after the existing ones.
func addVertex(m *mapfile.Map, lat, lon float64, label string) int {
	idx := len(m.Vertices)
	m.Vertices = append(m.Vertices, mapfile.VertexRecord{
		Index:     idx,
		Latitude:  lat,
		Longitude: lon,
		Label:     label,
	})

	return idx
}

func addStreet(m *mapfile.Map, cfg builderConfig, from, to int) {
	m.Edges = append(m.Edges, mapfile.EdgeRecord{From: from, To: to, Direction: cfg.direction()})
}
