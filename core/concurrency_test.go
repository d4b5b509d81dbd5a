// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MarkSixtyFour/class-djikstra/core"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls all land in the catalog.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	hub := g.AddVertex(core.Vertex{Label: "hub"})
	const num = 200
	for i := 0; i < num; i++ {
		g.AddVertex(core.Vertex{Latitude: float64(i) / 100, Label: "spoke"})
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(to int) {
			defer wg.Done()
			_, err := g.AddEdge(hub, to)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Len(t, g.OutEdges(hub), num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReads runs lookups in parallel against a loaded graph.
func TestConcurrentReads(t *testing.T) {
	g := line(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.True(t, g.HasEdge(1, 2))
			require.Equal(t, 1, g.IndexOf(vB))
			_ = g.Stats()
		}()
	}
	wg.Wait()
}
