package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkSixtyFour/class-djikstra/bfs"
	"github.com/MarkSixtyFour/class-djikstra/core"
)

// chain builds 0→1→2→3 one-way plus an isolated vertex 4.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		g.AddVertex(core.Vertex{Latitude: float64(i) / 10, Label: "v"})
	}
	for i := 0; i < 3; i++ {
		_, err := g.AddEdge(i, i+1)
		require.NoError(t, err)
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := chain(t)
	_, err = bfs.BFS(g, 9)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DirectedChain(t *testing.T) {
	g := chain(t)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3, bfs.Unreached}, res.Depth)
	assert.False(t, res.Reachable(4))

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	_, err = res.PathTo(4)
	require.ErrorIs(t, err, bfs.ErrNotReached)

	// Edges are one-way: nothing flows back to 0.
	back, err := bfs.Reachable(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, back)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := chain(t)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

func TestBFS_Hooks(t *testing.T) {
	g := chain(t)
	var seen, depths []int
	stop := errors.New("stop")

	_, err := bfs.BFS(g, 0,
		bfs.WithOnVisit(func(v, d int) error {
			seen = append(seen, v)
			depths = append(depths, d)
			if v == 2 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, seen)
	assert.Equal(t, []int{0, 1, 2}, depths)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(chain(t), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
