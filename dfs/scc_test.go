package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkSixtyFour/class-djikstra/core"
	"github.com/MarkSixtyFour/class-djikstra/dfs"
)

func TestStronglyConnected_NilAndEmpty(t *testing.T) {
	_, err := dfs.StronglyConnected(nil)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	comps, err := dfs.StronglyConnected(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)
}

func TestStronglyConnected_TwoWayStreetsFormOneComponent(t *testing.T) {
	g := streets(t, 3, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 2}, [2]int{2, 1})
	comps, err := dfs.StronglyConnected(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, comps)
}

func TestStronglyConnected_OneWayTrap(t *testing.T) {
	// 0 <-> 1 -> 2 <-> 3, 4 isolated, 5 -> 5 loop.
	g := streets(t, 6,
		[2]int{0, 1}, [2]int{1, 0},
		[2]int{1, 2},
		[2]int{2, 3}, [2]int{3, 2},
		[2]int{5, 5},
	)
	comps, err := dfs.StronglyConnected(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}, {4}, {5}}, comps)
}

func TestStronglyConnected_Cycle(t *testing.T) {
	// One-way ring 0 -> 1 -> 2 -> 3 -> 0 with a spur 3 -> 4.
	g := streets(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}, [2]int{3, 4})
	comps, err := dfs.StronglyConnected(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4}}, comps)
}
