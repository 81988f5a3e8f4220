package grid_test

import (
	"testing"

	"github.com/katalvlaran/gridpibt/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allFree(w, h int) [][]bool {
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = make([]bool, w)
		for x := range rows[y] {
			rows[y][x] = true
		}
	}
	return rows
}

func TestNewGraph_Errors(t *testing.T) {
	_, err := grid.NewGraph(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.NewGraph([][]bool{{}})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)

	_, err = grid.NewGraph([][]bool{{true, true}, {true}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

func TestNewGraph_DenseIDsAndNeighbours(t *testing.T) {
	// 3x3 grid with the center cell (1,1) blocked, matching S6 in spec.md.
	free := allFree(3, 3)
	free[1][1] = false

	g, err := grid.NewGraph(free)
	require.NoError(t, err)
	require.Equal(t, 8, g.NumNodes())

	for i, n := range g.Nodes {
		assert.Equal(t, i, n.ID)
	}

	_, blocked := g.GetNode(1, 1)
	assert.False(t, blocked)

	corner, ok := g.GetNode(0, 0)
	require.True(t, ok)
	assert.Len(t, corner.Neighbours(), 2)

	top, ok := g.GetNode(1, 0)
	require.True(t, ok)
	// (1,0)'s south neighbour (1,1) is blocked, so only E/W/none-south remain.
	assert.Len(t, top.Neighbours(), 2)
	for _, nb := range top.Neighbours() {
		assert.NotEqual(t, [2]int{1, 1}, [2]int{nb.X, nb.Y})
	}
}

func TestNewGraph_SymmetricNeighbours(t *testing.T) {
	g, err := grid.NewGraph(allFree(4, 4))
	require.NoError(t, err)

	for _, n := range g.Nodes {
		for _, nb := range n.Neighbours() {
			found := false
			for _, back := range nb.Neighbours() {
				if back == n {
					found = true
					break
				}
			}
			assert.Truef(t, found, "neighbour relation not symmetric for (%d,%d)<->(%d,%d)", n.X, n.Y, nb.X, nb.Y)
		}
	}
}

func TestGraph_InBoundsAndGetNode(t *testing.T) {
	g, err := grid.NewGraph(allFree(5, 2))
	require.NoError(t, err)

	assert.True(t, g.InBounds(4, 1))
	assert.False(t, g.InBounds(5, 0))
	assert.False(t, g.InBounds(0, -1))

	n, ok := g.GetNode(2, 1)
	require.True(t, ok)
	assert.Equal(t, 2, n.X)
	assert.Equal(t, 1, n.Y)

	_, ok = g.GetNode(10, 10)
	assert.False(t, ok)
}
