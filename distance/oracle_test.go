package distance_test

import (
	"testing"

	"github.com/katalvlaran/gridpibt/distance"
	"github.com/katalvlaran/gridpibt/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corridor(n int) *grid.Graph {
	free := [][]bool{make([]bool, n)}
	for x := range free[0] {
		free[0][x] = true
	}
	g, err := grid.NewGraph(free)
	if err != nil {
		panic(err)
	}
	return g
}

func TestOracle_Corridor(t *testing.T) {
	g := corridor(10)
	goal, ok := g.GetNode(3, 0)
	require.True(t, ok)

	o := distance.NewOracle(g, goal)
	for x := 0; x < 10; x++ {
		n, _ := g.GetNode(x, 0)
		want := uint32(abs(x - 3))
		assert.Equal(t, want, o.Dist(n), "x=%d", x)
	}
}

func TestOracle_Unreachable(t *testing.T) {
	// Two disjoint 1x1 islands: no path exists between them.
	free := [][]bool{{true, false, true}}
	g, err := grid.NewGraph(free)
	require.NoError(t, err)

	goal, _ := g.GetNode(0, 0)
	o := distance.NewOracle(g, goal)

	other, _ := g.GetNode(2, 0)
	assert.Equal(t, distance.Unreachable, o.Dist(other))
}

func TestOracle_Rebuild(t *testing.T) {
	g := corridor(5)
	g1, _ := g.GetNode(0, 0)
	g4, _ := g.GetNode(4, 0)

	o := distance.NewOracle(g, g1)
	assert.Equal(t, uint32(4), o.Dist(g4))

	o.Rebuild(g, g4)
	assert.Equal(t, uint32(0), o.Dist(g4))
	assert.Equal(t, uint32(4), o.Dist(g1))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
