package registry_test

import (
	"testing"

	"github.com/katalvlaran/gridpibt/grid"
	"github.com/katalvlaran/gridpibt/registry"
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

func TestIngest_NewAgent(t *testing.T) {
	g := corridor(5)
	r := registry.NewRegistry(g, registry.NewRNG(42))

	agents, err := r.Ingest([]registry.RequestItem{{ID: 0, InitX: 0, InitY: 0, GoalX: 3, GoalY: 0}})
	require.NoError(t, err)
	require.Len(t, agents, 1)

	a := agents[0]
	assert.Equal(t, int32(0), a.ID)
	assert.Equal(t, uint32(0), a.Elapsed)
	assert.Equal(t, uint32(3), a.InitD, "init_d must be the real BFS distance, not the flattened-0 anomaly")
	assert.GreaterOrEqual(t, a.TieBreaker, 0.0)
	assert.Less(t, a.TieBreaker, 1.0)
}

func TestIngest_KnownAgentPersists(t *testing.T) {
	g := corridor(5)
	r := registry.NewRegistry(g, registry.NewRNG(7))

	first, err := r.Ingest([]registry.RequestItem{{ID: 1, InitX: 0, InitY: 0, GoalX: 4, GoalY: 0}})
	require.NoError(t, err)
	firstTie := first[0].TieBreaker

	second, err := r.Ingest([]registry.RequestItem{{ID: 1, InitX: 1, InitY: 0, GoalX: 4, GoalY: 0}})
	require.NoError(t, err)
	assert.Same(t, first[0], second[0], "same agent id must resolve to the same persistent Agent")
	assert.Equal(t, firstTie, second[0].TieBreaker, "tie_breaker must not be redrawn on re-ingestion")
}

func TestIngest_GoalChangeRebuildsDistanceTable(t *testing.T) {
	g := corridor(5)
	r := registry.NewRegistry(g, registry.NewRNG(7))

	agents, err := r.Ingest([]registry.RequestItem{{ID: 1, InitX: 0, InitY: 0, GoalX: 4, GoalY: 0}})
	require.NoError(t, err)
	n0, _ := g.GetNode(0, 0)
	assert.Equal(t, uint32(4), agents[0].PathDist(n0))

	agents, err = r.Ingest([]registry.RequestItem{{ID: 1, InitX: 0, InitY: 0, GoalX: 1, GoalY: 0}})
	require.NoError(t, err)
	assert.Equal(t, uint32(1), agents[0].PathDist(n0))
}

func TestIngest_Errors(t *testing.T) {
	g := corridor(3)
	r := registry.NewRegistry(g, registry.NewRNG(1))

	_, err := r.Ingest([]registry.RequestItem{
		{ID: 0, InitX: 0, InitY: 0, GoalX: 1, GoalY: 0},
		{ID: 0, InitX: 1, InitY: 0, GoalX: 2, GoalY: 0},
	})
	assert.ErrorIs(t, err, registry.ErrDuplicateAgent)

	_, err = r.Ingest([]registry.RequestItem{{ID: 2, InitX: -1, InitY: 0, GoalX: 0, GoalY: 0}})
	assert.ErrorIs(t, err, registry.ErrNodeNotTraversable)

	_, ok := r.Agent(0)
	assert.False(t, ok, "a failed ingest must not leave partial agents behind")
}
