package campaign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
)

func twoAgentCorridor() *core.Instance {
	g := core.NewGraph(5)
	for i := 0; i < 5; i++ {
		g.AddVertex(core.VertexID(i), core.Pos{X: float64(i), Y: 0})
	}
	for i := 0; i < 4; i++ {
		g.AddEdge(core.VertexID(i), core.VertexID(i+1))
	}
	return &core.Instance{
		Graph:       g,
		Starts:      []core.VertexID{0, 4},
		Goals:       []core.VertexID{4, 0},
		Headings:    []core.Heading{core.XPlus, core.XMinus},
		MaxTimestep: 30,
		TimeBudget:  time.Second,
	}
}

func TestRunAggregatesResultsInOrder(t *testing.T) {
	instances := []*core.Instance{twoAgentCorridor(), twoAgentCorridor()}
	names := []string{"a", "b"}

	results := Run(instances, names, Options{Seed: 1, SeedPerInstance: true})

	require.Len(t, results, 2)
	for i, r := range results {
		require.NoError(t, r.Err)
		require.Equal(t, names[i], r.Name)
		require.Equal(t, 2, r.NumAgents)
		require.NotEqual(t, results[0].RunID, results[1].RunID)
	}
}
