package algo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
)

func corridor(n int) *core.Graph {
	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		g.AddVertex(core.VertexID(i), core.Pos{X: float64(i), Y: 0})
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(core.VertexID(i), core.VertexID(i+1))
	}
	return g
}

// ring builds a 4-cycle: v0-v1-v2-v3-v0, laid out as a unit square so every
// edge has a well-defined cardinal direction.
func ring4() *core.Graph {
	g := core.NewGraph(4)
	g.AddVertex(0, core.Pos{X: 0, Y: 0})
	g.AddVertex(1, core.Pos{X: 1, Y: 0})
	g.AddVertex(2, core.Pos{X: 1, Y: 1})
	g.AddVertex(3, core.Pos{X: 0, Y: 1})
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)
	return g
}

// Scenario 1: straight corridor, single agent.
func TestDriverStraightCorridor(t *testing.T) {
	g := corridor(5)
	inst := &core.Instance{
		Graph:       g,
		Starts:      []core.VertexID{0},
		Goals:       []core.VertexID{4},
		Headings:    []core.Heading{core.XPlus},
		MaxTimestep: 20,
		TimeBudget:  time.Second,
	}
	d := &Driver{Seed: 1}
	plan, err := d.Run(inst)
	require.NoError(t, err)
	require.True(t, plan.Solved)
	require.NoError(t, plan.Validate(g))
	require.Equal(t, core.VertexID(4), plan.Last().Vertices[0])
}

// Scenario 3: head-on corridor encounter where the only non-goal-dead-end
// branch forces a swap.
func TestDriverHeadOnSwap(t *testing.T) {
	// A 5-vertex corridor with a side branch at v2 so the swap subprotocol
	// has somewhere to peel an agent off into.
	g := core.NewGraph(6)
	g.AddVertex(0, core.Pos{X: 0, Y: 0})
	g.AddVertex(1, core.Pos{X: 1, Y: 0})
	g.AddVertex(2, core.Pos{X: 2, Y: 0})
	g.AddVertex(3, core.Pos{X: 3, Y: 0})
	g.AddVertex(4, core.Pos{X: 4, Y: 0})
	g.AddVertex(5, core.Pos{X: 2, Y: 1})
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(2, 5)

	inst := &core.Instance{
		Graph:       g,
		Starts:      []core.VertexID{0, 4},
		Goals:       []core.VertexID{4, 0},
		Headings:    []core.Heading{core.XPlus, core.XMinus},
		MaxTimestep: 30,
		TimeBudget:  time.Second,
	}
	d := &Driver{Seed: 7}
	plan, err := d.Run(inst)
	require.NoError(t, err)
	require.NoError(t, plan.Validate(g))
	require.True(t, plan.Solved)
}

// Scenario 4: two agents in a rotational cycle around a 4-ring.
func TestDriverRotationalCycle(t *testing.T) {
	g := ring4()
	inst := &core.Instance{
		Graph:       g,
		Starts:      []core.VertexID{0, 2},
		Goals:       []core.VertexID{2, 0},
		Headings:    []core.Heading{core.XPlus, core.XMinus},
		MaxTimestep: 40,
		TimeBudget:  time.Second,
	}
	d := &Driver{Seed: 3}
	plan, err := d.Run(inst)
	require.NoError(t, err)
	require.NoError(t, plan.Validate(g))
	require.True(t, plan.Solved)
}

// Scenario 6: an unsolvable instance (two agents stuck on a 2-vertex
// segment, each wanting the other's vertex with no detour) must terminate
// by budget rather than loop forever.
func TestDriverUnsolvableTerminatesByBudget(t *testing.T) {
	g := corridor(2)
	inst := &core.Instance{
		Graph:       g,
		Starts:      []core.VertexID{0, 1},
		Goals:       []core.VertexID{1, 0},
		Headings:    []core.Heading{core.XPlus, core.XMinus},
		MaxTimestep: 25,
		TimeBudget:  2 * time.Second,
	}
	d := &Driver{Seed: 11}
	plan, err := d.Run(inst)
	require.NoError(t, err)
	require.False(t, plan.Solved)
	require.NoError(t, plan.Validate(g))
	require.LessOrEqual(t, plan.Makespan(), inst.MaxTimestep)
}

// Determinism: same seed, same instance, same plan.
func TestDriverDeterministicUnderSeed(t *testing.T) {
	g := corridor(5)
	newInst := func() *core.Instance {
		return &core.Instance{
			Graph:       g,
			Starts:      []core.VertexID{0, 4},
			Goals:       []core.VertexID{4, 0},
			Headings:    []core.Heading{core.XPlus, core.XMinus},
			MaxTimestep: 30,
			TimeBudget:  time.Second,
		}
	}
	d1 := &Driver{Seed: 42}
	d2 := &Driver{Seed: 42}
	p1, err := d1.Run(newInst())
	require.NoError(t, err)
	p2, err := d2.Run(newInst())
	require.NoError(t, err)
	require.Equal(t, p1.Configs, p2.Configs)
}
