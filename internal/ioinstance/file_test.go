package ioinstance

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
)

func sampleInstance() *core.Instance {
	g := core.NewGraph(3)
	g.AddVertex(0, core.Pos{X: 0, Y: 0})
	g.AddVertex(1, core.Pos{X: 1, Y: 0})
	g.AddVertex(2, core.Pos{X: 2, Y: 0})
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	return &core.Instance{
		Graph:       g,
		Starts:      []core.VertexID{0, 2},
		Goals:       []core.VertexID{2, 0},
		Headings:    []core.Heading{core.XPlus, core.XMinus},
		MaxTimestep: 50,
		TimeBudget:  3 * time.Second,
	}
}

func TestInstanceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "instance.yaml")

	orig := sampleInstance()
	require.NoError(t, Save(path, orig))

	loaded, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, orig.Starts, loaded.Starts)
	require.Equal(t, orig.Goals, loaded.Goals)
	require.Equal(t, orig.Headings, loaded.Headings)
	require.Equal(t, orig.MaxTimestep, loaded.MaxTimestep)
	require.Equal(t, orig.TimeBudget, loaded.TimeBudget)
	require.Equal(t, orig.Graph.Size(), loaded.Graph.Size())
	for i := 0; i < orig.Graph.Size(); i++ {
		require.ElementsMatch(t, orig.Graph.Vertex(core.VertexID(i)).Neighbors, loaded.Graph.Vertex(core.VertexID(i)).Neighbors)
	}
}

func TestLoadRejectsNonContiguousVertexIDs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	bad := `
graph:
  vertices:
    - id: 0
      x: 0
      y: 0
      neighbors: []
    - id: 5
      x: 1
      y: 0
      neighbors: []
agents: []
max_timestep: 10
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestPlanRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")

	plan := core.NewPlan()
	plan.Solved = true
	plan.Append(core.Config{Vertices: []core.VertexID{0, 2}, Headings: []core.Heading{core.XPlus, core.XMinus}})
	plan.Append(core.Config{Vertices: []core.VertexID{1, 1}, Headings: []core.Heading{core.XPlus, core.XMinus}})

	require.NoError(t, SavePlan(path, plan))
	loaded, err := LoadPlan(path)
	require.NoError(t, err)
	require.True(t, loaded.Solved)
	require.Equal(t, plan.Configs, loaded.Configs)
}
