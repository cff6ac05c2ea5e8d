// Package ioinstance loads and saves problem instances and plans as YAML
// documents. It is the on-disk form of the core.Instance / core.Graph /
// core.Plan types; the algo package never imports it and takes in-memory
// values only.
package ioinstance

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
)

// fileVertex is one graph vertex as written to disk.
type fileVertex struct {
	ID        int     `yaml:"id"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Neighbors []int   `yaml:"neighbors"`
}

type fileGraph struct {
	Vertices []fileVertex `yaml:"vertices"`
}

type fileAgent struct {
	Start   int    `yaml:"start"`
	Goal    int    `yaml:"goal"`
	Heading string `yaml:"heading,omitempty"`
}

// fileInstance is the top-level YAML document shape.
type fileInstance struct {
	Graph           fileGraph   `yaml:"graph"`
	Agents          []fileAgent `yaml:"agents"`
	MaxTimestep     int         `yaml:"max_timestep"`
	TimeBudgetMS    int64       `yaml:"time_budget_ms"`
	DisableDistInit bool        `yaml:"disable_dist_init"`
}

// Load reads a YAML instance file and converts it into a core.Instance,
// validating vertex ids are contiguous from 0 and every agent reference is
// in range. Loading never returns a core.ConfigError as a fatal PIBT
// error; a malformed file is reported as a plain wrapped error before any
// solve begins.
func Load(path string) (*core.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ioinstance: reading %s: %w", path, err)
	}

	var f fileInstance
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ioinstance: parsing %s: %w", path, err)
	}

	g := core.NewGraph(len(f.Graph.Vertices))
	for i, v := range f.Graph.Vertices {
		if v.ID != i {
			return nil, fmt.Errorf("ioinstance: %s: vertex ids must be contiguous from 0, got id %d at position %d", path, v.ID, i)
		}
		g.AddVertex(core.VertexID(v.ID), core.Pos{X: v.X, Y: v.Y})
	}
	for _, v := range f.Graph.Vertices {
		for _, n := range v.Neighbors {
			if n < v.ID {
				continue // edge already added from the lower-indexed side
			}
			g.AddEdge(core.VertexID(v.ID), core.VertexID(n))
		}
	}

	inst := &core.Instance{
		Graph:           g,
		Starts:          make([]core.VertexID, len(f.Agents)),
		Goals:           make([]core.VertexID, len(f.Agents)),
		Headings:        make([]core.Heading, len(f.Agents)),
		MaxTimestep:     f.MaxTimestep,
		TimeBudget:      time.Duration(f.TimeBudgetMS) * time.Millisecond,
		DisableDistInit: f.DisableDistInit,
	}
	for i, a := range f.Agents {
		inst.Starts[i] = core.VertexID(a.Start)
		inst.Goals[i] = core.VertexID(a.Goal)
		if a.Heading == "" {
			inst.Headings[i] = core.YMinus
			continue
		}
		h, err := core.ParseHeading(a.Heading)
		if err != nil {
			return nil, fmt.Errorf("ioinstance: %s: agent %d: %w", path, i, err)
		}
		inst.Headings[i] = h
	}

	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("ioinstance: %s: %w", path, err)
	}
	return inst, nil
}

// Save writes inst to path as a YAML instance file.
func Save(path string, inst *core.Instance) error {
	f := fileInstance{
		MaxTimestep:     inst.MaxTimestep,
		TimeBudgetMS:    inst.TimeBudget.Milliseconds(),
		DisableDistInit: inst.DisableDistInit,
	}

	f.Graph.Vertices = make([]fileVertex, inst.Graph.Size())
	for i, v := range inst.Graph.Vertices {
		nbrs := make([]int, len(v.Neighbors))
		for j, n := range v.Neighbors {
			nbrs[j] = int(n)
		}
		f.Graph.Vertices[i] = fileVertex{
			ID:        int(v.ID),
			X:         v.Pos.X,
			Y:         v.Pos.Y,
			Neighbors: nbrs,
		}
	}

	f.Agents = make([]fileAgent, inst.NumAgents())
	for i := range f.Agents {
		f.Agents[i] = fileAgent{
			Start:   int(inst.Starts[i]),
			Goal:    int(inst.Goals[i]),
			Heading: inst.HeadingOf(i).String(),
		}
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("ioinstance: marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ioinstance: writing %s: %w", path, err)
	}
	return nil
}
