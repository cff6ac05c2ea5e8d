package ioinstance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
)

type fileConfig struct {
	Vertices []int    `yaml:"vertices"`
	Headings []string `yaml:"headings"`
}

type filePlan struct {
	Solved  bool         `yaml:"solved"`
	Configs []fileConfig `yaml:"configs"`
}

// SavePlan writes a solved (or partial) plan to path as YAML, for
// cmd/pibtrun's optional output and cmd/pibtvis's input.
func SavePlan(path string, plan *core.Plan) error {
	f := filePlan{Solved: plan.Solved, Configs: make([]fileConfig, plan.Len())}
	for t, c := range plan.Configs {
		vs := make([]int, len(c.Vertices))
		hs := make([]string, len(c.Headings))
		for i, v := range c.Vertices {
			vs[i] = int(v)
			hs[i] = c.Headings[i].String()
		}
		f.Configs[t] = fileConfig{Vertices: vs, Headings: hs}
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("ioinstance: marshaling plan %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ioinstance: writing plan %s: %w", path, err)
	}
	return nil
}

// LoadPlan reads a plan YAML file written by SavePlan.
func LoadPlan(path string) (*core.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ioinstance: reading plan %s: %w", path, err)
	}
	var f filePlan
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("ioinstance: parsing plan %s: %w", path, err)
	}

	plan := core.NewPlan()
	plan.Solved = f.Solved
	for _, fc := range f.Configs {
		vs := make([]core.VertexID, len(fc.Vertices))
		hs := make([]core.Heading, len(fc.Headings))
		for i, v := range fc.Vertices {
			vs[i] = core.VertexID(v)
			h, err := core.ParseHeading(fc.Headings[i])
			if err != nil {
				return nil, fmt.Errorf("ioinstance: parsing plan %s: %w", path, err)
			}
			hs[i] = h
		}
		plan.Append(core.Config{Vertices: vs, Headings: hs})
	}
	return plan, nil
}
