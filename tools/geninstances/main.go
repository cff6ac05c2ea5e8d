// Command geninstances generates random grid MAPF instances and writes
// them as YAML instance files.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
	"github.com/elektrokombinacija/pibt-orient/internal/ioinstance"
)

func main() {
	width := flag.Int("width", 8, "grid width")
	height := flag.Int("height", 8, "grid height")
	agents := flag.Int("agents", 4, "number of agents")
	count := flag.Int("count", 1, "number of instances to generate")
	seed := flag.Int64("seed", 1, "base PRNG seed; instance n uses seed+n")
	outDir := flag.String("out", ".", "output directory")
	maxTimestep := flag.Int("max-timestep", 200, "max_timestep written to each instance")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "geninstances:", err)
		os.Exit(1)
	}

	for n := 0; n < *count; n++ {
		rng := rand.New(rand.NewSource(*seed + int64(n)))
		inst := generateGridInstance(rng, *width, *height, *agents, *maxTimestep)

		path := filepath.Join(*outDir, fmt.Sprintf("instance-%03d.yaml", n))
		if err := ioinstance.Save(path, inst); err != nil {
			fmt.Fprintln(os.Stderr, "geninstances:", err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
	}
}

// generateGridInstance builds a width*height grid graph and assigns each
// agent a non-colliding start/goal vertex pair and a random initial
// heading, in the style of the teacher's gen_instances tool.
func generateGridInstance(rng *rand.Rand, width, height, numAgents, maxTimestep int) *core.Instance {
	g := core.NewGraph(width * height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := core.VertexID(y*width + x)
			g.AddVertex(id, core.Pos{X: float64(x), Y: float64(y)})
		}
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := core.VertexID(y*width + x)
			if x < width-1 {
				g.AddEdge(id, id+1)
			}
			if y < height-1 {
				g.AddEdge(id, id+core.VertexID(width))
			}
		}
	}

	n := g.Size()
	perm := rng.Perm(n)
	if numAgents*2 > n {
		numAgents = n / 2
	}

	starts := make([]core.VertexID, numAgents)
	goals := make([]core.VertexID, numAgents)
	headings := make([]core.Heading, numAgents)
	all := core.AllHeadings()
	for i := 0; i < numAgents; i++ {
		starts[i] = core.VertexID(perm[2*i])
		goals[i] = core.VertexID(perm[2*i+1])
		headings[i] = all[rng.Intn(len(all))]
	}

	return &core.Instance{
		Graph:       g,
		Starts:      starts,
		Goals:       goals,
		Headings:    headings,
		MaxTimestep: maxTimestep,
	}
}
