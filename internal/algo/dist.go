package algo

import "github.com/elektrokombinacija/pibt-orient/internal/core"

// DistanceOracle is a read-only, orientation-aware lookup of shortest-path
// distance from any vertex to an agent's goal. It is immutable once built.
//
// Per the spec's resolution of Open Questions 1 and 2: heading does not
// gate reachability on an undirected grid, so every one of the four
// heading slots for a vertex holds the same plain BFS distance. The table
// is still addressed as v.id*4+h for API parity with callers that always
// pass a heading, and so a future heading-conditioned cost model has a
// slot to populate without a layout change.
type DistanceOracle struct {
	// table[i] holds agent i's per-vertex*4+heading distances.
	table [][]int
}

// BuildOracle computes one BFS per distinct agent goal and replicates each
// vertex's distance across all four heading slots.
func BuildOracle(g *core.Graph, goals []core.VertexID) *DistanceOracle {
	n := g.Size()
	o := &DistanceOracle{table: make([][]int, len(goals))}

	cache := make(map[core.VertexID][]int)
	for i, goal := range goals {
		base, ok := cache[goal]
		if !ok {
			base = BuildDistanceTable(g, goal)
			cache[goal] = base
		}
		row := make([]int, n*4)
		for v := 0; v < n; v++ {
			d := base[v]
			for h := 0; h < 4; h++ {
				row[v*4+h] = d
			}
		}
		o.table[i] = row
	}
	return o
}

// Dist returns the precomputed distance from v to agent i's goal,
// conditioned on heading h (see type doc for why h currently has no
// effect on the value).
func (o *DistanceOracle) Dist(i int, v core.VertexID, h core.Heading) int {
	return o.table[i][int(v)*4+int(h)]
}

// MinDistAllHeadings returns min_h Dist(i, v, h).
func (o *DistanceOracle) MinDistAllHeadings(i int, v core.VertexID) int {
	min := unreachable
	for _, h := range core.AllHeadings() {
		if d := o.Dist(i, v, h); d < min {
			min = d
		}
	}
	return min
}
