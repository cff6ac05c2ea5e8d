// Package algo implements the heading-aware PIBT kernel: the distance
// oracle, the action primitive, the recursive priority-inheritance
// procedure, and the per-timestep driver that invokes it.
package algo

import (
	"math"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
)

// unreachable marks a vertex with no path to the goal.
const unreachable = math.MaxInt32

// BuildDistanceTable runs a breadth-first search from goal over the
// undirected graph and returns, for every vertex, its hop-count distance to
// goal. This is the all-pairs-shortest-path precomputation the spec treats
// as an external collaborator: the kernel never calls this itself, it only
// reads the table a DistanceOracle wraps.
func BuildDistanceTable(g *core.Graph, goal core.VertexID) []int {
	n := g.Size()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = unreachable
	}
	dist[goal] = 0

	queue := make([]core.VertexID, 0, n)
	queue = append(queue, goal)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range g.Vertices[v].Neighbors {
			if dist[u] == unreachable {
				dist[u] = dist[v] + 1
				queue = append(queue, u)
			}
		}
	}
	return dist
}
