package algo

import "github.com/elektrokombinacija/pibt-orient/internal/core"

// ComputeAction is the Action Primitive: given a current vertex, a target
// vertex (a neighbor of current, or current itself), and a current
// heading, it computes the one-step action. An agent may only traverse an
// edge it is facing; a 180-degree turn is resolved as a single 90-degree
// counter-clockwise step, relying on a second invocation next timestep to
// face the remaining 90 degrees.
func ComputeAction(g *core.Graph, current, target core.VertexID, hNow core.Heading) (vOut core.VertexID, hOut core.Heading, err error) {
	if current == target {
		return current, hNow, nil
	}
	if !g.IsNeighbor(current, target) {
		return 0, 0, &core.ConfigError{Agent: -1, Msg: "action target must be the current vertex or a neighbor"}
	}

	hRel, err := g.DirectionTo(current, target)
	if err != nil {
		return 0, 0, err
	}

	switch core.AngleDiff(hNow, hRel) {
	case 0:
		return target, hRel, nil
	case 90:
		return current, hRel, nil
	case 180:
		return current, core.CounterClockwise(hNow), nil
	default:
		return 0, 0, &core.ConfigError{Agent: -1, Msg: "invalid angle difference computing action"}
	}
}
