package algo

import "github.com/elektrokombinacija/pibt-orient/internal/core"

// swapPossibleAndRequired decides whether agent i's top candidate is
// occupied by an agent that must be swapped out of a dead-end corridor
// rather than recursed into normally, walking both directions: i pushing
// into its own top candidate, and a neighbor of i's current vertex pushing
// into i.
func (k *Kernel) swapPossibleAndRequired(i core.AgentID, candidates []core.VertexID) (core.AgentID, error) {
	a := k.agents[i]
	top := candidates[0]
	if top == a.VNow {
		return core.NoAgent, nil
	}

	if aj := k.occupiedNow[top]; aj != core.NoAgent && k.agents[aj].VNext == core.NoVertex {
		req, err := k.isSwapRequired(i, aj, a.VNow, k.agents[aj].VNow)
		if err != nil {
			return core.NoAgent, err
		}
		if req {
			poss, err := k.isSwapPossible(k.agents[aj].VNow, a.VNow)
			if err != nil {
				return core.NoAgent, err
			}
			if poss {
				return aj, nil
			}
		}
	}

	for _, u := range k.g.Vertices[a.VNow].Neighbors {
		ak := k.occupiedNow[u]
		if ak == core.NoAgent || top == k.agents[ak].VNow {
			continue
		}
		req, err := k.isSwapRequired(ak, i, a.VNow, top)
		if err != nil {
			return core.NoAgent, err
		}
		if !req {
			continue
		}
		poss, err := k.isSwapPossible(top, a.VNow)
		if err != nil {
			return core.NoAgent, err
		}
		if poss {
			return ak, nil
		}
	}

	return core.NoAgent, nil
}

// isSwapRequired walks the corridor ahead of the puller to see whether the
// pusher is blocking the puller's only path to its goal, following a chain
// of degree-2 corridor vertices until it finds a branch or a dead end.
func (k *Kernel) isSwapRequired(pusher, puller core.AgentID, vPusher, vPuller core.VertexID) (bool, error) {
	var tmp core.VertexID = core.NoVertex
	for k.oracle.MinDistAllHeadings(int(pusher), vPuller) < k.oracle.MinDistAllHeadings(int(pusher), vPusher) {
		n := 0
		for _, u := range k.g.Vertices[vPuller].Neighbors {
			if u == vPusher || k.isDeadEndOccupiedByOwner(u) {
				continue
			}
			n++
			tmp = u
		}
		if n >= 2 {
			return false, nil
		}
		if n <= 0 {
			break
		}
		vPusher, vPuller = vPuller, tmp
	}
	return k.oracle.MinDistAllHeadings(int(puller), vPusher) < k.oracle.MinDistAllHeadings(int(puller), vPuller) &&
		(k.oracle.MinDistAllHeadings(int(pusher), vPusher) == 0 ||
			k.oracle.MinDistAllHeadings(int(pusher), vPuller) < k.oracle.MinDistAllHeadings(int(pusher), vPusher)), nil
}

// isSwapPossible checks whether the corridor behind the puller has a free
// branch the pusher can peel off into, so the swap won't simply relocate
// the deadlock one cell down the corridor.
func (k *Kernel) isSwapPossible(vPusherOrigin, vPullerOrigin core.VertexID) (bool, error) {
	vPusher, vPuller := vPusherOrigin, vPullerOrigin
	var tmp core.VertexID = core.NoVertex
	for vPuller != vPusherOrigin {
		n := 0
		for _, u := range k.g.Vertices[vPuller].Neighbors {
			if u == vPusher || k.isDeadEndOccupiedByOwner(u) {
				continue
			}
			n++
			tmp = u
		}
		if n >= 2 {
			return true, nil
		}
		if n <= 0 {
			return false, nil
		}
		vPusher, vPuller = vPuller, tmp
	}
	return false, nil
}

// isDeadEndOccupiedByOwner reports whether u is a degree-1 vertex currently
// occupied by an agent already at its own goal there — such a vertex is
// not an escape route, so it doesn't count as a branch.
func (k *Kernel) isDeadEndOccupiedByOwner(u core.VertexID) bool {
	if len(k.g.Vertices[u].Neighbors) != 1 {
		return false
	}
	occ := k.occupiedNow[u]
	return occ != core.NoAgent && k.agents[occ].Goal == u
}
