package algo

import (
	"math/rand"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
)

// request is one link of the per-timestep inheritance chain: agent
// requested to move into vertex.
type request struct {
	agent  core.AgentID
	vertex core.VertexID
}

// Kernel implements the recursive priority-inheritance-with-backtracking
// procedure, extended with heading-aware costs, cycle detection, the swap
// subprotocol, and push-escape. One Kernel is reused across a whole solve;
// the driver clears occupiedNext before each round of planning, and each
// top-level Pibt call clears the request chain.
type Kernel struct {
	g      *core.Graph
	oracle *DistanceOracle
	agents []*core.Agent

	occupiedNow  []core.AgentID // vertex id -> agent, committed positions
	occupiedNext []core.AgentID // vertex id -> agent, tentative this timestep
	R            []core.VertexID // agent id -> reserved post-rotation vertex
	pushCount    [][]int         // [pushed][pusher]

	rng *rand.Rand

	requestChain     []request
	cycleHandled     bool
	initialRequester core.AgentID
}

// NewKernel builds a kernel over the given graph/oracle/agents. occupiedNow
// must already reflect each agent's starting vertex.
func NewKernel(g *core.Graph, oracle *DistanceOracle, agents []*core.Agent, occupiedNow []core.AgentID, rng *rand.Rand) *Kernel {
	n := len(agents)
	k := &Kernel{
		g:            g,
		oracle:       oracle,
		agents:       agents,
		occupiedNow:  occupiedNow,
		occupiedNext: make([]core.AgentID, g.Size()),
		R:            make([]core.VertexID, n),
		pushCount:    make([][]int, n),
		rng:          rng,
	}
	for i := range k.occupiedNext {
		k.occupiedNext[i] = core.NoAgent
	}
	for i := range k.R {
		k.R[i] = core.NoVertex
	}
	for i := range k.pushCount {
		k.pushCount[i] = make([]int, n)
	}
	return k
}

// ResetTimestep clears occupiedNext ahead of a new round of planning. R and
// pushCount persist across timesteps by design.
func (k *Kernel) ResetTimestep() {
	for i := range k.occupiedNext {
		k.occupiedNext[i] = core.NoAgent
	}
}

// candidateCost returns the heading-aware cost of agent i moving to
// candidate u from its current vertex, per the spec's cost function.
func (k *Kernel) candidateCost(i core.AgentID, u core.VertexID) (int, error) {
	a := k.agents[i]
	if u == a.VNow {
		return k.oracle.Dist(int(i), a.VNow, a.HNow) + 1, nil
	}
	hRel, err := k.g.DirectionTo(a.VNow, u)
	if err != nil {
		return 0, err
	}
	cost := k.oracle.Dist(int(i), u, hRel)
	switch core.AngleDiff(a.HNow, hRel) {
	case 0:
		cost += 1
	case 90:
		cost += 2
	case 180:
		cost += 3
	}
	return cost, nil
}

// candidates builds agent i's shuffled, cost-sorted candidate set:
// v_now.neighbors union {v_now}.
func (k *Kernel) candidates(i core.AgentID) ([]core.VertexID, error) {
	a := k.agents[i]
	nbrs := k.g.Vertices[a.VNow].Neighbors
	cs := make([]core.VertexID, len(nbrs)+1)
	copy(cs, nbrs)
	cs[len(nbrs)] = a.VNow

	k.rng.Shuffle(len(cs), func(x, y int) { cs[x], cs[y] = cs[y], cs[x] })

	costs := make([]int, len(cs))
	for idx, u := range cs {
		c, err := k.candidateCost(i, u)
		if err != nil {
			return nil, err
		}
		costs[idx] = c
	}
	// Insertion sort keeps the shuffle's ordering among ties (stable),
	// matching the spec's "ties broken by preferring unoccupied
	// candidates" rule applied only as a final tiebreak.
	for x := 1; x < len(cs); x++ {
		for y := x; y > 0 && k.less(costs, cs, y, y-1); y-- {
			costs[y], costs[y-1] = costs[y-1], costs[y]
			cs[y], cs[y-1] = cs[y-1], cs[y]
		}
	}
	return cs, nil
}

func (k *Kernel) less(costs []int, cs []core.VertexID, x, y int) bool {
	if costs[x] != costs[y] {
		return costs[x] < costs[y]
	}
	xFree := k.occupiedNow[cs[x]] == core.NoAgent
	yFree := k.occupiedNow[cs[y]] == core.NoAgent
	if xFree && !yFree {
		return true
	}
	return false
}

// moveReservedToFront moves R[i], if present in cs, to the front.
func moveReservedToFront(cs []core.VertexID, reserved core.VertexID) {
	for idx, u := range cs {
		if u == reserved {
			copy(cs[1:idx+1], cs[0:idx])
			cs[0] = u
			return
		}
	}
}

func reverseCandidates(cs []core.VertexID) {
	for x, y := 0, len(cs)-1; x < y; x, y = x+1, y-1 {
		cs[x], cs[y] = cs[y], cs[x]
	}
}

// Pibt is the recursive priority-inheritance procedure. pusher is
// core.NoAgent for the outermost, top-level call (isInitial true).
func (k *Kernel) Pibt(i core.AgentID, pusher core.AgentID, isInitial bool) (bool, error) {
	if isInitial {
		k.requestChain = k.requestChain[:0]
		k.cycleHandled = false
		k.initialRequester = i
	}

	a := k.agents[i]
	cs, err := k.candidates(i)
	if err != nil {
		return false, err
	}

	if pusher != core.NoAgent {
		k.pushEscape(cs, i, pusher)
	}

	swapAgent, err := k.swapPossibleAndRequired(i, cs)
	if err != nil {
		return false, err
	}
	if swapAgent != core.NoAgent {
		reverseCandidates(cs)
	}

	if k.R[i] != core.NoVertex {
		moveReservedToFront(cs, k.R[i])
	}

	skipped := 0
	for _, u := range cs {
		if k.occupiedNext[u] != core.NoAgent {
			skipped++
			continue
		}
		if pusher != core.NoAgent && u == k.agents[pusher].VNow {
			skipped++
			continue
		}

		k.occupiedNext[u] = i
		a.VNext = u

		if !isInitial && u == k.agents[k.initialRequester].VNow {
			k.requestChain = append(k.requestChain, request{i, u})
			if err := k.handleCycle(); err != nil {
				return false, err
			}
			k.cycleHandled = true
			return true, nil
		}

		ak := k.occupiedNow[u]
		if ak != core.NoAgent && k.agents[ak].VNext == core.NoVertex {
			k.requestChain = append(k.requestChain, request{i, u})
			ok, err := k.Pibt(ak, i, false)
			if err != nil {
				return false, err
			}
			if !ok {
				k.requestChain = k.requestChain[:len(k.requestChain)-1]
				k.occupiedNext[u] = core.NoAgent
				a.VNext = core.NoVertex
				skipped++
				continue
			}
		}

		if k.cycleHandled {
			return true, nil
		}

		vOut, hOut, err := ComputeAction(k.g, a.VNow, u, a.HNow)
		if err != nil {
			return false, err
		}

		if vOut == a.VNow {
			a.VNext = a.VNow
			k.occupiedNext[u] = core.NoAgent
			k.occupiedNext[a.VNow] = i
			a.HNext = hOut
			if a.SwapCompleted {
				k.R[i] = core.NoVertex
			}
			if hOut != a.HNow {
				k.R[i] = u
			}
		} else {
			a.VNext = vOut
			a.HNext = hOut
			k.occupiedNext[vOut] = i
			k.R[i] = core.NoVertex
			if pusher != core.NoAgent {
				k.pushCount[i][pusher]++
			}
		}

		if ak != core.NoAgent && k.agents[ak].VNext == k.agents[ak].VNow {
			if vOut != a.VNow {
				k.occupiedNext[a.VNow] = i
				a.VNext = a.VNow
				a.HNext = a.HNow
				k.R[i] = u
			}
		}

		if skipped == 0 && swapAgent != core.NoAgent {
			if err := k.completeSwap(i, swapAgent); err != nil {
				return false, err
			}
		}

		return true, nil
	}

	k.occupiedNext[a.VNow] = i
	a.VNext = a.VNow
	a.HNext = a.HNow
	return false, nil
}

// completeSwap computes the symmetric action for the swap partner once the
// pusher's own move has been decided.
func (k *Kernel) completeSwap(i, swapAgent core.AgentID) error {
	a := k.agents[i]
	sa := k.agents[swapAgent]

	if sa.VNext != core.NoVertex {
		return nil
	}
	if !(k.occupiedNext[a.VNow] == core.NoAgent || k.occupiedNext[a.VNow] == i) {
		return nil
	}

	sa.SwapCompleted = false
	sa.VNext = a.VNow
	k.occupiedNext[sa.VNext] = swapAgent

	vOut, hOut, err := ComputeAction(k.g, sa.VNow, sa.VNext, sa.HNow)
	if err != nil {
		return err
	}

	if vOut == sa.VNow {
		k.occupiedNext[sa.VNext] = core.NoAgent
		sa.VNext = sa.VNow
		k.occupiedNext[sa.VNext] = swapAgent
		sa.HNext = hOut
		k.R[swapAgent] = core.NoVertex
		if hOut != sa.HNow {
			k.R[swapAgent] = a.VNow
		}
	} else {
		sa.VNext = vOut
		sa.HNext = hOut
		k.occupiedNext[sa.VNext] = swapAgent
		k.R[swapAgent] = core.NoVertex
		sa.SwapCompleted = true
	}

	if a.VNext == a.VNow && vOut != sa.VNow {
		k.occupiedNext[sa.VNow] = swapAgent
		sa.VNext = sa.VNow
		sa.HNext = sa.HNow
		k.R[swapAgent] = a.VNow
	}
	return nil
}

// handleCycle resolves a detected rotational deadlock: if every agent in
// the request chain already faces the vertex it requested, the ring
// rotates one step forward in this timestep; otherwise every agent holds
// its vertex, rotating toward its requested neighbor where misaligned.
func (k *Kernel) handleCycle() error {
	if len(k.requestChain) == 0 {
		return &core.ConfigError{Agent: -1, Msg: "handleCycle called with an empty request chain"}
	}

	aligned := make([]bool, len(k.requestChain))
	allAligned := true
	for idx, r := range k.requestChain {
		agent := k.agents[r.agent]
		dir, err := k.g.DirectionTo(agent.VNow, r.vertex)
		if err != nil {
			return err
		}
		aligned[idx] = agent.HNow == dir
		if !aligned[idx] {
			allAligned = false
		}
	}

	if allAligned {
		for _, r := range k.requestChain {
			agent := k.agents[r.agent]
			agent.VNext = r.vertex
			agent.HNext = agent.HNow
			k.occupiedNext[r.vertex] = r.agent
		}
		return nil
	}

	for idx, r := range k.requestChain {
		agent := k.agents[r.agent]
		if aligned[idx] {
			agent.VNext = agent.VNow
			agent.HNext = agent.HNow
			k.occupiedNext[agent.VNow] = r.agent
			continue
		}
		_, hOut, err := ComputeAction(k.g, agent.VNow, r.vertex, agent.HNow)
		if err != nil {
			return err
		}
		agent.VNext = agent.VNow
		agent.HNext = hOut
		k.occupiedNext[agent.VNow] = r.agent
	}
	return nil
}

// pushEscape re-shuffles candidates once the pushed agent has been forced
// to move by the same pusher twice, then resets the counter.
func (k *Kernel) pushEscape(cs []core.VertexID, pushed, pusher core.AgentID) {
	if k.pushCount[pushed][pusher] >= 2 && len(cs) > 1 {
		k.rng.Shuffle(len(cs), func(x, y int) { cs[x], cs[y] = cs[y], cs[x] })
		k.pushCount[pushed][pusher] = 0
	}
}
