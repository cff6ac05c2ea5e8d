package algo

import (
	"math/rand"
	"sort"
	"time"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
)

// Driver runs the timestep loop: at each timestep it sorts agents by
// priority, invokes the kernel once per agent that hasn't yet been given a
// next vertex this round, then commits every agent's planned move and
// advances elapsed-wait counters.
type Driver struct {
	Seed int64
}

// Run solves inst and returns the resulting plan. Plan.Solved reports
// whether every agent reached its goal within MaxTimestep and TimeBudget;
// a returned error is reserved for configuration/invariant violations, not
// for "no solution found within budget."
func (d *Driver) Run(inst *core.Instance) (*core.Plan, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	n := inst.NumAgents()
	g := inst.Graph
	rng := rand.New(rand.NewSource(d.Seed))

	oracle := BuildOracle(g, inst.Goals)

	agents := make([]*core.Agent, n)
	occupiedNow := make([]core.AgentID, g.Size())
	for v := range occupiedNow {
		occupiedNow[v] = core.NoAgent
	}

	for i := 0; i < n; i++ {
		h := inst.HeadingOf(i)
		initD := 0
		if !inst.DisableDistInit {
			initD = oracle.Dist(i, inst.Starts[i], h)
		}
		agents[i] = &core.Agent{
			ID:            core.AgentID(i),
			VNow:          inst.Starts[i],
			VNext:         core.NoVertex,
			Goal:          inst.Goals[i],
			HNow:          h,
			HNext:         h,
			Elapsed:       0,
			InitD:         initD,
			Tie:           rng.Float64(),
			SwapCompleted: true,
		}
		occupiedNow[inst.Starts[i]] = core.AgentID(i)
	}

	plan := core.NewPlan()
	plan.Append(initialConfig(agents))

	kernel := NewKernel(g, oracle, agents, occupiedNow, rng)

	order := make([]core.AgentID, n)
	for i := range order {
		order[i] = core.AgentID(i)
	}

	deadline := time.Now().Add(inst.TimeBudget)
	timestep := 0
	for {
		sort.SliceStable(order, func(x, y int) bool {
			return higherPriority(agents[order[x]], agents[order[y]])
		})

		kernel.ResetTimestep()
		for _, id := range order {
			if agents[id].VNext != core.NoVertex {
				continue
			}
			if _, err := kernel.Pibt(id, core.NoAgent, true); err != nil {
				return plan, err
			}
		}

		solved := commit(agents, occupiedNow)
		plan.Append(currentConfig(agents))
		timestep++

		if solved {
			plan.Solved = true
			return plan, nil
		}
		if timestep >= inst.MaxTimestep || (inst.TimeBudget > 0 && time.Now().After(deadline)) {
			plan.Solved = false
			return plan, nil
		}
	}
}

// higherPriority implements the priority-sort comparator: longer elapsed
// wait first, then larger initial distance to goal, then the per-agent
// random tiebreaker.
func higherPriority(a, b *core.Agent) bool {
	if a.Elapsed != b.Elapsed {
		return a.Elapsed > b.Elapsed
	}
	if a.InitD != b.InitD {
		return a.InitD > b.InitD
	}
	return a.Tie > b.Tie
}

// commit advances every agent from v_now to v_next, updates occupiedNow,
// resets each agent's planning state, and reports whether all agents have
// reached their goal.
func commit(agents []*core.Agent, occupiedNow []core.AgentID) bool {
	allAtGoal := true
	for _, a := range agents {
		if occupiedNow[a.VNow] == a.ID {
			occupiedNow[a.VNow] = core.NoAgent
		}
	}
	for _, a := range agents {
		a.VNow = a.VNext
		a.HNow = a.HNext
		occupiedNow[a.VNow] = a.ID
		if a.AtGoal() {
			a.Elapsed = 0
		} else {
			a.Elapsed++
			allAtGoal = false
		}
		a.ResetPlanning()
	}
	return allAtGoal
}

func initialConfig(agents []*core.Agent) core.Config {
	vs := make([]core.VertexID, len(agents))
	hs := make([]core.Heading, len(agents))
	for i, a := range agents {
		vs[i] = a.VNow
		hs[i] = a.HNow
	}
	return core.Config{Vertices: vs, Headings: hs}
}

func currentConfig(agents []*core.Agent) core.Config {
	return initialConfig(agents)
}
