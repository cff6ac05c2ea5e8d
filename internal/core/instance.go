package core

import "time"

// Instance is a MAPF problem instance: a graph, a start/goal/heading triple
// per agent, and the termination budgets the driver enforces.
type Instance struct {
	Graph *Graph

	Starts   []VertexID
	Goals    []VertexID
	Headings []Heading // initial heading per agent; Y_MINUS if nil

	MaxTimestep int
	TimeBudget  time.Duration

	// DisableDistInit zeroes every agent's InitD, matching the original
	// --disable-dist-init CLI switch: priority then falls back to elapsed
	// time and the tie-breaker only.
	DisableDistInit bool
}

// NumAgents returns the number of agents in the instance.
func (inst *Instance) NumAgents() int {
	return len(inst.Starts)
}

// Validate checks instance consistency, returning a ConfigError naming the
// offending agent where possible.
func (inst *Instance) Validate() error {
	if inst.Graph == nil {
		return &ConfigError{Agent: -1, Msg: "instance has no graph"}
	}
	if len(inst.Goals) != len(inst.Starts) {
		return &ConfigError{Agent: -1, Msg: "starts and goals length mismatch"}
	}
	if inst.Headings != nil && len(inst.Headings) != len(inst.Starts) {
		return &ConfigError{Agent: -1, Msg: "starts and headings length mismatch"}
	}
	n := inst.Graph.Size()
	for i, s := range inst.Starts {
		if int(s) < 0 || int(s) >= n {
			return &ConfigError{Agent: AgentID(i), Msg: "start vertex out of range"}
		}
	}
	for i, g := range inst.Goals {
		if int(g) < 0 || int(g) >= n {
			return &ConfigError{Agent: AgentID(i), Msg: "goal vertex out of range"}
		}
	}
	if inst.MaxTimestep <= 0 {
		return &ConfigError{Agent: -1, Msg: "max timestep must be positive"}
	}
	return nil
}

// HeadingOf returns the configured initial heading for agent i, defaulting
// to Y_MINUS as the driver's initialization rule specifies.
func (inst *Instance) HeadingOf(i int) Heading {
	if inst.Headings == nil {
		return YMinus
	}
	return inst.Headings[i]
}
