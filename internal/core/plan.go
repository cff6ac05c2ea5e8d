package core

import "strconv"

// Config is a single joint configuration: every agent's vertex and heading
// at one timestep.
type Config struct {
	Vertices []VertexID
	Headings []Heading
}

// Plan is the sequence of configurations emitted by a solve, starting with
// the instance's initial configuration at index 0.
type Plan struct {
	Configs []Config
	Solved  bool
}

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{}
}

// Append adds a configuration to the end of the plan.
func (p *Plan) Append(c Config) {
	p.Configs = append(p.Configs, c)
}

// Len returns the number of configurations (makespan + 1).
func (p *Plan) Len() int {
	return len(p.Configs)
}

// Last returns the most recently appended configuration.
func (p *Plan) Last() Config {
	return p.Configs[len(p.Configs)-1]
}

// At returns the configuration at timestep t.
func (p *Plan) At(t int) Config {
	return p.Configs[t]
}

// Path returns agent i's vertex at every timestep.
func (p *Plan) Path(i int) []VertexID {
	path := make([]VertexID, len(p.Configs))
	for t, c := range p.Configs {
		path[t] = c.Vertices[i]
	}
	return path
}

// Makespan returns the index of the final timestep (Len()-1).
func (p *Plan) Makespan() int {
	return len(p.Configs) - 1
}

// Validate checks the invariants from the testable-properties section: no
// two agents share a vertex in any configuration, no swap conflicts between
// adjacent timesteps, and every per-agent transition is a legal move
// (neighbor-or-stay, with the move-implies-facing-target rule).
func (p *Plan) Validate(g *Graph) error {
	for t, c := range p.Configs {
		seen := make(map[VertexID]int, len(c.Vertices))
		for i, v := range c.Vertices {
			if other, ok := seen[v]; ok {
				return &ConfigError{Agent: AgentID(i), Msg: vertexConflictMsg(t, other, i)}
			}
			seen[v] = i
		}
	}
	for t := 0; t+1 < len(p.Configs); t++ {
		cur, next := p.Configs[t], p.Configs[t+1]
		for i := range cur.Vertices {
			for j := i + 1; j < len(cur.Vertices); j++ {
				if cur.Vertices[i] == next.Vertices[j] && cur.Vertices[j] == next.Vertices[i] {
					return &ConfigError{Agent: AgentID(i), Msg: swapConflictMsg(t, i, j)}
				}
			}
			if err := validateStep(g, cur, next, i); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateStep(g *Graph, cur, next Config, i int) error {
	from, to := cur.Vertices[i], next.Vertices[i]
	if from == to {
		return nil
	}
	if !g.IsNeighbor(from, to) {
		return &ConfigError{Agent: AgentID(i), Msg: "moved to a non-adjacent vertex"}
	}
	dir, err := g.DirectionTo(from, to)
	if err != nil {
		return err
	}
	if next.Headings[i] != dir || cur.Headings[i] != dir {
		return &ConfigError{Agent: AgentID(i), Msg: "moved without facing the destination"}
	}
	return nil
}

func vertexConflictMsg(t, a, b int) string {
	return "vertex conflict at timestep " + strconv.Itoa(t) + " between agents " + strconv.Itoa(a) + " and " + strconv.Itoa(b)
}

func swapConflictMsg(t, a, b int) string {
	return "swap conflict between timestep " + strconv.Itoa(t) + " and " + strconv.Itoa(t+1) + " for agents " + strconv.Itoa(a) + " and " + strconv.Itoa(b)
}
