package core

// AgentID is a stable index in [0, N) identifying an agent.
type AgentID int

// NoVertex is the sentinel value for an unset vertex (e.g. v_next before
// planning, or an empty reservation slot).
const NoVertex VertexID = -1

// NoAgent is the sentinel value for an empty occupancy slot.
const NoAgent AgentID = -1

// Agent is the mutable per-agent record carried across the whole solve.
// Fields mirror the spec's data model exactly: VNow/VNext/Heading pairs for
// the current and tentative-next state, the goal, the elapsed-since-goal
// counter used for priority, the precomputed initial distance, a fixed
// tie-breaker, and the swap-completion flag the kernel consults when
// deciding whether to clear a vertex reservation.
type Agent struct {
	ID    AgentID
	VNow  VertexID
	VNext VertexID // NoVertex while unplanned
	Goal  VertexID

	HNow  Heading
	HNext Heading // only meaningful once VNext is set

	Elapsed int
	InitD   int
	Tie     float64

	SwapCompleted bool
}

// AtGoal reports whether the agent currently occupies its goal vertex.
func (a *Agent) AtGoal() bool {
	return a.VNow == a.Goal
}

// ResetPlanning marks the agent unplanned by clearing VNext, leaving
// VNow/HNow (the committed state) untouched; HNext keeps its old value until
// VNext is set again. Called by the driver's commit at the end of each
// timestep.
func (a *Agent) ResetPlanning() {
	a.VNext = NoVertex
}
