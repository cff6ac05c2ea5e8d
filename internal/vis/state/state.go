// Package state manages the visualization state for a solved (or partial)
// plan played back over its graph.
package state

import (
	"github.com/elektrokombinacija/pibt-orient/internal/core"
)

// State holds all visualization state: the static graph, the plan being
// played back, and playback timing.
type State struct {
	Graph    *core.Graph
	Plan     *core.Plan
	Playback *PlaybackState
}

// NewState creates visualization state for graph/plan.
func NewState(g *core.Graph, plan *core.Plan) *State {
	maxStep := 0
	if plan != nil {
		maxStep = plan.Makespan()
	}
	return &State{
		Graph:    g,
		Plan:     plan,
		Playback: NewPlaybackState(maxStep),
	}
}

// CurrentPositions returns each agent's position in world coordinates,
// linearly interpolated between the current and next timestep by
// Playback.FracIntoStep for smooth animation.
func (s *State) CurrentPositions() map[core.AgentID]core.Pos {
	positions := make(map[core.AgentID]core.Pos)
	if s.Plan == nil || s.Graph == nil {
		return positions
	}

	t := s.Playback.CurrentStep
	cur := s.Plan.At(t)
	next := cur
	if t+1 <= s.Plan.Makespan() {
		next = s.Plan.At(t + 1)
	}

	for i, v := range cur.Vertices {
		p1 := s.Graph.Vertex(v).Pos
		p2 := p1
		if i < len(next.Vertices) {
			p2 = s.Graph.Vertex(next.Vertices[i]).Pos
		}
		alpha := s.Playback.FracIntoStep
		positions[core.AgentID(i)] = core.Pos{
			X: p1.X + alpha*(p2.X-p1.X),
			Y: p1.Y + alpha*(p2.Y-p1.Y),
		}
	}
	return positions
}

// CurrentHeadings returns each agent's heading at the current timestep.
// Rotations are discrete, so the heading snaps rather than interpolates.
func (s *State) CurrentHeadings() map[core.AgentID]core.Heading {
	headings := make(map[core.AgentID]core.Heading)
	if s.Plan == nil {
		return headings
	}
	cur := s.Plan.At(s.Playback.CurrentStep)
	for i, h := range cur.Headings {
		headings[core.AgentID(i)] = h
	}
	return headings
}

// PathHistory returns agent i's visited vertex positions up to the
// current timestep, for drawing a trail.
func (s *State) PathHistory(i int) []core.Pos {
	if s.Plan == nil || s.Graph == nil {
		return nil
	}
	var history []core.Pos
	limit := s.Playback.CurrentStep
	for t := 0; t <= limit && t <= s.Plan.Makespan(); t++ {
		c := s.Plan.At(t)
		if i >= len(c.Vertices) {
			break
		}
		history = append(history, s.Graph.Vertex(c.Vertices[i]).Pos)
	}
	return history
}
