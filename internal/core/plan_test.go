package core

import "testing"

func TestPlanValidateRejectsVertexConflict(t *testing.T) {
	g := lineGraph(3)
	p := NewPlan()
	p.Append(Config{
		Vertices: []VertexID{0, 0},
		Headings: []Heading{XPlus, XPlus},
	})
	if err := p.Validate(g); err == nil {
		t.Fatal("expected vertex conflict to be rejected")
	}
}

func TestPlanValidateRejectsSwapConflict(t *testing.T) {
	g := lineGraph(3)
	p := NewPlan()
	p.Append(Config{Vertices: []VertexID{0, 1}, Headings: []Heading{XPlus, XMinus}})
	p.Append(Config{Vertices: []VertexID{1, 0}, Headings: []Heading{XPlus, XMinus}})
	if err := p.Validate(g); err == nil {
		t.Fatal("expected swap conflict to be rejected")
	}
}

func TestPlanValidateAcceptsStayAndMove(t *testing.T) {
	g := lineGraph(3)
	p := NewPlan()
	p.Append(Config{Vertices: []VertexID{0, 2}, Headings: []Heading{XPlus, XMinus}})
	p.Append(Config{Vertices: []VertexID{1, 2}, Headings: []Heading{XPlus, XMinus}})
	if err := p.Validate(g); err != nil {
		t.Fatalf("expected valid plan, got %v", err)
	}
}

func TestPlanValidateRejectsMoveWithoutFacing(t *testing.T) {
	g := lineGraph(3)
	p := NewPlan()
	p.Append(Config{Vertices: []VertexID{0}, Headings: []Heading{YPlus}})
	p.Append(Config{Vertices: []VertexID{1}, Headings: []Heading{XPlus}})
	if err := p.Validate(g); err == nil {
		t.Fatal("expected rejection: agent moved while not facing destination")
	}
}
