package core

import "testing"

// lineGraph builds a 1 x n straight corridor v0..v(n-1) along X_PLUS.
func lineGraph(n int) *Graph {
	g := NewGraph(n)
	for i := 0; i < n; i++ {
		g.AddVertex(VertexID(i), Pos{X: float64(i), Y: 0})
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(VertexID(i), VertexID(i+1))
	}
	return g
}

func TestDirectionTo(t *testing.T) {
	g := lineGraph(3)
	dir, err := g.DirectionTo(0, 1)
	if err != nil || dir != XPlus {
		t.Fatalf("DirectionTo(0,1) = %v, %v; want XPlus, nil", dir, err)
	}
	dir, err = g.DirectionTo(1, 0)
	if err != nil || dir != XMinus {
		t.Fatalf("DirectionTo(1,0) = %v, %v; want XMinus, nil", dir, err)
	}
}

func TestDirectionToNonNeighborIsFatal(t *testing.T) {
	g := lineGraph(3)
	if _, err := g.DirectionTo(0, 2); err == nil {
		t.Fatal("expected ConfigError for non-adjacent vertices")
	}
}

func TestLShapeDirections(t *testing.T) {
	// v0-v1-v2 with v2 directly above v1.
	g := NewGraph(3)
	g.AddVertex(0, Pos{X: 0, Y: 0})
	g.AddVertex(1, Pos{X: 1, Y: 0})
	g.AddVertex(2, Pos{X: 1, Y: 1})
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	if dir, _ := g.DirectionTo(0, 1); dir != XPlus {
		t.Errorf("DirectionTo(0,1) = %v, want XPlus", dir)
	}
	if dir, _ := g.DirectionTo(1, 2); dir != YPlus {
		t.Errorf("DirectionTo(1,2) = %v, want YPlus", dir)
	}
}

func TestIsNeighbor(t *testing.T) {
	g := lineGraph(3)
	if !g.IsNeighbor(0, 1) {
		t.Error("expected 0 and 1 to be neighbors")
	}
	if g.IsNeighbor(0, 2) {
		t.Error("expected 0 and 2 to not be neighbors")
	}
}
