package algo

import (
	"testing"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
)

func lineGraph(n int) *core.Graph {
	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		g.AddVertex(core.VertexID(i), core.Pos{X: float64(i), Y: 0})
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(core.VertexID(i), core.VertexID(i+1))
	}
	return g
}

func TestComputeActionStay(t *testing.T) {
	g := lineGraph(3)
	v, h, err := ComputeAction(g, 0, 0, core.XPlus)
	if err != nil || v != 0 || h != core.XPlus {
		t.Fatalf("stay: got (%v,%v,%v), want (0,XPlus,nil)", v, h, err)
	}
}

func TestComputeActionForwardMove(t *testing.T) {
	g := lineGraph(3)
	v, h, err := ComputeAction(g, 0, 1, core.XPlus)
	if err != nil || v != 1 || h != core.XPlus {
		t.Fatalf("forward: got (%v,%v,%v), want (1,XPlus,nil)", v, h, err)
	}
}

func TestComputeAction90DegreeTurn(t *testing.T) {
	// L-shape: v0-v1-v2, v2 directly above v1.
	g := core.NewGraph(3)
	g.AddVertex(0, core.Pos{X: 0, Y: 0})
	g.AddVertex(1, core.Pos{X: 1, Y: 0})
	g.AddVertex(2, core.Pos{X: 1, Y: 1})
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	// Facing X_PLUS at v1, target v2 is Y_PLUS: a single rotation.
	v, h, err := ComputeAction(g, 1, 2, core.XPlus)
	if err != nil || v != 1 || h != core.YPlus {
		t.Fatalf("90-turn: got (%v,%v,%v), want (1,YPlus,nil)", v, h, err)
	}
}

func TestComputeAction180DegreeTurn(t *testing.T) {
	g := lineGraph(3)
	// Facing X_MINUS at v0, target v1 is X_PLUS: 180 degrees away.
	v, h, err := ComputeAction(g, 0, 1, core.XMinus)
	if err != nil || v != 0 || h != core.YMinus {
		t.Fatalf("180-turn: got (%v,%v,%v), want (0,YMinus,nil) [CCW from XMinus]", v, h, err)
	}
}

func TestComputeActionNonNeighborIsFatal(t *testing.T) {
	g := lineGraph(3)
	if _, _, err := ComputeAction(g, 0, 2, core.XPlus); err == nil {
		t.Fatal("expected fatal error for non-adjacent target")
	}
}

// Scenario 1 from the spec: single agent, straight corridor, 4 forward
// moves in a row.
func TestScenarioStraightCorridor(t *testing.T) {
	g := lineGraph(5)
	h := core.XPlus
	v := core.VertexID(0)
	for step := 0; step < 4; step++ {
		nv, nh, err := ComputeAction(g, v, v+1, h)
		if err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		if nv != v+1 || nh != core.XPlus {
			t.Fatalf("step %d: got (%v,%v), want (%v,XPlus)", step, nv, nh, v+1)
		}
		v, h = nv, nh
	}
	if v != 4 {
		t.Fatalf("expected to reach v4, got %v", v)
	}
}

// Scenario 2 from the spec: single agent needs one in-place rotation then
// a forward move, across 3 total timesteps (move, rotate, move).
func TestScenarioRequiresTurn(t *testing.T) {
	g := core.NewGraph(3)
	g.AddVertex(0, core.Pos{X: 0, Y: 0})
	g.AddVertex(1, core.Pos{X: 1, Y: 0})
	g.AddVertex(2, core.Pos{X: 1, Y: 1})
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	h := core.XPlus
	v := core.VertexID(0)

	// t0 -> t1: move to v1, still facing X_PLUS.
	v, h, err := ComputeAction(g, v, 1, h)
	if err != nil || v != 1 || h != core.XPlus {
		t.Fatalf("move to v1: got (%v,%v,%v)", v, h, err)
	}
	// t1 -> t2: rotate in place to face v2 (Y_PLUS).
	v, h, err = ComputeAction(g, v, 2, h)
	if err != nil || v != 1 || h != core.YPlus {
		t.Fatalf("rotate at v1: got (%v,%v,%v)", v, h, err)
	}
	// t2 -> t3: move to v2.
	v, h, err = ComputeAction(g, v, 2, h)
	if err != nil || v != 2 || h != core.YPlus {
		t.Fatalf("move to v2: got (%v,%v,%v)", v, h, err)
	}
}
