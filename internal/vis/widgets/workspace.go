// Package widgets provides Gio UI widgets for the plan viewer.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/pibt-orient/internal/vis/draw"
	"github.com/elektrokombinacija/pibt-orient/internal/vis/interact"
	"github.com/elektrokombinacija/pibt-orient/internal/vis/state"
)

// Workspace is the main 2D area that draws the graph, agent trails, and
// agents at their current playback position. It has no editing surface:
// pointer events only drive camera pan and zoom.
type Workspace struct {
	state  *state.State
	camera *interact.Camera
}

// NewWorkspace creates a new workspace widget.
func NewWorkspace(st *state.State, camera *interact.Camera) *Workspace {
	return &Workspace{
		state:  st,
		camera: camera,
	}
}

// Layout renders the workspace.
func (w *Workspace) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	paint.Fill(gtx.Ops, color.NRGBA{R: 25, G: 28, B: 32, A: 255})

	w.handlePointerEvents(gtx)

	draw.DrawGrid(gtx, w.camera, 50, color.NRGBA{R: 40, G: 45, B: 50, A: 255})

	if w.state.Graph != nil {
		draw.DrawGraph(gtx, w.state.Graph, w.camera, nil)
	}

	if w.state.Plan != nil {
		for i := 0; i < len(w.state.Plan.At(0).Vertices); i++ {
			history := w.state.PathHistory(i)
			if len(history) > 1 {
				draw.DrawPathTrail(gtx, history, w.camera, draw.ColorAgentDefault, 3)
			}
		}
	}

	if w.state.Graph != nil {
		positions := w.state.CurrentPositions()
		headings := w.state.CurrentHeadings()
		draw.DrawAgents(gtx, positions, headings, w.camera, nil)
	}

	return layout.Dimensions{Size: bounds}
}

func (w *Workspace) handlePointerEvents(gtx layout.Context) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: w,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll | pointer.Move,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			w.camera.HandleEvent(gtx, pe)
		}
	}
}

// FitToGraph adjusts the camera to frame the whole graph.
func (w *Workspace) FitToGraph(screenWidth, screenHeight float32) {
	if w.state.Graph == nil || len(w.state.Graph.Vertices) == 0 {
		return
	}
	minX, minY := w.state.Graph.Vertices[0].Pos.X, w.state.Graph.Vertices[0].Pos.Y
	maxX, maxY := minX, minY
	for _, v := range w.state.Graph.Vertices {
		minX, maxX = minF64(minX, v.Pos.X), maxF64(maxX, v.Pos.X)
		minY, maxY = minF64(minY, v.Pos.Y), maxF64(maxY, v.Pos.Y)
	}
	w.camera.FitBounds(minX, minY, maxX, maxY, screenWidth, screenHeight, 40)
}

func minF64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
