// Package draw provides rendering functions for the plan viewer.
package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
	"github.com/elektrokombinacija/pibt-orient/internal/vis/interact"
)

var (
	ColorVertexDefault  = color.NRGBA{R: 100, G: 120, B: 140, A: 255}
	ColorVertexSelected = color.NRGBA{R: 255, G: 200, B: 80, A: 255}
	ColorEdgeDefault    = color.NRGBA{R: 80, G: 90, B: 100, A: 180}
)

// DrawGraph renders every vertex and edge of g.
func DrawGraph(gtx layout.Context, g *core.Graph, camera *interact.Camera, selected map[core.VertexID]bool) {
	for _, v := range g.Vertices {
		for _, n := range v.Neighbors {
			if v.ID > n {
				continue // draw each undirected edge once
			}
			DrawEdge(gtx, v.Pos, g.Vertex(n).Pos, camera, ColorEdgeDefault)
		}
	}
	for _, v := range g.Vertices {
		col := ColorVertexDefault
		if selected[v.ID] {
			col = ColorVertexSelected
		}
		DrawVertex(gtx, v.Pos, camera, col, 8)
	}
}

// DrawVertex draws a vertex as a filled circle.
func DrawVertex(gtx layout.Context, pos core.Pos, camera *interact.Camera, col color.NRGBA, radius float32) {
	screenX, screenY := camera.WorldToScreen(pos.X, pos.Y)
	drawFilledCircle(gtx, screenX, screenY, radius*camera.Zoom, col)
}

// DrawEdge draws an edge as a line between two positions.
func DrawEdge(gtx layout.Context, p1, p2 core.Pos, camera *interact.Camera, col color.NRGBA) {
	x1, y1 := camera.WorldToScreen(p1.X, p1.Y)
	x2, y2 := camera.WorldToScreen(p2.X, p2.Y)
	drawLine(gtx, x1, y1, x2, y2, 2.0*camera.Zoom, col)
}

// HitTestVertex checks if a screen point hits a vertex.
func HitTestVertex(screenX, screenY float32, pos core.Pos, camera *interact.Camera, radius float32) bool {
	vx, vy := camera.WorldToScreen(pos.X, pos.Y)
	dx := screenX - vx
	dy := screenY - vy
	r := radius * camera.Zoom
	return dx*dx+dy*dy <= r*r
}

// FindVertexAt returns the first vertex, in id order, whose hit-test radius
// contains the screen coordinate, or nil if none does.
func FindVertexAt(screenX, screenY float32, g *core.Graph, camera *interact.Camera) *core.Vertex {
	radius := float32(10)
	for _, v := range g.Vertices {
		if HitTestVertex(screenX, screenY, v.Pos, camera, radius) {
			return v
		}
	}
	return nil
}

// DrawGrid draws a background grid sized to the visible world bounds.
func DrawGrid(gtx layout.Context, camera *interact.Camera, gridSize float64, col color.NRGBA) {
	bounds := gtx.Constraints.Max

	minWorldX, minWorldY := camera.ScreenToWorld(0, 0)
	maxWorldX, maxWorldY := camera.ScreenToWorld(float32(bounds.X), float32(bounds.Y))

	startX := math.Floor(minWorldX/gridSize) * gridSize
	startY := math.Floor(minWorldY/gridSize) * gridSize

	for x := startX; x <= maxWorldX; x += gridSize {
		sx, _ := camera.WorldToScreen(x, minWorldY)
		if sx >= 0 && sx <= float32(bounds.X) {
			rect := image.Rect(int(sx), 0, int(sx)+1, bounds.Y)
			paint.FillShape(gtx.Ops, col, clip.Rect(rect).Op())
		}
	}
	for y := startY; y <= maxWorldY; y += gridSize {
		_, sy := camera.WorldToScreen(minWorldX, y)
		if sy >= 0 && sy <= float32(bounds.Y) {
			rect := image.Rect(0, int(sy), bounds.X, int(sy)+1)
			paint.FillShape(gtx.Ops, col, clip.Rect(rect).Op())
		}
	}
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(cx+radius, cy))

	segments := 16
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

func drawLine(gtx layout.Context, x1, y1, x2, y2, width float32, col color.NRGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length
	px := -dy * width / 2
	py := dx * width / 2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}
