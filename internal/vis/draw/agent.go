package draw

import (
	"image/color"
	"math"

	"gioui.org/layout"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
	"github.com/elektrokombinacija/pibt-orient/internal/vis/interact"
)

var (
	ColorAgentDefault  = color.NRGBA{R: 100, G: 200, B: 255, A: 255}
	ColorAgentSelected = color.NRGBA{R: 255, G: 255, B: 100, A: 255}
	ColorHeadingArrow  = color.NRGBA{R: 20, G: 20, B: 25, A: 255}
)

// DrawAgent draws one agent as a dot with a heading arrow pointing in the
// direction it currently faces.
func DrawAgent(gtx layout.Context, pos core.Pos, heading core.Heading, camera *interact.Camera, selected bool) {
	screenX, screenY := camera.WorldToScreen(pos.X, pos.Y)
	radius := 10 * camera.Zoom

	col := ColorAgentDefault
	if selected {
		col = ColorAgentSelected
	}
	drawFilledCircle(gtx, screenX, screenY, radius, col)
	drawHeadingArrow(gtx, screenX, screenY, radius, heading)
}

// drawHeadingArrow draws a short line from the agent's center toward the
// direction its heading faces, in screen space (Y grows downward, so
// Y_PLUS in world space points toward larger Y and larger screen Y).
func drawHeadingArrow(gtx layout.Context, cx, cy, radius float32, h core.Heading) {
	rad := float64(h.Angle()) * math.Pi / 180
	dx := float32(math.Cos(rad)) * radius * 1.6
	dy := float32(math.Sin(rad)) * radius * 1.6
	drawLine(gtx, cx, cy, cx+dx, cy+dy, 2, ColorHeadingArrow)
}

// DrawAgents draws every agent at its current position.
func DrawAgents(gtx layout.Context, positions map[core.AgentID]core.Pos, headings map[core.AgentID]core.Heading, camera *interact.Camera, selected map[core.AgentID]bool) {
	for id, pos := range positions {
		DrawAgent(gtx, pos, headings[id], camera, selected[id])
	}
}

// DrawPathTrail draws a faded line through a sequence of positions.
func DrawPathTrail(gtx layout.Context, history []core.Pos, camera *interact.Camera, col color.NRGBA, width float32) {
	trailCol := col
	trailCol.A = 100
	for i := 0; i+1 < len(history); i++ {
		x1, y1 := camera.WorldToScreen(history[i].X, history[i].Y)
		x2, y2 := camera.WorldToScreen(history[i+1].X, history[i+1].Y)
		drawLine(gtx, x1, y1, x2, y2, width*camera.Zoom, trailCol)
	}
}
