// Package vis implements a Gio-based viewer that plays back a solved plan
// over its graph.
package vis

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/pibt-orient/internal/algo"
	"github.com/elektrokombinacija/pibt-orient/internal/core"
	"github.com/elektrokombinacija/pibt-orient/internal/vis/interact"
	"github.com/elektrokombinacija/pibt-orient/internal/vis/state"
	"github.com/elektrokombinacija/pibt-orient/internal/vis/widgets"
)

// App is the main viewer application.
type App struct {
	state     *state.State
	theme     *material.Theme
	workspace *widgets.Workspace
	timeline  *widgets.Timeline
	toolbar   *widgets.Toolbar
	camera    *interact.Camera
}

// NewApp creates a viewer over g/plan. If plan is nil, a small built-in demo
// instance is solved on the spot so the viewer always has something to show.
func NewApp(g *core.Graph, plan *core.Plan) *App {
	th := material.NewTheme()

	if plan == nil {
		var err error
		g, plan, err = solveDemoInstance()
		if err != nil {
			plan = core.NewPlan()
		}
	}

	st := state.NewState(g, plan)
	camera := interact.NewCamera()

	a := &App{
		state:     st,
		theme:     th,
		workspace: widgets.NewWorkspace(st, camera),
		timeline:  widgets.NewTimeline(st),
		toolbar:   widgets.NewToolbar(st),
		camera:    camera,
	}
	a.workspace.FitToGraph(900, 600)
	return a
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Optional: key.ModCtrl | key.ModShift})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			if a.state.Playback.Playing {
				a.state.Playback.Advance()
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameSpace:
		a.state.Playback.TogglePlay()
	case key.NameLeftArrow:
		a.state.Playback.StepBack()
	case key.NameRightArrow:
		a.state.Playback.StepForward()
	case key.NameHome:
		a.state.Playback.Reset()
	case "R":
		a.camera.Reset()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.workspace.Layout(gtx, a.theme)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.timeline.Layout(gtx, a.theme)
		}),
	)
}

// solveDemoInstance builds a small grid instance with two crossing agents
// and solves it, for when the viewer is launched with no plan file.
func solveDemoInstance() (*core.Graph, *core.Plan, error) {
	const side = 5
	g := core.NewGraph(side * side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			g.AddVertex(core.VertexID(y*side+x), core.Pos{X: float64(x) * 50, Y: float64(y) * 50})
		}
	}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			id := core.VertexID(y*side + x)
			if x < side-1 {
				g.AddEdge(id, id+1)
			}
			if y < side-1 {
				g.AddEdge(id, id+core.VertexID(side))
			}
		}
	}

	inst := &core.Instance{
		Graph:       g,
		Starts:      []core.VertexID{0, core.VertexID(side*side - 1)},
		Goals:       []core.VertexID{core.VertexID(side*side - 1), 0},
		Headings:    []core.Heading{core.XPlus, core.XMinus},
		MaxTimestep: 200,
	}

	driver := &algo.Driver{Seed: 1}
	plan, err := driver.Run(inst)
	return g, plan, err
}
