// Command pibtvis plays back a solved plan in a Gio window. With no
// -plan flag it solves and displays a small built-in demo instance.
package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/pibt-orient/internal/core"
	"github.com/elektrokombinacija/pibt-orient/internal/ioinstance"
	"github.com/elektrokombinacija/pibt-orient/internal/vis"
)

func main() {
	instancePath := flag.String("instance", "", "path to instance YAML (required when -plan is set)")
	planPath := flag.String("plan", "", "path to solved plan YAML; omit to run the built-in demo")
	flag.Parse()

	var g *core.Graph
	var plan *core.Plan
	if *planPath != "" {
		if *instancePath == "" {
			log.Fatal("-instance is required when -plan is set")
		}
		inst, err := ioinstance.Load(*instancePath)
		if err != nil {
			log.Fatalf("load instance: %v", err)
		}
		g = inst.Graph
		plan, err = ioinstance.LoadPlan(*planPath)
		if err != nil {
			log.Fatalf("load plan: %v", err)
		}
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("PIBT Plan Viewer"),
			app.Size(unit.Dp(1400), unit.Dp(900)),
		)

		application := vis.NewApp(g, plan)
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
