// Command cone shows a cone on a forest green background in an interactive
// window. Drag with the left button to rotate, with the right button or the
// wheel to zoom; press r to reset the view and q to quit.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/mapper"
	"github.com/gogpu/vis/render"
	"github.com/gogpu/vis/scene"
	"github.com/gogpu/vis/source"
	"github.com/gogpu/vis/window/ebitenwin"
)

func main() {
	vis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(); err != nil {
		log.Fatalf("cone: %v", err)
	}
}

func run() error {
	cone := source.NewCone()
	if err := cone.Update(); err != nil {
		return err
	}
	actor := scene.NewActor(mapper.NewPolyData(cone))

	ren := scene.NewRenderer()
	ren.AddActor(actor)
	ren.SetBackground(vis.Named("ForestGreen"))

	win, err := render.NewWindow(render.Config{}, ren, ebitenwin.New(), render.WithTitle("Cone"))
	if err != nil {
		return err
	}
	if err := win.Render(); err != nil {
		return err
	}
	return win.Start()
}
