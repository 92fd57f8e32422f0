// Command offscreen renders a sphere on a white background without opening
// a window and writes the frame to screenshot.png in the working directory.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/capture"
	"github.com/gogpu/vis/mapper"
	"github.com/gogpu/vis/render"
	"github.com/gogpu/vis/scene"
	"github.com/gogpu/vis/source"
)

func main() {
	vis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(); err != nil {
		log.Fatalf("offscreen: %v", err)
	}
}

func run() error {
	sphere := source.NewSphere()
	actor := scene.NewActor(mapper.NewPolyData(sphere))

	ren := scene.NewRenderer()
	ren.AddActor(actor)
	ren.SetBackground(vis.White)

	target, err := render.NewOffscreen(render.Config{OffscreenOnly: true}, ren)
	if err != nil {
		return err
	}
	if err := target.Render(); err != nil {
		return err
	}

	w2i := capture.NewWindowToImage(target)
	if err := w2i.Update(); err != nil {
		return err
	}
	writer := capture.NewPNGWriter(w2i)
	writer.SetFileName(capture.DefaultFileName)
	return writer.Write()
}
