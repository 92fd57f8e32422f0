// Command composite draws two spheres stored in a multiblock dataset, with
// an empty block between them and a color per block.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/linear"
	"github.com/gogpu/vis/mapper"
	"github.com/gogpu/vis/mesh"
	"github.com/gogpu/vis/render"
	"github.com/gogpu/vis/scene"
	"github.com/gogpu/vis/source"
	"github.com/gogpu/vis/window/ebitenwin"
)

func main() {
	vis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := run(); err != nil {
		log.Fatalf("composite: %v", err)
	}
}

func sphere(radius float32, center linear.V3) (*mesh.PolyData, error) {
	s := source.NewSphere()
	s.SetRadius(radius)
	s.SetCenter(center)
	if err := s.Update(); err != nil {
		return nil, err
	}
	pd, _, err := s.Output()
	return pd, err
}

func run() error {
	s1, err := sphere(3, linear.V3{0, 0, 0})
	if err != nil {
		return err
	}
	s2, err := sphere(2, linear.V3{2, 0, 0})
	if err != nil {
		return err
	}

	// Block 1 stays nil; empty blocks are valid and skipped.
	mb := mesh.NewMultiBlock(3)
	if err := mb.SetBlock(0, s1); err != nil {
		return err
	}
	if err := mb.SetBlock(2, s2); err != nil {
		return err
	}

	m := mapper.NewComposite(mb)
	// Flat indices: 0 is the whole dataset, blocks are 1, 2 and 3.
	m.SetBlockColor(3, vis.Named("Red"))
	m.SetBlockColor(1, vis.Named("LavenderBlush"))
	m.SetBlockColor(2, vis.Named("Lavender"))

	ren := scene.NewRenderer()
	ren.AddActor(scene.NewActor(m))
	ren.SetBackground(vis.Named("SteelBlue"))

	win, err := render.NewWindow(render.Config{}, ren, ebitenwin.New(),
		render.WithTitle("CompositePolyDataMapper"))
	if err != nil {
		return err
	}
	if err := win.Render(); err != nil {
		return err
	}
	return win.Start()
}
