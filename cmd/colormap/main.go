// Command colormap colors a cone by elevation through a color transfer
// function. The built-in Fast map is used unless a ParaView JSON or SciVis
// XML preset is given.
//
// Usage:
//
//	colormap [-json file | -xml file] [-d] [-n size] [-bg color] [-screenshot file.png]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/capture"
	"github.com/gogpu/vis/colormap"
	"github.com/gogpu/vis/linear"
	"github.com/gogpu/vis/mapper"
	"github.com/gogpu/vis/render"
	"github.com/gogpu/vis/scene"
	"github.com/gogpu/vis/source"
	"github.com/gogpu/vis/window/ebitenwin"
)

func main() {
	var (
		jsonFile   = flag.String("json", "", "ParaView JSON colormap preset")
		xmlFile    = flag.String("xml", "", "SciVis XML colormap preset")
		discretize = flag.Bool("d", false, "discretize the colormap")
		tableSize  = flag.Int("n", 0, "number of table values (0 keeps the preset's)")
		screenshot = flag.String("screenshot", "", "render offscreen and write this PNG instead of opening a window")
		background = flag.String("bg", "ParaViewBkg", "background color name or #rrggbb")
		verbose    = flag.Bool("v", false, "log pipeline details")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	vis.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	tf, err := loadTransferFunction(*jsonFile, *xmlFile)
	if err != nil {
		log.Fatalf("colormap: %v", err)
	}
	if *discretize {
		tf.SetDiscretize(true)
	}
	if *tableSize > 0 {
		tf.SetNumberOfValues(*tableSize)
	}

	if err := run(tf, *background, *screenshot); err != nil {
		log.Fatalf("colormap: %v", err)
	}
}

func loadTransferFunction(jsonFile, xmlFile string) (*colormap.TransferFunction, error) {
	switch {
	case jsonFile != "" && xmlFile != "":
		return nil, errors.New("-json and -xml are mutually exclusive")
	case jsonFile != "":
		return colormap.Load(jsonFile)
	case xmlFile != "":
		return colormap.Load(xmlFile)
	default:
		return colormap.Fast(), nil
	}
}

func run(tf *colormap.TransferFunction, background, screenshot string) error {
	cone := source.NewCone()
	cone.SetResolution(6)
	cone.SetDirection(linear.V3{0, 1, 0})
	cone.SetHeight(1)
	if err := cone.Update(); err != nil {
		return err
	}
	pd, _, err := cone.Output()
	if err != nil {
		return err
	}
	b := pd.Bounds()

	elevation := source.NewElevation(cone)
	elevation.SetLowPoint(linear.V3{0, b.Min[1], 0})
	elevation.SetHighPoint(linear.V3{0, b.Max[1], 0})

	m := mapper.NewPolyData(elevation)
	m.SetLookupTable(tf)

	ren := scene.NewRenderer()
	ren.AddActor(scene.NewActor(m))
	palette := vis.NewPalette()
	palette.SetRGBA255("ParaViewBkg", 82, 87, 110, 255)
	bg, ok := palette.Lookup(background)
	if !ok {
		return fmt.Errorf("unknown background color %q", background)
	}
	ren.SetBackground(bg)

	vis.Logger().Info("colormap: transfer function",
		"name", tf.Name,
		"space", tf.ColorSpace(),
		"discretize", tf.Discretize(),
		"values", tf.NumberOfValues())

	if screenshot != "" {
		target, err := render.NewOffscreen(render.Config{OffscreenOnly: true, Samples: 2}, ren)
		if err != nil {
			return err
		}
		if err := target.SetSize(640, 480); err != nil {
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
		writer.SetFileName(screenshot)
		return writer.Write()
	}

	win, err := render.NewWindow(render.Config{}, ren, ebitenwin.New(),
		render.WithTitle("ColorMapToLUT"), render.WithSize(640, 480))
	if err != nil {
		return err
	}
	return win.Start()
}
