// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ebitenwin implements window.Driver on Ebitengine.
package ebitenwin

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/window"
)

// Driver opens a resizable Ebitengine window.
type Driver struct {
	// TPS is the number of input polls per second. Zero keeps the
	// Ebitengine default.
	TPS int
}

// New returns a driver with default settings.
func New() *Driver {
	return &Driver{}
}

// Run implements window.Driver.
func (d *Driver) Run(opts window.Options, app window.App) error {
	if app == nil {
		return errors.New("ebitenwin: nil app")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("ebitenwin: invalid window size %dx%d", opts.Width, opts.Height)
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if d.TPS > 0 {
		ebiten.SetTPS(d.TPS)
	}

	g := &game{app: app, width: opts.Width, height: opts.Height}
	vis.Logger().Info("ebitenwin: window opened",
		"title", opts.Title,
		"width", opts.Width,
		"height", opts.Height)
	err := ebiten.RunGame(g)
	vis.Logger().Info("ebitenwin: window closed")
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return g.err
}

// game adapts a window.App to ebiten.Game.
type game struct {
	app           window.App
	width, height int

	lastX, lastY int
	chars        []rune

	// err holds a failure from Draw, reported on the next Update.
	err error
}

var buttons = []struct {
	eb ebiten.MouseButton
	b  window.Button
}{
	{ebiten.MouseButtonLeft, window.ButtonLeft},
	{ebiten.MouseButtonMiddle, window.ButtonMiddle},
	{ebiten.MouseButtonRight, window.ButtonRight},
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	for _, ev := range g.poll() {
		if err := g.app.Handle(ev); err != nil {
			if errors.Is(err, window.ErrQuit) {
				return ebiten.Termination
			}
			g.err = err
			return err
		}
	}
	return nil
}

// poll collects the input that arrived since the last tick.
func (g *game) poll() []window.Event {
	var evs []window.Event
	x, y := ebiten.CursorPosition()
	if x != g.lastX || y != g.lastY {
		evs = append(evs, window.Event{Type: window.MouseMove, X: x, Y: y})
		g.lastX, g.lastY = x, y
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			evs = append(evs, window.Event{Type: window.MouseDown, X: x, Y: y, Button: b.b})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			evs = append(evs, window.Event{Type: window.MouseUp, X: x, Y: y, Button: b.b})
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		evs = append(evs, window.Event{Type: window.Wheel, X: x, Y: y, WheelY: wy})
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		evs = append(evs, window.Event{Type: window.KeyPress, X: x, Y: y, Key: r})
	}
	return evs
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	b := screen.Bounds()
	img, err := g.app.Frame(b.Dx(), b.Dy())
	if err != nil {
		g.err = err
		return
	}
	if img.Bounds().Size() != b.Size() {
		g.err = fmt.Errorf("ebitenwin: frame is %v, window is %v", img.Bounds().Size(), b.Size())
		return
	}
	screen.WritePixels(compact(img))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// compact returns the pixels of img without row padding.
func compact(img *image.RGBA) []byte {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if img.Stride == w*4 && img.Rect.Min == (image.Point{}) {
		return img.Pix[:w*h*4]
	}
	out := make([]byte, 0, w*h*4)
	for y := 0; y < h; y++ {
		off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		out = append(out, img.Pix[off:off+w*4]...)
	}
	return out
}
