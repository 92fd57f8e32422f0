// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/scene"
	"github.com/gogpu/vis/window"
)

// DefaultTitle is the title of windows created without WithTitle.
const DefaultTitle = "vis"

// Window is an on-screen render target with an interactive camera.
//
// Window implements window.App; a window.Driver runs it in Start. The
// scene is redrawn only when the view changes or the window is resized.
type Window struct {
	cfg        Config
	ren        *scene.Renderer
	renderer   Renderer
	driver     window.Driver
	title      string
	target     *PixmapTarget
	interactor TrackballCamera

	rendered bool
	dirty    bool
}

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithTitle sets the window title.
func WithTitle(title string) WindowOption {
	return func(w *Window) {
		w.title = title
	}
}

// WithSize sets the initial window size. Non-positive sizes are ignored.
func WithSize(width, height int) WindowOption {
	return func(w *Window) {
		if width > 0 && height > 0 {
			w.target.Resize(width, height)
		}
	}
}

// NewWindow creates a window target bound to ren, presented by driver.
// ren may be nil and set later with SetRenderer.
func NewWindow(cfg Config, ren *scene.Renderer, driver window.Driver, opts ...WindowOption) (*Window, error) {
	if cfg.OffscreenOnly {
		return nil, ErrOffscreenOnly
	}
	if driver == nil {
		return nil, errors.New("render: nil window driver")
	}
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	r, err := newRenderer(cfg)
	if err != nil {
		return nil, err
	}
	w := &Window{
		cfg:      cfg,
		ren:      ren,
		renderer: r,
		driver:   driver,
		title:    DefaultTitle,
		target:   NewPixmapTarget(DefaultWidth, DefaultHeight),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// SetRenderer binds ren, replacing the previous scene.
func (w *Window) SetRenderer(ren *scene.Renderer) {
	w.ren = ren
	w.dirty = true
}

// Renderer returns the bound scene.
func (w *Window) Renderer() *scene.Renderer { return w.ren }

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Width returns the framebuffer width in pixels.
func (w *Window) Width() int { return w.target.Width() }

// Height returns the framebuffer height in pixels.
func (w *Window) Height() int { return w.target.Height() }

// Format returns the framebuffer pixel format.
func (w *Window) Format() gputypes.TextureFormat { return w.target.Format() }

// Render draws the bound scene into the framebuffer.
func (w *Window) Render() error {
	if w.ren == nil {
		return ErrNoRenderer
	}
	if err := w.renderer.Render(w.target, w.ren); err != nil {
		return err
	}
	w.rendered = true
	w.dirty = false
	return nil
}

// Start runs the event loop on the calling goroutine until the window is
// closed or a quit key is pressed. The scene is rendered before the window
// opens so pipeline errors surface immediately.
func (w *Window) Start() error {
	if err := w.Render(); err != nil {
		return err
	}
	vis.Logger().Info("render: starting interaction", "title", w.title)
	err := w.driver.Run(window.Options{
		Title:  w.title,
		Width:  w.Width(),
		Height: w.Height(),
	}, w)
	if errors.Is(err, window.ErrQuit) {
		return nil
	}
	return err
}

// Handle implements window.App.
func (w *Window) Handle(ev window.Event) error {
	changed, err := w.interactor.Handle(ev, w.ren, w.Width(), w.Height())
	if changed {
		w.dirty = true
	}
	return err
}

// Frame implements window.App.
func (w *Window) Frame(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid frame size %dx%d", width, height)
	}
	if width != w.Width() || height != w.Height() {
		w.target.Resize(width, height)
		w.dirty = true
	}
	if !w.rendered || w.dirty {
		if err := w.Render(); err != nil {
			return nil, err
		}
	}
	return w.target.Image(), nil
}

// Image returns the framebuffer of the last render.
func (w *Window) Image() (*image.RGBA, error) {
	if !w.rendered {
		return nil, fmt.Errorf("render: window image read before Render: %w", vis.ErrNotUpdated)
	}
	return w.target.Image(), nil
}

var _ window.App = (*Window)(nil)
