// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/scene"
)

// Offscreen renders a scene into a CPU framebuffer without a window.
type Offscreen struct {
	cfg      Config
	ren      *scene.Renderer
	renderer Renderer
	target   *PixmapTarget
	rendered bool
}

// NewOffscreen creates a DefaultWidth x DefaultHeight offscreen target
// bound to ren, which may be nil and set later with SetRenderer.
func NewOffscreen(cfg Config, ren *scene.Renderer) (*Offscreen, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	r, err := newRenderer(cfg)
	if err != nil {
		return nil, err
	}
	return &Offscreen{
		cfg:      cfg,
		ren:      ren,
		renderer: r,
		target:   NewPixmapTarget(DefaultWidth, DefaultHeight),
	}, nil
}

// SetRenderer binds ren, replacing the previous scene.
func (o *Offscreen) SetRenderer(ren *scene.Renderer) {
	o.ren = ren
	o.rendered = false
}

// Renderer returns the bound scene.
func (o *Offscreen) Renderer() *scene.Renderer { return o.ren }

// Config returns the normalized configuration.
func (o *Offscreen) Config() Config { return o.cfg }

// SetSize changes the framebuffer size. The next Render draws at the new
// size.
func (o *Offscreen) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render: invalid size %dx%d", width, height)
	}
	if width != o.target.Width() || height != o.target.Height() {
		o.target.Resize(width, height)
		o.rendered = false
	}
	return nil
}

// Width returns the framebuffer width in pixels.
func (o *Offscreen) Width() int { return o.target.Width() }

// Height returns the framebuffer height in pixels.
func (o *Offscreen) Height() int { return o.target.Height() }

// Format returns the framebuffer pixel format.
func (o *Offscreen) Format() gputypes.TextureFormat { return o.target.Format() }

// Render draws the bound scene once, synchronously.
func (o *Offscreen) Render() error {
	if o.ren == nil {
		return ErrNoRenderer
	}
	if err := o.renderer.Render(o.target, o.ren); err != nil {
		return err
	}
	o.rendered = true
	return nil
}

// Image returns the framebuffer of the last Render. It shares memory with
// the target and is overwritten by the next Render.
func (o *Offscreen) Image() (*image.RGBA, error) {
	if !o.rendered {
		return nil, fmt.Errorf("render: offscreen image read before Render: %w", vis.ErrNotUpdated)
	}
	return o.target.Image(), nil
}
