// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package capture is the output end of the pipeline: it copies a rendered
// frame out of a render target and writes it to an image file.
package capture

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/vis"
)

// Framebuffer is a render target that exposes its last frame.
// render.Offscreen and render.Window implement it.
type Framebuffer interface {
	Image() (*image.RGBA, error)
}

// ImageSource produces an image.
type ImageSource interface {
	Output() (*image.RGBA, error)
}

// WindowToImage copies the frame of a render target.
//
// Update takes a snapshot of the target's current frame; Output returns it.
// The snapshot does not change when the target renders again.
type WindowToImage struct {
	input Framebuffer
	img   *image.RGBA
}

// NewWindowToImage creates a filter reading from fb.
func NewWindowToImage(fb Framebuffer) *WindowToImage {
	return &WindowToImage{input: fb}
}

// SetInput binds the filter to fb and drops the previous snapshot.
func (w *WindowToImage) SetInput(fb Framebuffer) {
	w.input = fb
	w.img = nil
}

// Update copies the target's current frame.
func (w *WindowToImage) Update() error {
	if w.input == nil {
		return fmt.Errorf("capture: window to image: no input")
	}
	src, err := w.input.Image()
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.Draw(img, img.Rect, src, src.Bounds().Min, draw.Src)
	w.img = img
	return nil
}

// Output returns the snapshot taken by the last Update.
func (w *WindowToImage) Output() (*image.RGBA, error) {
	if w.img == nil {
		return nil, fmt.Errorf("capture: window to image output read before Update: %w", vis.ErrNotUpdated)
	}
	return w.img, nil
}
