// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/vis/scene"

// Renderer draws a scene into a render target.
//
// Render brings the scene's pipeline up to date (scene.Renderer.Update)
// before drawing, so a frame always reflects the latest meshes.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be used
// from a single goroutine, or external synchronization must be used.
type Renderer interface {
	Render(target RenderTarget, ren *scene.Renderer) error
}

// RendererCapabilities describes the features supported by a renderer.
type RendererCapabilities struct {
	// IsGPU indicates if this is a GPU-accelerated renderer.
	IsGPU bool

	// Samples is the supersampling factor per axis.
	Samples int

	// Workers is the number of goroutines filling a frame.
	Workers int
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}
