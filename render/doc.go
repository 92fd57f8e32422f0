// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws a scene.Renderer into pixels.
//
// # Targets
//
// Two render targets bind exactly one scene at a time:
//
//   - Offscreen renders once per Render call into a CPU framebuffer
//   - Window renders into a framebuffer presented by a window.Driver and
//     runs an interactive event loop in Start
//
// Both expose the last frame through Image, which capture.WindowToImage
// reads.
//
// # Configuration
//
// A Config chooses the backend and the offscreen mode once, at target
// construction. There is no process-wide graphics factory.
//
// # Software rasterizer
//
// SoftwareRenderer transforms every visible actor with its model, view and
// projection matrices, clips triangles against the near plane and fills
// them with edge functions and a top-left fill rule into a float32 depth
// buffer. Lighting is a headlight attached to the camera, evaluated per
// vertex (Gouraud) or per face (Flat). Rows are split into bands that are
// filled in parallel; the output is identical for any number of workers.
//
// Usage:
//
//	ren := scene.NewRenderer()
//	ren.AddActor(scene.NewActor(mapper.NewPolyData(source.NewSphere())))
//	ren.SetBackground(vis.White)
//
//	off, err := render.NewOffscreen(render.Config{OffscreenOnly: true}, ren)
//	if err != nil {
//	    return err
//	}
//	if err := off.Render(); err != nil {
//	    return err
//	}
//	img, _ := off.Image()
package render
