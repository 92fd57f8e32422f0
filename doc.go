// Package vis provides a small retained-mode 3D visualization pipeline for Go.
//
// # Overview
//
// vis follows the classic source → mapper → actor → renderer → render target
// composition used by scientific visualization toolkits. Every stage is a
// plain Go value wired together with setter calls:
//
//	sphere := source.NewSphere()
//
//	m := mapper.NewPolyData(sphere)
//
//	actor := scene.NewActor(m)
//
//	ren := scene.NewRenderer()
//	ren.AddActor(actor)
//	ren.SetBackground(vis.White)
//
//	target, err := render.NewOffscreen(render.Config{OffscreenOnly: true}, ren)
//	if err != nil {
//	    return err
//	}
//	if err := target.Render(); err != nil {
//	    return err
//	}
//
//	w2i := capture.NewWindowToImage(target)
//	if err := w2i.Update(); err != nil {
//	    return err
//	}
//	writer := capture.NewPNGWriter(w2i)
//	return writer.Write()
//
// # Pipeline Updates
//
// Data flows on demand. Sources and filters recompute only when their
// parameters (or their upstream) changed since the last Update. Reading an
// output that was never updated, or that went stale after a parameter
// change, fails with an error wrapping [ErrNotUpdated] instead of returning
// empty data.
//
// # Packages
//
//   - linear: float32 vector and matrix math
//   - mesh: triangle meshes and multiblock datasets
//   - source: cone and sphere sources, elevation filter
//   - colormap: color transfer functions and preset loaders
//   - mapper: mesh → renderable conversion, scalar coloring
//   - scene: actors, properties, camera, renderer
//   - render: offscreen and interactive render targets, software rasterizer
//   - window: window system driver interface (ebitenwin implements it)
//   - capture: framebuffer capture and PNG output
//
// # Logging
//
// vis is silent by default. Call [SetLogger] to receive diagnostics.
package vis
