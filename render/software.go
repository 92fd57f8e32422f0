// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/linear"
	"github.com/gogpu/vis/mapper"
	"github.com/gogpu/vis/scene"
)

// minBandRows keeps parallel bands from becoming too thin to pay off.
const minBandRows = 16

// SoftwareRenderer is a CPU z-buffer rasterizer.
//
// Scratch buffers are kept between frames and reused while the target size
// stays the same.
type SoftwareRenderer struct {
	samples int
	workers int

	// scratch is the supersampled color buffer; nil when samples is 1.
	scratch *image.RGBA
	depth   []float32
	tris    []triangle
}

// NewSoftwareRenderer creates a software renderer supersampling by
// samples per axis and filling with up to workers goroutines.
// Values below 1 are treated as 1.
func NewSoftwareRenderer(samples, workers int) *SoftwareRenderer {
	return &SoftwareRenderer{
		samples: max(samples, 1),
		workers: max(workers, 1),
	}
}

// Capabilities implements CapableRenderer.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{Samples: r.samples, Workers: r.workers}
}

// Render draws ren into target.
//
// Returns an error if the target has no CPU pixels, the scene is nil, or
// any actor's pipeline fails to update.
func (r *SoftwareRenderer) Render(target RenderTarget, ren *scene.Renderer) error {
	if target == nil {
		return errors.New("render: nil target")
	}
	if ren == nil {
		return ErrNoRenderer
	}
	pixels := target.Pixels()
	if pixels == nil {
		return errors.New("render: target does not support CPU rendering")
	}
	tw, th := target.Width(), target.Height()
	if tw <= 0 || th <= 0 {
		return fmt.Errorf("render: empty target %dx%d", tw, th)
	}

	if err := ren.Update(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	dst := &image.RGBA{Pix: pixels, Stride: target.Stride(), Rect: image.Rect(0, 0, tw, th)}
	buf := dst
	if r.samples > 1 {
		w, h := tw*r.samples, th*r.samples
		if r.scratch == nil || r.scratch.Rect.Dx() != w || r.scratch.Rect.Dy() != h {
			r.scratch = image.NewRGBA(image.Rect(0, 0, w, h))
		}
		buf = r.scratch
	}
	w, h := buf.Rect.Dx(), buf.Rect.Dy()
	if len(r.depth) != w*h {
		r.depth = make([]float32, w*h)
	}

	if err := r.setup(ren, w, h); err != nil {
		return err
	}
	if err := r.fillBands(buf, ren.Background()); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if buf != dst {
		xdraw.CatmullRom.Scale(dst, dst.Rect, buf, buf.Rect, xdraw.Src, nil)
	}
	vis.Logger().Debug("render: frame",
		"width", tw,
		"height", th,
		"samples", r.samples,
		"triangles", len(r.tris))
	return nil
}

// setup transforms, lights and clips every visible triangle into r.tris.
func (r *SoftwareRenderer) setup(ren *scene.Renderer, w, h int) error {
	r.tris = r.tris[:0]
	cam := ren.Camera()
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(float32(w) / float32(h))
	lt := light{
		intensity: ren.LightIntensity(),
		twoSided:  ren.TwoSidedLighting(),
	}

	for i, a := range ren.Actors() {
		if !a.Visibility() {
			continue
		}
		rd, err := a.Mapper().Renderable()
		if err != nil {
			return fmt.Errorf("render: actor %d: %w", i, err)
		}
		model := a.Matrix()
		var mv, mvp linear.M4
		mv.Mul(&view, &model)
		mvp.Mul(&proj, &mv)
		nm := mv.NormalMatrix()
		for j := range rd.Parts {
			r.setupPart(&rd.Parts[j], a.Property(), &mv, &mvp, &nm, lt, w, h)
		}
	}
	return nil
}

func (r *SoftwareRenderer) setupPart(p *mapper.Part, prop *scene.Property, mv, mvp *linear.M4, nm *linear.M3, lt light, w, h int) {
	n := len(p.Positions)
	eye := make([]linear.V3, n)
	clip := make([]linear.V4, n)
	for i, pos := range p.Positions {
		eye[i] = mv.MulPoint(pos)
		clip[i] = mvp.MulV4(linear.Vec4(pos, 1))
	}
	base := func(i uint32) vis.RGBA {
		switch {
		case p.Colors != nil:
			return p.Colors[i]
		case p.HasColor:
			return p.Color
		default:
			return prop.Color
		}
	}

	gouraud := prop.Interpolation == scene.Gouraud && p.Normals != nil
	var lit []rgb
	if gouraud {
		lit = make([]rgb, n)
		for i, nrm := range p.Normals {
			lit[i] = lt.shade(base(uint32(i)), linear.NormV3(nm.MulV3(nrm)), prop)
		}
	}

	var poly [4]vertex
	for _, t := range p.Triangles {
		var in [3]vertex
		if gouraud {
			for k, idx := range t {
				in[k] = vertex{pos: clip[idx], col: lit[idx]}
			}
		} else {
			fn := linear.NormV3(linear.Cross(
				linear.SubV3(eye[t[1]], eye[t[0]]),
				linear.SubV3(eye[t[2]], eye[t[0]])))
			c := base(t[0]).Add(base(t[1])).Add(base(t[2])).Scale(1.0 / 3)
			col := lt.shade(c, fn, prop)
			for k, idx := range t {
				in[k] = vertex{pos: clip[idx], col: col}
			}
		}
		verts := clipNear(in, poly[:0])
		for k := 2; k < len(verts); k++ {
			r.tris = append(r.tris, project(verts[0], verts[k-1], verts[k], w, h))
		}
	}
}

// fillBands clears buf and rasterizes r.tris into it, one goroutine per
// horizontal band. Each pixel belongs to exactly one band and sees the
// triangles in the same order, so the result does not depend on the
// number of bands.
func (r *SoftwareRenderer) fillBands(buf *image.RGBA, bg vis.RGBA) error {
	w, h := buf.Rect.Dx(), buf.Rect.Dy()
	bands := min(r.workers, max(h/minBandRows, 1))
	rows := (h + bands - 1) / bands

	var g errgroup.Group
	for y0 := 0; y0 < h; y0 += rows {
		y1 := min(y0+rows, h)
		g.Go(func() error {
			if len(r.depth) < y1*w || len(buf.Pix) < (y1-1)*buf.Stride+w*4 {
				return fmt.Errorf("band %d-%d outside the %dx%d buffers", y0, y1, w, h)
			}
			for y := y0; y < y1; y++ {
				fill(buf.Pix[y*buf.Stride:y*buf.Stride+w*4], bg)
				row := r.depth[y*w : (y+1)*w]
				for x := range row {
					row[x] = 2
				}
			}
			for i := range r.tris {
				r.tris[i].fill(buf, r.depth, y0, y1)
			}
			return nil
		})
	}
	return g.Wait()
}
