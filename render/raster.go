// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/linear"
	"github.com/gogpu/vis/scene"
)

// rgb is a linear color with unbounded channels.
type rgb [3]float32

// light is the camera headlight. In eye space it shines along -Z, so the
// direction towards it, and the specular half vector, are +Z.
type light struct {
	intensity float64
	twoSided  bool
}

// shade evaluates ambient, diffuse and specular terms for an eye-space
// unit normal n.
func (l light) shade(base vis.RGBA, n linear.V3, p *scene.Property) rgb {
	d := float64(n[2])
	if l.twoSided {
		d = math.Abs(d)
	} else if d < 0 {
		d = 0
	}
	k := p.Ambient + p.Diffuse*d*l.intensity
	var spec float64
	if p.Specular > 0 && d > 0 {
		spec = p.Specular * math.Pow(d, p.SpecularPower) * l.intensity
	}
	return rgb{
		float32(base.R*k + spec),
		float32(base.G*k + spec),
		float32(base.B*k + spec),
	}
}

// vertex is a clip-space position with its lit color.
type vertex struct {
	pos linear.V4
	col rgb
}

// clipNear clips a triangle against the near plane (z >= -w) and appends
// the resulting convex polygon, of 0, 3 or 4 vertices, to out.
func clipNear(in [3]vertex, out []vertex) []vertex {
	dist := func(v vertex) float32 { return v.pos[2] + v.pos[3] }
	for i := range in {
		a, b := in[i], in[(i+1)%3]
		da, db := dist(a), dist(b)
		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			t := da / (da - db)
			var v vertex
			for k := range v.pos {
				v.pos[k] = a.pos[k] + t*(b.pos[k]-a.pos[k])
			}
			for k := range v.col {
				v.col[k] = a.col[k] + t*(b.col[k]-a.col[k])
			}
			out = append(out, v)
		}
	}
	return out
}

// screenVertex is a vertex after perspective division and viewport
// mapping. z is depth in [0, 1]; col is pre-divided by w for perspective
// correct interpolation.
type screenVertex struct {
	x, y, z float32
	invW    float32
	col     rgb
}

type triangle struct {
	v [3]screenVertex
}

// project maps clip-space vertices to a w x h viewport with the origin at
// the top-left corner.
func project(a, b, c vertex, w, h int) triangle {
	var t triangle
	for i, v := range [3]vertex{a, b, c} {
		iw := 1 / v.pos[3]
		t.v[i] = screenVertex{
			x:    (v.pos[0]*iw*0.5 + 0.5) * float32(w),
			y:    (0.5 - v.pos[1]*iw*0.5) * float32(h),
			z:    v.pos[2]*iw*0.5 + 0.5,
			invW: iw,
			col:  rgb{v.col[0] * iw, v.col[1] * iw, v.col[2] * iw},
		}
	}
	return t
}

func edge(a, b *screenVertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// topLeft reports whether pixels exactly on edge a→b belong to the
// triangle, for a triangle with positive area.
func topLeft(a, b *screenVertex) bool {
	dx, dy := b.x-a.x, b.y-a.y
	return dy < 0 || (dy == 0 && dx > 0)
}

// fill rasterizes t into rows [y0, y1) of buf, testing and updating depth.
func (t *triangle) fill(buf *image.RGBA, depth []float32, y0, y1 int) {
	v0, v1, v2 := &t.v[0], &t.v[1], &t.v[2]
	area := edge(v0, v1, v2.x, v2.y)
	if area == 0 || math32.IsNaN(area) {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
		area = -area
	}

	w := buf.Rect.Dx()
	// Clamp in float space first; huge coordinates do not fit an int.
	minX := int(max(math32.Floor(min(v0.x, v1.x, v2.x)), 0))
	maxX := int(min(math32.Ceil(max(v0.x, v1.x, v2.x)), float32(w-1)))
	minY := int(max(math32.Floor(min(v0.y, v1.y, v2.y)), float32(y0)))
	maxY := int(min(math32.Ceil(max(v0.y, v1.y, v2.y)), float32(y1-1)))
	if minX > maxX || minY > maxY {
		return
	}

	tl0, tl1, tl2 := topLeft(v1, v2), topLeft(v2, v0), topLeft(v0, v1)
	inv := 1 / area
	for py := minY; py <= maxY; py++ {
		cy := float32(py) + 0.5
		row := py * buf.Stride
		for px := minX; px <= maxX; px++ {
			cx := float32(px) + 0.5
			w0 := edge(v1, v2, cx, cy)
			w1 := edge(v2, v0, cx, cy)
			w2 := edge(v0, v1, cx, cy)
			if !inside(w0, tl0) || !inside(w1, tl1) || !inside(w2, tl2) {
				continue
			}
			l0, l1, l2 := w0*inv, w1*inv, w2*inv
			z := l0*v0.z + l1*v1.z + l2*v2.z
			di := py*w + px
			if z < 0 || z > 1 || z >= depth[di] {
				continue
			}
			depth[di] = z

			q := 1 / (l0*v0.invW + l1*v1.invW + l2*v2.invW)
			o := row + px*4
			for k := 0; k < 3; k++ {
				buf.Pix[o+k] = to8((l0*v0.col[k] + l1*v1.col[k] + l2*v2.col[k]) * q)
			}
			buf.Pix[o+3] = 255
		}
	}
}

func inside(e float32, topLeft bool) bool {
	return e > 0 || (e == 0 && topLeft)
}

// to8 converts a linear channel to 8 bits, clamping to [0, 1].
func to8(c float32) uint8 {
	switch {
	case !(c > 0):
		return 0
	case c >= 1:
		return 255
	default:
		return uint8(c*255 + 0.5)
	}
}
