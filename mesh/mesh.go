// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mesh defines the polygonal data that flows through the pipeline:
// triangle meshes with optional per-point attributes, and multiblock
// collections of meshes.
package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/vis/linear"
)

// ErrInvalid is returned by Validate for inconsistent meshes.
var ErrInvalid = errors.New("mesh: invalid polydata")

// PolyData is a triangle mesh.
//
// Points holds one position per vertex. Normals and Scalars are optional
// per-point attributes; when present they have exactly one entry per point.
// Triangles index into Points with counter-clockwise winding as seen from
// outside the surface.
//
// A PolyData produced by a source is read-only for consumers. Use Clone
// before modifying one.
type PolyData struct {
	Points    []linear.V3
	Normals   []linear.V3
	Scalars   []float32
	Triangles [][3]uint32
}

// NumPoints returns the number of points.
func (p *PolyData) NumPoints() int {
	if p == nil {
		return 0
	}
	return len(p.Points)
}

// NumTriangles returns the number of triangles.
func (p *PolyData) NumTriangles() int {
	if p == nil {
		return 0
	}
	return len(p.Triangles)
}

// IsEmpty reports whether the mesh has no triangles to draw.
func (p *PolyData) IsEmpty() bool {
	return p.NumTriangles() == 0
}

// Validate checks attribute lengths and triangle indices.
func (p *PolyData) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: nil", ErrInvalid)
	}
	n := len(p.Points)
	if p.Normals != nil && len(p.Normals) != n {
		return fmt.Errorf("%w: %d normals for %d points", ErrInvalid, len(p.Normals), n)
	}
	if p.Scalars != nil && len(p.Scalars) != n {
		return fmt.Errorf("%w: %d scalars for %d points", ErrInvalid, len(p.Scalars), n)
	}
	for i, tri := range p.Triangles {
		for _, idx := range tri {
			if int(idx) >= n {
				return fmt.Errorf("%w: triangle %d references point %d of %d", ErrInvalid, i, idx, n)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of p.
func (p *PolyData) Clone() *PolyData {
	if p == nil {
		return nil
	}
	c := &PolyData{
		Points:    append([]linear.V3(nil), p.Points...),
		Triangles: append([][3]uint32(nil), p.Triangles...),
	}
	if p.Normals != nil {
		c.Normals = append([]linear.V3(nil), p.Normals...)
	}
	if p.Scalars != nil {
		c.Scalars = append([]float32(nil), p.Scalars...)
	}
	return c
}

// Bounds returns the axis-aligned bounding box of the points.
// An empty mesh returns an invalid box.
func (p *PolyData) Bounds() Bounds {
	b := EmptyBounds()
	if p == nil {
		return b
	}
	for _, pt := range p.Points {
		b.Expand(pt)
	}
	return b
}

// ScalarRange returns the minimum and maximum scalar value.
// ok is false when the mesh carries no scalars.
func (p *PolyData) ScalarRange() (lo, hi float32, ok bool) {
	if p == nil || len(p.Scalars) == 0 {
		return 0, 0, false
	}
	lo, hi = math32.Inf(1), math32.Inf(-1)
	for _, s := range p.Scalars {
		lo = math32.Min(lo, s)
		hi = math32.Max(hi, s)
	}
	return lo, hi, true
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max linear.V3
}

// EmptyBounds returns an inverted box that any Expand makes valid.
func EmptyBounds() Bounds {
	inf := math32.Inf(1)
	return Bounds{
		Min: linear.V3{inf, inf, inf},
		Max: linear.V3{-inf, -inf, -inf},
	}
}

// Valid reports whether the box contains at least one point.
func (b Bounds) Valid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Expand grows the box to contain p.
func (b *Bounds) Expand(p linear.V3) {
	for i := range p {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
}

// Union grows the box to contain o. Invalid boxes are ignored.
func (b *Bounds) Union(o Bounds) {
	if !o.Valid() {
		return
	}
	b.Expand(o.Min)
	b.Expand(o.Max)
}

// Center returns the center of the box.
func (b Bounds) Center() linear.V3 {
	return linear.LerpV3(b.Min, b.Max, 0.5)
}

// Diagonal returns the length of the box diagonal.
func (b Bounds) Diagonal() float32 {
	if !b.Valid() {
		return 0
	}
	return linear.LenV3(linear.SubV3(b.Max, b.Min))
}

// Transform returns the bounds of the eight corners of b transformed by m.
func (b Bounds) Transform(m *linear.M4) Bounds {
	out := EmptyBounds()
	if !b.Valid() {
		return out
	}
	for i := 0; i < 8; i++ {
		c := b.Min
		if i&1 != 0 {
			c[0] = b.Max[0]
		}
		if i&2 != 0 {
			c[1] = b.Max[1]
		}
		if i&4 != 0 {
			c[2] = b.Max[2]
		}
		out.Expand(m.MulPoint(c))
	}
	return out
}
