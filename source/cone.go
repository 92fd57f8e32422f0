// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package source

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/vis/linear"
	"github.com/gogpu/vis/mesh"
)

// Cone generates a right circular cone approximated by a pyramid with
// Resolution sides.
//
// The cone axis runs along Direction through Center. The apex sits at
// Center + Height/2 ⋅ Direction and the base ring at Center − Height/2 ⋅
// Direction. With capping on, the base is closed by a triangle fan.
//
// Defaults: height 1, radius 0.5, resolution 6, center at the origin,
// direction +X, capping on. The cone carries no normals; renderers shade
// it per face.
type Cone struct {
	algorithm

	height     float32
	radius     float32
	resolution int
	center     linear.V3
	direction  linear.V3
	capping    bool
}

// NewCone creates a cone source with default parameters.
func NewCone() *Cone {
	return &Cone{
		algorithm:  newAlgorithm("cone"),
		height:     1,
		radius:     0.5,
		resolution: 6,
		direction:  linear.V3{1, 0, 0},
		capping:    true,
	}
}

// SetHeight sets the distance from the base to the apex.
func (c *Cone) SetHeight(h float32) {
	if c.height != h {
		c.height = h
		c.Modified()
	}
}

// SetRadius sets the base radius.
func (c *Cone) SetRadius(r float32) {
	if c.radius != r {
		c.radius = r
		c.Modified()
	}
}

// SetResolution sets the number of sides.
func (c *Cone) SetResolution(n int) {
	if c.resolution != n {
		c.resolution = n
		c.Modified()
	}
}

// SetCenter sets the center of the cone's axis segment.
func (c *Cone) SetCenter(p linear.V3) {
	if c.center != p {
		c.center = p
		c.Modified()
	}
}

// SetDirection sets the axis direction, pointing from base to apex.
// The vector need not be normalized.
func (c *Cone) SetDirection(d linear.V3) {
	if c.direction != d {
		c.direction = d
		c.Modified()
	}
}

// SetCapping turns the base cap on or off.
func (c *Cone) SetCapping(on bool) {
	if c.capping != on {
		c.capping = on
		c.Modified()
	}
}

// Height returns the cone height.
func (c *Cone) Height() float32 { return c.height }

// Radius returns the base radius.
func (c *Cone) Radius() float32 { return c.radius }

// Resolution returns the number of sides.
func (c *Cone) Resolution() int { return c.resolution }

// Center returns the axis center.
func (c *Cone) Center() linear.V3 { return c.center }

// Direction returns the axis direction as set.
func (c *Cone) Direction() linear.V3 { return c.direction }

// Capping reports whether the base is closed.
func (c *Cone) Capping() bool { return c.capping }

// MTime implements Producer.
func (c *Cone) MTime() uint64 { return c.mtime }

// Output implements Producer.
func (c *Cone) Output() (*mesh.PolyData, uint64, error) {
	return c.output(c.mtime)
}

// Update implements Producer.
func (c *Cone) Update() error {
	if !c.needsBuild(c.mtime) {
		return nil
	}
	if c.resolution < 3 {
		return fmt.Errorf("source: cone resolution %d, need at least 3", c.resolution)
	}
	if c.radius < 0 {
		return fmt.Errorf("source: negative cone radius %v", c.radius)
	}
	if linear.LenV3(c.direction) == 0 {
		return fmt.Errorf("source: zero cone direction")
	}
	c.commit(c.build())
	return nil
}

func (c *Cone) build() *mesh.PolyData {
	n := c.resolution
	half := c.height / 2
	pts := make([]linear.V3, 0, n+1)

	// Built along +X, then rotated onto the axis.
	pts = append(pts, linear.V3{half, 0, 0})
	step := 2 * math32.Pi / float32(n)
	for i := 0; i < n; i++ {
		s, co := math32.Sincos(float32(i) * step)
		pts = append(pts, linear.V3{-half, c.radius * co, c.radius * s})
	}

	orient := axisRotation(c.direction)
	for i := range pts {
		pts[i] = linear.AddV3(orient.MulPoint(pts[i]), c.center)
	}

	tris := make([][3]uint32, 0, 2*n-2)
	for i := 0; i < n; i++ {
		b0 := uint32(1 + i)
		b1 := uint32(1 + (i+1)%n)
		tris = append(tris, [3]uint32{0, b0, b1})
	}
	if c.capping {
		for i := 1; i < n-1; i++ {
			tris = append(tris, [3]uint32{1, uint32(2 + i), uint32(1 + i)})
		}
	}
	return &mesh.PolyData{Points: pts, Triangles: tris}
}

// axisRotation returns the rotation taking +X onto the direction of d.
func axisRotation(d linear.V3) linear.M4 {
	var m linear.M4
	d = linear.NormV3(d)
	x := linear.V3{1, 0, 0}
	switch {
	case d == x:
		m.I()
	case linear.DotV3(d, x) < -1+1e-6:
		m.Rotate(math32.Pi, linear.V3{0, 1, 0})
	default:
		// A half turn about the bisector of +X and d swaps them.
		m.Rotate(math32.Pi, linear.NormV3(linear.AddV3(x, d)))
	}
	return m
}
