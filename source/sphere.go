// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package source

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/vis/linear"
	"github.com/gogpu/vis/mesh"
)

// Sphere generates a UV sphere with poles on the Z axis.
//
// ThetaResolution is the number of meridians (around Z); PhiResolution is
// the number of points along each meridian, poles included. Every point
// carries an outward unit normal.
//
// Defaults: radius 0.5, center at the origin, theta and phi resolution 8,
// which yields 50 points and 96 triangles.
type Sphere struct {
	algorithm

	radius   float32
	center   linear.V3
	thetaRes int
	phiRes   int
}

// NewSphere creates a sphere source with default parameters.
func NewSphere() *Sphere {
	return &Sphere{
		algorithm: newAlgorithm("sphere"),
		radius:    0.5,
		thetaRes:  8,
		phiRes:    8,
	}
}

// SetRadius sets the sphere radius.
func (s *Sphere) SetRadius(r float32) {
	if s.radius != r {
		s.radius = r
		s.Modified()
	}
}

// SetCenter sets the sphere center.
func (s *Sphere) SetCenter(p linear.V3) {
	if s.center != p {
		s.center = p
		s.Modified()
	}
}

// SetThetaResolution sets the number of meridians.
func (s *Sphere) SetThetaResolution(n int) {
	if s.thetaRes != n {
		s.thetaRes = n
		s.Modified()
	}
}

// SetPhiResolution sets the number of points per meridian, poles included.
func (s *Sphere) SetPhiResolution(n int) {
	if s.phiRes != n {
		s.phiRes = n
		s.Modified()
	}
}

// Radius returns the sphere radius.
func (s *Sphere) Radius() float32 { return s.radius }

// Center returns the sphere center.
func (s *Sphere) Center() linear.V3 { return s.center }

// ThetaResolution returns the number of meridians.
func (s *Sphere) ThetaResolution() int { return s.thetaRes }

// PhiResolution returns the number of points per meridian.
func (s *Sphere) PhiResolution() int { return s.phiRes }

// MTime implements Producer.
func (s *Sphere) MTime() uint64 { return s.mtime }

// Output implements Producer.
func (s *Sphere) Output() (*mesh.PolyData, uint64, error) {
	return s.output(s.mtime)
}

// Update implements Producer.
func (s *Sphere) Update() error {
	if !s.needsBuild(s.mtime) {
		return nil
	}
	if s.thetaRes < 3 || s.phiRes < 3 {
		return fmt.Errorf("source: sphere resolution %dx%d, need at least 3x3", s.thetaRes, s.phiRes)
	}
	if s.radius <= 0 {
		return fmt.Errorf("source: sphere radius %v must be positive", s.radius)
	}
	s.commit(s.build())
	return nil
}

func (s *Sphere) build() *mesh.PolyData {
	rings := s.phiRes - 2
	nPts := 2 + s.thetaRes*rings
	pts := make([]linear.V3, 0, nPts)
	norms := make([]linear.V3, 0, nPts)

	add := func(n linear.V3) {
		norms = append(norms, n)
		pts = append(pts, linear.AddV3(s.center, linear.ScaleV3(s.radius, n)))
	}
	add(linear.V3{0, 0, 1})
	add(linear.V3{0, 0, -1})

	dTheta := 2 * math32.Pi / float32(s.thetaRes)
	dPhi := math32.Pi / float32(s.phiRes-1)
	for i := 0; i < s.thetaRes; i++ {
		st, ct := math32.Sincos(float32(i) * dTheta)
		for j := 1; j <= rings; j++ {
			sp, cp := math32.Sincos(float32(j) * dPhi)
			add(linear.V3{sp * ct, sp * st, cp})
		}
	}

	// idx returns the point on meridian i (wrapping) and ring j (1-based).
	idx := func(i, j int) uint32 {
		return uint32(2 + (i%s.thetaRes)*rings + j - 1)
	}

	tris := make([][3]uint32, 0, 2*s.thetaRes*(rings))
	for i := 0; i < s.thetaRes; i++ {
		tris = append(tris, [3]uint32{0, idx(i, 1), idx(i+1, 1)})
	}
	for i := 0; i < s.thetaRes; i++ {
		tris = append(tris, [3]uint32{1, idx(i+1, rings), idx(i, rings)})
	}
	for j := 1; j < rings; j++ {
		for i := 0; i < s.thetaRes; i++ {
			a, b := idx(i, j), idx(i+1, j)
			c, d := idx(i+1, j+1), idx(i, j+1)
			tris = append(tris, [3]uint32{a, d, c}, [3]uint32{a, c, b})
		}
	}
	return &mesh.PolyData{Points: pts, Normals: norms, Triangles: tris}
}
