// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/vis/linear"
)

// Camera is a perspective camera looking from Position at FocalPoint.
//
// Defaults: position (0, 0, 1), focal point at the origin, view-up +Y,
// a 30 degree vertical view angle and clipping range [0.01, 1000.01].
type Camera struct {
	position   linear.V3
	focalPoint linear.V3
	viewUp     linear.V3
	viewAngle  float32
	near, far  float32

	// touched is set once the camera has been positioned, either by the
	// caller or by Renderer.ResetCamera.
	touched bool
}

// NewCamera creates a camera with default parameters.
func NewCamera() *Camera {
	return &Camera{
		position:  linear.V3{0, 0, 1},
		viewUp:    linear.V3{0, 1, 0},
		viewAngle: 30,
		near:      0.01,
		far:       1000.01,
	}
}

// SetPosition moves the eye.
func (c *Camera) SetPosition(p linear.V3) {
	c.position = p
	c.touched = true
}

// Position returns the eye position.
func (c *Camera) Position() linear.V3 { return c.position }

// SetFocalPoint sets the point the camera looks at.
func (c *Camera) SetFocalPoint(p linear.V3) {
	c.focalPoint = p
	c.touched = true
}

// FocalPoint returns the point the camera looks at.
func (c *Camera) FocalPoint() linear.V3 { return c.focalPoint }

// SetViewUp sets the approximate up direction. A zero vector is ignored.
func (c *Camera) SetViewUp(up linear.V3) {
	if linear.LenV3(up) == 0 {
		return
	}
	c.viewUp = linear.NormV3(up)
	c.touched = true
}

// ViewUp returns the up direction.
func (c *Camera) ViewUp() linear.V3 { return c.viewUp }

// SetViewAngle sets the vertical view angle in degrees, clamped to
// [0.00000001, 179].
func (c *Camera) SetViewAngle(deg float32) {
	c.viewAngle = math32.Max(0.00000001, math32.Min(179, deg))
	c.touched = true
}

// ViewAngle returns the vertical view angle in degrees.
func (c *Camera) ViewAngle() float32 { return c.viewAngle }

// SetClippingRange sets the near and far plane distances. near is kept
// positive and far beyond near.
func (c *Camera) SetClippingRange(near, far float32) {
	if near <= 0 {
		near = 0.0001
	}
	if far <= near {
		far = near + 0.01
	}
	c.near, c.far = near, far
}

// ClippingRange returns the near and far plane distances.
func (c *Camera) ClippingRange() (near, far float32) { return c.near, c.far }

// Distance returns the distance from the eye to the focal point.
func (c *Camera) Distance() float32 {
	return linear.LenV3(linear.SubV3(c.focalPoint, c.position))
}

// DirectionOfProjection returns the unit vector from the eye towards the
// focal point.
func (c *Camera) DirectionOfProjection() linear.V3 {
	d := linear.SubV3(c.focalPoint, c.position)
	if linear.LenV3(d) == 0 {
		return linear.V3{0, 0, -1}
	}
	return linear.NormV3(d)
}

// Azimuth rotates the eye about the view-up vector centered at the focal
// point.
func (c *Camera) Azimuth(deg float32) {
	c.orbit(deg, c.viewUp)
}

// Elevation rotates the eye about the right vector centered at the focal
// point. Positive angles move the eye up. The view-up vector is left
// alone; call OrthogonalizeViewUp afterwards when needed.
func (c *Camera) Elevation(deg float32) {
	right := linear.Cross(c.DirectionOfProjection(), c.viewUp)
	if linear.LenV3(right) == 0 {
		return
	}
	c.orbit(-deg, linear.NormV3(right))
}

func (c *Camera) orbit(deg float32, axis linear.V3) {
	rel := linear.SubV3(c.position, c.focalPoint)
	rel = linear.RotateV3(rel, deg*math32.Pi/180, axis)
	c.position = linear.AddV3(c.focalPoint, rel)
	c.touched = true
}

// Roll rotates the view-up vector about the direction of projection.
func (c *Camera) Roll(deg float32) {
	c.viewUp = linear.NormV3(linear.RotateV3(c.viewUp, deg*math32.Pi/180, c.DirectionOfProjection()))
	c.touched = true
}

// Dolly moves the eye towards the focal point by factor. Values above 1
// move closer; values at or below 0 are ignored.
func (c *Camera) Dolly(factor float32) {
	if factor <= 0 {
		return
	}
	d := c.Distance() / factor
	dop := c.DirectionOfProjection()
	c.position = linear.SubV3(c.focalPoint, linear.ScaleV3(d, dop))
	c.touched = true
}

// Zoom narrows the view angle by factor. Values at or below 0 are
// ignored.
func (c *Camera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	c.SetViewAngle(c.viewAngle / factor)
}

// OrthogonalizeViewUp makes the view-up vector perpendicular to the
// direction of projection.
func (c *Camera) OrthogonalizeViewUp() {
	dop := c.DirectionOfProjection()
	right := linear.Cross(dop, c.viewUp)
	if linear.LenV3(right) == 0 {
		return
	}
	c.viewUp = linear.NormV3(linear.Cross(linear.NormV3(right), dop))
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() linear.M4 {
	up := c.viewUp
	if linear.LenV3(linear.Cross(c.DirectionOfProjection(), up)) < 1e-6 {
		up = perpendicular(c.DirectionOfProjection())
	}
	var m linear.M4
	m.LookAt(c.position, c.focalPoint, up)
	return m
}

// ProjectionMatrix returns the camera-to-clip transform for the given
// width/height aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float32) linear.M4 {
	if aspect <= 0 {
		aspect = 1
	}
	var m linear.M4
	m.Perspective(c.viewAngle*math32.Pi/180, aspect, c.near, c.far)
	return m
}

// perpendicular returns a unit vector perpendicular to d.
func perpendicular(d linear.V3) linear.V3 {
	axis := linear.V3{0, 1, 0}
	if math32.Abs(d[1]) > 0.9 {
		axis = linear.V3{0, 0, 1}
	}
	return linear.NormV3(linear.Cross(linear.Cross(d, axis), d))
}
