// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/linear"
	"github.com/gogpu/vis/mesh"
)

// ErrNoMapper is returned by Update for a visible actor without a mapper.
var ErrNoMapper = errors.New("scene: actor has no mapper")

// Renderer is a scene: a list of actors, a background color, a camera and
// a headlight that follows the camera.
//
// The first Update positions the camera to frame all visible actors,
// unless the camera was positioned before.
type Renderer struct {
	actors     []*Actor
	background vis.RGBA
	camera     *Camera
	twoSided   bool
	light      float64
}

// NewRenderer creates an empty scene with a black background, a default
// camera and two-sided lighting.
func NewRenderer() *Renderer {
	return &Renderer{
		background: vis.Black,
		camera:     NewCamera(),
		twoSided:   true,
		light:      1,
	}
}

// AddActor appends a to the scene. Adding the same actor twice draws it
// twice.
func (r *Renderer) AddActor(a *Actor) {
	if a == nil {
		return
	}
	r.actors = append(r.actors, a)
}

// RemoveActor removes the first occurrence of a and reports whether it was
// present.
func (r *Renderer) RemoveActor(a *Actor) bool {
	for i, x := range r.actors {
		if x == a {
			r.actors = append(r.actors[:i], r.actors[i+1:]...)
			return true
		}
	}
	return false
}

// Actors returns the actors in insertion order.
func (r *Renderer) Actors() []*Actor {
	return append([]*Actor(nil), r.actors...)
}

// SetBackground sets the clear color.
func (r *Renderer) SetBackground(c vis.RGBA) { r.background = c }

// Background returns the clear color.
func (r *Renderer) Background() vis.RGBA { return r.background }

// Camera returns the active camera.
func (r *Renderer) Camera() *Camera { return r.camera }

// SetCamera replaces the active camera. A nil camera is ignored.
func (r *Renderer) SetCamera(c *Camera) {
	if c != nil {
		r.camera = c
	}
}

// SetTwoSidedLighting controls whether back faces are lit as if facing
// the light.
func (r *Renderer) SetTwoSidedLighting(on bool) { r.twoSided = on }

// TwoSidedLighting reports whether back faces are lit.
func (r *Renderer) TwoSidedLighting() bool { return r.twoSided }

// SetLightIntensity sets the headlight intensity.
func (r *Renderer) SetLightIntensity(i float64) { r.light = i }

// LightIntensity returns the headlight intensity.
func (r *Renderer) LightIntensity() float64 { return r.light }

// Update brings the pipeline of every visible actor up to date, positions
// the camera on first use and fits the clipping range to the scene.
func (r *Renderer) Update() error {
	for i, a := range r.actors {
		if !a.Visibility() {
			continue
		}
		if a.Mapper() == nil {
			return fmt.Errorf("%w (actor %d)", ErrNoMapper, i)
		}
		if err := a.Mapper().Update(); err != nil {
			return fmt.Errorf("scene: actor %d: %w", i, err)
		}
	}
	if !r.camera.touched {
		r.ResetCamera()
	}
	r.ResetCameraClippingRange()
	return nil
}

// VisibleBounds returns the world bounds of all visible actors.
func (r *Renderer) VisibleBounds() mesh.Bounds {
	b := mesh.EmptyBounds()
	for _, a := range r.actors {
		if a.Visibility() {
			b.Union(a.Bounds())
		}
	}
	return b
}

// ResetCamera moves the camera along its current direction of projection
// so the bounding sphere of the visible actors fills the view angle, and
// aims it at the bounds center. Without visible bounds it does nothing.
func (r *Renderer) ResetCamera() {
	b := r.VisibleBounds()
	if !b.Valid() {
		vis.Logger().Warn("scene: ResetCamera with no visible bounds")
		return
	}
	r.ResetCameraTo(b)
}

// ResetCameraTo frames b.
func (r *Renderer) ResetCameraTo(b mesh.Bounds) {
	c := r.camera
	center := b.Center()
	radius := b.Diagonal() / 2
	if radius == 0 {
		radius = 1
	}
	dist := radius / math32.Sin(c.viewAngle*math32.Pi/360)

	dop := c.DirectionOfProjection()
	if linear.LenV3(linear.Cross(dop, c.viewUp)) < 1e-6 {
		vis.Logger().Warn("scene: view-up parallel to view direction, resetting view-up")
		c.viewUp = perpendicular(dop)
	}
	c.focalPoint = center
	c.position = linear.SubV3(center, linear.ScaleV3(dist, dop))
	c.touched = true
	r.clipTo(b)

	vis.Logger().Debug("scene: camera reset",
		"distance", dist,
		"radius", radius)
}

// ResetCameraClippingRange fits the near and far planes around the
// visible actors.
func (r *Renderer) ResetCameraClippingRange() {
	b := r.VisibleBounds()
	if b.Valid() {
		r.clipTo(b)
	}
}

func (r *Renderer) clipTo(b mesh.Bounds) {
	c := r.camera
	dop := c.DirectionOfProjection()
	lo, hi := math32.Inf(1), math32.Inf(-1)
	for i := 0; i < 8; i++ {
		p := b.Min
		if i&1 != 0 {
			p[0] = b.Max[0]
		}
		if i&2 != 0 {
			p[1] = b.Max[1]
		}
		if i&4 != 0 {
			p[2] = b.Max[2]
		}
		d := linear.DotV3(linear.SubV3(p, c.position), dop)
		lo = math32.Min(lo, d)
		hi = math32.Max(hi, d)
	}
	// Pad so surfaces on the box faces are not clipped.
	pad := (hi - lo) * 0.01
	if pad == 0 {
		pad = 0.01
	}
	lo -= pad
	hi += pad
	if lo < hi*0.001 {
		lo = hi * 0.001
	}
	c.SetClippingRange(lo, hi)
}
