// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/vis/linear"
	"github.com/gogpu/vis/mapper"
	"github.com/gogpu/vis/mesh"
)

// Actor places the output of one mapper in a scene.
//
// The model transform applies scale, then the orientation rotations about
// Z, X and Y (in that order), then the translation to Position.
type Actor struct {
	mapper      mapper.Mapper
	property    Property
	position    linear.V3
	orientation linear.V3
	scale       linear.V3
	visible     bool
}

// NewActor creates a visible actor drawing m with the default property.
// m may be nil and set later.
func NewActor(m mapper.Mapper) *Actor {
	return &Actor{
		mapper:   m,
		property: DefaultProperty(),
		scale:    linear.V3{1, 1, 1},
		visible:  true,
	}
}

// SetMapper sets the mapper that supplies geometry.
func (a *Actor) SetMapper(m mapper.Mapper) { a.mapper = m }

// Mapper returns the actor's mapper.
func (a *Actor) Mapper() mapper.Mapper { return a.mapper }

// Property returns the actor's surface property for modification.
func (a *Actor) Property() *Property { return &a.property }

// SetProperty replaces the surface property.
func (a *Actor) SetProperty(p Property) { a.property = p }

// SetPosition sets the world translation.
func (a *Actor) SetPosition(p linear.V3) { a.position = p }

// Position returns the world translation.
func (a *Actor) Position() linear.V3 { return a.position }

// SetOrientation sets rotations in degrees about X, Y and Z.
func (a *Actor) SetOrientation(deg linear.V3) { a.orientation = deg }

// Orientation returns the rotations in degrees about X, Y and Z.
func (a *Actor) Orientation() linear.V3 { return a.orientation }

// SetScale sets the per-axis scale.
func (a *Actor) SetScale(s linear.V3) { a.scale = s }

// Scale returns the per-axis scale.
func (a *Actor) Scale() linear.V3 { return a.scale }

// SetVisibility shows or hides the actor.
func (a *Actor) SetVisibility(on bool) { a.visible = on }

// Visibility reports whether the actor is drawn.
func (a *Actor) Visibility() bool { return a.visible }

// Matrix returns the model-to-world transform.
func (a *Actor) Matrix() linear.M4 {
	var m, r linear.M4
	m.Scale(a.scale)
	for _, step := range []struct {
		deg  float32
		axis linear.V3
	}{
		{a.orientation[2], linear.V3{0, 0, 1}},
		{a.orientation[0], linear.V3{1, 0, 0}},
		{a.orientation[1], linear.V3{0, 1, 0}},
	} {
		if step.deg == 0 {
			continue
		}
		r.Rotate(step.deg*math32.Pi/180, step.axis)
		m.Mul(&r, &m)
	}
	var t linear.M4
	t.Translate(a.position)
	m.Mul(&t, &m)
	return m
}

// Bounds returns the world-space bounds of the mapper's last output, or
// invalid bounds when the actor has nothing to draw.
func (a *Actor) Bounds() mesh.Bounds {
	if a.mapper == nil {
		return mesh.EmptyBounds()
	}
	b := a.mapper.Bounds()
	if !b.Valid() {
		return b
	}
	m := a.Matrix()
	return b.Transform(&m)
}
