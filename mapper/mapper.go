// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mapper turns pipeline meshes into renderables: the draw-ready
// form a scene actor hands to a render target.
//
// A mapper pulls its input on Update. Renderable returns the result of the
// last Update and fails with an error wrapping [vis.ErrNotUpdated] when
// Update was never called or when the mapper or its input changed since.
package mapper

import (
	"errors"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/linear"
	"github.com/gogpu/vis/mesh"
)

// ErrNoInput is returned by Update when no input is connected.
var ErrNoInput = errors.New("mapper: no input")

// Mapper produces a Renderable from pipeline data.
type Mapper interface {
	// Update pulls the input and rebuilds the renderable when needed.
	Update() error

	// Renderable returns the output of the last Update.
	Renderable() (*Renderable, error)

	// Bounds returns the bounds of the last output, or invalid bounds
	// when there is none.
	Bounds() mesh.Bounds
}

// Part is one draw batch of a Renderable.
//
// Colors, when non-nil, holds one color per position and overrides both
// Color and the actor color. Otherwise Color applies when HasColor is set,
// and the actor color when it is not. Normals may be nil, in which case
// the rasterizer shades each triangle with its face normal.
type Part struct {
	Positions []linear.V3
	Normals   []linear.V3
	Colors    []vis.RGBA
	Triangles [][3]uint32

	Color    vis.RGBA
	HasColor bool
}

// Renderable is the draw-ready output of a mapper.
type Renderable struct {
	Parts  []Part
	Bounds mesh.Bounds
}

// NumTriangles returns the total triangle count over all parts.
func (r *Renderable) NumTriangles() int {
	n := 0
	for i := range r.Parts {
		n += len(r.Parts[i].Triangles)
	}
	return n
}
