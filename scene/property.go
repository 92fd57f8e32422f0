// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import "github.com/gogpu/vis"

// Interpolation selects how lighting is evaluated across a triangle.
type Interpolation int

const (
	// Flat shades each triangle with its face normal.
	Flat Interpolation = iota

	// Gouraud interpolates per-vertex lighting across the triangle.
	Gouraud
)

// String returns the interpolation name.
func (i Interpolation) String() string {
	switch i {
	case Flat:
		return "Flat"
	case Gouraud:
		return "Gouraud"
	default:
		return "Unknown"
	}
}

// Property holds the surface appearance of an actor.
type Property struct {
	// Color is used where the mapper supplies no colors.
	Color vis.RGBA

	// Lighting coefficients. Ambient light is white at full intensity.
	Ambient       float64
	Diffuse       float64
	Specular      float64
	SpecularPower float64

	Interpolation Interpolation
}

// DefaultProperty returns a white, fully diffuse, Gouraud-shaded surface.
func DefaultProperty() Property {
	return Property{
		Color:         vis.White,
		Diffuse:       1,
		SpecularPower: 1,
		Interpolation: Gouraud,
	}
}
