// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package linear implements the float32 vector and matrix math used by the
// 3D pipeline. Matrices are column-major, matching the layout GPU APIs and
// most 3D tooling expect.
package linear

import "github.com/chewxy/math32"

// V3 is a 3-component vector of float32.
type V3 [3]float32

// AddV3 returns v + w.
func AddV3(v, w V3) V3 {
	return V3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// SubV3 returns v - w.
func SubV3(v, w V3) V3 {
	return V3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float32, v V3) V3 {
	return V3{s * v[0], s * v[1], s * v[2]}
}

// DotV3 returns v ⋅ w.
func DotV3(v, w V3) float32 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// LenV3 returns the length of v.
func LenV3(v V3) float32 {
	return math32.Sqrt(DotV3(v, v))
}

// NormV3 returns v normalized.
// The zero vector is returned unchanged.
func NormV3(v V3) V3 {
	l := LenV3(v)
	if l == 0 {
		return v
	}
	return ScaleV3(1/l, v)
}

// Cross returns v × w.
func Cross(v, w V3) V3 {
	return V3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// LerpV3 returns v + t ⋅ (w - v).
func LerpV3(v, w V3, t float32) V3 {
	return AddV3(v, ScaleV3(t, SubV3(w, v)))
}

// RotateV3 rotates v by angle radians about the unit axis.
func RotateV3(v V3, angle float32, axis V3) V3 {
	s, c := math32.Sincos(angle)
	// Rodrigues: v⋅cosθ + (k×v)⋅sinθ + k⋅(k⋅v)(1−cosθ)
	t := AddV3(ScaleV3(c, v), ScaleV3(s, Cross(axis, v)))
	return AddV3(t, ScaleV3(DotV3(axis, v)*(1-c), axis))
}

// V4 is a 4-component vector of float32.
type V4 [4]float32

// Vec4 extends v with the w component.
func Vec4(v V3, w float32) V4 {
	return V4{v[0], v[1], v[2], w}
}

// XYZ drops the w component.
func (v V4) XYZ() V3 {
	return V3{v[0], v[1], v[2]}
}
