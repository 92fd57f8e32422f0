// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package linear

import "github.com/chewxy/math32"

// M3 is a column-major 3x3 matrix of float32.
type M3 [3]V3

// I makes m an identity matrix.
func (m *M3) I() { *m = M3{{1}, {0, 1}, {0, 0, 1}} }

// Transpose sets m to contain the transpose of n.
func (m *M3) Transpose(n *M3) {
	t := *n
	for i := range m {
		for j := range m {
			m[i][j] = t[j][i]
		}
	}
}

// Invert sets m to contain the inverse of n.
// A singular n leaves m as the identity.
func (m *M3) Invert(n *M3) {
	s0 := n[1][1]*n[2][2] - n[1][2]*n[2][1]
	s1 := n[1][0]*n[2][2] - n[1][2]*n[2][0]
	s2 := n[1][0]*n[2][1] - n[1][1]*n[2][0]
	det := n[0][0]*s0 - n[0][1]*s1 + n[0][2]*s2
	if det == 0 {
		m.I()
		return
	}
	idet := 1 / det
	t := *n
	m[0][0] = s0 * idet
	m[0][1] = -(t[0][1]*t[2][2] - t[0][2]*t[2][1]) * idet
	m[0][2] = (t[0][1]*t[1][2] - t[0][2]*t[1][1]) * idet
	m[1][0] = -s1 * idet
	m[1][1] = (t[0][0]*t[2][2] - t[0][2]*t[2][0]) * idet
	m[1][2] = -(t[0][0]*t[1][2] - t[0][2]*t[1][0]) * idet
	m[2][0] = s2 * idet
	m[2][1] = -(t[0][0]*t[2][1] - t[0][1]*t[2][0]) * idet
	m[2][2] = (t[0][0]*t[1][1] - t[0][1]*t[1][0]) * idet
}

// MulV3 returns m ⋅ v.
func (m *M3) MulV3(v V3) V3 {
	var u V3
	for i := range m {
		for j := range u {
			u[j] += m[i][j] * v[i]
		}
	}
	return u
}

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// I makes m an identity matrix.
func (m *M4) I() { *m = M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Identity returns a new identity matrix.
func Identity() M4 {
	var m M4
	m.I()
	return m
}

// Mul sets m to contain l ⋅ r.
// m may alias l or r.
func (m *M4) Mul(l, r *M4) {
	var p M4
	for i := range p {
		for j := range p {
			for k := range p {
				p[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = p
}

// Invert sets m to contain the inverse of n.
// A singular n leaves m as the identity.
func (m *M4) Invert(n *M4) {
	t := *n
	s0 := t[0][0]*t[1][1] - t[0][1]*t[1][0]
	s1 := t[0][0]*t[1][2] - t[0][2]*t[1][0]
	s2 := t[0][0]*t[1][3] - t[0][3]*t[1][0]
	s3 := t[0][1]*t[1][2] - t[0][2]*t[1][1]
	s4 := t[0][1]*t[1][3] - t[0][3]*t[1][1]
	s5 := t[0][2]*t[1][3] - t[0][3]*t[1][2]
	c0 := t[2][0]*t[3][1] - t[2][1]*t[3][0]
	c1 := t[2][0]*t[3][2] - t[2][2]*t[3][0]
	c2 := t[2][0]*t[3][3] - t[2][3]*t[3][0]
	c3 := t[2][1]*t[3][2] - t[2][2]*t[3][1]
	c4 := t[2][1]*t[3][3] - t[2][3]*t[3][1]
	c5 := t[2][2]*t[3][3] - t[2][3]*t[3][2]
	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		m.I()
		return
	}
	idet := 1 / det
	m[0][0] = (c5*t[1][1] - c4*t[1][2] + c3*t[1][3]) * idet
	m[0][1] = (-c5*t[0][1] + c4*t[0][2] - c3*t[0][3]) * idet
	m[0][2] = (s5*t[3][1] - s4*t[3][2] + s3*t[3][3]) * idet
	m[0][3] = (-s5*t[2][1] + s4*t[2][2] - s3*t[2][3]) * idet
	m[1][0] = (-c5*t[1][0] + c2*t[1][2] - c1*t[1][3]) * idet
	m[1][1] = (c5*t[0][0] - c2*t[0][2] + c1*t[0][3]) * idet
	m[1][2] = (-s5*t[3][0] + s2*t[3][2] - s1*t[3][3]) * idet
	m[1][3] = (s5*t[2][0] - s2*t[2][2] + s1*t[2][3]) * idet
	m[2][0] = (c4*t[1][0] - c2*t[1][1] + c0*t[1][3]) * idet
	m[2][1] = (-c4*t[0][0] + c2*t[0][1] - c0*t[0][3]) * idet
	m[2][2] = (s4*t[3][0] - s2*t[3][1] + s0*t[3][3]) * idet
	m[2][3] = (-s4*t[2][0] + s2*t[2][1] - s0*t[2][3]) * idet
	m[3][0] = (-c3*t[1][0] + c1*t[1][1] - c0*t[1][2]) * idet
	m[3][1] = (c3*t[0][0] - c1*t[0][1] + c0*t[0][2]) * idet
	m[3][2] = (-s3*t[3][0] + s1*t[3][1] - s0*t[3][2]) * idet
	m[3][3] = (s3*t[2][0] - s1*t[2][1] + s0*t[2][2]) * idet
}

// MulV4 returns m ⋅ v.
func (m *M4) MulV4(v V4) V4 {
	var u V4
	for i := range m {
		for j := range u {
			u[j] += m[i][j] * v[i]
		}
	}
	return u
}

// MulPoint transforms the point p (w = 1) and drops w.
func (m *M4) MulPoint(p V3) V3 {
	return m.MulV4(Vec4(p, 1)).XYZ()
}

// Upper3 returns the upper-left 3x3 block of m.
func (m *M4) Upper3() M3 {
	return M3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// NormalMatrix returns the inverse transpose of the upper-left 3x3 block
// of m, the transform that keeps normals perpendicular to surfaces.
func (m *M4) NormalMatrix() M3 {
	u := m.Upper3()
	var n M3
	n.Invert(&u)
	n.Transpose(&n)
	return n
}

// Translate sets m to a translation by t.
func (m *M4) Translate(t V3) {
	m.I()
	m[3] = Vec4(t, 1)
}

// Scale sets m to a scale by s.
func (m *M4) Scale(s V3) {
	*m = M4{{s[0]}, {0, s[1]}, {0, 0, s[2]}, {0, 0, 0, 1}}
}

// Rotate sets m to a rotation of angle radians about the unit axis.
func (m *M4) Rotate(angle float32, axis V3) {
	s, c := math32.Sincos(angle)
	ic := 1 - c
	x, y, z := axis[0], axis[1], axis[2]
	*m = M4{
		{c + x*x*ic, y*x*ic + z*s, z*x*ic - y*s, 0},
		{x*y*ic - z*s, c + y*y*ic, z*y*ic + x*s, 0},
		{x*z*ic + y*s, y*z*ic - x*s, c + z*z*ic, 0},
		{0, 0, 0, 1},
	}
}

// LookAt sets m to a right-handed view transform placing the eye at eye,
// looking at center, with up as the approximate up direction.
func (m *M4) LookAt(eye, center, up V3) {
	f := NormV3(SubV3(center, eye))
	s := NormV3(Cross(f, up))
	u := Cross(s, f)
	*m = M4{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-DotV3(s, eye), -DotV3(u, eye), DotV3(f, eye), 1},
	}
}

// Perspective sets m to a right-handed perspective projection mapping
// view-space depth [-near, -far] to clip-space depth [-1, 1].
// fovy is the vertical field of view in radians.
func (m *M4) Perspective(fovy, aspect, near, far float32) {
	f := 1 / math32.Tan(fovy/2)
	nf := 1 / (near - far)
	*m = M4{
		{f / aspect},
		{0, f},
		{0, 0, (far + near) * nf, -1},
		{0, 0, 2 * far * near * nf, 0},
	}
}
