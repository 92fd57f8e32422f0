// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package linear

import (
	"math"
	"testing"
)

const eps = 1e-5

func approxV3(a, b V3) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func TestV3Ops(t *testing.T) {
	v := V3{1, 2, 3}
	w := V3{4, 5, 6}

	tests := []struct {
		name string
		got  V3
		want V3
	}{
		{"add", AddV3(v, w), V3{5, 7, 9}},
		{"sub", SubV3(w, v), V3{3, 3, 3}},
		{"scale", ScaleV3(2, v), V3{2, 4, 6}},
		{"cross", Cross(V3{1, 0, 0}, V3{0, 1, 0}), V3{0, 0, 1}},
		{"lerp", LerpV3(v, w, 0.5), V3{2.5, 3.5, 4.5}},
		{"norm", NormV3(V3{0, 3, 4}), V3{0, 0.6, 0.8}},
		{"norm zero", NormV3(V3{}), V3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approxV3(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if d := DotV3(v, w); d != 32 {
		t.Errorf("DotV3 = %v, want 32", d)
	}
}

func TestRotateV3(t *testing.T) {
	got := RotateV3(V3{1, 0, 0}, math.Pi/2, V3{0, 0, 1})
	if !approxV3(got, V3{0, 1, 0}) {
		t.Errorf("RotateV3 = %v, want (0,1,0)", got)
	}
}

func TestM4Invert(t *testing.T) {
	var tr, rot, m, inv, id M4
	tr.Translate(V3{1, -2, 3})
	rot.Rotate(0.7, NormV3(V3{1, 1, 0}))
	m.Mul(&tr, &rot)

	inv.Invert(&m)
	id.Mul(&m, &inv)

	want := Identity()
	for i := range id {
		for j := range id[i] {
			if math.Abs(float64(id[i][j]-want[i][j])) > eps {
				t.Fatalf("m ⋅ m⁻¹ = %v, want identity", id)
			}
		}
	}
}

func TestM4Rotate(t *testing.T) {
	var m, r M4
	m.Rotate(math.Pi/2, V3{0, 1, 0})
	got := m.MulPoint(V3{1, 0, 0})
	if !approxV3(got, V3{0, 0, -1}) {
		t.Errorf("Rotate Y 90° of +X = %v, want (0,0,-1)", got)
	}
	// Rotate agrees with RotateV3.
	r.Rotate(1.1, NormV3(V3{1, 2, 3}))
	p := V3{0.3, -0.2, 0.9}
	if !approxV3(r.MulPoint(p), RotateV3(p, 1.1, NormV3(V3{1, 2, 3}))) {
		t.Errorf("Rotate and RotateV3 disagree")
	}
}

func TestLookAtPerspective(t *testing.T) {
	var view, proj, mvp M4
	view.LookAt(V3{0, 0, 5}, V3{}, V3{0, 1, 0})
	proj.Perspective(math.Pi/6, 1, 1, 10)
	mvp.Mul(&proj, &view)

	// The focal point projects to the center of the screen.
	c := mvp.MulV4(V4{0, 0, 0, 1})
	if math.Abs(float64(c[0]/c[3])) > eps || math.Abs(float64(c[1]/c[3])) > eps {
		t.Errorf("focal point NDC = (%v, %v), want (0, 0)", c[0]/c[3], c[1]/c[3])
	}

	// Near and far planes land on -1 and 1.
	n := mvp.MulV4(V4{0, 0, 4, 1})
	f := mvp.MulV4(V4{0, 0, -5, 1})
	if math.Abs(float64(n[2]/n[3]+1)) > 1e-4 {
		t.Errorf("near depth = %v, want -1", n[2]/n[3])
	}
	if math.Abs(float64(f[2]/f[3]-1)) > 1e-4 {
		t.Errorf("far depth = %v, want 1", f[2]/f[3])
	}

	// +Y in world stays up on screen.
	u := mvp.MulV4(V4{0, 1, 0, 1})
	if u[1]/u[3] <= 0 {
		t.Errorf("world +Y projected to NDC y = %v, want > 0", u[1]/u[3])
	}
}

func TestNormalMatrix(t *testing.T) {
	var s M4
	s.Scale(V3{2, 1, 1})
	n := s.NormalMatrix()
	got := NormV3(n.MulV3(NormV3(V3{1, 1, 0})))
	want := NormV3(V3{0.5, 1, 0})
	if !approxV3(got, want) {
		t.Errorf("NormalMatrix normal = %v, want %v", got, want)
	}
}
