// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package colormap

import (
	"math"
	"testing"

	"github.com/gogpu/vis"
)

func approx(a, b vis.RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol &&
		math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol
}

func blackWhite(space ColorSpace) *TransferFunction {
	tf := New()
	tf.SetColorSpace(space)
	tf.AddRGBPoint(1, 1, 1, 1)
	tf.AddRGBPoint(0, 0, 0, 0)
	return tf
}

func TestMapRGB(t *testing.T) {
	tf := blackWhite(SpaceRGB)
	tests := []struct {
		v    float64
		want vis.RGBA
	}{
		{0, vis.Black},
		{1, vis.White},
		{0.25, vis.RGB(0.25, 0.25, 0.25)},
		{-3, vis.Black},
		{7, vis.White},
		{math.NaN(), vis.RGB(0.5, 0, 0)},
	}

	for _, tt := range tests {
		if got := tf.Map(tt.v); !approx(got, tt.want, 1e-9) {
			t.Errorf("Map(%v) = %+v, want %+v", tt.v, got, tt.want)
		}
	}
}

func TestPointsSortedAndReplaced(t *testing.T) {
	tf := New()
	tf.AddRGBPoint(0.5, 1, 0, 0)
	tf.AddRGBPoint(0, 0, 0, 0)
	tf.AddRGBPoint(1, 1, 1, 1)
	tf.AddRGBPoint(0.5, 0, 1, 0)

	pts := tf.Points()
	if len(pts) != 3 {
		t.Fatalf("len(Points()) = %d, want 3", len(pts))
	}
	for i, x := range []float64{0, 0.5, 1} {
		if pts[i].X != x {
			t.Errorf("Points()[%d].X = %v, want %v", i, pts[i].X, x)
		}
	}
	if pts[1].Color != vis.Green {
		t.Errorf("point at 0.5 not replaced: %+v", pts[1].Color)
	}
	if lo, hi := tf.Range(); lo != 0 || hi != 1 {
		t.Errorf("Range() = (%v, %v)", lo, hi)
	}

	tf.RemoveAllPoints()
	if got := tf.Map(0.5); got != vis.Black {
		t.Errorf("Map on empty function = %+v, want black", got)
	}
}

func TestMapSpaces(t *testing.T) {
	red, blue := vis.RGB(1, 0, 0), vis.RGB(0, 0, 1)
	build := func(space ColorSpace) *TransferFunction {
		tf := New()
		tf.SetColorSpace(space)
		tf.AddRGBPoint(0, red.R, red.G, red.B)
		tf.AddRGBPoint(1, blue.R, blue.G, blue.B)
		return tf
	}

	// Endpoints are exact in every space.
	for _, space := range []ColorSpace{SpaceRGB, SpaceHSV, SpaceLab, SpaceStep} {
		t.Run(space.String(), func(t *testing.T) {
			tf := build(space)
			if got := tf.Map(0); !approx(got, red, 1e-4) {
				t.Errorf("Map(0) = %+v", got)
			}
			if got := tf.Map(1); !approx(got, blue, 1e-4) {
				t.Errorf("Map(1) = %+v", got)
			}
		})
	}

	if got := build(SpaceStep).Map(0.99); got != red {
		t.Errorf("step Map(0.99) = %+v, want red", got)
	}
	if got := build(SpaceRGB).Map(0.5); !approx(got, vis.RGB(0.5, 0, 0.5), 1e-9) {
		t.Errorf("rgb Map(0.5) = %+v", got)
	}
	// HSV midpoint of red→blue along the short hue arc is magenta.
	if got := build(SpaceHSV).Map(0.5); !approx(got, vis.RGB(1, 0, 1), 1e-6) {
		t.Errorf("hsv Map(0.5) = %+v, want magenta", got)
	}
	// Lab differs from plain RGB blending at the midpoint.
	if got := build(SpaceLab).Map(0.5); approx(got, vis.RGB(0.5, 0, 0.5), 1e-3) {
		t.Errorf("lab Map(0.5) = %+v, same as rgb blend", got)
	}
}

func TestOutOfRangeColors(t *testing.T) {
	tf := blackWhite(SpaceRGB)
	tf.SetAboveRangeColor(vis.Red)
	tf.SetBelowRangeColor(vis.Blue)
	if got := tf.Map(2); got != vis.Red {
		t.Errorf("Map(2) = %+v, want above color", got)
	}
	if got := tf.Map(-1); got != vis.Blue {
		t.Errorf("Map(-1) = %+v, want below color", got)
	}
	if got := tf.Map(1); got != vis.White {
		t.Errorf("Map(1) = %+v, range end is not above range", got)
	}
}

func TestDiscretize(t *testing.T) {
	tf := blackWhite(SpaceRGB)
	tf.SetNumberOfValues(3)
	tf.SetDiscretize(true)

	tests := []struct {
		v    float64
		want float64
	}{
		{0, 0},
		{0.3, 0},
		{0.34, 0.5},
		{0.66, 0.5},
		{0.67, 1},
		{1, 1},
	}
	for _, tt := range tests {
		if got := tf.Map(tt.v); math.Abs(got.R-tt.want) > 1e-9 {
			t.Errorf("Map(%v) = %v, want %v", tt.v, got.R, tt.want)
		}
	}

	table := tf.Table()
	if len(table) != 3 || table[1].R != 0.5 {
		t.Errorf("Table() = %+v", table)
	}

	tf.SetNumberOfValues(0)
	if tf.NumberOfValues() != 1 {
		t.Errorf("NumberOfValues() = %d, want clamp to 1", tf.NumberOfValues())
	}
	if got := tf.Map(0.9); got != vis.Black {
		t.Errorf("single-value table Map = %+v, want first color", got)
	}
}

func TestFastPreset(t *testing.T) {
	tf := Fast()
	if tf.ColorSpace() != SpaceLab || !tf.Discretize() || tf.NumberOfValues() != 7 {
		t.Errorf("Fast() = space %v, discretize %v, n %d", tf.ColorSpace(), tf.Discretize(), tf.NumberOfValues())
	}
	if got := tf.Map(0); !approx(got, vis.RGB(0.088, 0.1881, 0.55), 1e-4) {
		t.Errorf("Fast Map(0) = %+v", got)
	}
	if got := tf.Map(math.NaN()); got != vis.Black {
		t.Errorf("Fast NaN color = %+v, want black", got)
	}
}

func TestParseColorSpace(t *testing.T) {
	tests := map[string]ColorSpace{
		"RGB":       SpaceRGB,
		"hsv":       SpaceHSV,
		"Lab":       SpaceLab,
		"Diverging": SpaceLab,
		"CIEDE2000": SpaceLab,
		" step ":    SpaceStep,
		"bogus":     SpaceRGB,
	}
	for in, want := range tests {
		if got := ParseColorSpace(in); got != want {
			t.Errorf("ParseColorSpace(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestAddHSVPoint(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    vis.RGBA
	}{
		{"red", 0, 1, 1, vis.RGB(1, 0, 0)},
		{"green", 1.0 / 3, 1, 1, vis.RGB(0, 1, 0)},
		{"blue", 2.0 / 3, 1, 1, vis.RGB(0, 0, 1)},
		{"gray", 0.5, 0, 0.5, vis.RGB(0.5, 0.5, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := New()
			tf.AddHSVPoint(0, tt.h, tt.s, tt.v)
			if got := tf.Map(0); !approx(got, tt.want, 1e-9) {
				t.Errorf("Map(0) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScale(t *testing.T) {
	tf := New()
	tf.AddRGBPoint(1, 0, 0, 0)
	tf.AddRGBPoint(1000, 1, 1, 1)

	if got := tf.Map(10); !approx(got, vis.RGB(0.009009009, 0.009009009, 0.009009009), 1e-6) {
		t.Errorf("linear Map(10) = %+v", got)
	}

	tf.SetScale(ScaleLog10)
	if got := tf.Map(10); !approx(got, vis.RGB(1.0/3, 1.0/3, 1.0/3), 1e-9) {
		t.Errorf("log10 Map(10) = %+v, want 1/3 gray", got)
	}
	tf.SetNumberOfValues(4)
	table := tf.Table()
	for i, want := range []float64{0, 1.0 / 3, 2.0 / 3, 1} {
		if !approx(table[i], vis.RGB(want, want, want), 1e-9) {
			t.Errorf("Table()[%d] = %+v, want %v", i, table[i], want)
		}
	}

	// A range touching zero cannot be log scaled.
	tf.AddRGBPoint(0, 0, 0, 0)
	tf.AddRGBPoint(1, 0.001, 0.001, 0.001)
	if got := tf.Map(500.5); !approx(got, vis.RGB(0.5005, 0.5005, 0.5005), 1e-9) {
		t.Errorf("non-positive range Map(500.5) = %+v, want linear", got)
	}
}

func TestParseScale(t *testing.T) {
	tests := map[string]Scale{
		"log10":  ScaleLog10,
		" LOG10": ScaleLog10,
		"linear": ScaleLinear,
		"":       ScaleLinear,
		"ln":     ScaleLinear,
	}
	for in, want := range tests {
		if got := ParseScale(in); got != want {
			t.Errorf("ParseScale(%q) = %v, want %v", in, got, want)
		}
	}
}
