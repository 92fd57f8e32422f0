// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package colormap maps scalar values to colors.
//
// A TransferFunction interpolates between colored control points in a
// chosen color space and can optionally be discretized into a fixed number
// of table entries. Presets are read from ParaView JSON exports and SciVis
// XML colormap files.
package colormap

import (
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/vis"
)

// ColorSpace selects how colors are interpolated between control points.
type ColorSpace int

const (
	// SpaceRGB interpolates each RGB channel linearly.
	SpaceRGB ColorSpace = iota

	// SpaceHSV interpolates in hue, saturation, value along the shorter
	// hue arc.
	SpaceHSV

	// SpaceLab interpolates in CIE L*a*b*, which keeps perceived
	// lightness changes even.
	SpaceLab

	// SpaceStep holds the color of the lower control point up to the
	// next one.
	SpaceStep
)

// String returns the color space name.
func (s ColorSpace) String() string {
	switch s {
	case SpaceRGB:
		return "RGB"
	case SpaceHSV:
		return "HSV"
	case SpaceLab:
		return "Lab"
	case SpaceStep:
		return "Step"
	default:
		return "Unknown"
	}
}

// ParseColorSpace converts a preset color space name, ignoring case.
// Diverging and CIEDE2000 presets are interpolated in Lab; unknown names
// fall back to RGB.
func ParseColorSpace(name string) ColorSpace {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hsv":
		return SpaceHSV
	case "lab", "ciede2000", "diverging":
		return SpaceLab
	case "step":
		return SpaceStep
	default:
		return SpaceRGB
	}
}

// Scale selects how values are spaced between control points.
type Scale int

const (
	// ScaleLinear interpolates on the raw values.
	ScaleLinear Scale = iota

	// ScaleLog10 interpolates on log10 of the values. A range that is not
	// strictly positive is interpolated linearly.
	ScaleLog10
)

// String returns the scale name.
func (s Scale) String() string {
	switch s {
	case ScaleLinear:
		return "Linear"
	case ScaleLog10:
		return "Log10"
	default:
		return "Unknown"
	}
}

// ParseScale converts a preset interpolation type, ignoring case. Anything
// other than log10 is linear.
func ParseScale(name string) Scale {
	if strings.EqualFold(strings.TrimSpace(name), "log10") {
		return ScaleLog10
	}
	return ScaleLinear
}

// Point is a control point of a transfer function.
type Point struct {
	X     float64
	Color vis.RGBA
}

// LookupTable maps a scalar value to a color.
type LookupTable interface {
	Map(v float64) vis.RGBA
}

// TransferFunction is a piecewise color transfer function.
//
// Values below the first control point take the first point's color
// (or BelowRangeColor when enabled); values above the last point likewise.
// NaN maps to NanColor.
//
// The zero value is not usable; create one with New.
type TransferFunction struct {
	// Name and Creator describe the preset the function was loaded from.
	Name    string
	Creator string

	points     []Point
	space      ColorSpace
	scale      Scale
	nan        vis.RGBA
	above      vis.RGBA
	below      vis.RGBA
	useAbove   bool
	useBelow   bool
	discretize bool
	numValues  int
}

// New creates an empty transfer function interpolating in RGB with a
// dark red NaN color and 256 table values.
func New() *TransferFunction {
	return &TransferFunction{
		space:     SpaceRGB,
		nan:       vis.RGB(0.5, 0, 0),
		numValues: 256,
	}
}

// AddRGBPoint adds a control point. A point at an existing x replaces it.
func (tf *TransferFunction) AddRGBPoint(x, r, g, b float64) {
	tf.addPoint(Point{X: x, Color: vis.RGB(r, g, b)})
}

// AddHSVPoint adds a control point given in HSV, each component in [0, 1].
func (tf *TransferFunction) AddHSVPoint(x, h, s, v float64) {
	c := colorful.Hsv(h*360, s, v)
	tf.addPoint(Point{X: x, Color: vis.RGB(c.R, c.G, c.B)})
}

func (tf *TransferFunction) addPoint(p Point) {
	i := sort.Search(len(tf.points), func(i int) bool { return tf.points[i].X >= p.X })
	if i < len(tf.points) && tf.points[i].X == p.X {
		tf.points[i] = p
		return
	}
	tf.points = append(tf.points, Point{})
	copy(tf.points[i+1:], tf.points[i:])
	tf.points[i] = p
}

// RemoveAllPoints clears the control points.
func (tf *TransferFunction) RemoveAllPoints() {
	tf.points = tf.points[:0]
}

// Points returns a copy of the control points in ascending x order.
func (tf *TransferFunction) Points() []Point {
	return append([]Point(nil), tf.points...)
}

// Range returns the x extent of the control points.
func (tf *TransferFunction) Range() (lo, hi float64) {
	if len(tf.points) == 0 {
		return 0, 0
	}
	return tf.points[0].X, tf.points[len(tf.points)-1].X
}

// SetColorSpace sets the interpolation color space.
func (tf *TransferFunction) SetColorSpace(s ColorSpace) { tf.space = s }

// ColorSpace returns the interpolation color space.
func (tf *TransferFunction) ColorSpace() ColorSpace { return tf.space }

// SetScale sets how values are spaced between control points.
func (tf *TransferFunction) SetScale(s Scale) { tf.scale = s }

// Scale returns how values are spaced between control points.
func (tf *TransferFunction) Scale() Scale { return tf.scale }

// SetNanColor sets the color used for NaN values.
func (tf *TransferFunction) SetNanColor(c vis.RGBA) { tf.nan = c }

// NanColor returns the color used for NaN values.
func (tf *TransferFunction) NanColor() vis.RGBA { return tf.nan }

// SetAboveRangeColor sets and enables the color for values above the range.
func (tf *TransferFunction) SetAboveRangeColor(c vis.RGBA) {
	tf.above, tf.useAbove = c, true
}

// SetBelowRangeColor sets and enables the color for values below the range.
func (tf *TransferFunction) SetBelowRangeColor(c vis.RGBA) {
	tf.below, tf.useBelow = c, true
}

// SetDiscretize turns table discretization on or off.
func (tf *TransferFunction) SetDiscretize(on bool) { tf.discretize = on }

// Discretize reports whether values are snapped to table entries.
func (tf *TransferFunction) Discretize() bool { return tf.discretize }

// SetNumberOfValues sets the number of discrete table entries.
// Values below 1 are treated as 1.
func (tf *TransferFunction) SetNumberOfValues(n int) {
	if n < 1 {
		n = 1
	}
	tf.numValues = n
}

// NumberOfValues returns the number of discrete table entries.
func (tf *TransferFunction) NumberOfValues() int { return tf.numValues }

// Map returns the color for v.
func (tf *TransferFunction) Map(v float64) vis.RGBA {
	if math.IsNaN(v) {
		return tf.nan
	}
	if len(tf.points) == 0 {
		return vis.Black
	}
	lo, hi := tf.Range()
	switch {
	case v < lo:
		if tf.useBelow {
			return tf.below
		}
		v = lo
	case v > hi:
		if tf.useAbove {
			return tf.above
		}
		v = hi
	}
	if tf.discretize && hi > lo {
		v = tf.snap(v, lo, hi)
	}
	return tf.eval(v)
}

// Table samples the function into NumberOfValues evenly spaced colors
// across its range.
func (tf *TransferFunction) Table() []vis.RGBA {
	n := tf.numValues
	out := make([]vis.RGBA, n)
	if len(tf.points) == 0 {
		for i := range out {
			out[i] = vis.Black
		}
		return out
	}
	log := tf.logScale()
	lo, hi := tf.Range()
	lo, hi = scaled(lo, log), scaled(hi, log)
	for i := range out {
		x := lo
		if n > 1 {
			x = lo + float64(i)*(hi-lo)/float64(n-1)
		}
		out[i] = tf.eval(unscaled(x, log))
	}
	return out
}

// logScale reports whether interpolation runs on log10 values.
func (tf *TransferFunction) logScale() bool {
	return tf.scale == ScaleLog10 && len(tf.points) > 0 && tf.points[0].X > 0
}

func scaled(x float64, log bool) float64 {
	if log {
		return math.Log10(x)
	}
	return x
}

func unscaled(x float64, log bool) float64 {
	if log {
		return math.Pow(10, x)
	}
	return x
}

// snap moves v onto the table entry its bin maps to.
func (tf *TransferFunction) snap(v, lo, hi float64) float64 {
	n := tf.numValues
	if n == 1 {
		return lo
	}
	log := tf.logScale()
	v, lo, hi = scaled(v, log), scaled(lo, log), scaled(hi, log)
	idx := int(math.Floor((v - lo) / (hi - lo) * float64(n)))
	if idx >= n {
		idx = n - 1
	}
	return unscaled(lo+float64(idx)*(hi-lo)/float64(n-1), log)
}

// eval interpolates the control points at v, which lies within the range.
func (tf *TransferFunction) eval(v float64) vis.RGBA {
	pts := tf.points
	i := sort.Search(len(pts), func(i int) bool { return pts[i].X > v })
	if i == 0 {
		return pts[0].Color
	}
	if i == len(pts) {
		return pts[len(pts)-1].Color
	}
	a, b := pts[i-1], pts[i]
	log := tf.logScale()
	t := (scaled(v, log) - scaled(a.X, log)) / (scaled(b.X, log) - scaled(a.X, log))

	ca := colorful.Color{R: a.Color.R, G: a.Color.G, B: a.Color.B}
	cb := colorful.Color{R: b.Color.R, G: b.Color.G, B: b.Color.B}
	var c colorful.Color
	switch tf.space {
	case SpaceStep:
		return a.Color
	case SpaceHSV:
		c = ca.BlendHsv(cb, t).Clamped()
	case SpaceLab:
		c = ca.BlendLab(cb, t).Clamped()
	default:
		c = ca.BlendRgb(cb, t)
	}
	return vis.RGB(c.R, c.G, c.B)
}

// Fast returns the "Fast" colormap by Francesca Samsel: a blue–cream–red
// diverging map interpolated in Lab, discretized to 7 values.
func Fast() *TransferFunction {
	tf := New()
	tf.Name = "Fast"
	tf.Creator = "Francesca Samsel"
	tf.SetColorSpace(SpaceLab)
	tf.SetNanColor(vis.Black)
	tf.AddRGBPoint(0, 0.08800000000000002, 0.18810000000000007, 0.55)
	tf.AddRGBPoint(0.16144, 0.21989453864645603, 0.5170512023315895, 0.7093372214401806)
	tf.AddRGBPoint(0.351671, 0.5048913252297864, 0.8647869538833338, 0.870502284878942)
	tf.AddRGBPoint(0.501285, 1, 1, 0.83)
	tf.AddRGBPoint(0.620051, 0.9418960444346476, 0.891455547964053, 0.5446035798119958)
	tf.AddRGBPoint(0.835408342528245, 0.75, 0.44475, 0.255)
	tf.AddRGBPoint(1, 0.56, 0.055999999999999994, 0.055999999999999994)
	tf.SetNumberOfValues(7)
	tf.SetDiscretize(true)
	return tf
}
