// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package source

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gogpu/vis/linear"
	"github.com/gogpu/vis/mesh"
)

// Elevation is a filter that generates per-point scalars from the position
// of each point along a line.
//
// A point p is projected onto the segment LowPoint→HighPoint; the fraction
// t in [0, 1] (clamped) is mapped linearly onto ScalarRange. Geometry and
// normals pass through unchanged and are shared with the input.
//
// Defaults: low point at the origin, high point (0, 0, 1), range [0, 1].
type Elevation struct {
	algorithm

	input   Producer
	low     linear.V3
	high    linear.V3
	rangeLo float32
	rangeHi float32

	inputStamp uint64
}

// NewElevation creates an elevation filter reading from input.
// input may be nil and set later with SetInput.
func NewElevation(input Producer) *Elevation {
	return &Elevation{
		algorithm: newAlgorithm("elevation"),
		input:     input,
		high:      linear.V3{0, 0, 1},
		rangeHi:   1,
	}
}

// SetInput connects the filter to an upstream producer.
func (e *Elevation) SetInput(p Producer) {
	if e.input != p {
		e.input = p
		e.inputStamp = 0
		e.Modified()
	}
}

// Input returns the upstream producer.
func (e *Elevation) Input() Producer { return e.input }

// SetLowPoint sets the point that maps to the low end of the range.
func (e *Elevation) SetLowPoint(p linear.V3) {
	if e.low != p {
		e.low = p
		e.Modified()
	}
}

// SetHighPoint sets the point that maps to the high end of the range.
func (e *Elevation) SetHighPoint(p linear.V3) {
	if e.high != p {
		e.high = p
		e.Modified()
	}
}

// SetScalarRange sets the output scalar range.
func (e *Elevation) SetScalarRange(lo, hi float32) {
	if e.rangeLo != lo || e.rangeHi != hi {
		e.rangeLo, e.rangeHi = lo, hi
		e.Modified()
	}
}

// LowPoint returns the low end of the elevation line.
func (e *Elevation) LowPoint() linear.V3 { return e.low }

// HighPoint returns the high end of the elevation line.
func (e *Elevation) HighPoint() linear.V3 { return e.high }

// ScalarRange returns the output scalar range.
func (e *Elevation) ScalarRange() (lo, hi float32) { return e.rangeLo, e.rangeHi }

// MTime implements Producer. It includes the input's modification time.
func (e *Elevation) MTime() uint64 {
	m := e.mtime
	if e.input != nil {
		if im := e.input.MTime(); im > m {
			m = im
		}
	}
	return m
}

// Output implements Producer.
func (e *Elevation) Output() (*mesh.PolyData, uint64, error) {
	return e.output(e.MTime())
}

// Update implements Producer. The input is updated first.
func (e *Elevation) Update() error {
	if e.input == nil {
		return ErrNoInput
	}
	if err := e.input.Update(); err != nil {
		return fmt.Errorf("source: elevation input: %w", err)
	}
	in, stamp, err := e.input.Output()
	if err != nil {
		return fmt.Errorf("source: elevation input: %w", err)
	}
	if !e.needsBuild(e.mtime) && stamp == e.inputStamp {
		return nil
	}
	e.commit(e.build(in))
	e.inputStamp = stamp
	return nil
}

func (e *Elevation) build(in *mesh.PolyData) *mesh.PolyData {
	axis := linear.SubV3(e.high, e.low)
	l2 := linear.DotV3(axis, axis)
	scalars := make([]float32, len(in.Points))
	for i, p := range in.Points {
		var t float32
		if l2 > 0 {
			t = linear.DotV3(linear.SubV3(p, e.low), axis) / l2
			t = math32.Max(0, math32.Min(1, t))
		}
		scalars[i] = e.rangeLo + t*(e.rangeHi-e.rangeLo)
	}
	return &mesh.PolyData{
		Points:    in.Points,
		Normals:   in.Normals,
		Scalars:   scalars,
		Triangles: in.Triangles,
	}
}
