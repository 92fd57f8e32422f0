// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mapper

import (
	"fmt"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/colormap"
	"github.com/gogpu/vis/mesh"
	"github.com/gogpu/vis/source"
)

// PolyData maps the mesh of one producer.
//
// When scalar visibility is on (the default) and the mesh carries point
// scalars, each point is colored through the lookup table. Without a
// lookup table a red-to-blue HSV ramp spanning the scalar range is used.
type PolyData struct {
	input   source.Producer
	lut     colormap.LookupTable
	scalars bool

	mtime      uint64
	built      uint64
	inputStamp uint64
	out        *Renderable
}

// NewPolyData creates a mapper reading from input, which may be nil.
func NewPolyData(input source.Producer) *PolyData {
	return &PolyData{
		input:   input,
		scalars: true,
		mtime:   source.NextStamp(),
	}
}

// Modified marks the mapper as changed. Call it after mutating a lookup
// table that is already attached.
func (m *PolyData) Modified() {
	m.mtime = source.NextStamp()
}

// SetInput connects the mapper to a producer.
func (m *PolyData) SetInput(p source.Producer) {
	if m.input != p {
		m.input = p
		m.inputStamp = 0
		m.Modified()
	}
}

// Input returns the connected producer.
func (m *PolyData) Input() source.Producer { return m.input }

// SetLookupTable sets the table used to color point scalars.
func (m *PolyData) SetLookupTable(lut colormap.LookupTable) {
	m.lut = lut
	m.Modified()
}

// LookupTable returns the table used to color point scalars, or nil.
func (m *PolyData) LookupTable() colormap.LookupTable { return m.lut }

// SetScalarVisibility controls whether point scalars color the mesh.
func (m *PolyData) SetScalarVisibility(on bool) {
	if m.scalars != on {
		m.scalars = on
		m.Modified()
	}
}

// ScalarVisibility reports whether point scalars color the mesh.
func (m *PolyData) ScalarVisibility() bool { return m.scalars }

// Update implements Mapper. The input is updated first; the renderable is
// rebuilt only when the input produced a new mesh or the mapper changed.
func (m *PolyData) Update() error {
	if m.input == nil {
		return ErrNoInput
	}
	if err := m.input.Update(); err != nil {
		return fmt.Errorf("mapper: input: %w", err)
	}
	pd, stamp, err := m.input.Output()
	if err != nil {
		return fmt.Errorf("mapper: input: %w", err)
	}
	if m.out != nil && stamp == m.inputStamp && m.built > m.mtime {
		return nil
	}
	if err := pd.Validate(); err != nil {
		return fmt.Errorf("mapper: %w", err)
	}

	m.out = &Renderable{
		Parts:  []Part{m.part(pd)},
		Bounds: pd.Bounds(),
	}
	m.inputStamp = stamp
	m.built = source.NextStamp()
	vis.Logger().Debug("mapper: rebuilt renderable",
		"triangles", pd.NumTriangles(),
		"scalars", m.out.Parts[0].Colors != nil)
	return nil
}

func (m *PolyData) part(pd *mesh.PolyData) Part {
	p := Part{
		Positions: pd.Points,
		Normals:   pd.Normals,
		Triangles: pd.Triangles,
	}
	if !m.scalars || len(pd.Scalars) == 0 {
		return p
	}
	lut := m.lut
	if lut == nil {
		lut = defaultTable(pd)
	}
	p.Colors = make([]vis.RGBA, len(pd.Scalars))
	for i, s := range pd.Scalars {
		p.Colors[i] = lut.Map(float64(s))
	}
	return p
}

// defaultTable spans the mesh scalar range with a rainbow running from red
// through yellow, green and cyan to blue. HSV blending takes the shorter
// hue arc, so the green midpoint keeps both halves off the magenta side.
func defaultTable(pd *mesh.PolyData) colormap.LookupTable {
	lo, hi, _ := pd.ScalarRange()
	tf := colormap.New()
	tf.SetColorSpace(colormap.SpaceHSV)
	tf.AddHSVPoint(float64(lo), 0, 1, 1)
	if hi > lo {
		tf.AddHSVPoint(float64(lo+hi)/2, 1.0/3, 1, 1)
		tf.AddHSVPoint(float64(hi), 2.0/3, 1, 1)
	}
	return tf
}

// Renderable implements Mapper.
func (m *PolyData) Renderable() (*Renderable, error) {
	if m.out == nil {
		return nil, fmt.Errorf("mapper: %w", vis.ErrNotUpdated)
	}
	if m.mtime > m.built || (m.input != nil && m.input.MTime() > m.built) {
		return nil, fmt.Errorf("mapper: modified since last Update: %w", vis.ErrNotUpdated)
	}
	return m.out, nil
}

// Bounds implements Mapper.
func (m *PolyData) Bounds() mesh.Bounds {
	if m.out == nil {
		return mesh.EmptyBounds()
	}
	return m.out.Bounds
}
