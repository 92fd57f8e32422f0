// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mapper

import (
	"fmt"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/mesh"
	"github.com/gogpu/vis/source"
)

// Composite maps every block of a multiblock dataset as its own part.
//
// Display attributes are addressed by flat index: 0 is the whole dataset
// and block i is i+1. A block without its own color inherits the color set
// on flat index 0, and otherwise the actor color. Nil blocks are skipped.
//
// A MultiBlock carries no modification stamp, so Update always rebuilds.
type Composite struct {
	input   *mesh.MultiBlock
	colors  map[int]vis.RGBA
	visible map[int]bool

	mtime uint64
	built uint64
	out   *Renderable
}

// NewComposite creates a mapper reading from input, which may be nil.
func NewComposite(input *mesh.MultiBlock) *Composite {
	return &Composite{
		input:   input,
		colors:  make(map[int]vis.RGBA),
		visible: make(map[int]bool),
		mtime:   source.NextStamp(),
	}
}

func (m *Composite) modified() {
	m.mtime = source.NextStamp()
}

// SetInput connects the mapper to a dataset.
func (m *Composite) SetInput(mb *mesh.MultiBlock) {
	m.input = mb
	m.modified()
}

// SetBlockColor sets the color of the block at flat index.
func (m *Composite) SetBlockColor(flat int, c vis.RGBA) {
	m.colors[flat] = c
	m.modified()
}

// BlockColor returns the color set at flat index.
func (m *Composite) BlockColor(flat int) (vis.RGBA, bool) {
	c, ok := m.colors[flat]
	return c, ok
}

// RemoveBlockColor clears the color at flat index.
func (m *Composite) RemoveBlockColor(flat int) {
	delete(m.colors, flat)
	m.modified()
}

// SetBlockVisibility shows or hides the block at flat index. Blocks are
// visible by default.
func (m *Composite) SetBlockVisibility(flat int, on bool) {
	m.visible[flat] = on
	m.modified()
}

// BlockVisibility reports whether the block at flat index is drawn.
func (m *Composite) BlockVisibility(flat int) bool {
	if v, ok := m.visible[flat]; ok {
		return v
	}
	return true
}

// Update implements Mapper.
func (m *Composite) Update() error {
	if m.input == nil {
		return ErrNoInput
	}
	out := &Renderable{Bounds: mesh.EmptyBounds()}
	for i := 0; i < m.input.NumBlocks(); i++ {
		pd := m.input.Block(i)
		flat := mesh.FlatIndex(i)
		if pd == nil || pd.IsEmpty() || !m.BlockVisibility(flat) {
			continue
		}
		if err := pd.Validate(); err != nil {
			return fmt.Errorf("mapper: block %d: %w", i, err)
		}
		p := Part{
			Positions: pd.Points,
			Normals:   pd.Normals,
			Triangles: pd.Triangles,
		}
		if c, ok := m.colors[flat]; ok {
			p.Color, p.HasColor = c, true
		} else if c, ok := m.colors[0]; ok {
			p.Color, p.HasColor = c, true
		}
		out.Parts = append(out.Parts, p)
		out.Bounds.Union(pd.Bounds())
	}
	m.out = out
	m.built = source.NextStamp()
	vis.Logger().Debug("mapper: rebuilt composite",
		"blocks", m.input.NumBlocks(),
		"parts", len(out.Parts))
	return nil
}

// Renderable implements Mapper.
func (m *Composite) Renderable() (*Renderable, error) {
	if m.out == nil {
		return nil, fmt.Errorf("mapper: %w", vis.ErrNotUpdated)
	}
	if m.mtime > m.built {
		return nil, fmt.Errorf("mapper: modified since last Update: %w", vis.ErrNotUpdated)
	}
	return m.out, nil
}

// Bounds implements Mapper.
func (m *Composite) Bounds() mesh.Bounds {
	if m.out == nil {
		return mesh.EmptyBounds()
	}
	return m.out.Bounds
}
