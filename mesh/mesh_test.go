// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"errors"
	"testing"

	"github.com/gogpu/vis/linear"
)

func quad() *PolyData {
	return &PolyData{
		Points: []linear.V3{
			{0, 0, 0}, {1, 0, 0}, {1, 2, 0}, {0, 2, 0},
		},
		Scalars:   []float32{0, 0.5, 1, -1},
		Triangles: [][3]uint32{{0, 1, 2}, {0, 2, 3}},
	}
}

func TestPolyDataCounts(t *testing.T) {
	p := quad()
	if p.NumPoints() != 4 || p.NumTriangles() != 2 || p.IsEmpty() {
		t.Errorf("counts = (%d, %d, empty %v)", p.NumPoints(), p.NumTriangles(), p.IsEmpty())
	}

	var nilMesh *PolyData
	if nilMesh.NumPoints() != 0 || !nilMesh.IsEmpty() {
		t.Error("nil mesh should be empty")
	}
}

func TestPolyDataValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *PolyData)
		wantErr bool
	}{
		{"ok", func(*PolyData) {}, false},
		{"bad index", func(p *PolyData) { p.Triangles[1][2] = 9 }, true},
		{"short normals", func(p *PolyData) { p.Normals = []linear.V3{{0, 0, 1}} }, true},
		{"short scalars", func(p *PolyData) { p.Scalars = p.Scalars[:2] }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := quad()
			tt.mutate(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error %v does not wrap ErrInvalid", err)
			}
		})
	}
}

func TestPolyDataCloneIsDeep(t *testing.T) {
	p := quad()
	c := p.Clone()
	c.Points[0][0] = 42
	c.Scalars[0] = 42
	if p.Points[0][0] == 42 || p.Scalars[0] == 42 {
		t.Error("Clone shares storage with the original")
	}
}

func TestBounds(t *testing.T) {
	b := quad().Bounds()
	if !b.Valid() {
		t.Fatal("bounds should be valid")
	}
	if b.Min != (linear.V3{0, 0, 0}) || b.Max != (linear.V3{1, 2, 0}) {
		t.Errorf("bounds = %+v", b)
	}
	if c := b.Center(); c != (linear.V3{0.5, 1, 0}) {
		t.Errorf("Center() = %v", c)
	}

	empty := (&PolyData{}).Bounds()
	if empty.Valid() {
		t.Error("empty mesh bounds should be invalid")
	}
	if empty.Diagonal() != 0 {
		t.Error("invalid bounds should have zero diagonal")
	}

	var tr linear.M4
	tr.Translate(linear.V3{1, 1, 1})
	moved := b.Transform(&tr)
	if moved.Min != (linear.V3{1, 1, 1}) || moved.Max != (linear.V3{2, 3, 1}) {
		t.Errorf("Transform() = %+v", moved)
	}
}

func TestScalarRange(t *testing.T) {
	lo, hi, ok := quad().ScalarRange()
	if !ok || lo != -1 || hi != 1 {
		t.Errorf("ScalarRange() = (%v, %v, %v)", lo, hi, ok)
	}
	if _, _, ok := (&PolyData{}).ScalarRange(); ok {
		t.Error("ScalarRange() on mesh without scalars should report !ok")
	}
}

func TestMultiBlock(t *testing.T) {
	mb := NewMultiBlock(3)
	if err := mb.SetBlock(0, quad()); err != nil {
		t.Fatal(err)
	}
	if err := mb.SetBlock(3, quad()); err == nil {
		t.Error("SetBlock out of range should fail")
	}
	if mb.Block(1) != nil {
		t.Error("unset block should be nil")
	}
	if FlatIndex(2) != 3 {
		t.Errorf("FlatIndex(2) = %d, want 3", FlatIndex(2))
	}

	mb.SetNumberOfBlocks(5)
	if mb.NumBlocks() != 5 || mb.Block(0) == nil {
		t.Errorf("SetNumberOfBlocks(5) lost data or size: %d", mb.NumBlocks())
	}
	mb.SetNumberOfBlocks(1)
	if mb.NumBlocks() != 1 {
		t.Errorf("NumBlocks() = %d, want 1", mb.NumBlocks())
	}

	b := mb.Bounds()
	if b.Max != (linear.V3{1, 2, 0}) {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestMultiBlockNegativeSize(t *testing.T) {
	if n := NewMultiBlock(-2).NumBlocks(); n != 0 {
		t.Errorf("NewMultiBlock(-2).NumBlocks() = %d, want 0", n)
	}

	mb := NewMultiBlock(2)
	mb.SetNumberOfBlocks(-1)
	if mb.NumBlocks() != 0 {
		t.Errorf("NumBlocks() = %d after SetNumberOfBlocks(-1), want 0", mb.NumBlocks())
	}
	if err := mb.SetBlock(0, quad()); err == nil {
		t.Error("SetBlock on an empty collection should fail")
	}
	if mb.Bounds().Valid() {
		t.Error("empty collection should have invalid bounds")
	}
}
