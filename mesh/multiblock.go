// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import "fmt"

// MultiBlock is an ordered collection of meshes.
//
// Blocks may be nil: a nil block is a valid placeholder and consumers skip
// it. Blocks are addressed either by block index (0-based) or by flat index,
// where flat index 0 names the whole collection and block i has flat index
// i+1.
type MultiBlock struct {
	blocks []*PolyData
}

// NewMultiBlock creates a collection with n nil blocks. Negative n is
// treated as 0.
func NewMultiBlock(n int) *MultiBlock {
	return &MultiBlock{blocks: make([]*PolyData, max(n, 0))}
}

// SetNumberOfBlocks grows or truncates the collection to n blocks.
// Negative n is treated as 0.
func (mb *MultiBlock) SetNumberOfBlocks(n int) {
	n = max(n, 0)
	if n <= len(mb.blocks) {
		mb.blocks = mb.blocks[:n]
		return
	}
	mb.blocks = append(mb.blocks, make([]*PolyData, n-len(mb.blocks))...)
}

// NumBlocks returns the number of blocks, nil ones included.
func (mb *MultiBlock) NumBlocks() int {
	return len(mb.blocks)
}

// SetBlock stores p at block index i.
func (mb *MultiBlock) SetBlock(i int, p *PolyData) error {
	if i < 0 || i >= len(mb.blocks) {
		return fmt.Errorf("mesh: block index %d out of range [0, %d)", i, len(mb.blocks))
	}
	mb.blocks[i] = p
	return nil
}

// Block returns the block at index i, or nil when i is out of range.
func (mb *MultiBlock) Block(i int) *PolyData {
	if i < 0 || i >= len(mb.blocks) {
		return nil
	}
	return mb.blocks[i]
}

// FlatIndex returns the flat index of block i.
func FlatIndex(block int) int {
	return block + 1
}

// Bounds returns the union of the bounds of all non-nil blocks.
func (mb *MultiBlock) Bounds() Bounds {
	b := EmptyBounds()
	for _, p := range mb.blocks {
		if p != nil {
			b.Union(p.Bounds())
		}
	}
	return b
}
