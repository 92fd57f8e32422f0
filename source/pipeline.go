// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package source provides geometry sources and filters: the producer end of
// the visualization pipeline.
//
// Producers are pull-based. Setters only record parameters and bump the
// modification stamp; nothing is computed until Update. Update rebuilds the
// output only when the producer (or anything upstream of it) was modified
// after the last build. Output refuses to hand out data that was never
// built or that went stale, returning an error wrapping [vis.ErrNotUpdated].
//
// Producers are not safe for concurrent use.
package source

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/mesh"
)

// ErrNoInput is returned when a filter is updated without an input.
var ErrNoInput = errors.New("source: filter has no input")

// Producer is a pipeline stage that generates a mesh.
type Producer interface {
	// Update recomputes the output if the producer or its upstream
	// changed since the last build. Filters update their input first.
	Update() error

	// Output returns the last built mesh and its build stamp.
	// The stamp changes every time the mesh is rebuilt, so consumers can
	// skip work when it has not changed. Output fails with an error
	// wrapping vis.ErrNotUpdated when no current build exists.
	Output() (*mesh.PolyData, uint64, error)

	// MTime returns the latest modification stamp of the producer and
	// everything upstream of it.
	MTime() uint64
}

// clock issues process-wide, strictly increasing stamps shared by
// modification and build times.
var clock atomic.Uint64

// NextStamp returns a new stamp, greater than every stamp issued before.
func NextStamp() uint64 {
	return clock.Add(1)
}

// algorithm holds the modification and build bookkeeping shared by all
// producers.
type algorithm struct {
	name  string
	mtime uint64
	built uint64
	out   *mesh.PolyData
}

func newAlgorithm(name string) algorithm {
	return algorithm{name: name, mtime: NextStamp()}
}

// Modified marks the producer's parameters as changed.
func (a *algorithm) Modified() {
	a.mtime = NextStamp()
}

// needsBuild reports whether the output is missing or older than mtime.
func (a *algorithm) needsBuild(mtime uint64) bool {
	return a.out == nil || a.built < mtime
}

// commit stores a freshly built mesh.
func (a *algorithm) commit(out *mesh.PolyData) {
	a.out = out
	a.built = NextStamp()
	vis.Logger().Debug("source: rebuilt",
		"source", a.name,
		"points", out.NumPoints(),
		"triangles", out.NumTriangles())
}

// output implements Producer.Output given the current upstream mtime.
func (a *algorithm) output(mtime uint64) (*mesh.PolyData, uint64, error) {
	if a.out == nil {
		return nil, 0, fmt.Errorf("source: %s: %w", a.name, vis.ErrNotUpdated)
	}
	if a.built < mtime {
		return nil, 0, fmt.Errorf("source: %s modified since last Update: %w", a.name, vis.ErrNotUpdated)
	}
	return a.out, a.built, nil
}
