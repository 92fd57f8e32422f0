// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"runtime"
)

// Default render target size in pixels.
const (
	DefaultWidth  = 300
	DefaultHeight = 300
)

// MaxSamples is the largest supersampling factor accepted by Config.
const MaxSamples = 8

var (
	// ErrBackendUnavailable is returned when the configured backend
	// cannot render 3D scenes in this build.
	ErrBackendUnavailable = errors.New("render: backend unavailable")

	// ErrOffscreenOnly is returned by NewWindow when the configuration
	// forbids on-screen windows.
	ErrOffscreenOnly = errors.New("render: offscreen-only configuration cannot open a window")

	// ErrNoRenderer is returned when a target has no scene bound.
	ErrNoRenderer = errors.New("render: no scene renderer bound")
)

// Backend selects the rasterization backend.
type Backend int

const (
	// BackendSoftware rasterizes on the CPU.
	BackendSoftware Backend = iota

	// BackendGPU requests hardware rendering.
	BackendGPU
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendSoftware:
		return "Software"
	case BackendGPU:
		return "GPU"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Config is fixed when a render target is created.
type Config struct {
	// Backend selects the rasterizer. The zero value is BackendSoftware.
	Backend Backend

	// OffscreenOnly forbids windows, for headless use.
	OffscreenOnly bool

	// Samples is the supersampling factor per axis. 0 and 1 disable
	// supersampling.
	Samples int

	// Workers bounds the number of goroutines filling one frame.
	// 0 uses GOMAXPROCS.
	Workers int
}

// normalize validates c and fills in defaults.
func (c Config) normalize() (Config, error) {
	if c.Samples < 0 || c.Samples > MaxSamples {
		return c, fmt.Errorf("render: samples %d out of range [0, %d]", c.Samples, MaxSamples)
	}
	if c.Samples == 0 {
		c.Samples = 1
	}
	if c.Workers < 0 {
		return c, fmt.Errorf("render: negative worker count %d", c.Workers)
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c, nil
}

// newRenderer creates the renderer for a normalized configuration.
func newRenderer(c Config) (Renderer, error) {
	switch c.Backend {
	case BackendSoftware:
		return NewSoftwareRenderer(c.Samples, c.Workers), nil
	case BackendGPU:
		return nil, fmt.Errorf("%w: %v (no 3D GPU pipeline; use BackendSoftware)", ErrBackendUnavailable, c.Backend)
	default:
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, c.Backend)
	}
}
