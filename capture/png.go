// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package capture

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/gogpu/vis"
)

// DefaultFileName is the file PNGWriter writes when no name is set.
const DefaultFileName = "screenshot.png"

// PNGWriter encodes the output of an ImageSource to a PNG file.
type PNGWriter struct {
	input ImageSource
	name  string
	level png.CompressionLevel
}

// NewPNGWriter creates a writer reading from src and writing
// DefaultFileName in the working directory.
func NewPNGWriter(src ImageSource) *PNGWriter {
	return &PNGWriter{input: src, name: DefaultFileName}
}

// SetInput sets the image source.
func (w *PNGWriter) SetInput(src ImageSource) { w.input = src }

// SetFileName sets the destination path. An empty name restores
// DefaultFileName.
func (w *PNGWriter) SetFileName(name string) {
	if name == "" {
		name = DefaultFileName
	}
	w.name = name
}

// FileName returns the destination path.
func (w *PNGWriter) FileName() string { return w.name }

// SetCompressionLevel sets the PNG compression level.
func (w *PNGWriter) SetCompressionLevel(l png.CompressionLevel) { w.level = l }

// Write encodes the source's image and replaces the destination file.
//
// The image is written to a temporary file in the destination directory
// and renamed over the destination, so readers never see a partial file.
func (w *PNGWriter) Write() (err error) {
	if w.input == nil {
		return errors.New("capture: png writer has no input")
	}
	img, err := w.input.Output()
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	dir := filepath.Dir(w.name)
	f, err := os.CreateTemp(dir, ".vis-*.png")
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	enc := png.Encoder{CompressionLevel: w.level}
	if err := enc.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("capture: encode %s: %w", w.name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil { //nolint:gosec // screenshots are meant to be readable
		return fmt.Errorf("capture: %w", err)
	}
	if err := os.Rename(tmp, w.name); err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	vis.Logger().Info("capture: wrote image",
		"file", w.name,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())
	return nil
}
