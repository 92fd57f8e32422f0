// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package capture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/vis"
	"github.com/gogpu/vis/mapper"
	"github.com/gogpu/vis/render"
	"github.com/gogpu/vis/scene"
	"github.com/gogpu/vis/source"
)

// staticFrame is a Framebuffer holding a fixed image.
type staticFrame struct {
	img *image.RGBA
	err error
}

func (s *staticFrame) Image() (*image.RGBA, error) { return s.img, s.err }

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func decode(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestWindowToImage(t *testing.T) {
	fb := &staticFrame{img: solid(4, 3, color.RGBA{1, 2, 3, 255})}
	w2i := NewWindowToImage(fb)
	if _, err := w2i.Output(); !errors.Is(err, vis.ErrNotUpdated) {
		t.Fatalf("Output() error = %v, want ErrNotUpdated", err)
	}
	if err := w2i.Update(); err != nil {
		t.Fatal(err)
	}
	out, err := w2i.Output()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Pix, fb.img.Pix) {
		t.Error("snapshot differs from the frame")
	}

	// The snapshot is a copy.
	fb.img.Pix[0] = 99
	if out.Pix[0] == 99 {
		t.Error("snapshot shares memory with the frame")
	}

	w2i.SetInput(&staticFrame{err: vis.ErrNotUpdated})
	if _, err := w2i.Output(); !errors.Is(err, vis.ErrNotUpdated) {
		t.Errorf("Output() after SetInput error = %v, want ErrNotUpdated", err)
	}
	if err := w2i.Update(); !errors.Is(err, vis.ErrNotUpdated) {
		t.Errorf("Update() error = %v, want the frame error", err)
	}
	if err := NewWindowToImage(nil).Update(); err == nil {
		t.Error("Update() without input should fail")
	}
}

func TestWindowToImageSubImage(t *testing.T) {
	full := solid(8, 8, color.RGBA{0, 0, 0, 255})
	full.SetRGBA(2, 2, color.RGBA{255, 0, 0, 255})
	sub := full.SubImage(image.Rect(2, 2, 6, 6)).(*image.RGBA)

	w2i := NewWindowToImage(&staticFrame{img: sub})
	if err := w2i.Update(); err != nil {
		t.Fatal(err)
	}
	out, _ := w2i.Output()
	if out.Rect != image.Rect(0, 0, 4, 4) {
		t.Fatalf("Rect = %v", out.Rect)
	}
	if got := out.RGBAAt(0, 0); got.R != 255 {
		t.Errorf("origin = %v, want the sub-image corner", got)
	}
}

func TestPNGWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	src := NewWindowToImage(&staticFrame{img: solid(5, 4, color.RGBA{10, 20, 30, 255})})

	w := NewPNGWriter(src)
	if w.FileName() != DefaultFileName {
		t.Errorf("FileName() = %q, want %q", w.FileName(), DefaultFileName)
	}
	w.SetFileName(path)
	if err := w.Write(); !errors.Is(err, vis.ErrNotUpdated) {
		t.Fatalf("Write() before Update error = %v, want ErrNotUpdated", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed Write left a file behind")
	}

	if err := src.Update(); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(); err != nil {
		t.Fatal(err)
	}
	img := decode(t, path)
	if img.Bounds().Size() != image.Pt(5, 4) {
		t.Errorf("size = %v", img.Bounds().Size())
	}
	if r, g, b, _ := img.At(2, 2).RGBA(); r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel = %d,%d,%d", r>>8, g>>8, b>>8)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want only the output", len(entries))
	}
}

func TestPNGWriterCompressionLevel(t *testing.T) {
	src := NewWindowToImage(&staticFrame{img: solid(64, 64, color.RGBA{200, 100, 50, 255})})
	if err := src.Update(); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	sizes := make(map[png.CompressionLevel]int64)
	for _, level := range []png.CompressionLevel{
		png.DefaultCompression,
		png.NoCompression,
		png.BestSpeed,
		png.BestCompression,
	} {
		path := filepath.Join(dir, "level.png")
		w := NewPNGWriter(src)
		w.SetFileName(path)
		w.SetCompressionLevel(level)
		if err := w.Write(); err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		if r, g, b, _ := decode(t, path).At(63, 63).RGBA(); r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
			t.Errorf("level %d: pixel = %d,%d,%d", level, r>>8, g>>8, b>>8)
		}
		fi, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		sizes[level] = fi.Size()
	}
	if sizes[png.NoCompression] <= sizes[png.BestCompression] {
		t.Errorf("uncompressed %d bytes, best compression %d bytes", sizes[png.NoCompression], sizes[png.BestCompression])
	}
}

func TestPNGWriterOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(path, []byte("stale"), 0o600); err != nil {
		t.Fatal(err)
	}
	src := NewWindowToImage(&staticFrame{img: solid(2, 2, color.RGBA{255, 255, 255, 255})})
	if err := src.Update(); err != nil {
		t.Fatal(err)
	}
	w := NewPNGWriter(src)
	w.SetFileName(path)
	if err := w.Write(); err != nil {
		t.Fatal(err)
	}
	if img := decode(t, path); img.Bounds().Dx() != 2 {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}

func TestPNGWriterDefaultName(t *testing.T) {
	t.Chdir(t.TempDir())
	src := NewWindowToImage(&staticFrame{img: solid(1, 1, color.RGBA{0, 0, 0, 255})})
	if err := src.Update(); err != nil {
		t.Fatal(err)
	}
	w := NewPNGWriter(src)
	w.SetFileName("")
	if err := w.Write(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat("screenshot.png"); err != nil {
		t.Errorf("screenshot.png not written: %v", err)
	}
}

func TestPNGWriterErrors(t *testing.T) {
	if err := NewPNGWriter(nil).Write(); err == nil {
		t.Error("Write() without input should fail")
	}
	src := NewWindowToImage(&staticFrame{img: solid(1, 1, color.RGBA{})})
	if err := src.Update(); err != nil {
		t.Fatal(err)
	}
	w := NewPNGWriter(src)
	w.SetFileName(filepath.Join(t.TempDir(), "missing", "out.png"))
	if err := w.Write(); err == nil {
		t.Error("Write() into a missing directory should fail")
	}
}

// offscreenScreenshot runs the whole pipeline and returns the PNG bytes.
func offscreenScreenshot(t *testing.T, path string) []byte {
	t.Helper()
	ren := scene.NewRenderer()
	ren.AddActor(scene.NewActor(mapper.NewPolyData(source.NewSphere())))
	ren.SetBackground(vis.White)

	off, err := render.NewOffscreen(render.Config{OffscreenOnly: true}, ren)
	if err != nil {
		t.Fatal(err)
	}
	if err := off.Render(); err != nil {
		t.Fatal(err)
	}
	w2i := NewWindowToImage(off)
	if err := w2i.Update(); err != nil {
		t.Fatal(err)
	}
	w := NewPNGWriter(w2i)
	w.SetFileName(path)
	if err := w.Write(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestScreenshotReproducible(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	first := offscreenScreenshot(t, path)
	second := offscreenScreenshot(t, path)
	if !bytes.Equal(first, second) {
		t.Error("two renders of the same scene produced different files")
	}
	img := decode(t, path)
	if img.Bounds().Size() != image.Pt(render.DefaultWidth, render.DefaultHeight) {
		t.Errorf("size = %v, want 300x300", img.Bounds().Size())
	}
}
