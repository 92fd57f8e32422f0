package vis

import (
	"image/color"
	"math"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestRGBA_NRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"black", Black, color.NRGBA{0, 0, 0, 255}},
		{"white", White, color.NRGBA{255, 255, 255, 255}},
		{"half red", RGBA{0.5, 0, 0, 1}, color.NRGBA{128, 0, 0, 255}},
		{"out of range", RGBA{2, -1, 0.2, 1}, color.NRGBA{255, 0, 51, 255}},
		{"transparent", RGBA{}, color.NRGBA{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.NRGBA(); got != tt.want {
				t.Errorf("NRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 255, A: 128})
	if got.R != 1 || got.G != 0 || got.B != 1 {
		t.Errorf("FromColor() = %+v, want unpremultiplied magenta", got)
	}
	if math.Abs(got.A-128.0/255) > 1e-3 {
		t.Errorf("FromColor().A = %v, want %v", got.A, 128.0/255)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{255, 255, 255, 255}},
		{"228B22", color.NRGBA{34, 139, 34, 255}},
		{"#4682B480", color.NRGBA{70, 130, 180, 128}},
		{"#abcd", color.NRGBA{170, 187, 204, 221}},
		{"bogus", color.NRGBA{0, 0, 0, 255}},
		{"#12345g", color.NRGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in).NRGBA(); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBA_Arithmetic(t *testing.T) {
	c := RGB(0.2, 0.4, 0.6)
	if got := c.Scale(2); math.Abs(got.B-1.2) > 1e-9 || got.A != 1 {
		t.Errorf("Scale(2) = %+v", got)
	}
	if got := c.Scale(2).NRGBA(); got.B != 255 {
		t.Errorf("Scale(2).NRGBA() = %+v, want B clamped to 255", got)
	}
	if got := c.Add(RGB(0.1, 0.1, 0.1)); math.Abs(got.R-0.3) > 1e-9 {
		t.Errorf("Add() = %+v", got)
	}
	if got, want := RGB255(34, 139, 34).NRGBA(), Named("ForestGreen").NRGBA(); got != want {
		t.Errorf("RGB255(34, 139, 34) = %v, want ForestGreen %v", got, want)
	}
}
