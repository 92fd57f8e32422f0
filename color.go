package vis

import (
	"image/color"
	"strings"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// NRGBA converts c to an 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// RGBA implements the color.Color interface.
// Returns premultiplied 16-bit components.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts a standard color.Color to RGBA.
// The result is non-premultiplied.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGB255 creates an opaque color from 8-bit RGB components.
func RGB255(r, g, b uint8) RGBA {
	return RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// Hex creates a color from a hex string with an optional leading '#'.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
// Malformed input yields opaque black.
func Hex(hex string) RGBA {
	c, ok := parseHexColor(hex)
	if !ok {
		return Black
	}
	return c
}

// parseHexColor parses the formats accepted by Hex and reports whether
// hex was well formed.
func parseHexColor(hex string) (RGBA, bool) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b uint32
	a := uint32(255)

	ok := true
	switch len(hex) {
	case 3, 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		if len(hex) == 4 {
			ok = ok && parseHex(hex[3:4], &a)
			a *= 17
		}
		r, g, b = r*17, g*17, b*17
	case 6, 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
		if len(hex) == 8 {
			ok = ok && parseHex(hex[6:8], &a)
		}
	default:
		return RGBA{}, false
	}
	if !ok {
		return RGBA{}, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

// parseHex reads s as hexadecimal digits into val.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Scale multiplies the color channels by s. Alpha is unchanged.
func (c RGBA) Scale(s float64) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Add returns the channel-wise sum of c and other. Alpha is taken from c.
func (c RGBA) Add(other RGBA) RGBA {
	return RGBA{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B, A: c.A}
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// to8 converts a unit channel value to 8 bits with rounding.
func to8(x float64) uint8 {
	return uint8(clamp01(x)*255 + 0.5)
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	Red   = RGB(1, 0, 0)
	Green = RGB(0, 1, 0)
	Blue  = RGB(0, 0, 1)
)
