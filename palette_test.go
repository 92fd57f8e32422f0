package vis

import (
	"image/color"
	"testing"
)

func TestPaletteBuiltins(t *testing.T) {
	p := NewPalette()
	tests := []struct {
		name string
		want color.NRGBA
	}{
		{"ForestGreen", color.NRGBA{34, 139, 34, 255}},
		{"steelblue", color.NRGBA{70, 130, 180, 255}},
		{"LavenderBlush", color.NRGBA{255, 240, 245, 255}},
		{"White", color.NRGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := p.Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.name)
			}
			if got := c.NRGBA(); got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPaletteCustomShadowsBuiltin(t *testing.T) {
	p := NewPalette()
	p.SetRGBA255("ParaViewBkg", 82, 87, 110, 255)
	p.Set("Red", Blue)

	if got := p.Color("paraviewbkg").NRGBA(); got != (color.NRGBA{82, 87, 110, 255}) {
		t.Errorf("Color(paraviewbkg) = %v", got)
	}
	if got := p.Color("red"); got != Blue {
		t.Errorf("custom Red should shadow builtin, got %+v", got)
	}
}

func TestPaletteHex(t *testing.T) {
	p := NewPalette()
	c, ok := p.Lookup("#52576E")
	if !ok {
		t.Fatal("Lookup(#52576E) not found")
	}
	if got := c.NRGBA(); got != (color.NRGBA{82, 87, 110, 255}) {
		t.Errorf("Lookup(#52576E) = %v", got)
	}
	for _, bad := range []string{"#", "#12", "#zzzzzz"} {
		if _, ok := p.Lookup(bad); ok {
			t.Errorf("Lookup(%q) should fail", bad)
		}
	}
}

func TestPaletteUnknown(t *testing.T) {
	p := NewPalette()
	if _, ok := p.Lookup("NoSuchColor"); ok {
		t.Error("Lookup(NoSuchColor) should fail")
	}
	if got := p.Color("NoSuchColor"); got != Black {
		t.Errorf("Color(NoSuchColor) = %+v, want Black", got)
	}
}

func TestPaletteNames(t *testing.T) {
	p := NewPalette()
	p.Set("zzcustom", White)
	names := p.Names()
	if len(names) < 140 {
		t.Fatalf("Names() returned %d names, want the SVG set", len(names))
	}
	if names[len(names)-1] != "zzcustom" {
		t.Errorf("last name = %q, want zzcustom", names[len(names)-1])
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted/unique at %d: %q, %q", i, names[i-1], names[i])
		}
	}
}
