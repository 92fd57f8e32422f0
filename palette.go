package vis

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

// Palette maps color names to colors.
//
// A new Palette knows the SVG 1.1 color keywords ("ForestGreen",
// "SteelBlue", "LavenderBlush", ...) and hex colors ("#52576e").
// Lookups ignore case. Custom
// entries added with Set shadow the built-in ones.
//
// Palette is safe for concurrent use.
type Palette struct {
	mu     sync.RWMutex
	custom map[string]RGBA
}

// NewPalette creates a palette holding the SVG color keywords.
func NewPalette() *Palette {
	return &Palette{custom: make(map[string]RGBA)}
}

// Set adds or replaces the color registered under name.
func (p *Palette) Set(name string, c RGBA) {
	p.mu.Lock()
	p.custom[strings.ToLower(name)] = c
	p.mu.Unlock()
}

// SetRGBA255 registers an 8-bit color, matching the r, g, b, a form that
// color tables are usually written in.
func (p *Palette) SetRGBA255(name string, r, g, b, a uint8) {
	c := RGB255(r, g, b)
	c.A = float64(a) / 255
	p.Set(name, c)
}

// Lookup returns the color registered under name. A name starting with
// '#' is read as a hex color (see [Hex]).
func (p *Palette) Lookup(name string) (RGBA, bool) {
	if strings.HasPrefix(name, "#") {
		return parseHexColor(name)
	}
	key := strings.ToLower(name)
	p.mu.RLock()
	c, ok := p.custom[key]
	p.mu.RUnlock()
	if ok {
		return c, true
	}
	if nc, ok := colornames.Map[key]; ok {
		return FromColor(nc), true
	}
	return RGBA{}, false
}

// Color returns the color registered under name, or opaque black when
// the name is unknown.
func (p *Palette) Color(name string) RGBA {
	if c, ok := p.Lookup(name); ok {
		return c
	}
	Logger().Warn("vis: unknown color name", "name", name)
	return Black
}

// Names returns all known color names in sorted order.
func (p *Palette) Names() []string {
	seen := make(map[string]struct{}, len(colornames.Names))
	for _, n := range colornames.Names {
		seen[n] = struct{}{}
	}
	p.mu.RLock()
	for n := range p.custom {
		seen[n] = struct{}{}
	}
	p.mu.RUnlock()

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var defaultPalette = NewPalette()

// Named returns a color from the default palette.
// See [Palette.Color].
func Named(name string) RGBA {
	return defaultPalette.Color(name)
}
