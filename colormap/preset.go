// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package colormap

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/vis"
)

// ErrBadPreset is returned (wrapped) for malformed colormap files.
var ErrBadPreset = errors.New("colormap: malformed preset")

// jsonPreset is one entry of a ParaView colormap JSON export.
type jsonPreset struct {
	Name       string    `json:"Name"`
	Creator    string    `json:"Creator"`
	ColorSpace string    `json:"ColorSpace"`
	NanColor   []float64 `json:"NanColor"`
	RGBPoints  []float64 `json:"RGBPoints"`
}

// ParseJSON reads a ParaView colormap JSON export, which holds an array of
// presets, and returns one transfer function per preset.
//
// RGBPoints is a flat list of x, r, g, b quadruples. ColorSpace selects the
// interpolation space (see ParseColorSpace). Opacity points are ignored.
func ParseJSON(r io.Reader) ([]*TransferFunction, error) {
	var presets []jsonPreset
	if err := json.NewDecoder(r).Decode(&presets); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPreset, err)
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("%w: no presets", ErrBadPreset)
	}

	out := make([]*TransferFunction, 0, len(presets))
	for i, p := range presets {
		if len(p.RGBPoints) == 0 || len(p.RGBPoints)%4 != 0 {
			return nil, fmt.Errorf("%w: preset %d (%q): %d RGBPoints values, want a positive multiple of 4",
				ErrBadPreset, i, p.Name, len(p.RGBPoints))
		}
		tf := New()
		tf.Name = p.Name
		tf.Creator = p.Creator
		tf.SetColorSpace(ParseColorSpace(p.ColorSpace))
		if len(p.NanColor) >= 3 {
			tf.SetNanColor(vis.RGB(p.NanColor[0], p.NanColor[1], p.NanColor[2]))
		}
		for j := 0; j < len(p.RGBPoints); j += 4 {
			q := p.RGBPoints[j : j+4]
			tf.AddRGBPoint(q[0], q[1], q[2], q[3])
		}
		tf.SetNumberOfValues(len(p.RGBPoints) / 4)
		out = append(out, tf)
	}
	return out, nil
}

type xmlColor struct {
	R float64 `xml:"r,attr"`
	G float64 `xml:"g,attr"`
	B float64 `xml:"b,attr"`
}

type xmlPoint struct {
	X float64 `xml:"x,attr"`
	O float64 `xml:"o,attr"`
	xmlColor
}

type xmlColorMap struct {
	Name               string     `xml:"name,attr"`
	Creator            string     `xml:"creator,attr"`
	Space              string     `xml:"space,attr"`
	InterpolationSpace string     `xml:"interpolationspace,attr"`
	InterpolationType  string     `xml:"interpolationtype,attr"`
	Points             []xmlPoint `xml:"Point"`
	NaN                *xmlColor  `xml:"NaN"`
	Above              *xmlColor  `xml:"Above"`
	Below              *xmlColor  `xml:"Below"`
}

type xmlColorMaps struct {
	Maps []xmlColorMap `xml:"ColorMap"`
}

// ParseXML reads a SciVis-style XML colormap. The root element is either
// <ColorMaps> holding one or more <ColorMap> elements, or a single
// <ColorMap>. The first colormap is returned.
//
// The space attribute names the space the point colors are written in
// (RGB or HSV). The interpolationspace attribute selects the interpolation
// space, RGB when absent, and interpolationtype="log10" selects log
// scaling. NaN, Above and Below child elements set the special colors.
func ParseXML(r io.Reader) (*TransferFunction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var root struct{ XMLName xml.Name }
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPreset, err)
	}

	var cm xmlColorMap
	switch root.XMLName.Local {
	case "ColorMap":
		if err := xml.Unmarshal(data, &cm); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPreset, err)
		}
	default:
		var maps xmlColorMaps
		if err := xml.Unmarshal(data, &maps); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPreset, err)
		}
		if len(maps.Maps) == 0 {
			return nil, fmt.Errorf("%w: no ColorMap element", ErrBadPreset)
		}
		cm = maps.Maps[0]
	}
	if len(cm.Points) == 0 {
		return nil, fmt.Errorf("%w: colormap %q has no points", ErrBadPreset, cm.Name)
	}

	tf := New()
	tf.Name = cm.Name
	tf.Creator = cm.Creator
	tf.SetColorSpace(ParseColorSpace(cm.InterpolationSpace))
	tf.SetScale(ParseScale(cm.InterpolationType))
	hsv := strings.EqualFold(strings.TrimSpace(cm.Space), "hsv")
	for _, p := range cm.Points {
		if hsv {
			tf.AddHSVPoint(p.X, p.R, p.G, p.B)
			continue
		}
		tf.AddRGBPoint(p.X, p.R, p.G, p.B)
	}
	if cm.NaN != nil {
		tf.SetNanColor(vis.RGB(cm.NaN.R, cm.NaN.G, cm.NaN.B))
	}
	if cm.Above != nil {
		tf.SetAboveRangeColor(vis.RGB(cm.Above.R, cm.Above.G, cm.Above.B))
	}
	if cm.Below != nil {
		tf.SetBelowRangeColor(vis.RGB(cm.Below.R, cm.Below.G, cm.Below.B))
	}
	tf.SetNumberOfValues(len(cm.Points))
	return tf, nil
}

// Load reads a preset file, choosing the parser by extension (.json or
// .xml). A path without an extension is tried as .json. For JSON exports
// the first preset is returned.
func Load(path string) (*TransferFunction, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		path += ".json"
		ext = ".json"
	}
	if ext != ".json" && ext != ".xml" {
		return nil, fmt.Errorf("colormap: unsupported preset extension %q", ext)
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	if ext == ".xml" {
		tf, err := ParseXML(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return tf, nil
	}
	tfs, err := ParseJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tfs[0], nil
}
