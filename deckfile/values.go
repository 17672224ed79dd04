// seehuhn.de/go/slides - a library for writing presentation files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package deckfile

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/style"
)

// Length is a distance in a deck file.  Lengths are written as a number
// followed by one of the units "cm", "mm", "in", "pt" or "px".  Numbers
// without a unit are points.
type Length slides.EMU

// EMU returns the length in English Metric Units.
func (l Length) EMU() slides.EMU {
	return slides.EMU(l)
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (l *Length) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a length", node.Line)
	}
	v, err := ParseLength(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*l = Length(v)
	return nil
}

var lengthUnits = []struct {
	suffix string
	conv   func(float64) slides.EMU
}{
	{"cm", slides.Centimeters},
	{"mm", func(x float64) slides.EMU { return slides.Centimeters(x / 10) }},
	{"in", slides.Inches},
	{"pt", slides.Points},
	{"px", func(x float64) slides.EMU { return slides.Points(x * 0.75) }},
}

// ParseLength converts a length like "2.5cm" into EMU.
func ParseLength(s string) (slides.EMU, error) {
	s = strings.TrimSpace(s)
	conv := slides.Points
	for _, u := range lengthUnits {
		if strings.HasSuffix(s, u.suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
			conv = u.conv
			break
		}
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	return conv(x), nil
}

// Color is a color in a deck file, written as "#RRGGBB" or "#AARRGGBB".
type Color style.Color

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a color", node.Line)
	}
	col, err := style.ParseHex(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = Color(col)
	return nil
}

// Fill is a fill in a deck file.  A single color gives a solid fill,
// "none" gives no fill.  Gradients are written as a mapping:
//
//	fill: {from: "#FFFFFF", to: "#000080", angle: 90}
//	fill: {from: "#FFFFFF", to: "#000080", radial: true}
type Fill style.Fill

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (f *Fill) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "none" {
			*f = Fill{}
			return nil
		}
		var c Color
		if err := node.Decode(&c); err != nil {
			return err
		}
		*f = Fill(style.Solid(style.Color(c)))
		return nil
	case yaml.MappingNode:
		var g struct {
			From   Color   `yaml:"from"`
			To     Color   `yaml:"to"`
			Angle  float64 `yaml:"angle"`
			Radial bool    `yaml:"radial"`
		}
		if err := node.Decode(&g); err != nil {
			return err
		}
		if g.Radial {
			*f = Fill(style.RadialGradient(style.Color(g.From), style.Color(g.To)))
		} else {
			*f = Fill(style.LinearGradient(style.Color(g.From), style.Color(g.To), g.Angle))
		}
		return nil
	}
	return fmt.Errorf("line %d: expected a fill", node.Line)
}

var dashNames = map[string]style.Dash{
	"solid":     style.DashSolid,
	"dot":       style.DashDot,
	"dash":      style.DashDash,
	"long-dash": style.DashLongDash,
	"dash-dot":  style.DashDashDot,
}

// Border is an outline in a deck file.  A single color gives a solid
// line of width 1pt.  Otherwise the border is a mapping:
//
//	border: {width: 2, color: "#C00000", dash: dash}
type Border style.Border

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (b *Border) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "none" {
			*b = Border{}
			return nil
		}
		var c Color
		if err := node.Decode(&c); err != nil {
			return err
		}
		*b = Border(style.Line(1, style.Color(c)))
		return nil
	case yaml.MappingNode:
		v := struct {
			Width float64 `yaml:"width"`
			Color Color   `yaml:"color"`
			Dash  string  `yaml:"dash"`
		}{Width: 1, Color: Color(style.Black)}
		if err := node.Decode(&v); err != nil {
			return err
		}
		dash := style.DashSolid
		if v.Dash != "" {
			var ok bool
			dash, ok = dashNames[v.Dash]
			if !ok {
				return fmt.Errorf("line %d: unknown dash pattern %q", node.Line, v.Dash)
			}
		}
		*b = Border{Width: v.Width, Color: style.Color(v.Color), Dash: dash}
		return nil
	}
	return fmt.Errorf("line %d: expected a border", node.Line)
}

// Font changes some properties of a font.  Fields which are not given
// are taken from the surrounding text.
type Font struct {
	Name      string  `yaml:"name"`
	Size      float64 `yaml:"size"`
	Bold      *bool   `yaml:"bold"`
	Italic    *bool   `yaml:"italic"`
	Underline *bool   `yaml:"underline"`
	Strike    *bool   `yaml:"strike"`
	Color     *Color  `yaml:"color"`
}

// Apply returns base, changed as described by f.  f may be nil.
func (f *Font) Apply(base style.Font) style.Font {
	if f == nil {
		return base
	}
	if f.Name != "" {
		base.Name = f.Name
	}
	if f.Size > 0 {
		base.Size = f.Size
	}
	if f.Bold != nil {
		base.Bold = *f.Bold
	}
	if f.Italic != nil {
		base.Italic = *f.Italic
	}
	if f.Underline != nil {
		base.Underline = style.UnderlineNone
		if *f.Underline {
			base.Underline = style.UnderlineSingle
		}
	}
	if f.Strike != nil {
		base.Strike = *f.Strike
	}
	if f.Color != nil {
		base.Color = style.Color(*f.Color)
	}
	return base
}
