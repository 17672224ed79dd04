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

package style

import (
	"seehuhn.de/go/slides"
)

// Dash selects the dash pattern of a line.
type Dash uint8

// These are the supported dash patterns.
const (
	DashSolid Dash = iota
	DashDot
	DashDash
	DashLongDash
	DashDashDot
)

func (d Dash) String() string {
	switch d {
	case DashSolid:
		return "solid"
	case DashDot:
		return "dot"
	case DashDash:
		return "dash"
	case DashLongDash:
		return "longDash"
	case DashDashDot:
		return "dashDot"
	default:
		return "unknown"
	}
}

// Border describes a line, either the outline of a shape or a line shape
// itself.
//
// A border with zero width is not drawn.
type Border struct {
	Width float64 // in points
	Color Color
	Dash  Dash
}

// Line returns a solid line of the given width and color.
func Line(width float64, c Color) Border {
	return Border{Width: width, Color: c}
}

// IsNone reports whether the border is invisible.
func (b Border) IsNone() bool {
	return b.Width <= 0
}

// Digest implements the [slides.Hashable] interface.
// All invisible borders have the same digest.
func (b Border) Digest() slides.Digest {
	h := slides.NewHasher(magicBorder)
	if b.IsNone() {
		h.Bool(false)
		return h.Sum()
	}
	h.Bool(true)
	h.Float(b.Width)
	h.Child(b.Color)
	h.Uint(uint64(b.Dash))
	return h.Sum()
}

func (b Border) isStyle() {}

// Borders are the four borders of a table cell.
type Borders struct {
	Left, Right, Top, Bottom Border
}

// AllBorders returns Borders with the same border on every side.
func AllBorders(b Border) Borders {
	return Borders{Left: b, Right: b, Top: b, Bottom: b}
}

// Digest implements the [slides.Hashable] interface.
func (b Borders) Digest() slides.Digest {
	h := slides.NewHasher(magicBorders)
	h.Child(b.Left)
	h.Child(b.Right)
	h.Child(b.Top)
	h.Child(b.Bottom)
	return h.Sum()
}

func (b Borders) isStyle() {}
