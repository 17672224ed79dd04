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

// Underline selects the underline style of text.
type Underline uint8

// These are the supported underline styles.
const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
)

// Font describes the character formatting of a text run.
type Font struct {
	Name      string
	Size      float64 // in points
	Bold      bool
	Italic    bool
	Underline Underline
	Strike    bool
	Color     Color

	// Baseline is the vertical offset in percent of the font size.
	// Positive values give superscript, negative values subscript.
	Baseline int

	// CharSpacing is extra space between characters, in points.
	CharSpacing float64
}

// DefaultFont is the font used for text where no font is given.
var DefaultFont = Font{
	Name:  "Calibri",
	Size:  18,
	Color: Black,
}

// Digest implements the [slides.Hashable] interface.
//
// Fields are written in declaration order.
func (f Font) Digest() slides.Digest {
	h := slides.NewHasher(magicFont)
	h.String(f.Name)
	h.Float(f.Size)
	h.Bool(f.Bold)
	h.Bool(f.Italic)
	h.Uint(uint64(f.Underline))
	h.Bool(f.Strike)
	h.Child(f.Color)
	h.Int(int64(f.Baseline))
	h.Float(f.CharSpacing)
	return h.Sum()
}

func (f Font) isStyle() {}
