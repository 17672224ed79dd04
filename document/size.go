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

package document

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/slides"
)

// SlideSize is the size of the slides of a presentation.
type SlideSize struct {
	// Name identifies the size.  For the sizes defined in this package,
	// the name matches the slide size type used in PresentationML.
	Name string

	Width  slides.EMU
	Height slides.EMU
}

// Predefined slide sizes.
var (
	Widescreen  = SlideSize{Name: "custom", Width: 12192000, Height: 6858000}
	Screen4x3   = SlideSize{Name: "screen4x3", Width: 9144000, Height: 6858000}
	Screen16x9  = SlideSize{Name: "screen16x9", Width: 9144000, Height: 5143500}
	Screen16x10 = SlideSize{Name: "screen16x10", Width: 9144000, Height: 5715000}
	A4          = SlideSize{Name: "A4", Width: 9906000, Height: 6858000}
	Letter      = SlideSize{Name: "letter", Width: 9144000, Height: 6858000}
)

var sizeByName = map[string]SlideSize{
	"widescreen": Widescreen,
	"4:3":        Screen4x3,
	"16:9":       Screen16x9,
	"16:10":      Screen16x10,
	"a4":         A4,
	"letter":     Letter,
}

// LookupSize returns the predefined slide size with the given name.
// Valid names are "widescreen", "4:3", "16:9", "16:10", "a4" and "letter".
func LookupSize(name string) (SlideSize, bool) {
	s, ok := sizeByName[name]
	return s, ok
}

// CustomSize returns a slide size with the given width and height.
func CustomSize(width, height slides.EMU) SlideSize {
	return SlideSize{Name: "custom", Width: width, Height: height}
}

// Box returns the slide area as a rectangle, in PDF points.
func (s SlideSize) Box() *rect.Rect {
	return &rect.Rect{URx: s.Width.Points(), URy: s.Height.Points()}
}

// Landscape reports whether the slides are wider than high.
func (s SlideSize) Landscape() bool {
	return s.Width >= s.Height
}
