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

// Shadow describes an outer shadow of a shape.
type Shadow struct {
	Direction float64 // degrees clockwise from the positive x-axis
	Distance  float64 // points
	Blur      float64 // points
	Color     Color
}

// DefaultShadow is a soft shadow towards the bottom right.
var DefaultShadow = Shadow{
	Direction: 45,
	Distance:  3,
	Blur:      4,
	Color:     Color{A: 102},
}

// Digest implements the [slides.Hashable] interface.
func (s Shadow) Digest() slides.Digest {
	h := slides.NewHasher(magicShadow)
	h.Float(s.Direction)
	h.Float(s.Distance)
	h.Float(s.Blur)
	h.Child(s.Color)
	return h.Sum()
}

func (s Shadow) isStyle() {}
