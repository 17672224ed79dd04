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

// Graphic combines the styles which determine how the outline and interior
// of a shape are drawn.
type Graphic struct {
	Fill   Fill
	Border Border
	Shadow *Shadow
}

// Digest implements the [slides.Hashable] interface.
func (g Graphic) Digest() slides.Digest {
	h := slides.NewHasher(magicGraphic)
	h.Child(g.Fill)
	h.Child(g.Border)
	h.Child(g.Shadow)
	return h.Sum()
}

func (g Graphic) isStyle() {}

// Cell combines the styles of a table cell.
type Cell struct {
	Fill    Fill
	Borders Borders
}

// Digest implements the [slides.Hashable] interface.
func (c Cell) Digest() slides.Digest {
	h := slides.NewHasher(magicCell)
	h.Child(c.Fill)
	h.Child(c.Borders)
	return h.Sum()
}

func (c Cell) isStyle() {}
