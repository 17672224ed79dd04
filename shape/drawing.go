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

package shape

import (
	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/media"
	"seehuhn.de/go/slides/style"
)

// Drawing is a picture, taken from a file or from memory.
//
// The image data is only read when the presentation is written.
type Drawing struct {
	Base

	src media.Source
}

var _ Shape = (*Drawing)(nil)

// NewDrawing returns a picture showing the given image.
func NewDrawing(src media.Source) *Drawing {
	return &Drawing{src: src.Clone()}
}

// Source returns the location of the image data.
func (d *Drawing) Source() media.Source {
	return d.src
}

// SetSource changes the image.
func (d *Drawing) SetSource(src media.Source) {
	d.src = src.Clone()
	d.touch()
}

// Digest implements the [slides.Hashable] interface.
func (d *Drawing) Digest() slides.Digest {
	return d.cache.Get(func() slides.Digest {
		h := slides.NewHasher(magicDrawing)
		d.writeDigest(h)
		writeFrame(h, d.offset, d.extent)
		h.Child(d.src)
		return h.Sum()
	})
}

// Clone implements the [Shape] interface.
func (d *Drawing) Clone() Shape {
	return &Drawing{Base: d.cloneBase(), src: d.src.Clone()}
}

// StyleObjects implements the [Shape] interface.
func (d *Drawing) StyleObjects() []style.Ref {
	return d.styleRefs()
}

func (d *Drawing) isShape() {}
