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
	"seehuhn.de/go/slides/style"
)

// Line is a straight line.  The line is drawn using the border style of
// the shape.
type Line struct {
	Base
}

var _ Shape = (*Line)(nil)

// NewLine returns a line from p to q.
func NewLine(p, q slides.Point) *Line {
	l := &Line{}
	l.offset = slides.Point{X: min(p.X, q.X), Y: min(p.Y, q.Y)}
	l.extent = slides.Extent{CX: max(p.X, q.X) - l.offset.X, CY: max(p.Y, q.Y) - l.offset.Y}
	l.flipH = q.X < p.X
	l.flipV = q.Y < p.Y
	l.border = style.Line(0.75, style.Black)
	return l
}

// Endpoints returns the start and end point of the line, in the
// coordinates of the enclosing tree.
func (l *Line) Endpoints() (p, q slides.Point) {
	lo := l.offset
	hi := slides.Point{X: lo.X + l.extent.CX, Y: lo.Y + l.extent.CY}
	p, q = lo, hi
	if l.flipH {
		p.X, q.X = hi.X, lo.X
	}
	if l.flipV {
		p.Y, q.Y = hi.Y, lo.Y
	}
	return p, q
}

// Digest implements the [slides.Hashable] interface.
func (l *Line) Digest() slides.Digest {
	return l.cache.Get(func() slides.Digest {
		h := slides.NewHasher(magicLine)
		l.writeDigest(h)
		writeFrame(h, l.offset, l.extent)
		return h.Sum()
	})
}

// Clone implements the [Shape] interface.
func (l *Line) Clone() Shape {
	return &Line{Base: l.cloneBase()}
}

// StyleObjects implements the [Shape] interface.
func (l *Line) StyleObjects() []style.Ref {
	return l.styleRefs()
}

func (l *Line) isShape() {}
