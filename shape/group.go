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
	"math"

	"seehuhn.de/go/slides"
	"seehuhn.de/go/slides/style"
)

// Group is a shape which holds other shapes.
//
// The position and size of a group are not stored, but are derived from
// the bounding box of its members.  Members are positioned relative to
// the origin of the group, which is (0, 0) for a new group.  Moving the
// origin moves all members together.
type Group struct {
	Base
	Tree

	origin slides.Point
}

var _ Shape = (*Group)(nil)

// NewGroup returns a new, empty group.
func NewGroup() *Group {
	g := &Group{}
	g.Tree.group = g
	return g
}

// Origin returns the position of the group's coordinate system, in the
// coordinates of the enclosing tree.
func (g *Group) Origin() slides.Point {
	return g.origin
}

// SetOrigin moves the coordinate system of the group, and thus all
// members of the group.
func (g *Group) SetOrigin(p slides.Point) {
	if p == g.origin {
		return
	}
	g.origin = p
	g.moved()
}

// Offset returns the top left corner of the bounding box of the group
// members, in the coordinates of the enclosing tree.
// For a group without leaf shapes, the zero point is returned.
func (g *Group) Offset() slides.Point {
	b := g.Tree.localBounds()
	if b.IsEmpty() {
		return slides.Point{}
	}
	return b.Offset.Add(g.origin)
}

// Extent returns the size of the bounding box of the group members.
func (g *Group) Extent() slides.Extent {
	return g.Tree.localBounds().Extent
}

// SetOffset moves all members of the group, such that the top left corner
// of the group ends up at p.
func (g *Group) SetOffset(p slides.Point) {
	cur := g.Offset()
	g.SetOrigin(slides.Point{
		X: g.origin.X + p.X - cur.X,
		Y: g.origin.Y + p.Y - cur.Y,
	})
}

// SetExtent scales the positions and sizes of all members of the group,
// keeping the top left corner in place.  SetExtent has no effect on a
// group without leaf shapes.
func (g *Group) SetExtent(e slides.Extent) {
	b := g.Tree.localBounds()
	if b.IsEmpty() || b.Extent == e {
		return
	}
	scaleTree(&g.Tree, b.Offset, b.Extent, e)
}

// scaleTree scales all leaf shapes in t around the anchor point, which is
// given in the coordinates of t.
func scaleTree(t *Tree, anchor slides.Point, from, to slides.Extent) {
	for _, s := range t.shapes {
		if g, ok := s.(*Group); ok {
			inner := slides.Point{X: anchor.X - g.origin.X, Y: anchor.Y - g.origin.Y}
			scaleTree(&g.Tree, inner, from, to)
			continue
		}
		off := s.Offset()
		ext := s.Extent()
		s.SetOffset(slides.Point{
			X: anchor.X + scaleEMU(off.X-anchor.X, from.CX, to.CX),
			Y: anchor.Y + scaleEMU(off.Y-anchor.Y, from.CY, to.CY),
		})
		s.SetExtent(slides.Extent{
			CX: scaleEMU(ext.CX, from.CX, to.CX),
			CY: scaleEMU(ext.CY, from.CY, to.CY),
		})
	}
}

func scaleEMU(v, from, to slides.EMU) slides.EMU {
	if from == 0 {
		return v
	}
	return slides.EMU(math.Round(float64(v) * float64(to) / float64(from)))
}

// Digest implements the [slides.Hashable] interface.
func (g *Group) Digest() slides.Digest {
	return g.cache.Get(func() slides.Digest {
		h := slides.NewHasher(magicGroup)
		g.writeDigest(h)
		h.Int(int64(g.origin.X))
		h.Int(int64(g.origin.Y))
		g.writeShapes(h)
		return h.Sum()
	})
}

// Clone implements the [Shape] interface.  All members are cloned.
func (g *Group) Clone() Shape {
	c := NewGroup()
	c.Base = g.cloneBase()
	c.origin = g.origin
	g.Tree.CopyTo(&c.Tree)
	return c
}

// StyleObjects implements the [Shape] interface.
func (g *Group) StyleObjects() []style.Ref {
	return g.styleRefs()
}

func (g *Group) isShape() {}
